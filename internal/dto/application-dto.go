package dto

import "github.com/aarondl/null/v8"

// ApplicationDTO - анкета соискателя. Теги form совпадают с name полей на странице.
type ApplicationDTO struct {
	FirstName        string      `json:"first_name" form:"full-name" validate:"required,max=100,person_name"`
	LastName         string      `json:"last_name" form:"last-name" validate:"required,max=100,person_name"`
	IDCard           string      `json:"idcard" form:"idcard" validate:"required,thai_idcard"`
	Gender           string      `json:"gender" form:"gender" validate:"required,oneof=male female"`
	Education        string      `json:"education" form:"education" validate:"required,max=100"`
	Phone            string      `json:"phone" form:"phone" validate:"required,thai_phone"`
	LineID           null.String `json:"lineid" form:"lineid" validate:"omitempty,max=50,line_id"`
	Position         string      `json:"position" form:"position" validate:"required,max=100"`
	NearBranch       string      `json:"near_branch" form:"nearBranch" validate:"required,oneof=yes no"`
	Guarantor        string      `json:"guarantor" form:"garuner" validate:"required,oneof=yes no"`
	CriminalHistory  string      `json:"criminal_history" form:"criminal-history" validate:"required,oneof=yes no"`
	CriminalDetails  string      `json:"criminal_details" form:"criminal-details" validate:"required_if=CriminalHistory yes,max=500"`
	StartWorkingDate string      `json:"start_working_date" form:"start-working-date" validate:"required,datetime=2006-01-02"`
	PDPAConsent      string      `json:"pdpa_consent" form:"pdpa-consent" validate:"required,pdpa_consent"`

	// Выбранный филиал, пришедший со страницы выбора через query string.
	Branch     string `json:"branch" form:"branch" validate:"omitempty,max=100"`
	BranchCode string `json:"code" form:"code" validate:"omitempty,max=50"`
	BranchText string `json:"text" form:"text" validate:"omitempty,max=200"`
}

type FieldErrorDTO struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}
