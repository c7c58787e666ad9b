package dto

// BranchRecord - одна запись справочника филиалов в том виде, в каком её видит форма.
type BranchRecord struct {
	Value       string `json:"value,omitempty"`
	Text        string `json:"text"`
	Code        string `json:"code"`
	Province    string `json:"province,omitempty"`
	Region      string `json:"region,omitempty"`
	District    string `json:"district,omitempty"`
	Coordinates string `json:"coordinates,omitempty"`
	Status      string `json:"branch_status,omitempty"`
}

// Key - идентификатор записи внутри одного списка: value, а если его нет - code.
func (b BranchRecord) Key() string {
	if b.Value != "" {
		return b.Value
	}
	return b.Code
}

type BranchListResponse struct {
	Success bool           `json:"success"`
	Data    []BranchRecord `json:"data"`
	Count   int            `json:"count"`
	Note    string         `json:"note,omitempty"`
}

func NewBranchListResponse(data []BranchRecord, note string) *BranchListResponse {
	if data == nil {
		data = make([]BranchRecord, 0)
	}
	return &BranchListResponse{
		Success: true,
		Data:    data,
		Count:   len(data),
		Note:    note,
	}
}

type HealthDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}
