package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"recruitment-form/internal/dto"
	"recruitment-form/pkg/utils"
)

type Validator interface {
	Validate(i interface{}) error
}

type ApplicationServiceInterface interface {
	Prepare(ctx context.Context, application dto.ApplicationDTO) (*dto.ApplicationDTO, error)
}

// ApplicationService готовит анкету: то же автоформатирование, что и на странице, затем проверка.
// Анкеты нигде не сохраняются.
type ApplicationService struct {
	validator Validator
	logger    *zap.Logger
}

func NewApplicationService(validator Validator, logger *zap.Logger) *ApplicationService {
	return &ApplicationService{validator: validator, logger: logger.Named("application_service")}
}

func (s *ApplicationService) Prepare(ctx context.Context, application dto.ApplicationDTO) (*dto.ApplicationDTO, error) {
	application.FirstName = strings.TrimSpace(application.FirstName)
	application.LastName = strings.TrimSpace(application.LastName)
	application.Phone = utils.FormatThaiPhoneNumber(application.Phone)
	application.IDCard = utils.FormatThaiIDCard(application.IDCard)
	if application.LineID.Valid {
		application.LineID.String = strings.TrimSpace(application.LineID.String)
		application.LineID.Valid = application.LineID.String != ""
	}
	if application.CriminalHistory != "yes" {
		application.CriminalDetails = ""
	}

	if err := s.validator.Validate(&application); err != nil {
		s.logger.Debug("Анкета не прошла проверку", zap.Error(err))
		return nil, err
	}
	return &application, nil
}
