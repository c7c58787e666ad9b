package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"recruitment-form/internal/dto"
	"recruitment-form/internal/services"
	"recruitment-form/pkg/api"
	apperrors "recruitment-form/pkg/errors"
)

type ApplicationController struct {
	applicationService services.ApplicationServiceInterface
	logger             *zap.Logger
}

func NewApplicationController(applicationService services.ApplicationServiceInterface, logger *zap.Logger) *ApplicationController {
	return &ApplicationController{applicationService: applicationService, logger: logger}
}

// Validate проверяет анкету и возвращает её в нормализованном виде. Ничего не сохраняется.
func (c *ApplicationController) Validate(ctx echo.Context) error {
	var application dto.ApplicationDTO
	if err := ctx.Bind(&application); err != nil {
		return api.ErrorResponse(ctx, apperrors.NewBadRequestError("Неверный формат данных"))
	}

	res, err := c.applicationService.Prepare(ctx.Request().Context(), application)
	if err != nil {
		c.logger.Debug("Анкета отклонена", zap.Error(err))
		return api.ErrorResponse(ctx, api.ValidationError(err))
	}

	return api.SuccessOne(ctx, http.StatusOK, "Анкета заполнена корректно", res)
}
