package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"recruitment-form/internal/dto"
	apperrors "recruitment-form/pkg/errors"
)

type Response[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Body    T      `json:"body,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// SuccessOne - для возврата одного объекта
func SuccessOne[T any](c echo.Context, code int, message string, data T) error {
	return c.JSON(code, Response[T]{
		Status:  true,
		Message: message,
		Body:    data,
	})
}

func ErrorResponse(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	msg := "Внутренняя ошибка сервера"
	var details any

	// Для HttpError берем только пользовательское сообщение, без технических деталей
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		msg = httpErr.Message
		details = httpErr.Details
	}

	return c.JSON(code, Response[any]{
		Status:  false,
		Message: msg,
		Errors:  details,
	})
}

// ValidationError превращает ошибки валидатора в 400 с перечнем полей.
// Остальные ошибки считаются неверным форматом запроса.
func ValidationError(err error) *apperrors.HttpError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewHttpError(http.StatusBadRequest, "Неверный формат данных", err, nil)
	}
	fields := make([]dto.FieldErrorDTO, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, dto.FieldErrorDTO{Field: fe.Field(), Rule: fe.Tag()})
	}
	return apperrors.NewHttpError(http.StatusBadRequest, "Анкета заполнена неверно", err, fields)
}
