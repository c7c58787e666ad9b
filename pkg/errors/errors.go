package errors

import "fmt"

var (
	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")

	// Справочник филиалов
	ErrNoActiveProvider  = fmt.Errorf("активный провайдер хранилища не установлен")
	ErrMalformedResponse = fmt.Errorf("некорректный ответ справочника филиалов")

	// Выбор филиала
	ErrMissingElement = fmt.Errorf("отсутствует обязательный элемент страницы")
	ErrUnknownOption  = fmt.Errorf("значение отсутствует в списке филиалов")
)

// HttpError - ошибка, которую контроллер отдаёт клиенту как есть.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewBadRequestError(message string) *HttpError {
	return &HttpError{Code: 400, Message: message, Err: ErrBadRequest}
}

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
