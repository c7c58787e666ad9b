package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator - обертка для использования в Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate реализует интерфейс echo.Validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// New создает и настраивает валидатор
func New() *CustomValidator {
	v := validator.New()

	// Имена полей в ошибках берём из json-тегов, их же видит клиент.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	registerNullTypes(v)

	// Если правило не зарегистрировалось - паникуем, сервер не должен стартовать
	if err := registerRules(v); err != nil {
		panic("ошибка регистрации валидаторов: " + err.Error())
	}

	return &CustomValidator{validator: v}
}
