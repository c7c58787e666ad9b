package validation

import (
	"reflect"

	"github.com/aarondl/null/v8"
	"github.com/go-playground/validator/v10"
)

// registerNullTypes учит валидатор "смотреть внутрь" null.String.
func registerNullTypes(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if val, ok := field.Interface().(null.String); ok {
			if val.Valid {
				return val.String
			}
		}
		return nil // nil, чтобы сработал `omitempty`
	}, null.String{})
}
