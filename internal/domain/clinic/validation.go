package clinic

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Los errores usan el nombre JSON (camelCase) del campo.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct devuelve solo la primera violación, en orden de declaración.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return fieldError(verrs[0])
}

func fieldError(fe validator.FieldError) *ValidationError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return newRequiredError(field)
	case "max":
		if fe.Kind() == reflect.String {
			return &ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param())}
		}
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %s", field, fe.Param())}
	default:
		return &ValidationError{Field: field, Message: fmt.Sprintf("%s is invalid", field)}
	}
}
