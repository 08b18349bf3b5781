package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator plugs go-playground/validator into echo.Context.Validate.
type CustomValidator struct {
	validate *validator.Validate
}

var _ echo.Validator = (*CustomValidator)(nil)

// NewCustomValidator reports fields by their JSON names.
func NewCustomValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validate: v}
}

func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// validationDetails converts validator errors into response details. The
// boolean is false for any other error.
func validationDetails(err error) ([]ErrorDetail, bool) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, false
	}

	details := make([]ErrorDetail, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		details = append(details, ErrorDetail{
			Field:   fieldErr.Field(),
			Message: validationMessage(fieldErr),
		})
	}
	return details, true
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "gt":
		return fieldErr.Field() + " must be greater than " + fieldErr.Param()
	case "gte":
		return fieldErr.Field() + " must be at least " + fieldErr.Param()
	default:
		return fieldErr.Field() + " is invalid"
	}
}
