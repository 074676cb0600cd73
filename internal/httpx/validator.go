package httpx

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the wire name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct runs validator tags over s and returns per-field messages,
// or nil when the struct is valid.
func ValidateStruct(s interface{}) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs := FieldErrors{}
	for _, fieldErr := range err.(validator.ValidationErrors) {
		field := fieldErr.Field()
		param := fieldErr.Param()

		var message string
		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("The %s field is required.", field)
		case "email":
			message = fmt.Sprintf("The %s must be a valid email address.", field)
		case "url":
			message = fmt.Sprintf("The %s must be a valid URL.", field)
		case "min":
			message = fmt.Sprintf("The %s must be at least %s.", field, param)
		case "max":
			message = fmt.Sprintf("The %s must not be greater than %s.", field, param)
		case "gte":
			message = fmt.Sprintf("The %s must be at least %s.", field, param)
		case "lte":
			message = fmt.Sprintf("The %s must not be greater than %s.", field, param)
		default:
			message = fmt.Sprintf("The %s is invalid.", field)
		}
		errs.Add(field, message)
	}
	return errs
}
