package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
}

// ValidateStruct checks s against its `validate` tags. Problems are reported
// under the field's json (or mapstructure) name.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validation failed: %w", err)
	}

	result := &ValidationError{}
	for _, fe := range vErrs {
		result.Add(fieldPath(fe), message(fe))
	}
	return result
}

// fieldPath drops the top-level struct name from the namespace, so nested
// config sections come out as "app.timeout".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "min":
		return fmt.Sprintf("Must be greater than or equal to %s.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be less than or equal to %s.", fe.Param())
	case "url":
		return "Not a valid URL."
	case "oneof":
		return fmt.Sprintf("Must be one of: %s.", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("Failed on %q validation.", fe.Tag())
	}
}
