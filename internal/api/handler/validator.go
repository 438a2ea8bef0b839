package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// requestValidator lets echo validate bound query and path structs.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator assigned to echo.Echo.Validator.
// Messages name the query or path parameter, not the Go field.
func NewValidator() *requestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(paramName)
	return &requestValidator{v: v}
}

func paramName(f reflect.StructField) string {
	for _, tag := range []string{"query", "param"} {
		if name := f.Tag.Get(tag); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// Validate reports every violated rule in one message.
func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	msgs := make([]string, len(fields))
	for n, fe := range fields {
		msgs[n] = describe(fe)
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	switch tag := fe.Tag(); tag {
	case "required":
		return name + " is required"
	case "min", "max":
		bound := "at least"
		if tag == "max" {
			bound = "at most"
		}
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("%s accepts %s %s values", name, bound, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%s must be %s %s characters", name, bound, fe.Param())
		}
		return fmt.Sprintf("%s must be %s %s", name, bound, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return name + " is invalid"
	}
}
