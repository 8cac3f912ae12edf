package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/enrollment/enrollment-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// It registers the student_id tag and reports fields by their param or json
// name so messages match what the client sent.
func NewValidator() (*echoValidator, error) {
	v := validator.New()
	v.RegisterTagNameFunc(clientFieldName)
	if err := v.RegisterValidation("student_id", func(fl validator.FieldLevel) bool {
		return domain.ValidStudentID(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register student_id: %w", err)
	}
	return &echoValidator{v: v}, nil
}

// Validate satisfies the echo.Validator interface. Failures wrap
// domain.ErrValidation.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "student_id":
		return field + " must look like S001"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// clientFieldName prefers the param tag, then the json tag, then the Go name.
func clientFieldName(f reflect.StructField) string {
	for _, key := range []string{"param", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
