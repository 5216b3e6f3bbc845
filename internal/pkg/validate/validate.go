package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. validator.Validate caches struct
// metadata, so one instance serves the whole process.
var validate = validator.New()

// Struct validates a struct against its `validate` tags. The returned error
// message is safe to surface to the client as a field-level message.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// fieldMessage turns a single field error into a human-readable message
func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is required", field)
	case "email":
		return fmt.Sprintf("field %s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("field %s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("field %s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("field %s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of: %s", field, fe.Param())
	case "alphanum":
		return fmt.Sprintf("field %s may contain only letters and numbers", field)
	case "datetime":
		return fmt.Sprintf("field %s must be a date in format %s", field, fe.Param())
	default:
		return fmt.Sprintf("field %s is not valid", field)
	}
}
