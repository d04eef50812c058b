package encoding

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report the field names as they appear in the input
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks the struct against its validate tags.
// The error lists every failed field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.Newf("invalid input: %s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	// drop the root type name
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		field = fe.Field()
	}

	tag := fe.Tag()
	switch {
	case tag == "required":
		return fmt.Sprintf("%s is required", field)
	case tag == "min" && (fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map):
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	case tag == "min" || tag == "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case tag == "max" || tag == "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case tag == "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case tag == "base64":
		return fmt.Sprintf("%s must be base64 encoded", field)
	case strings.HasPrefix(tag, "datetime"):
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD or RFC 3339 format", field)
	default:
		return fmt.Sprintf("%s failed on the %q validation", field, tag)
	}
}
