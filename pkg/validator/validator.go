package validator

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// FieldViolation is a single failed rule, addressed by its JSON field path
type FieldViolation struct {
	Path    []string
	Tag     string
	Message string
}

// New creates a new CustomValidator instance that reports JSON field names
func New() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Var validates a single value against a tag expression
func (cv *CustomValidator) Var(field interface{}, tag string) error {
	return cv.v.Var(field, tag)
}

// Violations flattens validator errors into field violations.
// messages overrides the default text, keyed by "<path>.<tag>".
func Violations(err error, messages map[string]string) []FieldViolation {
	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		key := strings.Join(path, ".") + "." + fe.Tag()
		msg, ok := messages[key]
		if !ok {
			msg = defaultMessage(fe)
		}
		out = append(out, FieldViolation{Path: path, Tag: fe.Tag(), Message: msg})
	}
	return out
}

// fieldPath drops the root struct name from a namespace like "Request.a.b"
func fieldPath(namespace string) []string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return parts
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
