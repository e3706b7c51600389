package handler

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/bandsite/cms-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in failures are the JSON names of the request schema.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Failures are returned as
// validator.ValidationErrors for the error handler to translate.
func (ev *echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}

// FieldIssues converts validator failures into ordered field details.
func FieldIssues(ve validator.ValidationErrors) []domain.FieldIssue {
	issues := make([]domain.FieldIssue, 0, len(ve))
	for _, fe := range ve {
		issues = append(issues, domain.FieldIssue{Field: fieldPath(fe), Message: fieldError(fe)})
	}
	return issues
}

// fieldPath drops the root struct from the namespace: "req.venue.city" -> "venue.city".
func fieldPath(fe validator.FieldError) string {
	_, path, ok := strings.Cut(fe.Namespace(), ".")
	if !ok || path == "" {
		return fe.Field()
	}
	return path
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	text := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return field + " ist erforderlich"
	case "email":
		return field + " muss eine gültige E-Mail-Adresse sein"
	case "url", "http_url":
		return field + " muss eine gültige URL sein"
	case "min", "gte":
		if text {
			return fmt.Sprintf("%s muss mindestens %s Zeichen lang sein", field, fe.Param())
		}
		return fmt.Sprintf("%s muss mindestens %s sein", field, fe.Param())
	case "max", "lte":
		if text {
			return fmt.Sprintf("%s darf höchstens %s Zeichen lang sein", field, fe.Param())
		}
		return fmt.Sprintf("%s darf höchstens %s sein", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s muss einer der Werte %s sein", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s ist ungültig (%s)", field, fe.Tag())
	}
}
