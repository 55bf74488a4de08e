package mom

import (
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"strings"

	momdto "github.com/johnquangdev/mom-generator/internal/adapter/dto/mom"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	pkgvalidator "github.com/johnquangdev/mom-generator/pkg/validator"
)

const styleRule = "oneof=short detailed"

var violationMessages = map[string]string{
	"raw_notes.required": "raw notes are required",
}

// RequestValidator turns a raw JSON payload into a GenerationRequest
type RequestValidator struct {
	v *pkgvalidator.CustomValidator
}

// NewRequestValidator creates a request validator
func NewRequestValidator(v *pkgvalidator.CustomValidator) *RequestValidator {
	if v == nil {
		v = pkgvalidator.New()
	}
	return &RequestValidator{v: v}
}

// Parse decodes and validates payload, applying defaults for optional fields.
// The meeting date is left empty when absent; it is resolved at format time.
func (rv *RequestValidator) Parse(payload []byte) (entities.GenerationRequest, error) {
	var req momdto.GenerateRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return entities.GenerationRequest{}, entities.ValidationErrors{decodeViolation(err)}
	}

	var errs entities.ValidationErrors
	if err := rv.v.Validate(&req); err != nil {
		for _, fv := range pkgvalidator.Violations(err, violationMessages) {
			errs = append(errs, &entities.ValidationError{Path: fv.Path, Message: fv.Message})
		}
	}
	if req.Style != nil {
		if err := rv.v.Var(*req.Style, styleRule); err != nil {
			errs = append(errs, &entities.ValidationError{
				Path:    []string{"style"},
				Message: fmt.Sprintf("style must be one of [%s %s]", entities.StyleShort, entities.StyleDetailed),
			})
		}
	}
	if len(errs) > 0 {
		return entities.GenerationRequest{}, errs
	}

	out := entities.GenerationRequest{
		RawNotes:  req.RawNotes,
		Attendees: req.Attendees,
		Style:     entities.StyleShort,
	}
	if out.Attendees == nil {
		out.Attendees = []string{}
	}
	if req.MeetingDate != nil {
		out.MeetingDate = *req.MeetingDate
	}
	if req.Purpose != nil {
		out.Purpose = *req.Purpose
	}
	if req.Style != nil {
		out.Style = entities.Style(*req.Style)
	}
	return out, nil
}

func decodeViolation(err error) *entities.ValidationError {
	var typeErr *json.UnmarshalTypeError
	if stdErrors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return &entities.ValidationError{Message: "request body must be a JSON object"}
		}
		path := strings.Split(typeErr.Field, ".")
		return &entities.ValidationError{
			Path:    path,
			Message: fmt.Sprintf("%s has an invalid type: expected %s, received %s", path[0], describeType(typeErr), typeErr.Value),
		}
	}
	return &entities.ValidationError{Message: "request body is not valid JSON"}
}

func describeType(typeErr *json.UnmarshalTypeError) string {
	if typeErr.Type == nil {
		return "value"
	}
	switch typeErr.Type.String() {
	case "[]string":
		return "array of strings"
	case "string", "*string":
		return "string"
	default:
		return typeErr.Type.String()
	}
}
