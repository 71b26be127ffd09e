package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"next-form-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

const bodyLoc = "body"

// FormatValidationErrors converts validator.ValidationErrors to field errors
func FormatValidationErrors(err error) []apperror.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []apperror.FieldError{{
			Loc:  []string{bodyLoc},
			Msg:  err.Error(),
			Type: "value_error",
		}}
	}

	fields := make([]apperror.FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		fields = append(fields, formatSingleError(e))
	}
	return fields
}

func formatSingleError(e validator.FieldError) apperror.FieldError {
	fe := apperror.FieldError{Loc: []string{bodyLoc, e.Field()}}

	switch e.Tag() {
	case "required":
		fe.Msg = "field required"
		fe.Type = "value_error.missing"
	case "not_blank":
		fe.Msg = "field must not be blank"
		fe.Type = "value_error.blank"
	case "email", "email_local":
		fe.Msg = "value is not a valid email address"
		fe.Type = "value_error.email"
	default:
		// Fallback for unknown tags
		fe.Msg = fmt.Sprintf("failed on the %q rule", e.Tag())
		fe.Type = "value_error"
	}
	return fe
}

// FormatDecodeError turns a JSON body decoding failure into field errors.
func FormatDecodeError(err error) []apperror.FieldError {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError

	switch {
	case errors.As(err, &typeErr):
		loc := []string{bodyLoc}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return []apperror.FieldError{{
			Loc:  loc,
			Msg:  fmt.Sprintf("expected %s, got %s", typeErr.Type.Kind(), typeErr.Value),
			Type: "type_error",
		}}
	case errors.As(err, &syntaxErr):
		return []apperror.FieldError{{
			Loc:  []string{bodyLoc},
			Msg:  fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset),
			Type: "value_error.jsondecode",
		}}
	case errors.Is(err, io.ErrUnexpectedEOF):
		return []apperror.FieldError{{
			Loc:  []string{bodyLoc},
			Msg:  "malformed JSON: unexpected end of input",
			Type: "value_error.jsondecode",
		}}
	case errors.Is(err, io.EOF):
		return []apperror.FieldError{{
			Loc:  []string{bodyLoc},
			Msg:  "field required",
			Type: "value_error.missing",
		}}
	default:
		return []apperror.FieldError{{
			Loc:  []string{bodyLoc},
			Msg:  err.Error(),
			Type: "value_error",
		}}
	}
}

// FormatContentTypeError reports a body sent with a non-JSON media type.
func FormatContentTypeError(contentType string) apperror.FieldError {
	return apperror.FieldError{
		Loc:  []string{bodyLoc},
		Msg:  fmt.Sprintf("expected an application/json body, got %s", contentType),
		Type: "value_error.content_type",
	}
}
