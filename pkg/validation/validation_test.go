package validation_test

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"next-form-backend/internal/domain"
	"next-form-backend/pkg/apperror"
	"next-form-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactFormRules(t *testing.T) {
	v := validation.New()

	t.Run("Should accept a complete form", func(t *testing.T) {
		form := domain.ContactForm{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com", Message: "Hello"}
		assert.NoError(t, v.Struct(form))
	})

	t.Run("Should report every missing field by JSON name", func(t *testing.T) {
		err := v.Struct(domain.ContactForm{})
		require.Error(t, err)

		fields := validation.FormatValidationErrors(err)
		require.Len(t, fields, 4)
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Loc[1])
			assert.Equal(t, "field required", f.Msg)
			assert.Equal(t, "value_error.missing", f.Type)
		}
		assert.ElementsMatch(t, []string{"name", "surname", "email", "message"}, names)
	})

	t.Run("Should reject a malformed email", func(t *testing.T) {
		form := domain.ContactForm{Name: "Ada", Surname: "Lovelace", Email: "not-an-email", Message: "Hello"}
		fields := validation.FormatValidationErrors(v.Struct(form))
		require.Len(t, fields, 1)
		assert.Equal(t, []string{"body", "email"}, fields[0].Loc)
		assert.Equal(t, "value_error.email", fields[0].Type)
	})

	t.Run("Should reject a quoted local part", func(t *testing.T) {
		form := domain.ContactForm{Name: "Ada", Surname: "Lovelace", Email: `"a b"@example.com`, Message: "Hello"}
		fields := validation.FormatValidationErrors(v.Struct(form))
		require.Len(t, fields, 1)
		assert.Equal(t, []string{"body", "email"}, fields[0].Loc)
		assert.Equal(t, "value is not a valid email address", fields[0].Msg)
		assert.Equal(t, "value_error.email", fields[0].Type)
	})

	t.Run("Should accept plus addressing and dotted names", func(t *testing.T) {
		form := domain.ContactForm{Name: "Ada", Surname: "Lovelace", Email: "ada.lovelace+form@example.com", Message: "Hello"}
		assert.NoError(t, v.Struct(form))
	})

	t.Run("Should reject whitespace-only text", func(t *testing.T) {
		form := domain.ContactForm{Name: "Ada", Surname: "   ", Email: "ada@example.com", Message: "\t\n"}
		fields := validation.FormatValidationErrors(v.Struct(form))
		require.Len(t, fields, 2)
		verr := apperror.NewValidationError(fields...)
		assert.True(t, verr.HasField("surname"))
		assert.True(t, verr.HasField("message"))
		assert.False(t, verr.HasField("name"))
	})
}

func TestFormatValidationErrorsFallback(t *testing.T) {
	fields := validation.FormatValidationErrors(errors.New("boom"))
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"body"}, fields[0].Loc)
	assert.Equal(t, "boom", fields[0].Msg)
}

func TestFormatDecodeError(t *testing.T) {
	t.Run("Should point at the mistyped field", func(t *testing.T) {
		var form domain.ContactForm
		err := json.Unmarshal([]byte(`{"name": 123}`), &form)
		require.Error(t, err)

		fields := validation.FormatDecodeError(err)
		require.Len(t, fields, 1)
		assert.Equal(t, []string{"body", "name"}, fields[0].Loc)
		assert.Equal(t, "type_error", fields[0].Type)
	})

	t.Run("Should report malformed JSON on the body", func(t *testing.T) {
		var form domain.ContactForm
		err := json.Unmarshal([]byte(`{"name": `), &form)
		require.Error(t, err)

		fields := validation.FormatDecodeError(err)
		require.Len(t, fields, 1)
		assert.Equal(t, []string{"body"}, fields[0].Loc)
	})

	t.Run("Should report a truncated stream as malformed JSON", func(t *testing.T) {
		var form domain.ContactForm
		err := json.NewDecoder(strings.NewReader(`{"name":"Ada",`)).Decode(&form)
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)

		fields := validation.FormatDecodeError(err)
		require.Len(t, fields, 1)
		assert.Equal(t, "value_error.jsondecode", fields[0].Type)
	})

	t.Run("Should treat an empty body as missing", func(t *testing.T) {
		fields := validation.FormatDecodeError(io.EOF)
		require.Len(t, fields, 1)
		assert.Equal(t, "value_error.missing", fields[0].Type)
	})
}

func TestFormatContentTypeError(t *testing.T) {
	fe := validation.FormatContentTypeError("text/plain")
	assert.Equal(t, []string{"body"}, fe.Loc)
	assert.Equal(t, "value_error.content_type", fe.Type)
	assert.Contains(t, fe.Msg, "text/plain")
}
