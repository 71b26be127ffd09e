package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports JSON field names and knows the
// custom rules below.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("email_local", EmailLocalPart)
}

// dotAtom is an unquoted RFC 5322 local part, unicode letters allowed.
var dotAtom = regexp.MustCompile("^[\\p{L}\\p{N}!#$%&'*+/=?^_`{|}~-]+(\\.[\\p{L}\\p{N}!#$%&'*+/=?^_`{|}~-]+)*$")

// EmailLocalPart rejects quoted or otherwise exotic local parts that the
// generic email rule lets through, such as "a b"@example.com.
func EmailLocalPart(fl validator.FieldLevel) bool {
	addr := fl.Field().String()
	at := strings.LastIndex(addr, "@")
	if at <= 0 {
		return false
	}
	return dotAtom.MatchString(addr[:at])
}

// NotBlank rejects strings made only of whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
