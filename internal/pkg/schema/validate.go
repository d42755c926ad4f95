package schema

import (
	"errors"
	"intake-service/internal/pkg/constvars"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	TagRequired    = "required"
	TagAccepted    = "accepted"
	TagBoolean     = "boolean"
	TagString      = "string"
	TagEmailFormat = "email_format"
	TagPhoneDigits = "phone_digits"
	TagZIPCode     = "zip_code"
)

var (
	validate = validator.New()

	reEmail      = regexp.MustCompile(constvars.RegexEmail)
	rePhoneChars = regexp.MustCompile(constvars.RegexPhoneChars)
	reZIPCode    = regexp.MustCompile(constvars.RegexUSZIPCode)
)

func init() {
	validate.RegisterValidation(TagEmailFormat, validateEmailFormat)
	validate.RegisterValidation(TagPhoneDigits, validatePhoneDigits)
	validate.RegisterValidation(TagZIPCode, validateZIPCode)
}

// FieldError is the first rule a value broke.
type FieldError struct {
	Field string
	Label string
	Tag   string
	Param string
}

func (e *FieldError) Error() string {
	message, ok := constvars.CustomValidationErrorMessages[e.Tag]
	if !ok {
		message = "is invalid"
	}
	if constvars.TagsWithParams[e.Tag] {
		param := e.Param
		if e.Tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		message = strings.Replace(message, "%s", param, 1)
	}
	return e.Label + " " + message
}

// AsFieldError unwraps err into a *FieldError when it holds one.
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}

func validateTag(rule Rule, value string) error {
	if rule.Tag == "" {
		return nil
	}

	err := validate.Var(value, rule.Tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return &FieldError{Field: rule.Field, Label: rule.Label, Tag: first.Tag(), Param: first.Param()}
	}
	return &FieldError{Field: rule.Field, Label: rule.Label, Tag: rule.Tag}
}

func validateEmailFormat(fl validator.FieldLevel) bool {
	return reEmail.MatchString(fl.Field().String())
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if !rePhoneChars.MatchString(phone) {
		return false
	}
	digits := len(PhoneDigits(phone))
	return digits >= 7 && digits <= 15
}

func validateZIPCode(fl validator.FieldLevel) bool {
	return reZIPCode.MatchString(fl.Field().String())
}
