package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlowType(t *testing.T) {
	flowType, ok := ParseFlowType(" Virtual-Care ")
	assert.True(t, ok)
	assert.Equal(t, FlowVirtualCare, flowType)
	assert.Equal(t, "Virtual Care", flowType.Title())

	_, ok = ParseFlowType("newsletter")
	assert.False(t, ok)
}

func TestSet_ContactPaths(t *testing.T) {
	set := MustFor(FlowContact)

	t.Run("inquiry only needs email and message", func(t *testing.T) {
		err := set.Validate(map[string]any{
			"email":   "jane@example.com",
			"message": "Question about my bill",
		})
		assert.NoError(t, err)
	})

	t.Run("appointment requires the chosen slot", func(t *testing.T) {
		err := set.Validate(map[string]any{
			"topic":     "Appointments",
			"firstName": "Jane",
			"lastName":  "Doe",
			"email":     "jane@example.com",
			"message":   "Appointment request",
		})
		fieldErr, ok := AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "preferredDay", fieldErr.Field)
		assert.Equal(t, "Preferred day is required", fieldErr.Error())
	})

	t.Run("missing message", func(t *testing.T) {
		err := set.Validate(map[string]any{"email": "jane@example.com", "message": "   "})
		fieldErr, ok := AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "message", fieldErr.Field)
		assert.Equal(t, TagRequired, fieldErr.Tag)
	})

	t.Run("invalid email", func(t *testing.T) {
		err := set.Validate(map[string]any{"email": "not-an-email", "message": "hello"})
		fieldErr, ok := AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, TagEmailFormat, fieldErr.Tag)
		assert.Equal(t, "Email must be a valid email", err.Error())
	})

	t.Run("message length is capped", func(t *testing.T) {
		err := set.Validate(map[string]any{"email": "jane@example.com", "message": strings.Repeat("a", 5001)})
		fieldErr, ok := AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "max", fieldErr.Tag)
		assert.Equal(t, "Message must be at most 5000 characters long", err.Error())
	})

	t.Run("location code must be known", func(t *testing.T) {
		err := set.Validate(map[string]any{"email": "jane@example.com", "message": "hi", "location": "oakland"})
		fieldErr, ok := AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "location", fieldErr.Field)
		assert.Equal(t, "Location must be one of [san-francisco, sonoma, both]", err.Error())
	})
}

func TestSet_VirtualCarePaths(t *testing.T) {
	set := MustFor(FlowVirtualCare)

	existing := map[string]any{
		"patientType": "existing",
		"firstName":   "Sam",
		"lastName":    "Lee",
		"phone":       "(555) 123-4567",
		"message":     "My aligner cracked",
	}
	assert.NoError(t, set.Validate(existing), "existing patients are not asked for an email")
	assert.Equal(t, PathExisting, set.Select(existing).Name)

	newPatient := map[string]any{"patientType": "new", "firstName": "Sam", "lastName": "Lee"}
	assert.Equal(t, PathNew, set.Select(newPatient).Name)
	assert.Equal(t, []string{"age", "phone", "email", "address", "city", "state", "zip", "insurance", "concerns", "privacyConsent"}, set.Missing(newPatient))
}

func TestSet_ConsentMustBeAccepted(t *testing.T) {
	set := MustFor(FlowAssessment)
	values := map[string]any{
		"firstName":      "Ana",
		"lastName":       "Ruiz",
		"dateOfBirth":    "2001-04-02",
		"phone":          "5551234567",
		"email":          "ana@example.com",
		"privacyConsent": false,
	}

	err := set.Validate(values)
	fieldErr, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "privacyConsent", fieldErr.Field)
	assert.Equal(t, "Privacy consent must be accepted", err.Error())

	values["privacyConsent"] = true
	assert.NoError(t, set.Validate(values))

	values["privacyConsent"] = "yes"
	fieldErr, ok = AsFieldError(set.Validate(values))
	require.True(t, ok)
	assert.Equal(t, TagBoolean, fieldErr.Tag)
}

func TestSet_IsRequired(t *testing.T) {
	contact := MustFor(FlowContact)
	assert.True(t, contact.IsRequired(PathAppointment, "firstName"))
	assert.False(t, contact.IsRequired(PathInquiry, "firstName"))
	assert.True(t, contact.IsRequired("", "email"), "email is required on every contact path")
	assert.False(t, contact.IsRequired("", "firstName"))

	virtualCare := MustFor(FlowVirtualCare)
	assert.False(t, virtualCare.IsRequired("", "email"))
	assert.True(t, virtualCare.IsRequired(PathNew, "email"))
}

func TestSet_ValidateFields(t *testing.T) {
	set := MustFor(FlowReferral)
	values := map[string]any{"doctorFirstName": "Lee"}

	err := set.ValidateFields(PathDefault, values, "doctorFirstName", "doctorLastName")
	fieldErr, ok := AsFieldError(err)
	require.True(t, ok)
	assert.Equal(t, "doctorLastName", fieldErr.Field)

	err = set.ValidateFields(PathDefault, values, "unknownField")
	assert.Error(t, err)
	_, ok = AsFieldError(err)
	assert.False(t, ok)
}

func TestPhoneValidation(t *testing.T) {
	set := MustFor(FlowReferral)
	for _, phone := range []string{"(555) 123-4567", "+1 555 123 4567", "555.123.4567"} {
		assert.NoError(t, set.ValidateFields(PathDefault, map[string]any{"patientPhone": phone}, "patientPhone"), phone)
	}
	for _, phone := range []string{"call me", "12345", "555-CALL-NOW"} {
		assert.Error(t, set.ValidateFields(PathDefault, map[string]any{"patientPhone": phone}, "patientPhone"), phone)
	}
}

func TestFormatPhone(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"55":             "(55",
		"5551":           "(555) 1",
		"5551234567":     "(555) 123-4567",
		"555-123-456789": "(555) 123-4567",
		"(555) 12":       "(555) 12",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, FormatPhone(input), input)
	}
}
