package utils

import (
	"intake-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContactForm(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.ContactForm{Email: "  JANE@EXAMPLE.COM  ", Message: " hi "}

		SanitizeContactForm(request)

		assert.Equal(t, "jane@example.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "hi", request.Message)
	})

	t.Run("Header Injection", func(t *testing.T) {
		request := &requests.ContactForm{
			FirstName: "Jane\r\nBcc: victim@example.com",
			Email:     "jane@example.com\nBcc: x@example.com",
		}

		SanitizeContactForm(request)

		assert.NotContains(t, request.FirstName, "\n")
		assert.NotContains(t, request.Email, "\r")
		assert.Equal(t, "Jane  Bcc: victim@example.com", request.FirstName)
	})

	t.Run("Location Case", func(t *testing.T) {
		request := &requests.ContactForm{Location: " Sonoma "}

		SanitizeContactForm(request)

		assert.Equal(t, "sonoma", request.Location)
	})
}

func TestSanitizeVirtualCareForm(t *testing.T) {
	request := &requests.VirtualCareForm{
		PatientType: " Existing ",
		State:       "ca",
		Insurance:   "YES",
		Zip:         " 94110 ",
	}

	SanitizeVirtualCareForm(request)

	assert.Equal(t, "existing", request.PatientType)
	assert.Equal(t, "CA", request.State)
	assert.Equal(t, "yes", request.Insurance)
	assert.Equal(t, "94110", request.Zip)
	assert.True(t, request.Existing())
}

func TestSanitizeReferralForm(t *testing.T) {
	request := &requests.ReferralForm{
		PatientEmail:    " Alex@Example.com ",
		DoctorFirstName: " Maria\n",
		Comments:        "  see notes  ",
	}

	SanitizeReferralForm(request)

	assert.Equal(t, "alex@example.com", request.PatientEmail)
	assert.Equal(t, "Maria", request.DoctorFirstName)
	assert.Equal(t, "see notes", request.Comments)
}
