package submissions

import (
	"fmt"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"strings"
)

const (
	locationSanFrancisco = "san-francisco"
	locationSonoma       = "sonoma"
	locationBoth         = "both"
)

// envelope is what every flow reduces to before rendering.
type envelope struct {
	FirstName string
	LastName  string
	Name      string
	Email     string
	Phone     string
	Location  string
	FormType  string
	Details   string
	// Extra holds the raw submission when it carries more than the standard fields.
	Extra map[string]any
}

func (e envelope) displayName() string {
	if e.FirstName != "" && e.LastName != "" {
		return e.FirstName + " " + e.LastName
	}
	if e.Name != "" {
		return e.Name
	}
	return "Unknown"
}

func contactEnvelope(form *requests.ContactForm) envelope {
	formType := form.FormType
	if formType == "" {
		formType = "contact"
	}

	extra := map[string]any{"formType": formType}
	for field, value := range form.Values() {
		if text, ok := value.(string); ok && text != "" {
			extra[field] = text
		}
	}
	if form.Name != "" {
		extra["name"] = form.Name
	}
	if len(extra) <= standardFieldCount {
		extra = nil
	}

	return envelope{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Name:      form.Name,
		Email:     form.Email,
		Phone:     form.Phone,
		Location:  form.Location,
		FormType:  formType,
		Details:   form.Message,
		Extra:     extra,
	}
}

// standardFieldCount is how many fields a plain contact message carries.
const standardFieldCount = 7

func assessmentEnvelope(form *requests.AssessmentForm) envelope {
	details := strings.Join([]string{
		"Patient Age: " + orDefault(form.PatientAge, constvars.EmailNotSpecified),
		"Primary Concern: " + orDefault(form.Concern, constvars.EmailNotSpecified),
		"Treatment Interest: " + orDefault(form.Treatment, constvars.EmailNotSpecified),
		"Preferred Location: " + orDefault(form.Location, constvars.EmailNotSpecified),
		"Timeline: " + orDefault(form.Timeline, constvars.EmailNotSpecified),
		"Insurance: " + orDefault(form.Insurance, constvars.EmailNotSpecified),
		"",
		"--- Contact Information ---",
		fmt.Sprintf("Name: %s %s", form.FirstName, form.LastName),
		"Phone: " + orDefault(form.Phone, constvars.EmailNotProvided),
		"Email: " + form.Email,
		"Date of Birth: " + orDefault(form.DateOfBirth, constvars.EmailNotProvided),
		"",
		"--- Consent ---",
		"Privacy Policy Accepted: " + yesNo(form.PrivacyConsent),
		"Marketing Consent: " + yesNo(form.MarketingConsent),
	}, "\n")

	return envelope{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Location:  officeFor(form.Location),
		FormType:  "smile-assessment",
		Details:   details,
	}
}

func referralEnvelope(form *requests.ReferralForm) envelope {
	details := strings.Join([]string{
		"--- PATIENT INFORMATION ---",
		fmt.Sprintf("Name: %s %s", form.PatientFirstName, form.PatientLastName),
		"Email: " + form.PatientEmail,
		"Phone: " + orDefault(form.PatientPhone, constvars.EmailNotProvided),
		"Preferred Location: " + orDefault(form.PreferredLocation, constvars.EmailNotSpecified),
		"",
		"--- REFERRING DOCTOR ---",
		fmt.Sprintf("Name: Dr. %s %s", form.DoctorFirstName, form.DoctorLastName),
		"",
		"--- CLINICAL DETAILS ---",
		"Reason for Referral: " + orDefault(form.ReferralReason, constvars.EmailNotSpecified),
		"X-Rays: " + orDefault(form.XRays, constvars.EmailNotSpecified),
		"",
		"--- COMMENTS ---",
		orDefault(form.Comments, "No additional comments provided."),
	}, "\n")

	// the office replies to the patient, the subject names the doctor
	return envelope{
		FirstName: form.DoctorFirstName,
		LastName:  form.DoctorLastName,
		Email:     form.PatientEmail,
		Phone:     form.PatientPhone,
		Location:  officeFor(form.PreferredLocation),
		FormType:  "doctor-referral",
		Details:   details,
	}
}

func virtualCareEnvelope(form *requests.VirtualCareForm) envelope {
	patientType := "New Patient"
	if form.Existing() {
		patientType = "Existing Patient"
	}

	lines := []string{
		"Patient Type: " + patientType,
		"--- CONTACT INFORMATION ---",
		fmt.Sprintf("Name: %s %s", form.FirstName, form.LastName),
		"Phone: " + orDefault(form.Phone, constvars.EmailNotProvided),
		"Email: " + orDefault(form.Email, constvars.EmailNotProvided),
		prefixed("Age: ", form.Age),
		"--- ADDRESS ---",
		form.Address,
		form.Address2,
	}
	if form.City != "" || form.State != "" || form.Zip != "" {
		lines = append(lines, fmt.Sprintf("%s, %s %s", form.City, form.State, form.Zip))
	}
	lines = append(lines,
		"--- ADDITIONAL INFORMATION ---",
		prefixed("Insurance: ", form.Insurance),
		prefixed("Concerns: ", form.Concerns),
		prefixed("Message: ", form.Message),
		"--- CONSENT ---",
		"Privacy Policy Accepted: "+yesNo(form.PrivacyConsent),
		"Marketing Consent: "+yesNo(form.MarketingConsent),
	)

	return envelope{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		FormType:  "virtual-care",
		Details:   joinNonEmpty(lines),
	}
}

// officeFor routes a free-form location label to one office.
func officeFor(label string) string {
	if strings.Contains(strings.ToLower(label), locationSonoma) {
		return locationSonoma
	}
	return locationSanFrancisco
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

func joinNonEmpty(lines []string) string {
	kept := lines[:0:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func yesNo(value bool) string {
	if value {
		return constvars.EmailYes
	}
	return constvars.EmailNo
}
