package schema

import "fmt"

const (
	PathDefault     = "default"
	PathAppointment = "appointment"
	PathInquiry     = "inquiry"
	PathExisting    = "existing"
	PathNew         = "new"
)

const (
	tagName     = "max=100"
	tagEmail    = "email_format,max=254"
	tagPhone    = "phone_digits,max=30"
	tagChoice   = "max=120"
	tagLongText = "max=5000"
	tagAddress  = "max=200"
)

var sets = map[FlowType]*Set{
	FlowContact:     contactSet(),
	FlowAssessment:  assessmentSet(),
	FlowReferral:    referralSet(),
	FlowVirtualCare: virtualCareSet(),
}

// For returns the schema of a flow.
func For(flow FlowType) (*Set, error) {
	set, ok := sets[flow]
	if !ok {
		return nil, fmt.Errorf("no schema for flow %q", flow)
	}
	return set, nil
}

// MustFor is For for flows known at compile time.
func MustFor(flow FlowType) *Set {
	set, err := For(flow)
	if err != nil {
		panic(err)
	}
	return set
}

func contactSet() *Set {
	return newSet(FlowContact,
		[]Rule{
			{Field: "location", Label: "Location", Tag: "oneof=san-francisco sonoma both"},
			{Field: "topic", Label: "Topic", Tag: tagChoice},
			{Field: "preferredDay", Label: "Preferred day", Tag: tagChoice},
			{Field: "preferredTime", Label: "Preferred time", Tag: tagChoice},
			{Field: "firstName", Label: "First name", Tag: tagName},
			{Field: "lastName", Label: "Last name", Tag: tagName},
			{Field: "email", Label: "Email", Tag: tagEmail},
			{Field: "phone", Label: "Phone", Tag: tagPhone},
			{Field: "message", Label: "Message", Tag: tagLongText},
		},
		[]Path{
			{
				Name:     PathAppointment,
				Required: []string{"preferredDay", "preferredTime", "firstName", "lastName", "email", "message"},
				Optional: []string{"location", "topic", "phone"},
			},
			{
				Name:     PathInquiry,
				Required: []string{"email", "message"},
				Optional: []string{"location", "topic", "firstName", "lastName", "phone"},
			},
		},
		func(values map[string]any) string {
			if topic, _ := values["topic"].(string); topic == "Appointments" {
				return PathAppointment
			}
			return PathInquiry
		},
	)
}

func assessmentSet() *Set {
	return newSet(FlowAssessment,
		[]Rule{
			{Field: "patientAge", Label: "Patient age", Tag: tagChoice},
			{Field: "concernCategory", Label: "Concern category", Tag: tagChoice, Internal: true},
			{Field: "concern", Label: "Concern", Tag: tagChoice},
			{Field: "status", Label: "Status", Tag: tagChoice},
			{Field: "treatment", Label: "Treatment", Tag: tagChoice},
			{Field: "location", Label: "Location", Tag: tagChoice},
			{Field: "timeline", Label: "Timeline", Tag: tagChoice},
			{Field: "insurance", Label: "Insurance", Tag: tagChoice},
			{Field: "firstName", Label: "First name", Tag: tagName},
			{Field: "lastName", Label: "Last name", Tag: tagName},
			{Field: "dateOfBirth", Label: "Date of birth", Tag: "max=40"},
			{Field: "phone", Label: "Phone", Tag: tagPhone},
			{Field: "email", Label: "Email", Tag: tagEmail},
			{Field: "privacyConsent", Label: "Privacy consent", Boolean: true},
			{Field: "marketingConsent", Label: "Marketing consent", Boolean: true},
		},
		[]Path{
			{
				Name:     PathDefault,
				Required: []string{"firstName", "lastName", "dateOfBirth", "phone", "email", "privacyConsent"},
				Optional: []string{"patientAge", "concern", "status", "treatment", "location", "timeline", "insurance", "marketingConsent"},
			},
		},
		nil,
	)
}

func referralSet() *Set {
	return newSet(FlowReferral,
		[]Rule{
			{Field: "patientFirstName", Label: "Patient first name", Tag: tagName},
			{Field: "patientLastName", Label: "Patient last name", Tag: tagName},
			{Field: "patientEmail", Label: "Patient email", Tag: tagEmail},
			{Field: "patientPhone", Label: "Patient phone", Tag: tagPhone},
			{Field: "preferredLocation", Label: "Preferred location", Tag: tagChoice},
			{Field: "doctorFirstName", Label: "Doctor first name", Tag: tagName},
			{Field: "doctorLastName", Label: "Doctor last name", Tag: tagName},
			{Field: "referralReason", Label: "Referral reason", Tag: tagChoice},
			{Field: "xRays", Label: "X-rays", Tag: tagChoice},
			{Field: "comments", Label: "Comments", Tag: tagLongText},
		},
		[]Path{
			{
				Name: PathDefault,
				Required: []string{
					"patientFirstName", "patientLastName", "patientEmail", "patientPhone", "preferredLocation",
					"doctorFirstName", "doctorLastName", "referralReason",
				},
				Optional: []string{"xRays", "comments"},
			},
		},
		nil,
	)
}

func virtualCareSet() *Set {
	return newSet(FlowVirtualCare,
		[]Rule{
			{Field: "patientType", Label: "Patient type", Tag: "oneof=existing new"},
			{Field: "firstName", Label: "First name", Tag: tagName},
			{Field: "lastName", Label: "Last name", Tag: tagName},
			{Field: "age", Label: "Age", Tag: "numeric,max=3"},
			{Field: "phone", Label: "Phone", Tag: tagPhone},
			{Field: "email", Label: "Email", Tag: tagEmail},
			{Field: "address", Label: "Address", Tag: tagAddress},
			{Field: "address2", Label: "Address line 2", Tag: tagAddress},
			{Field: "city", Label: "City", Tag: tagName},
			{Field: "state", Label: "State", Tag: "len=2"},
			{Field: "zip", Label: "ZIP code", Tag: "zip_code"},
			{Field: "insurance", Label: "Insurance", Tag: "oneof=yes no"},
			{Field: "concerns", Label: "Concerns", Tag: tagLongText},
			{Field: "message", Label: "Message", Tag: tagLongText},
			{Field: "privacyConsent", Label: "Privacy consent", Boolean: true},
			{Field: "marketingConsent", Label: "Marketing consent", Boolean: true},
		},
		[]Path{
			{
				Name:     PathExisting,
				Required: []string{"patientType", "firstName", "lastName", "phone", "message"},
				Optional: []string{"email"},
			},
			{
				Name: PathNew,
				Required: []string{
					"patientType", "firstName", "lastName", "age", "phone", "email",
					"address", "city", "state", "zip", "insurance", "concerns", "privacyConsent",
				},
				Optional: []string{"address2", "marketingConsent"},
			},
		},
		func(values map[string]any) string {
			if patientType, _ := values["patientType"].(string); patientType == PathExisting {
				return PathExisting
			}
			return PathNew
		},
	)
}
