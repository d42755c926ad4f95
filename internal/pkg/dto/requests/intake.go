package requests

// Values flatten a request body into the field map the flow schema validates.
type Values interface {
	Values() map[string]any
}

type ContactForm struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Message       string `json:"message"`
	Location      string `json:"location,omitempty"`
	Topic         string `json:"topic,omitempty"`
	PreferredDay  string `json:"preferredDay,omitempty"`
	PreferredTime string `json:"preferredTime,omitempty"`
	FormType      string `json:"formType,omitempty"`
}

func (f *ContactForm) Values() map[string]any {
	return map[string]any{
		"firstName":     f.FirstName,
		"lastName":      f.LastName,
		"email":         f.Email,
		"phone":         f.Phone,
		"message":       f.Message,
		"location":      f.Location,
		"topic":         f.Topic,
		"preferredDay":  f.PreferredDay,
		"preferredTime": f.PreferredTime,
	}
}

type AssessmentForm struct {
	PatientAge       string `json:"patientAge,omitempty"`
	Concern          string `json:"concern,omitempty"`
	Status           string `json:"status,omitempty"`
	Treatment        string `json:"treatment,omitempty"`
	Location         string `json:"location,omitempty"`
	Timeline         string `json:"timeline,omitempty"`
	Insurance        string `json:"insurance,omitempty"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	PrivacyConsent   bool   `json:"privacyConsent"`
	MarketingConsent bool   `json:"marketingConsent"`
}

func (f *AssessmentForm) Values() map[string]any {
	return map[string]any{
		"patientAge":       f.PatientAge,
		"concern":          f.Concern,
		"status":           f.Status,
		"treatment":        f.Treatment,
		"location":         f.Location,
		"timeline":         f.Timeline,
		"insurance":        f.Insurance,
		"firstName":        f.FirstName,
		"lastName":         f.LastName,
		"dateOfBirth":      f.DateOfBirth,
		"phone":            f.Phone,
		"email":            f.Email,
		"privacyConsent":   f.PrivacyConsent,
		"marketingConsent": f.MarketingConsent,
	}
}

type ReferralForm struct {
	PatientFirstName  string `json:"patientFirstName"`
	PatientLastName   string `json:"patientLastName"`
	PatientEmail      string `json:"patientEmail"`
	PatientPhone      string `json:"patientPhone"`
	PreferredLocation string `json:"preferredLocation"`
	DoctorFirstName   string `json:"doctorFirstName"`
	DoctorLastName    string `json:"doctorLastName"`
	ReferralReason    string `json:"referralReason"`
	XRays             string `json:"xRays,omitempty"`
	Comments          string `json:"comments,omitempty"`
}

func (f *ReferralForm) Values() map[string]any {
	return map[string]any{
		"patientFirstName":  f.PatientFirstName,
		"patientLastName":   f.PatientLastName,
		"patientEmail":      f.PatientEmail,
		"patientPhone":      f.PatientPhone,
		"preferredLocation": f.PreferredLocation,
		"doctorFirstName":   f.DoctorFirstName,
		"doctorLastName":    f.DoctorLastName,
		"referralReason":    f.ReferralReason,
		"xRays":             f.XRays,
		"comments":          f.Comments,
	}
}

type VirtualCareForm struct {
	PatientType      string `json:"patientType"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Age              string `json:"age,omitempty"`
	Phone            string `json:"phone"`
	Email            string `json:"email,omitempty"`
	Address          string `json:"address,omitempty"`
	Address2         string `json:"address2,omitempty"`
	City             string `json:"city,omitempty"`
	State            string `json:"state,omitempty"`
	Zip              string `json:"zip,omitempty"`
	Insurance        string `json:"insurance,omitempty"`
	Concerns         string `json:"concerns,omitempty"`
	Message          string `json:"message,omitempty"`
	PrivacyConsent   bool   `json:"privacyConsent"`
	MarketingConsent bool   `json:"marketingConsent"`
}

func (f *VirtualCareForm) Values() map[string]any {
	return map[string]any{
		"patientType":      f.PatientType,
		"firstName":        f.FirstName,
		"lastName":         f.LastName,
		"age":              f.Age,
		"phone":            f.Phone,
		"email":            f.Email,
		"address":          f.Address,
		"address2":         f.Address2,
		"city":             f.City,
		"state":            f.State,
		"zip":              f.Zip,
		"insurance":        f.Insurance,
		"concerns":         f.Concerns,
		"message":          f.Message,
		"privacyConsent":   f.PrivacyConsent,
		"marketingConsent": f.MarketingConsent,
	}
}

// Existing reports whether the form came down the existing-patient branch.
func (f *VirtualCareForm) Existing() bool {
	return f.PatientType == "existing"
}
