package utils

import (
	"intake-service/internal/pkg/dto/requests"
	"strings"
)

// headerSafe drops line breaks so a value can sit in a mail header.
func headerSafe(s string) string {
	s = strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
	return strings.TrimSpace(s)
}

func trimAll(fields ...*string) {
	for _, field := range fields {
		*field = strings.TrimSpace(*field)
	}
}

func SanitizeContactForm(input *requests.ContactForm) {
	trimAll(&input.Phone, &input.Message, &input.Location, &input.Topic, &input.PreferredDay, &input.PreferredTime, &input.FormType)
	input.FirstName = headerSafe(input.FirstName)
	input.LastName = headerSafe(input.LastName)
	input.Name = headerSafe(input.Name)
	input.Email = strings.ToLower(headerSafe(input.Email))
	input.Location = strings.ToLower(input.Location)
}

func SanitizeAssessmentForm(input *requests.AssessmentForm) {
	trimAll(&input.PatientAge, &input.Concern, &input.Status, &input.Treatment, &input.Location,
		&input.Timeline, &input.Insurance, &input.DateOfBirth, &input.Phone)
	input.FirstName = headerSafe(input.FirstName)
	input.LastName = headerSafe(input.LastName)
	input.Email = strings.ToLower(headerSafe(input.Email))
}

func SanitizeReferralForm(input *requests.ReferralForm) {
	trimAll(&input.PatientPhone, &input.PreferredLocation, &input.ReferralReason, &input.XRays, &input.Comments)
	input.PatientFirstName = headerSafe(input.PatientFirstName)
	input.PatientLastName = headerSafe(input.PatientLastName)
	input.DoctorFirstName = headerSafe(input.DoctorFirstName)
	input.DoctorLastName = headerSafe(input.DoctorLastName)
	input.PatientEmail = strings.ToLower(headerSafe(input.PatientEmail))
}

func SanitizeVirtualCareForm(input *requests.VirtualCareForm) {
	trimAll(&input.Age, &input.Phone, &input.Address, &input.Address2, &input.City,
		&input.Zip, &input.Concerns, &input.Message)
	input.FirstName = headerSafe(input.FirstName)
	input.LastName = headerSafe(input.LastName)
	input.Email = strings.ToLower(headerSafe(input.Email))
	input.PatientType = strings.ToLower(strings.TrimSpace(input.PatientType))
	input.Insurance = strings.ToLower(strings.TrimSpace(input.Insurance))
	input.State = strings.ToUpper(strings.TrimSpace(input.State))
}
