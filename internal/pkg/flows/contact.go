package flows

import (
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/schema"
)

const (
	ContactLocation           flow.StepID = "location"
	ContactTopic              flow.StepID = "topic"
	ContactAppointmentDay     flow.StepID = "appointment-day"
	ContactAppointmentTime    flow.StepID = "appointment-time"
	ContactAppointmentDetails flow.StepID = "appointment-contact"
	ContactAppointmentSummary flow.StepID = "appointment-summary"
	ContactInquiry            flow.StepID = "inquiry"
	ContactInquirySummary     flow.StepID = "inquiry-summary"
)

const TopicAppointments = "appointments"

var (
	contactLocationOptions = []flow.Option{
		{ID: "san-francisco", Label: "San Francisco"},
		{ID: "sonoma", Label: "Sonoma"},
		{ID: "both", Label: "Doesn't matter"},
	}
	contactTopicOptions = []flow.Option{
		{ID: TopicAppointments, Label: "Appointments"},
		{ID: "billing", Label: "Billing"},
		{ID: "other", Label: "Other"},
	}
	contactDayOptions = []flow.Option{
		{ID: "earliest", Label: "Earliest Available"},
		{ID: "monday", Label: "Monday"},
		{ID: "tuesday", Label: "Tuesday"},
		{ID: "wednesday", Label: "Wednesday"},
		{ID: "thursday", Label: "Thursday"},
		{ID: "friday", Label: "Friday"},
	}
	contactTimeOptions = []flow.Option{
		{ID: "10:00", Label: "10:00 AM"},
		{ID: "11:00", Label: "11:00 AM"},
		{ID: "12:00", Label: "12:00 PM"},
		{ID: "13:00", Label: "1:00 PM"},
		{ID: "14:00", Label: "2:00 PM"},
		{ID: "15:00", Label: "3:00 PM"},
		{ID: "16:00", Label: "4:00 PM"},
		{ID: "17:00", Label: "5:00 PM"},
	}
)

func Contact() *flow.Definition {
	return flow.NewDefinition(schema.FlowContact, "Contact Us", schema.MustFor(schema.FlowContact),
		&flow.Step{
			ID:       ContactLocation,
			Kind:     flow.KindSingleChoice,
			Prompt:   "Where would you like to be seen?",
			Field:    "location",
			Options:  contactLocationOptions,
			EmitCode: true,
			Next:     flow.Goto(ContactTopic),
		},
		&flow.Step{
			ID:      ContactTopic,
			Kind:    flow.KindSingleChoice,
			Prompt:  "What can we help you with?",
			Field:   "topic",
			Options: contactTopicOptions,
			Next: func(answers flow.Answers) flow.StepID {
				if answers.String("topic") == TopicAppointments {
					return ContactAppointmentDay
				}
				return ContactInquiry
			},
		},
		&flow.Step{
			ID:      ContactAppointmentDay,
			Kind:    flow.KindSingleChoice,
			Prompt:  "Preferred day?",
			Path:    schema.PathAppointment,
			Field:   "preferredDay",
			Options: contactDayOptions,
			Next:    flow.Goto(ContactAppointmentTime),
		},
		&flow.Step{
			ID:      ContactAppointmentTime,
			Kind:    flow.KindSingleChoice,
			Prompt:  "Preferred time?",
			Path:    schema.PathAppointment,
			Field:   "preferredTime",
			Options: contactTimeOptions,
			Next:    flow.Goto(ContactAppointmentDetails),
		},
		&flow.Step{
			ID:     ContactAppointmentDetails,
			Kind:   flow.KindCompositeForm,
			Prompt: "Who should we confirm with?",
			Path:   schema.PathAppointment,
			Inputs: contactInputs(false),
			Next:   flow.Goto(ContactAppointmentSummary),
		},
		&flow.Step{
			ID:     ContactAppointmentSummary,
			Kind:   flow.KindSummary,
			Prompt: "Please confirm your request",
			Path:   schema.PathAppointment,
			Shows:  []string{"location", "topic", "preferredDay", "preferredTime", "firstName", "lastName", "email", "phone"},
			Next:   flow.Finish,
		},
		&flow.Step{
			ID:     ContactInquiry,
			Kind:   flow.KindCompositeForm,
			Prompt: "How can we help?",
			Path:   schema.PathInquiry,
			Inputs: contactInputs(true),
			Next:   flow.Goto(ContactInquirySummary),
		},
		&flow.Step{
			ID:     ContactInquirySummary,
			Kind:   flow.KindSummary,
			Prompt: "Please confirm your details",
			Path:   schema.PathInquiry,
			Shows:  []string{"location", "topic", "firstName", "lastName", "email", "phone", "message"},
			Next:   flow.Finish,
		},
	)
}

func contactInputs(withMessage bool) []flow.Input {
	inputs := []flow.Input{
		{Field: "firstName", Label: "First Name", Type: flow.InputText},
		{Field: "lastName", Label: "Last Name", Type: flow.InputText},
		{Field: "email", Label: "Email", Type: flow.InputEmail},
		{Field: "phone", Label: "Phone", Type: flow.InputPhone, Placeholder: "(555) 123-4567"},
	}
	if withMessage {
		inputs = append(inputs, flow.Input{Field: "message", Label: "Message", Type: flow.InputTextArea})
	}
	return inputs
}
