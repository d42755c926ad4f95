package flows

import (
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/schema"
)

const (
	VirtualCareOverview    flow.StepID = "overview"
	VirtualCarePatientType flow.StepID = "patient-type"

	VirtualCareExistingContact flow.StepID = "existing-contact"
	VirtualCareExistingMessage flow.StepID = "existing-message"

	VirtualCareNewName      flow.StepID = "new-name"
	VirtualCareNewAge       flow.StepID = "new-age"
	VirtualCareNewContact   flow.StepID = "new-contact"
	VirtualCareNewAddress   flow.StepID = "new-address"
	VirtualCareNewInsurance flow.StepID = "new-insurance"
	VirtualCareNewConcerns  flow.StepID = "new-concerns"
	VirtualCareNewSummary   flow.StepID = "new-summary"
)

const (
	PatientTypeExisting = "existing"
	PatientTypeNew      = "new"
)

var (
	virtualCarePatientTypeOptions = []flow.Option{
		{ID: PatientTypeNew, Label: "New Patient"},
		{ID: PatientTypeExisting, Label: "Existing Patient"},
	}
	virtualCareStateOptions = []flow.Option{
		{ID: "CA", Label: "California"},
	}
	virtualCareInsuranceOptions = []flow.Option{
		{ID: "yes", Label: "Yes"},
		{ID: "no", Label: "No"},
	}
)

func VirtualCare() *flow.Definition {
	existing := chain(
		&flow.Step{
			ID:     VirtualCareExistingContact,
			Kind:   flow.KindCompositeForm,
			Prompt: "Welcome back! Who are we speaking with?",
			Inputs: []flow.Input{
				{Field: "firstName", Label: "First Name", Type: flow.InputText},
				{Field: "lastName", Label: "Last Name", Type: flow.InputText},
				{Field: "phone", Label: "Phone Number", Type: flow.InputPhone, Placeholder: "(555) 123-4567"},
			},
		},
		&flow.Step{
			ID:     VirtualCareExistingMessage,
			Kind:   flow.KindFreeText,
			Prompt: "How can we help?",
			Field:  "message",
		},
	)

	newPatient := chain(
		&flow.Step{
			ID:     VirtualCareNewName,
			Kind:   flow.KindCompositeForm,
			Prompt: "Let's Get Started",
			Inputs: []flow.Input{
				{Field: "firstName", Label: "First Name", Type: flow.InputText},
				{Field: "lastName", Label: "Last Name", Type: flow.InputText},
			},
		},
		&flow.Step{
			ID:     VirtualCareNewAge,
			Kind:   flow.KindFreeText,
			Prompt: "How young are you?",
			Field:  "age",
		},
		&flow.Step{
			ID:     VirtualCareNewContact,
			Kind:   flow.KindCompositeForm,
			Prompt: "How can we reach you?",
			Inputs: []flow.Input{
				{Field: "phone", Label: "Phone", Type: flow.InputPhone, Placeholder: "(555) 123-4567"},
				{Field: "email", Label: "Email", Type: flow.InputEmail},
			},
		},
		&flow.Step{
			ID:     VirtualCareNewAddress,
			Kind:   flow.KindCompositeForm,
			Prompt: "Where are you located?",
			Inputs: []flow.Input{
				{Field: "address", Label: "Address", Type: flow.InputText},
				{Field: "address2", Label: "Address 2", Type: flow.InputText},
				{Field: "city", Label: "City", Type: flow.InputText},
				{Field: "state", Label: "State", Type: flow.InputSelect, Options: virtualCareStateOptions, EmitCode: true},
				{Field: "zip", Label: "Zip", Type: flow.InputText},
			},
		},
		&flow.Step{
			ID:       VirtualCareNewInsurance,
			Kind:     flow.KindSingleChoice,
			Prompt:   "Do you have dental insurance?",
			Field:    "insurance",
			Options:  virtualCareInsuranceOptions,
			EmitCode: true,
		},
		&flow.Step{
			ID:     VirtualCareNewConcerns,
			Kind:   flow.KindCompositeForm,
			Prompt: "Almost there!",
			Inputs: []flow.Input{
				{Field: "concerns", Label: "Concerns", Type: flow.InputTextArea},
				{Field: "privacyConsent", Label: "I have read and agree to the Privacy Policy", Type: flow.InputCheckbox},
				{Field: "marketingConsent", Label: "I agree to receive information by email or SMS", Type: flow.InputCheckbox},
			},
		},
		&flow.Step{
			ID:     VirtualCareNewSummary,
			Kind:   flow.KindSummary,
			Prompt: "Please confirm your details",
			Shows: []string{
				"firstName", "lastName", "age", "phone", "email",
				"address", "address2", "city", "state", "zip", "insurance", "concerns",
			},
		},
	)
	onPath(existing, schema.PathExisting)
	onPath(newPatient, schema.PathNew)

	steps := []*flow.Step{
		{
			ID:     VirtualCareOverview,
			Kind:   flow.KindInfo,
			Prompt: "Virtual Care",
			Next:   flow.Goto(VirtualCarePatientType),
		},
		{
			ID:       VirtualCarePatientType,
			Kind:     flow.KindSingleChoice,
			Prompt:   "Are you a new or existing patient?",
			Field:    "patientType",
			Options:  virtualCarePatientTypeOptions,
			EmitCode: true,
			Next: func(answers flow.Answers) flow.StepID {
				if answers.String("patientType") == PatientTypeExisting {
					return existing[0].ID
				}
				return newPatient[0].ID
			},
		},
	}
	steps = append(steps, existing...)
	steps = append(steps, newPatient...)

	return flow.NewDefinition(schema.FlowVirtualCare, "Virtual Care", schema.MustFor(schema.FlowVirtualCare), steps...)
}

// chain links steps into a linear sequence ending the flow.
func chain(steps ...*flow.Step) []*flow.Step {
	for i, step := range steps {
		if i == len(steps)-1 {
			step.Next = flow.Finish
			continue
		}
		step.Next = flow.Goto(steps[i+1].ID)
	}
	return steps
}

func onPath(steps []*flow.Step, path string) {
	for _, step := range steps {
		step.Path = path
	}
}
