package flows

import (
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/schema"
)

const (
	AssessmentPatientAge      flow.StepID = "patient-age"
	AssessmentCategory        flow.StepID = "concern-category"
	AssessmentSpecificConcern flow.StepID = "specific-concern"
	AssessmentStatus          flow.StepID = "status"
	AssessmentTreatment       flow.StepID = "treatment"
	AssessmentLocation        flow.StepID = "location"
	AssessmentTimeline        flow.StepID = "timeline"
	AssessmentInsurance       flow.StepID = "insurance"
	AssessmentIdentity        flow.StepID = "contact-identity"
	AssessmentReach           flow.StepID = "contact-reach"
	AssessmentSummary         flow.StepID = "summary"
)

var (
	assessmentAgeOptions = []flow.Option{
		{ID: "adult", Label: "Adult"},
		{ID: "teen", Label: "Teenager"},
		{ID: "child", Label: "Child"},
	}
	assessmentCategoryOptions = []flow.Option{
		{ID: "cosmetic", Label: "Cosmetic / Esthetic"},
		{ID: "health", Label: "Health / Function"},
		{ID: "event", Label: "Specific Event"},
	}
	// one level only: the category picks the list, nothing branches further
	assessmentConcernOptions = map[string][]flow.Option{
		"cosmetic": {
			{ID: "straighter-smile", Label: "I want a straighter smile"},
			{ID: "close-gaps", Label: "I want to close gaps"},
			{ID: "whiter-teeth", Label: "I want whiter teeth"},
			{ID: "fix-overlapping", Label: "I want to fix overlapping"},
		},
		"health": {
			{ID: "jaw-pain", Label: "I have jaw pain / clicking"},
			{ID: "difficulty-chewing", Label: "I have difficulty chewing"},
			{ID: "bite-off", Label: "My bite feels off"},
			{ID: "grinding", Label: "I grind my teeth"},
		},
		"event": {
			{ID: "wedding", Label: "Wedding coming up"},
			{ID: "graduation", Label: "Graduation / New Job"},
			{ID: "public-speaking", Label: "Public speaking"},
			{ID: "family-portraits", Label: "Family portraits"},
		},
	}
	assessmentStatusOptions = []flow.Option{
		{ID: "ready", Label: "Ready to set up my complimentary consultation!"},
		{ID: "questions", Label: "I have specific questions before scheduling"},
	}
	assessmentTreatmentOptions = []flow.Option{
		{ID: "invisalign", Label: "Invisalign Clear Aligners"},
		{ID: "incognito", Label: "Incognito Hidden Braces"},
		{ID: "ceramic", Label: "Ceramic Braces"},
	}
	assessmentLocationOptions = []flow.Option{
		{ID: "san-francisco", Label: "San Francisco"},
		{ID: "sonoma", Label: "Sonoma"},
	}
	assessmentTimelineOptions = []flow.Option{
		{ID: "asap", Label: "Yesterday 🙂"},
		{ID: "this-month", Label: "This month"},
		{ID: "discuss", Label: "Would like to discuss options"},
	}
	assessmentInsuranceOptions = []flow.Option{
		{ID: "yes", Label: "Yes, I have dental insurance"},
		{ID: "no", Label: "No, I do not have insurance"},
		{ID: "unsure", Label: "I'm not sure"},
	}
)

func Assessment() *flow.Definition {
	return flow.NewDefinition(schema.FlowAssessment, "Smile Assessment", schema.MustFor(schema.FlowAssessment),
		choice(AssessmentPatientAge, "Patient Age", "patientAge", assessmentAgeOptions, AssessmentCategory),
		&flow.Step{
			ID:       AssessmentCategory,
			Kind:     flow.KindSingleChoice,
			Prompt:   "What is your primary goal?",
			Field:    "concernCategory",
			Options:  assessmentCategoryOptions,
			Internal: true,
			Next:     flow.Goto(AssessmentSpecificConcern),
		},
		&flow.Step{
			ID:     AssessmentSpecificConcern,
			Kind:   flow.KindSingleChoice,
			Prompt: "Which specific concern applies to you?",
			Field:  "concern",
			OptionsFor: func(answers flow.Answers) []flow.Option {
				return assessmentConcernOptions[answers.String("concernCategory")]
			},
			// a concern picked under one category is meaningless under another
			ClearOnBack: []string{"concern"},
			Next:        flow.Goto(AssessmentStatus),
		},
		choice(AssessmentStatus, "Which option best describes your status?", "status", assessmentStatusOptions, AssessmentTreatment),
		choice(AssessmentTreatment, "Which treatment are you interested in?", "treatment", assessmentTreatmentOptions, AssessmentLocation),
		choice(AssessmentLocation, "Which location are you interested in visiting?", "location", assessmentLocationOptions, AssessmentTimeline),
		choice(AssessmentTimeline, "How soon would you like to get your dream smile?", "timeline", assessmentTimelineOptions, AssessmentInsurance),
		choice(AssessmentInsurance, "Do you have dental insurance?", "insurance", assessmentInsuranceOptions, AssessmentIdentity),
		&flow.Step{
			ID:     AssessmentIdentity,
			Kind:   flow.KindCompositeForm,
			Prompt: "Let's get to know you",
			Inputs: []flow.Input{
				{Field: "firstName", Label: "First Name", Type: flow.InputText},
				{Field: "lastName", Label: "Last Name", Type: flow.InputText},
				{Field: "dateOfBirth", Label: "Date of Birth", Type: flow.InputDate},
			},
			Next: flow.Goto(AssessmentReach),
		},
		&flow.Step{
			ID:     AssessmentReach,
			Kind:   flow.KindCompositeForm,
			Prompt: "How can we reach you?",
			Inputs: []flow.Input{
				{Field: "phone", Label: "Phone", Type: flow.InputPhone, Placeholder: "(555) 123-4567"},
				{Field: "email", Label: "Email", Type: flow.InputEmail},
			},
			Next: flow.Goto(AssessmentSummary),
		},
		&flow.Step{
			ID:     AssessmentSummary,
			Kind:   flow.KindSummary,
			Prompt: "Please confirm your details",
			Shows: []string{
				"patientAge", "concern", "status", "treatment", "location", "timeline", "insurance",
				"firstName", "lastName", "dateOfBirth", "phone", "email",
			},
			Inputs: []flow.Input{
				{Field: "privacyConsent", Label: "I have read and agree to the Privacy Policy", Type: flow.InputCheckbox},
				{Field: "marketingConsent", Label: "I agree to receive information by email or SMS", Type: flow.InputCheckbox},
			},
			Next: flow.Finish,
		},
	)
}

func choice(id flow.StepID, prompt, field string, options []flow.Option, next flow.StepID) *flow.Step {
	return &flow.Step{
		ID:      id,
		Kind:    flow.KindSingleChoice,
		Prompt:  prompt,
		Field:   field,
		Options: options,
		Next:    flow.Goto(next),
	}
}
