package flows

import (
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/schema"
)

const (
	ReferralValueProposition flow.StepID = "value-proposition"
	ReferralPatient          flow.StepID = "patient-info"
	ReferralDoctor           flow.StepID = "doctor-info"
	ReferralClinical         flow.StepID = "clinical-info"
)

var (
	referralLocationOptions = []flow.Option{
		{ID: "san-francisco", Label: "San Francisco"},
		{ID: "sonoma", Label: "Sonoma"},
	}
	referralReasonOptions = []flow.Option{
		{ID: "evaluation", Label: "Complete Orthodontic Evaluation"},
		{ID: "interceptive", Label: "Early Interceptive Treatment"},
		{ID: "limited", Label: "Limited Treatment of a Specific Area"},
		{ID: "tmj", Label: "TMJ"},
		{ID: "other", Label: "Other"},
	}
	referralXRayOptions = []flow.Option{
		{ID: "take-new", Label: "Unavailable, please take new x-rays"},
		{ID: "accompanying", Label: "Accompanying patient"},
		{ID: "mailed", Label: "Mailed to your office"},
		{ID: "emailed", Label: "Emailed"},
		{ID: "other", Label: "Other"},
	}
)

func Referral() *flow.Definition {
	return flow.NewDefinition(schema.FlowReferral, "Doctor Referral", schema.MustFor(schema.FlowReferral),
		&flow.Step{
			ID:     ReferralValueProposition,
			Kind:   flow.KindInfo,
			Prompt: "Why Colleagues Choose to Refer Here",
			Next:   flow.Goto(ReferralPatient),
		},
		&flow.Step{
			ID:     ReferralPatient,
			Kind:   flow.KindCompositeForm,
			Prompt: "Patient Information",
			Inputs: []flow.Input{
				{Field: "patientFirstName", Label: "First Name", Type: flow.InputText},
				{Field: "patientLastName", Label: "Last Name", Type: flow.InputText},
				{Field: "patientEmail", Label: "Email", Type: flow.InputEmail},
				{Field: "patientPhone", Label: "Phone", Type: flow.InputPhone, Placeholder: "(555) 123-4567"},
				{Field: "preferredLocation", Label: "Preferred Location", Type: flow.InputSelect, Options: referralLocationOptions},
			},
			Next: flow.Goto(ReferralDoctor),
		},
		&flow.Step{
			ID:     ReferralDoctor,
			Kind:   flow.KindCompositeForm,
			Prompt: "My Information",
			Inputs: []flow.Input{
				{Field: "doctorFirstName", Label: "First Name", Type: flow.InputText},
				{Field: "doctorLastName", Label: "Last Name", Type: flow.InputText},
			},
			Next: flow.Goto(ReferralClinical),
		},
		&flow.Step{
			ID:     ReferralClinical,
			Kind:   flow.KindTerminal,
			Prompt: "Clinical Details",
			Inputs: []flow.Input{
				{Field: "referralReason", Label: "Reason for Referral", Type: flow.InputSelect, Options: referralReasonOptions},
				{Field: "xRays", Label: "X-Rays", Type: flow.InputSelect, Options: referralXRayOptions},
				{Field: "comments", Label: "Comments", Type: flow.InputTextArea},
			},
			Next: flow.Finish,
		},
	)
}
