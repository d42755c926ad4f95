package payload

import (
	"errors"
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/flows"
	"intake-service/internal/pkg/schema"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = map[string]any{
	"firstName":        "Jane",
	"lastName":         "Doe",
	"email":            "jane@example.com",
	"phone":            "5551234567",
	"message":          "Looking forward to hearing from you",
	"dateOfBirth":      "1990-04-01",
	"patientFirstName": "Alex",
	"patientLastName":  "Kim",
	"patientEmail":     "alex@example.com",
	"patientPhone":     "555 987 6543",
	"doctorFirstName":  "Maria",
	"doctorLastName":   "Lopez",
	"comments":         "Class II malocclusion",
	"age":              "34",
	"address":          "1 Main St",
	"address2":         "Apt 2",
	"city":             "San Francisco",
	"zip":              "94110",
	"concerns":         "Crowding on the lower teeth",
	"privacyConsent":   true,
	"marketingConsent": false,
}

// drive walks route through an engine, answering each step with sample data
// and picking the option that stays on the route.
func drive(t *testing.T, def *flow.Definition, route []flow.StepID) *flow.Engine {
	t.Helper()
	engine := flow.NewEngine(def)

	for i, id := range route {
		require.Equal(t, id, engine.CurrentID())
		step := engine.Current()

		if step.Kind == flow.KindSingleChoice {
			options := engine.VisibleOptions()
			require.NotEmpty(t, options)
			choice := options[0].ID
			if i+1 < len(route) {
				for _, option := range options {
					candidate := engine.Answers()
					candidate[step.Field] = option.ID
					if step.Next(candidate) == route[i+1] {
						choice = option.ID
						break
					}
				}
			}
			require.True(t, engine.SetAnswer(step.Field, choice))
		} else {
			for _, field := range step.Fields() {
				if input, ok := step.Input(field); ok && len(input.Options) > 0 {
					require.True(t, engine.SetAnswer(field, input.Options[0].ID))
					continue
				}
				value, ok := samples[field]
				require.True(t, ok, "no sample for %s", field)
				require.True(t, engine.SetAnswer(field, value))
			}
		}

		require.True(t, engine.CanAdvance(), "step %s: %v", id, engine.Error())
		engine.Advance()
	}
	require.True(t, engine.Complete())
	return engine
}

func TestAssemble_EveryRouteSatisfiesTheSchema(t *testing.T) {
	for _, def := range flows.All() {
		routes, err := def.Routes()
		require.NoError(t, err)

		for _, route := range routes {
			t.Run(string(def.Type)+"/"+string(route[len(route)-1]), func(t *testing.T) {
				engine := drive(t, def, route)

				body, err := Assemble(def.Type, engine.Answers())
				require.NoError(t, err)
				assert.NoError(t, def.Schema.Validate(body))
				assert.Equal(t, def.Type.FormType(), body.String(FieldFormType))
			})
		}
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	def, _ := flows.Get(schema.FlowAssessment)
	routes, err := def.Routes()
	require.NoError(t, err)
	answers := drive(t, def, routes[0]).Answers()

	first, err := Assemble(schema.FlowAssessment, answers)
	require.NoError(t, err)
	second, err := Assemble(schema.FlowAssessment, answers)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssemble_Contact(t *testing.T) {
	t.Run("appointment branch composes the message", func(t *testing.T) {
		body, err := Assemble(schema.FlowContact, flow.Answers{
			"location":      "both",
			"topic":         flows.TopicAppointments,
			"preferredDay":  "tuesday",
			"preferredTime": "14:00",
			"firstName":     "Jane",
			"lastName":      "Doe",
			"email":         "jane@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "both", body.String("location"))
		assert.Equal(t, "Appointments", body.String("topic"))
		assert.Equal(t, "Appointment request: Tuesday at 2:00 PM", body.String("message"))
		assert.Equal(t, "contact", body.String(FieldFormType))
	})

	t.Run("abandoned branch answers are not sent", func(t *testing.T) {
		body, err := Assemble(schema.FlowContact, flow.Answers{
			"location":     "sonoma",
			"topic":        "billing",
			"preferredDay": "monday",
			"email":        "jane@example.com",
			"message":      "Invoice question",
		})
		require.NoError(t, err)
		assert.NotContains(t, body, "preferredDay")
		assert.Equal(t, "Invoice question", body.String("message"))
	})
}

func TestAssemble_AssessmentDropsCategory(t *testing.T) {
	body, err := Assemble(schema.FlowAssessment, flow.Answers{
		"patientAge":      "teen",
		"concernCategory": "event",
		"concern":         "wedding",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "concernCategory")
	assert.Equal(t, "Teenager", body.String("patientAge"))
	assert.Equal(t, "Wedding coming up", body.String("concern"))
}

func TestAssemble_VirtualCareCodes(t *testing.T) {
	body, err := Assemble(schema.FlowVirtualCare, flow.Answers{
		"patientType": "existing",
		"firstName":   "Sam",
		"lastName":    "Lee",
		"phone":       "555.123.4567",
		"message":     "Aligner cracked",
	})
	require.NoError(t, err)
	assert.Equal(t, "existing", body.String("patientType"))
	assert.Equal(t, "(555) 123-4567", body.String("phone"))
	assert.NotContains(t, body, "address")
}

func TestAssemble_Errors(t *testing.T) {
	_, err := Assemble("newsletter", flow.Answers{})
	assert.True(t, errors.Is(err, ErrUnknownFlow))

	// plain inputs with options are not gated by the step, only by the assembler
	def := flow.NewDefinition(schema.FlowReferral, "Broken", schema.MustFor(schema.FlowReferral),
		&flow.Step{
			ID:     "clinical",
			Kind:   flow.KindTerminal,
			Inputs: []flow.Input{{Field: "xRays", Type: flow.InputText, Options: []flow.Option{{ID: "emailed", Label: "Emailed"}}}},
			Next:   flow.Finish,
		},
	)
	_, err = AssembleFrom(def, flow.Answers{"xRays": "faxed"})
	assert.True(t, errors.Is(err, ErrUnknownOption))
}

func TestSummary(t *testing.T) {
	def, _ := flows.Get(schema.FlowContact)
	step, _ := def.Step(flows.ContactInquirySummary)

	lines, err := Summary(def, flow.Answers{
		"location": "both",
		"topic":    "other",
		"email":    "jane@example.com",
		"message":  "Hello",
	}, step)
	require.NoError(t, err)
	require.Len(t, lines, 4)
	assert.Equal(t, Line{Field: "location", Label: "Location", Value: "Doesn't matter"}, lines[0])
	assert.Equal(t, "Other", lines[1].Value)
}
