package flows

import (
	"intake-service/internal/pkg/flow"
	"intake-service/internal/pkg/schema"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	defs := All()
	require.Len(t, defs, 4)
	for i, flowType := range schema.FlowTypes() {
		assert.Equal(t, flowType, defs[i].Type)

		def, ok := Get(flowType)
		require.True(t, ok)
		assert.NoError(t, def.Validate())
	}

	_, ok := Get("newsletter")
	assert.False(t, ok)
}

func TestContact_BillingSkipsSlotPicker(t *testing.T) {
	engine := flow.NewEngine(Contact())

	require.True(t, engine.SetAnswer("location", "sonoma"))
	require.Equal(t, flow.Moved, engine.Advance())
	require.True(t, engine.SetAnswer("topic", "billing"))
	require.Equal(t, flow.Moved, engine.Advance())

	assert.Equal(t, ContactInquiry, engine.CurrentID())
	for _, id := range engine.History() {
		assert.NotEqual(t, ContactAppointmentDay, id)
		assert.NotEqual(t, ContactAppointmentTime, id)
	}

	engine.SetAnswer("email", "jane@example.com")
	engine.SetAnswer("message", "")
	assert.False(t, engine.CanAdvance())
	assert.Equal(t, flow.Blocked, engine.Advance())

	engine.SetAnswer("message", "Can I pay my invoice online?")
	assert.Equal(t, flow.Moved, engine.Advance())
	assert.Equal(t, ContactInquirySummary, engine.CurrentID())
	assert.Equal(t, flow.Completed, engine.Advance())
}

func TestContact_AppointmentBranch(t *testing.T) {
	engine := flow.NewEngine(Contact())

	engine.SetAnswer("location", "both")
	engine.Advance()
	engine.SetAnswer("topic", TopicAppointments)
	require.Equal(t, flow.Moved, engine.Advance())
	assert.Equal(t, ContactAppointmentDay, engine.CurrentID())

	engine.SetAnswer("preferredDay", "tuesday")
	engine.Advance()
	engine.SetAnswer("preferredTime", "14:00")
	engine.Advance()
	require.Equal(t, ContactAppointmentDetails, engine.CurrentID())

	t.Run("names are required to book", func(t *testing.T) {
		engine.SetAnswer("email", "jane@example.com")
		assert.False(t, engine.CanAdvance())
	})

	engine.SetAnswer("firstName", "Jane")
	engine.SetAnswer("lastName", "Doe")
	assert.True(t, engine.CanAdvance(), "phone is optional")
}

func TestAssessment_CategoryDrivesConcerns(t *testing.T) {
	engine := flow.NewEngine(Assessment())

	engine.SetAnswer("patientAge", "adult")
	engine.Advance()
	engine.SetAnswer("concernCategory", "health")
	require.Equal(t, flow.Moved, engine.Advance())

	options := engine.VisibleOptions()
	require.Len(t, options, 4)
	assert.Equal(t, "I have jaw pain / clicking", options[0].Label)

	t.Run("a concern from another category is rejected", func(t *testing.T) {
		engine.SetAnswer("concern", "wedding")
		assert.False(t, engine.CanAdvance())
	})

	engine.SetAnswer("concern", "jaw-pain")
	require.True(t, engine.CanAdvance())

	require.True(t, engine.Back())
	assert.Equal(t, AssessmentCategory, engine.CurrentID())
	assert.False(t, engine.Answers().Has("concern"), "sub-choice cleared when its category screen is revisited")
	assert.Equal(t, "health", engine.Answers().String("concernCategory"))
}

func TestAssessment_SummaryNeedsPrivacyConsent(t *testing.T) {
	def := Assessment()
	answers := flow.Answers{
		"firstName": "Jane", "lastName": "Doe", "dateOfBirth": "1990-04-01",
		"phone": "(555) 123-4567", "email": "jane@example.com",
	}

	assert.False(t, def.IsValid(AssessmentSummary, answers))
	answers["privacyConsent"] = false
	assert.False(t, def.IsValid(AssessmentSummary, answers))
	answers["privacyConsent"] = true
	assert.True(t, def.IsValid(AssessmentSummary, answers))
}

func TestReferral_ValuePropositionAlwaysPasses(t *testing.T) {
	engine := flow.NewEngine(Referral())
	assert.Equal(t, ReferralValueProposition, engine.CurrentID())
	assert.Equal(t, flow.Moved, engine.Advance())
	assert.Equal(t, ReferralPatient, engine.CurrentID())
}

func TestVirtualCare_Branches(t *testing.T) {
	addressFields := []string{"address", "address2", "city", "state", "zip", "insurance"}

	routes, err := VirtualCare().Routes()
	require.NoError(t, err)
	require.Len(t, routes, 2)

	for _, route := range routes {
		def := VirtualCare()
		fields := map[string]bool{}
		for _, id := range route {
			step, _ := def.Step(id)
			for _, field := range step.Fields() {
				fields[field] = true
			}
		}

		switch route[2] {
		case VirtualCareExistingContact:
			assert.Len(t, route, 4, "overview, patient type, then two steps")
			for _, field := range addressFields {
				assert.False(t, fields[field], "existing patients never see %s", field)
			}
		case VirtualCareNewName:
			for _, field := range addressFields {
				assert.True(t, fields[field], "new patients always see %s", field)
			}
		default:
			t.Fatalf("unexpected route %v", route)
		}
	}
}

func TestVirtualCare_ExistingPath(t *testing.T) {
	engine := flow.NewEngine(VirtualCare())
	engine.Advance()
	engine.SetAnswer("patientType", PatientTypeExisting)
	require.Equal(t, flow.Moved, engine.Advance())
	require.Equal(t, VirtualCareExistingContact, engine.CurrentID())

	engine.SetAnswer("firstName", "Sam")
	engine.SetAnswer("lastName", "Lee")
	engine.SetAnswer("phone", "555-123-4567")
	require.Equal(t, flow.Moved, engine.Advance(), "email is not asked of existing patients")

	engine.SetAnswer("message", "My aligner cracked")
	assert.Equal(t, flow.Completed, engine.Advance())
}
