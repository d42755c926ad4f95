package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Submission messages
	ContactSubmittedSuccessMessage     = "Email sent successfully"
	AssessmentSubmittedSuccessMessage  = "Assessment submitted successfully"
	ReferralSubmittedSuccessMessage    = "Referral submitted successfully"
	VirtualCareSubmittedSuccessMessage = "Virtual care request submitted successfully"

	// Flow definition messages
	GetFlowDefinitionSuccessMessage  = "get flow definition successfully"
	GetFlowDefinitionsSuccessMessage = "get flow definitions successfully"

	// Health
	HealthStatusFormat = "%s API is running"
)
