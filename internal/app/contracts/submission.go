package contracts

import (
	"context"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/schema"
)

type SubmissionUsecase interface {
	// Submit validates values against the flow schema, composes the office
	// notification and hands it to the message sender. It returns the
	// success message for the client.
	Submit(ctx context.Context, flowType schema.FlowType, form requests.Values) (string, error)
}

// SubmissionMetrics records intake outcomes.
type SubmissionMetrics interface {
	ObserveSubmission(flowType schema.FlowType, outcome string)
	ObserveRateLimited(flowType string)
	ObserveDispatch(transport string, seconds float64)
}
