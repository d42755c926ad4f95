package submissions

import (
	"context"
	"errors"
	"intake-service/internal/app/services/shared/metrics"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/schema"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSender struct {
	sent []*requests.Notification
	err  error
}

func (s *recordingSender) Name() string { return "recording" }

func (s *recordingSender) Send(ctx context.Context, notification *requests.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, notification)
	return nil
}

type recordingArchive struct {
	stored int
	err    error
}

func (a *recordingArchive) Store(ctx context.Context, notification *requests.Notification) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.stored++
	return "contact/" + notification.ID + ".json", nil
}

func validContact() *requests.ContactForm {
	return &requests.ContactForm{
		Email:   "jane@example.com",
		Message: "Do you see adults?",
	}
}

func TestSubmit_Success(t *testing.T) {
	sender := &recordingSender{}
	archive := &recordingArchive{}
	collector := metrics.NewCollector()
	uc := NewSubmissionUsecase(testComposer(), sender, archive, collector, zap.NewNop())

	message, err := uc.Submit(context.Background(), schema.FlowContact, validContact())
	require.NoError(t, err)
	assert.Equal(t, "Email sent successfully", message)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, 1, archive.stored)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Submissions.WithLabelValues("contact", metrics.OutcomeSuccess)))
}

func TestSubmit_SuccessMessages(t *testing.T) {
	uc := NewSubmissionUsecase(testComposer(), &recordingSender{}, nil, metrics.NewCollector(), zap.NewNop())

	message, err := uc.Submit(context.Background(), schema.FlowReferral, &requests.ReferralForm{
		PatientFirstName:  "Alex",
		PatientLastName:   "Kim",
		PatientEmail:      "alex@example.com",
		PatientPhone:      "555-987-6543",
		PreferredLocation: "Sonoma",
		DoctorFirstName:   "Maria",
		DoctorLastName:    "Lopez",
		ReferralReason:    "Comprehensive evaluation",
	})
	require.NoError(t, err)
	assert.Equal(t, "Referral submitted successfully", message)

	message, err = uc.Submit(context.Background(), schema.FlowVirtualCare, &requests.VirtualCareForm{
		PatientType: "existing",
		FirstName:   "Sam",
		LastName:    "Lee",
		Phone:       "555-123-4567",
		Message:     "Aligner cracked",
	})
	require.NoError(t, err)
	assert.Equal(t, "Virtual care request submitted successfully", message)
}

func TestSubmit_ValidationFailure(t *testing.T) {
	sender := &recordingSender{}
	collector := metrics.NewCollector()
	uc := NewSubmissionUsecase(testComposer(), sender, nil, collector, zap.NewNop())

	form := validContact()
	form.Email = "not-an-email"
	_, err := uc.Submit(context.Background(), schema.FlowContact, form)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 400, customErr.StatusCode)
	assert.Equal(t, "Email must be a valid email", customErr.ClientMessage)
	assert.Equal(t, "email", customErr.Details)
	assert.Empty(t, sender.sent)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Submissions.WithLabelValues("contact", metrics.OutcomeInvalid)))
}

func TestSubmit_ValidationFailureLogsMissingFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	uc := NewSubmissionUsecase(testComposer(), &recordingSender{}, nil, metrics.NewCollector(), zap.New(core))

	form := validContact()
	form.Message = ""
	_, err := uc.Submit(context.Background(), schema.FlowContact, form)
	require.Error(t, err)

	entries := logs.FilterMessage("submissionUsecase.Submit rejected invalid submission").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{"message"}, entries[0].ContextMap()["missing_fields"])
}

func TestSubmit_DispatchFailureIsGeneric(t *testing.T) {
	sender := &recordingSender{err: errors.New("dial tcp 10.0.0.5:587: connection refused")}
	uc := NewSubmissionUsecase(testComposer(), sender, nil, metrics.NewCollector(), zap.NewNop())

	_, err := uc.Submit(context.Background(), schema.FlowContact, validContact())

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 500, customErr.StatusCode)
	assert.NotContains(t, customErr.ClientMessage, "10.0.0.5")
	assert.Empty(t, customErr.Details)
	assert.Contains(t, customErr.DevMessage, "connection refused")
}

func TestSubmit_ArchiveFailureDoesNotFailSubmission(t *testing.T) {
	collector := metrics.NewCollector()
	uc := NewSubmissionUsecase(testComposer(), &recordingSender{}, &recordingArchive{err: errors.New("bucket missing")}, collector, zap.NewNop())

	_, err := uc.Submit(context.Background(), schema.FlowContact, validContact())
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.Submissions.WithLabelValues("contact", metrics.OutcomeArchived)))
}

func TestSubmit_UnknownFlow(t *testing.T) {
	uc := NewSubmissionUsecase(testComposer(), &recordingSender{}, nil, metrics.NewCollector(), zap.NewNop())

	_, err := uc.Submit(context.Background(), "newsletter", validContact())
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, 404, customErr.StatusCode)
}
