package submissions

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/shared/metrics"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/schema"
	"time"

	"go.uber.org/zap"
)

var successMessages = map[schema.FlowType]string{
	schema.FlowContact:     constvars.ContactSubmittedSuccessMessage,
	schema.FlowAssessment:  constvars.AssessmentSubmittedSuccessMessage,
	schema.FlowReferral:    constvars.ReferralSubmittedSuccessMessage,
	schema.FlowVirtualCare: constvars.VirtualCareSubmittedSuccessMessage,
}

type submissionUsecase struct {
	Composer      *Composer
	MessageSender contracts.MessageSender
	// Archive is nil when archiving is disabled.
	Archive contracts.Archive
	Metrics contracts.SubmissionMetrics
	Log     *zap.Logger
}

func NewSubmissionUsecase(
	composer *Composer,
	messageSender contracts.MessageSender,
	archive contracts.Archive,
	submissionMetrics contracts.SubmissionMetrics,
	logger *zap.Logger,
) contracts.SubmissionUsecase {
	return &submissionUsecase{
		Composer:      composer,
		MessageSender: messageSender,
		Archive:       archive,
		Metrics:       submissionMetrics,
		Log:           logger,
	}
}

func (uc *submissionUsecase) Submit(ctx context.Context, flowType schema.FlowType, form requests.Values) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	set, err := schema.For(flowType)
	if err != nil {
		return "", exceptions.ErrUnknownFlow(err, flowType.String())
	}

	values := form.Values()
	if err := set.Validate(values); err != nil {
		uc.Metrics.ObserveSubmission(flowType, metrics.OutcomeInvalid)
		uc.Log.Info("submissionUsecase.Submit rejected invalid submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
			zap.Strings(constvars.LoggingMissingFieldsKey, set.Missing(values)),
			zap.Error(err),
		)
		return "", exceptions.ErrInputValidation(err)
	}

	notification, err := uc.Composer.Compose(flowType, form)
	if err != nil {
		uc.Metrics.ObserveSubmission(flowType, metrics.OutcomeFailed)
		return "", exceptions.ErrComposeNotification(err)
	}

	start := time.Now()
	err = uc.MessageSender.Send(ctx, notification)
	uc.Metrics.ObserveDispatch(uc.MessageSender.Name(), time.Since(start).Seconds())
	if err != nil {
		uc.Metrics.ObserveSubmission(flowType, metrics.OutcomeFailed)
		uc.Log.Error("submissionUsecase.Submit error dispatching notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
			zap.String(constvars.LoggingTransportKey, uc.MessageSender.Name()),
			zap.String(constvars.LoggingNotificationKey, notification.ID),
			zap.Error(err),
		)
		return "", exceptions.ErrDispatchNotification(err, uc.MessageSender.Name())
	}

	uc.archive(ctx, flowType, notification)

	uc.Metrics.ObserveSubmission(flowType, metrics.OutcomeSuccess)
	uc.Log.Info("submissionUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
		zap.String(constvars.LoggingNotificationKey, notification.ID),
		zap.Strings(constvars.LoggingRecipientsKey, notification.To),
	)
	return successMessages[flowType], nil
}

// archive never fails a submission that was already dispatched.
func (uc *submissionUsecase) archive(ctx context.Context, flowType schema.FlowType, notification *requests.Notification) {
	if uc.Archive == nil {
		return
	}
	objectName, err := uc.Archive.Store(ctx, notification)
	if err != nil {
		uc.Metrics.ObserveSubmission(flowType, metrics.OutcomeArchived)
		uc.Log.Warn("submissionUsecase.Submit error archiving notification",
			zap.String(constvars.LoggingNotificationKey, notification.ID),
			zap.Error(err),
		)
		return
	}
	uc.Log.Debug("submissionUsecase.Submit archived notification", zap.String(constvars.LoggingObjectKey, objectName))
}
