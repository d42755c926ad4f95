package controllers

import (
	"context"
	"errors"
	"fmt"
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/schema"
	"intake-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubmissionController struct {
	Log               *zap.Logger
	SubmissionUsecase contracts.SubmissionUsecase
	InternalConfig    *config.InternalConfig
}

func NewSubmissionController(logger *zap.Logger, submissionUsecase contracts.SubmissionUsecase, internalConfig *config.InternalConfig) *SubmissionController {
	return &SubmissionController{
		Log:               logger,
		SubmissionUsecase: submissionUsecase,
		InternalConfig:    internalConfig,
	}
}

// Submit handles the POST of one flow.
func (ctrl *SubmissionController) Submit(flowType schema.FlowType) http.HandlerFunc {
	method := fmt.Sprintf("SubmissionController.Submit[%s]", flowType)

	return func(w http.ResponseWriter, r *http.Request) {
		requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		if !ok || requestID == "" {
			ctrl.Log.Error(method + " requestID not found in context")
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
			return
		}
		ctrl.Log.Info(method+" called",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)

		form, err := newForm(flowType)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownFlow(err, flowType.String()))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, constvars.RequestBodyLimitInBytes)
		if err := json.NewDecoder(r.Body).Decode(form); err != nil {
			ctrl.Log.Warn(method+" error decoding JSON",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRequestBodyTooLarge(err, maxBytesErr.Limit))
				return
			}
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		sanitize(form)

		ctx, cancel := context.WithTimeout(r.Context(), ctrl.requestTimeout())
		defer cancel()

		message, err := ctrl.SubmissionUsecase.Submit(ctx, flowType, form)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.LogSubmissionEvent(ctrl.Log, "dispatched", requestID,
			zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
		)
		utils.BuildSubmissionResponse(w, message)
	}
}

// Health answers GET on a submission route.
func (ctrl *SubmissionController) Health(flowType schema.FlowType) http.HandlerFunc {
	status := fmt.Sprintf(constvars.HealthStatusFormat, flowType.Title())
	return func(w http.ResponseWriter, r *http.Request) {
		utils.BuildPlainResponse(w, constvars.StatusOK, responses.Health{Status: status})
	}
}

func (ctrl *SubmissionController) requestTimeout() time.Duration {
	seconds := 10
	if ctrl.InternalConfig != nil && ctrl.InternalConfig.App.RequestTimeoutSeconds > 0 {
		seconds = ctrl.InternalConfig.App.RequestTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

func newForm(flowType schema.FlowType) (requests.Values, error) {
	switch flowType {
	case schema.FlowContact:
		return new(requests.ContactForm), nil
	case schema.FlowAssessment:
		return new(requests.AssessmentForm), nil
	case schema.FlowReferral:
		return new(requests.ReferralForm), nil
	case schema.FlowVirtualCare:
		return new(requests.VirtualCareForm), nil
	}
	return nil, fmt.Errorf("no request form for %q", flowType)
}

func sanitize(form requests.Values) {
	switch f := form.(type) {
	case *requests.ContactForm:
		utils.SanitizeContactForm(f)
	case *requests.AssessmentForm:
		utils.SanitizeAssessmentForm(f)
	case *requests.ReferralForm:
		utils.SanitizeReferralForm(f)
	case *requests.VirtualCareForm:
		utils.SanitizeVirtualCareForm(f)
	}
}
