package controllers

import (
	"intake-service/internal/app/config"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
	"intake-service/internal/pkg/flows"
	"intake-service/internal/pkg/schema"
	"intake-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FlowController exposes the questionnaire definitions read-only.
type FlowController struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}

func NewFlowController(logger *zap.Logger, internalConfig *config.InternalConfig) *FlowController {
	return &FlowController{Log: logger, InternalConfig: internalConfig}
}

func (ctrl *FlowController) ListFlows(w http.ResponseWriter, r *http.Request) {
	prefix := ""
	if ctrl.InternalConfig != nil {
		prefix = ctrl.InternalConfig.App.EndpointPrefix
	}

	summaries := make([]responses.FlowSummary, 0, len(schema.FlowTypes()))
	for _, def := range flows.All() {
		summaries = append(summaries, responses.FlowSummary{
			Type:     def.Type.String(),
			Title:    def.Title,
			Endpoint: prefix + "/" + def.Type.String(),
			Steps:    len(def.Steps),
		})
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFlowDefinitionsSuccessMessage, summaries)
}

func (ctrl *FlowController) GetFlow(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "flowType")
	flowType, ok := schema.ParseFlowType(raw)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownFlow(nil, raw))
		return
	}

	def, ok := flows.Get(flowType)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnknownFlow(nil, raw))
		return
	}

	response, err := utils.ConvertDefinitionToResponse(def)
	if err != nil {
		ctrl.Log.Error("FlowController.GetFlow error converting definition",
			zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerProcess(err))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetFlowDefinitionSuccessMessage, response)
}
