package controllers

import (
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/utils"
	"net/http"
)

type HealthController struct {
	MetricsHandler http.Handler
}

func NewHealthController(metricsHandler http.Handler) *HealthController {
	return &HealthController{MetricsHandler: metricsHandler}
}

func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildPlainResponse(w, constvars.StatusOK, responses.Health{Status: "ok"})
}

func (ctrl *HealthController) Metrics() http.Handler {
	if ctrl.MetricsHandler == nil {
		return http.NotFoundHandler()
	}
	return ctrl.MetricsHandler
}
