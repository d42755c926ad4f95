package routers

import (
	"intake-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachFlowRoutes(router chi.Router, flowController *controllers.FlowController) {
	router.Get("/", flowController.ListFlows)
	router.Get("/{flowType}", flowController.GetFlow)
}
