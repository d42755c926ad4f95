package routers

import (
	"intake-service/internal/app/delivery/http/controllers"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/pkg/schema"

	"github.com/go-chi/chi/v5"
)

func attachSubmissionRoutes(router chi.Router, middlewares *middlewares.Middlewares, submissionController *controllers.SubmissionController) {
	for _, flowType := range schema.FlowTypes() {
		route := "/" + flowType.String()
		router.With(middlewares.SubmissionRateLimit).Post(route, submissionController.Submit(flowType))
		router.Get(route, submissionController.Health(flowType))
	}
}
