package learningplan_handler

import (
	"github.com/go-chi/chi/v5"

	learningplan_service "skillshare-backend/internal/service/learningplan"
)

// RegisterRoutes mounts the learning plan endpoints under /learningplans.
// These routes are public.
func RegisterRoutes(r chi.Router, planService learningplan_service.Service) {
	createPlan := NewCreatePlanHandler(planService)
	listPlans := NewListPlansHandler(planService)
	getPlan := NewGetPlanHandler(planService)

	r.Route("/learningplans", func(r chi.Router) {
		r.Post("/", createPlan.Handle)
		r.Get("/", listPlans.Handle)
		r.Get("/{id}", getPlan.Handle)
	})
}
