package learningplan_handler

import (
	"context"
	"net/http"

	"skillshare-backend/internal/model"
)

type PlanLister interface {
	List(ctx context.Context) ([]*model.LearningPlan, error)
}

type ListPlansHandler struct {
	planService PlanLister
}

func NewListPlansHandler(planService PlanLister) *ListPlansHandler {
	return &ListPlansHandler{planService: planService}
}

// Handle serves GET /api/learningplans.
func (h *ListPlansHandler) Handle(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if plans == nil {
		plans = []*model.LearningPlan{}
	}
	writeJSON(w, http.StatusOK, plans)
}
