package learningplan_handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skillshare-backend/internal/model"
)

type PlanGetter interface {
	GetByID(ctx context.Context, id string) (*model.LearningPlan, error)
}

type GetPlanHandler struct {
	planService PlanGetter
}

func NewGetPlanHandler(planService PlanGetter) *GetPlanHandler {
	return &GetPlanHandler{planService: planService}
}

// Handle serves GET /api/learningplans/{id}.
func (h *GetPlanHandler) Handle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "plan id is required")
		return
	}

	plan, err := h.planService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
