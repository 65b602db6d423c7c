package learningplan_handler

import (
	"context"
	"encoding/json"
	"net/http"

	"skillshare-backend/internal/model"
)

type PlanCreator interface {
	Create(ctx context.Context, plan *model.LearningPlan) (*model.LearningPlan, error)
}

type CreatePlanHandler struct {
	planService PlanCreator
}

func NewCreatePlanHandler(planService PlanCreator) *CreatePlanHandler {
	return &CreatePlanHandler{planService: planService}
}

// Handle serves POST /api/learningplans.
func (h *CreatePlanHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var plan model.LearningPlan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}
	plan.ID = ""

	created, err := h.planService.Create(r.Context(), &plan)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
