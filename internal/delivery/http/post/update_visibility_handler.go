package post_handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"skillshare-backend/internal/delivery/http/middleware"
	"skillshare-backend/internal/model"
)

type PostVisibilityUpdater interface {
	UpdateVisibility(ctx context.Context, callerEmail, id string, isPublic bool) (*model.Post, error)
}

type UpdateVisibilityHandler struct {
	postService PostVisibilityUpdater
	validate    *validator.Validate
}

func NewUpdateVisibilityHandler(postService PostVisibilityUpdater, validate *validator.Validate) *UpdateVisibilityHandler {
	return &UpdateVisibilityHandler{
		postService: postService,
		validate:    validate,
	}
}

type updateVisibilityRequestInternal struct {
	ID       string `validate:"required"`
	IsPublic *bool  `validate:"required"`
}

// Handle serves PUT /api/posts/{id}/visibility with body {"isPublic": bool}.
func (h *UpdateVisibilityHandler) Handle(w http.ResponseWriter, r *http.Request) {
	callerEmail := middleware.CallerEmail(r)
	if callerEmail == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "authentication required")
		return
	}

	var body struct {
		IsPublic *bool `json:"isPublic"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}

	validationReq := &updateVisibilityRequestInternal{
		ID:       chi.URLParam(r, "id"),
		IsPublic: body.IsPublic,
	}
	if err := h.validate.Struct(validationReq); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "isPublic is required")
		return
	}

	updated, err := h.postService.UpdateVisibility(r.Context(), callerEmail, validationReq.ID, *body.IsPublic)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
