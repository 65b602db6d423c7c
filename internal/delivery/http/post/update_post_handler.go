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

type PostUpdater interface {
	Update(ctx context.Context, callerEmail, id string, dto *model.PostDTO) (*model.Post, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

type updatePostRequestInternal struct {
	ID string `validate:"required"`
}

// Handle serves PUT /api/posts/{id}. The DTO's userEmail is overwritten with
// the caller regardless of body content; the service never changes the stored
// owner either.
func (h *UpdatePostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	callerEmail := middleware.CallerEmail(r)
	if callerEmail == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "authentication required")
		return
	}

	validationReq := &updatePostRequestInternal{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(validationReq); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "post id is required")
		return
	}

	var dto model.PostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}
	dto.UserEmail = callerEmail

	updated, err := h.postService.Update(r.Context(), callerEmail, validationReq.ID, &dto)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
