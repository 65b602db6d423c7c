package post_handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/delivery/http/middleware"
)

type PostDeleter interface {
	Delete(ctx context.Context, callerEmail, id string) (bool, error)
}

type DeletePostHandler struct {
	postService PostDeleter
	validate    *validator.Validate
}

func NewDeletePostHandler(postService PostDeleter, validate *validator.Validate) *DeletePostHandler {
	return &DeletePostHandler{
		postService: postService,
		validate:    validate,
	}
}

type deletePostRequestInternal struct {
	ID string `validate:"required"`
}

// Handle serves DELETE /api/posts/{id}. Both "no such post" and "not the
// owner" collapse into 404, the response does not reveal which it was.
func (h *DeletePostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	callerEmail := middleware.CallerEmail(r)
	if callerEmail == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "authentication required")
		return
	}

	validationReq := &deletePostRequestInternal{ID: chi.URLParam(r, "id")}
	if err := h.validate.Struct(validationReq); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "post id is required")
		return
	}

	deleted, err := h.postService.Delete(r.Context(), callerEmail, validationReq.ID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrForbidden) {
			writeError(w, http.StatusNotFound, "NotFound", "post not found")
			return
		}
		handleServiceError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "NotFound", "post not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
