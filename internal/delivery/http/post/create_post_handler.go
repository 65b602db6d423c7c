package post_handler

import (
	"context"
	"encoding/json"
	"net/http"

	"skillshare-backend/internal/delivery/http/middleware"
	"skillshare-backend/internal/model"
)

type PostCreator interface {
	Create(ctx context.Context, dto *model.PostDTO) (*model.Post, error)
}

type CreatePostHandler struct {
	postService PostCreator
}

func NewCreatePostHandler(postService PostCreator) *CreatePostHandler {
	return &CreatePostHandler{postService: postService}
}

// Handle serves POST /api/posts. A client-supplied userEmail is never
// trusted, the field is always overwritten with the authenticated caller.
func (h *CreatePostHandler) Handle(w http.ResponseWriter, r *http.Request) {
	callerEmail := middleware.CallerEmail(r)
	if callerEmail == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "authentication required")
		return
	}

	var dto model.PostDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "invalid request body")
		return
	}
	dto.UserEmail = callerEmail

	created, err := h.postService.Create(r.Context(), &dto)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
