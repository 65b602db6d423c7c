package post_handler

import (
	"context"
	"net/http"

	"skillshare-backend/internal/delivery/http/middleware"
	"skillshare-backend/internal/model"
)

type PostOwnerLister interface {
	ListByOwner(ctx context.Context, userEmail string) ([]*model.PostDTO, error)
}

type ListUserPostsHandler struct {
	postService PostOwnerLister
}

func NewListUserPostsHandler(postService PostOwnerLister) *ListUserPostsHandler {
	return &ListUserPostsHandler{postService: postService}
}

// Handle serves GET /api/posts/byLoggedInUser.
func (h *ListUserPostsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	callerEmail := middleware.CallerEmail(r)
	if callerEmail == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "authentication required")
		return
	}

	dtos, err := h.postService.ListByOwner(r.Context(), callerEmail)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos)
}
