package post_handler

import (
	"context"
	"net/http"

	"skillshare-backend/internal/model"
)

type PublicPostLister interface {
	ListPublic(ctx context.Context) ([]*model.PostDTO, error)
}

type ListPublicPostsHandler struct {
	postService PublicPostLister
}

func NewListPublicPostsHandler(postService PublicPostLister) *ListPublicPostsHandler {
	return &ListPublicPostsHandler{postService: postService}
}

// Handle serves GET /api/posts/public.
func (h *ListPublicPostsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.postService.ListPublic(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dtos)
}
