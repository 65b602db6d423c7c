package post_handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"skillshare-backend/internal/delivery/http/middleware"
	post_service "skillshare-backend/internal/service/post"
)

var validate = validator.New()

// RegisterRoutes mounts the post endpoints under /posts. Every route requires
// an authenticated caller.
func RegisterRoutes(r chi.Router, postService post_service.Service, auth *middleware.AuthMiddleware) {
	listUserPosts := NewListUserPostsHandler(postService)
	listPublicPosts := NewListPublicPostsHandler(postService)
	createPost := NewCreatePostHandler(postService)
	updateVisibility := NewUpdateVisibilityHandler(postService, validate)
	updatePost := NewUpdatePostHandler(postService, validate)
	deletePost := NewDeletePostHandler(postService, validate)

	r.Route("/posts", func(r chi.Router) {
		r.Use(auth.RequireAuth)

		r.Get("/byLoggedInUser", listUserPosts.Handle)
		r.Get("/public", listPublicPosts.Handle)
		r.Post("/", createPost.Handle)
		r.Put("/{id}/visibility", updateVisibility.Handle)
		r.Put("/{id}", updatePost.Handle)
		r.Delete("/{id}", deletePost.Handle)
	})
}
