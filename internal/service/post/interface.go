package post_service

import (
	"context"

	"skillshare-backend/internal/model"
)

// Service owns the post business rules: ownership enforcement, visibility
// toggling and DTO assembly. Every mutating operation takes the caller's
// authenticated email explicitly, the delivery layer supplies it.
//
//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	ListByOwner(ctx context.Context, userEmail string) ([]*model.PostDTO, error)
	ListPublic(ctx context.Context) ([]*model.PostDTO, error)
	Create(ctx context.Context, dto *model.PostDTO) (*model.Post, error)
	UpdateVisibility(ctx context.Context, callerEmail, id string, isPublic bool) (*model.Post, error)
	Update(ctx context.Context, callerEmail, id string, dto *model.PostDTO) (*model.Post, error)
	Delete(ctx context.Context, callerEmail, id string) (bool, error)
}
