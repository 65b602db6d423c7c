package post_repository

import (
	"context"

	"skillshare-backend/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	GetByOwner(ctx context.Context, userEmail string) ([]*model.Post, error)
	GetPublic(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, post *model.Post) (*model.Post, error)
	Delete(ctx context.Context, id string) error
}
