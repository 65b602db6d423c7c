package cache

import (
	"context"

	"skillshare-backend/internal/model"
)

//go:generate mockery --name UserCache --dir . --output ../../mocks/cache --outpkg mocks --filename UserCache.go
type UserCache interface {
	GetUser(ctx context.Context, email string) (*model.User, error)
	SetUser(ctx context.Context, user *model.User) error
	DeleteUser(ctx context.Context, email string) error
}
