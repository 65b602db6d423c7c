package user_client

import (
	"context"

	"skillshare-backend/internal/model"
)

// Client resolves user profiles. This service only reads them, the user
// resource itself is owned elsewhere.
//
//go:generate mockery --name Client --dir . --output ../../../mocks/user --outpkg mocks --filename UserClient.go
type Client interface {
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}
