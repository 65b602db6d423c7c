package user_client_memory

import (
	"context"
	"sync"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/model"
)

// UserClient is an in-process user store for the memory storage backend and
// for tests.
type UserClient struct {
	mu    sync.RWMutex
	users map[string]*model.User
}

func NewUserClient() *UserClient {
	return &UserClient{users: make(map[string]*model.User)}
}

func (c *UserClient) AddUser(user *model.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	userCopy := *user
	c.users[user.Email] = &userCopy
}

func (c *UserClient) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	user, exists := c.users[email]
	if !exists {
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}
