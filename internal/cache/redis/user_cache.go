package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
	"skillshare-backend/internal/model"
)

const (
	userCacheKeyPrefix = "user:"
	userCacheTTL       = 15 * time.Minute
)

type UserCache struct {
	client  *Client
	log     *logger.Logger
	metrics metrics.Provider
}

func NewUserCache(client *Client, log *logger.Logger, metrics metrics.Provider) *UserCache {
	return &UserCache{
		client:  client,
		log:     log,
		metrics: metrics,
	}
}

func (u *UserCache) GetUser(ctx context.Context, email string) (*model.User, error) {
	key := userCacheKeyPrefix + email

	var user model.User
	err := u.client.Get(ctx, key, &user)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			u.log.Debug("User cache miss", slog.String("email", email))
			u.metrics.IncrementCacheMisses()
			return nil, custom_errors.ErrCacheMiss
		}
		u.log.Error("Failed to get user from cache",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	u.log.Debug("User cache hit", slog.String("email", email))
	u.metrics.IncrementCacheHits()
	return &user, nil
}

func (u *UserCache) SetUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}

	key := userCacheKeyPrefix + user.Email
	if err := u.client.Set(ctx, key, user, userCacheTTL); err != nil {
		u.log.Error("Failed to set user cache",
			slog.String("email", user.Email),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set user cache: %w", err)
	}

	u.log.Debug("User cached successfully",
		slog.String("email", user.Email),
		slog.Duration("ttl", userCacheTTL))
	return nil
}

func (u *UserCache) DeleteUser(ctx context.Context, email string) error {
	key := userCacheKeyPrefix + email
	if err := u.client.Delete(ctx, key); err != nil {
		u.log.Error("Failed to delete user from cache",
			slog.String("email", email),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}

	u.log.Debug("User deleted from cache", slog.String("email", email))
	return nil
}
