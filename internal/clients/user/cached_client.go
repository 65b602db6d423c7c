package user_client

import (
	"context"
	"errors"
	"log/slog"

	"skillshare-backend/internal/cache"
	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/model"
)

// CachedClient decorates a Client with a read-through user cache. Cache
// failures degrade to the inner client and are never surfaced.
type CachedClient struct {
	inner Client
	cache cache.UserCache
	log   *logger.Logger
}

func NewCachedClient(inner Client, cache cache.UserCache, log *logger.Logger) *CachedClient {
	return &CachedClient{
		inner: inner,
		cache: cache,
		log:   log,
	}
}

func (c *CachedClient) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := c.cache.GetUser(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		c.log.Warn("User cache lookup failed, falling back to client",
			slog.String("email", email),
			slog.String("error", err.Error()))
	}

	user, err = c.inner.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if cacheErr := c.cache.SetUser(ctx, user); cacheErr != nil {
		c.log.Warn("Failed to cache user",
			slog.String("email", email),
			slog.String("error", cacheErr.Error()))
	}

	return user, nil
}
