package user_client_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository/postgres/db"
)

// UserClient reads user profiles from the shared users table.
type UserClient struct {
	db  db.PgDB
	log *logger.Logger
}

func NewUserClient(db db.PgDB, log *logger.Logger) *UserClient {
	return &UserClient{db: db, log: log}
}

func (c *UserClient) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := pgx.NamedArgs{"email": email}
	query := `SELECT email, username FROM users WHERE email = @email`

	user := &model.User{}
	err := c.db.QueryRow(ctx, query, args).Scan(&user.Email, &user.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("User not found by email", slog.String("email", email))
			return nil, custom_errors.ErrUserNotFound
		}
		c.log.Error("Error getting user by email", slog.String("email", email), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return user, nil
}
