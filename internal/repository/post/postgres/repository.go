package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
	"skillshare-backend/internal/model"
	"skillshare-backend/internal/repository/postgres/db"
)

type PostRepository struct {
	db      db.PgDB
	log     *logger.Logger
	metrics metrics.Provider
}

func NewPostRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *PostRepository {
	return &PostRepository{db: db, log: log, metrics: metrics}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	args := pgx.NamedArgs{
		"title":      post.Title,
		"content":    post.Content,
		"images":     post.Images,
		"is_public":  post.IsPublic,
		"user_email": post.UserEmail,
	}

	query := `
		INSERT INTO posts (title, content, images, is_public, user_email)
		VALUES (@title, @content, @images, @is_public, @user_email)
		RETURNING id, title, content, images, is_public, user_email`

	var createdPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&createdPost.ID,
		&createdPost.Title,
		&createdPost.Content,
		&createdPost.Images,
		&createdPost.IsPublic,
		&createdPost.UserEmail,
	)
	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("post_create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_create", true)
	return &createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, content, images, is_public, user_email
				FROM posts WHERE id = @id`

	post := &model.Post{}
	err := p.db.QueryRow(ctx, query, args).Scan(
		&post.ID,
		&post.Title,
		&post.Content,
		&post.Images,
		&post.IsPublic,
		&post.UserEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.String("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.String("id", id), slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("post_get_by_id", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_id", true)
	return post, nil
}

func (p *PostRepository) GetByOwner(ctx context.Context, userEmail string) ([]*model.Post, error) {
	args := pgx.NamedArgs{"user_email": userEmail}
	query := `SELECT id, title, content, images, is_public, user_email
				FROM posts WHERE user_email = @user_email`

	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error getting posts by owner", slog.String("user_email", userEmail), slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("post_get_by_owner", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts, err := p.scanPosts(rows)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_by_owner", false)
		return nil, err
	}

	p.metrics.IncrementDatabaseQueries("post_get_by_owner", true)
	return posts, nil
}

func (p *PostRepository) GetPublic(ctx context.Context) ([]*model.Post, error) {
	query := `SELECT id, title, content, images, is_public, user_email
				FROM posts WHERE is_public = true`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		p.log.Error("Error getting public posts", slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("post_get_public", false)
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	posts, err := p.scanPosts(rows)
	if err != nil {
		p.metrics.IncrementDatabaseQueries("post_get_public", false)
		return nil, err
	}

	p.metrics.IncrementDatabaseQueries("post_get_public", true)
	return posts, nil
}

// Update is a full-row replace keyed by id; the owner email column is written
// as-is from the entity, callers must not have changed it.
func (p *PostRepository) Update(ctx context.Context, post *model.Post) (*model.Post, error) {
	args := pgx.NamedArgs{
		"id":         post.ID,
		"title":      post.Title,
		"content":    post.Content,
		"images":     post.Images,
		"is_public":  post.IsPublic,
		"user_email": post.UserEmail,
	}

	query := `
		UPDATE posts
		SET title = @title, content = @content, images = @images,
			is_public = @is_public, user_email = @user_email
		WHERE id = @id
		RETURNING id, title, content, images, is_public, user_email`

	var updatedPost model.Post
	err := p.db.QueryRow(ctx, query, args).Scan(
		&updatedPost.ID,
		&updatedPost.Title,
		&updatedPost.Content,
		&updatedPost.Images,
		&updatedPost.IsPublic,
		&updatedPost.UserEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.String("id", post.ID))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.String("id", post.ID), slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("post_update", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.metrics.IncrementDatabaseQueries("post_update", true)
	return &updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`

	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.String("id", id), slog.String("error", err.Error()))
		p.metrics.IncrementDatabaseQueries("post_delete", false)
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}

	p.metrics.IncrementDatabaseQueries("post_delete", true)
	return nil
}

func (p *PostRepository) scanPosts(rows pgx.Rows) ([]*model.Post, error) {
	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Content,
			&post.Images,
			&post.IsPublic,
			&post.UserEmail,
		)
		if err != nil {
			p.log.Error("Error scanning post row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		p.log.Error("Error iterating post rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}
