package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/model"
)

type PostRepository struct {
	log   *logger.Logger
	mu    sync.RWMutex
	posts map[string]*model.Post
}

func NewPostRepository(log *logger.Logger) *PostRepository {
	return &PostRepository{
		log:   log,
		posts: make(map[string]*model.Post),
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	newPost := &model.Post{
		ID:        uuid.NewString(),
		Title:     post.Title,
		Content:   post.Content,
		Images:    post.Images,
		IsPublic:  post.IsPublic,
		UserEmail: post.UserEmail,
	}
	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.String("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) GetByOwner(ctx context.Context, userEmail string) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.UserEmail == userEmail {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}
	return result, nil
}

func (p *PostRepository) GetPublic(ctx context.Context) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.IsPublic {
			postCopy := *post
			result = append(result, &postCopy)
		}
	}
	return result, nil
}

func (p *PostRepository) Update(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[post.ID]; !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	updated := *post
	p.posts[post.ID] = &updated

	result := updated
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}
