package post_service

import (
	"context"
	"errors"
	"log/slog"

	user_client "skillshare-backend/internal/clients/user"
	"skillshare-backend/internal/custom_errors"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
	"skillshare-backend/internal/model"
	post_repository "skillshare-backend/internal/repository/post"
)

// unknownUsername is returned in DTOs when the owner has no user record.
const unknownUsername = "Unknown"

type PostService struct {
	postRepo   post_repository.Repository
	userClient user_client.Client
	log        *logger.Logger
	metrics    metrics.Provider
}

func NewPostService(
	postRepo post_repository.Repository,
	userClient user_client.Client,
	log *logger.Logger,
	metrics metrics.Provider,
) *PostService {
	return &PostService{
		postRepo:   postRepo,
		userClient: userClient,
		log:        log,
		metrics:    metrics,
	}
}

func (s *PostService) ListByOwner(ctx context.Context, userEmail string) ([]*model.PostDTO, error) {
	posts, err := s.postRepo.GetByOwner(ctx, userEmail)
	if err != nil {
		s.log.Error("Failed to list posts by owner",
			slog.String("user_email", userEmail),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list_by_owner", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("list_by_owner", true)
	return s.assembleDTOs(ctx, posts), nil
}

func (s *PostService) ListPublic(ctx context.Context) ([]*model.PostDTO, error) {
	posts, err := s.postRepo.GetPublic(ctx)
	if err != nil {
		s.log.Error("Failed to list public posts", slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("list_public", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("list_public", true)
	return s.assembleDTOs(ctx, posts), nil
}

// Create persists a new post owned by dto.UserEmail. The delivery layer has
// already overwritten that field with the authenticated caller.
func (s *PostService) Create(ctx context.Context, dto *model.PostDTO) (*model.Post, error) {
	if dto.UserEmail == "" {
		s.log.Debug("Create post rejected, missing owner email")
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrPostValidation
	}

	created, err := s.postRepo.Create(ctx, model.DTOToPost(dto))
	if err != nil {
		s.log.Error("Failed to create post",
			slog.String("user_email", dto.UserEmail),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("create", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("create", true)
	return created, nil
}

func (s *PostService) UpdateVisibility(ctx context.Context, callerEmail, id string, isPublic bool) (*model.Post, error) {
	post, err := s.getOwnedPost(ctx, callerEmail, id, "update_visibility")
	if err != nil {
		return nil, err
	}

	post.IsPublic = isPublic
	updated, err := s.postRepo.Update(ctx, post)
	if err != nil {
		s.log.Error("Failed to update post visibility",
			slog.String("id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("update_visibility", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("update_visibility", true)
	return updated, nil
}

// Update overwrites title, content, images and visibility. The owner email is
// never changed, regardless of what the inbound DTO carried.
func (s *PostService) Update(ctx context.Context, callerEmail, id string, dto *model.PostDTO) (*model.Post, error) {
	post, err := s.getOwnedPost(ctx, callerEmail, id, "update")
	if err != nil {
		return nil, err
	}

	post.Title = dto.Title
	post.Content = dto.Content
	post.Images = dto.Images
	post.IsPublic = dto.IsPublic

	updated, err := s.postRepo.Update(ctx, post)
	if err != nil {
		s.log.Error("Failed to update post",
			slog.String("id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("update", false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("update", true)
	return updated, nil
}

// Delete removes the caller's post. An absent id reports (false, nil) rather
// than ErrPostNotFound; callers rely on the boolean.
func (s *PostService) Delete(ctx context.Context, callerEmail, id string) (bool, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.String("id", id))
			return false, nil
		}
		s.log.Error("Failed to get post for delete",
			slog.String("id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("delete", false)
		return false, custom_errors.ErrDatabaseQuery
	}

	if post.UserEmail != callerEmail {
		s.log.Debug("Caller is not the owner of post",
			slog.String("caller_email", callerEmail),
			slog.String("owner_email", post.UserEmail))
		s.metrics.IncrementPostOperations("delete", false)
		return false, custom_errors.ErrForbidden
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post already gone during delete", slog.String("id", id))
			return false, nil
		}
		s.log.Error("Failed to delete post",
			slog.String("id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations("delete", false)
		return false, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("delete", true)
	return true, nil
}

// getOwnedPost fetches a post and enforces that the caller owns it.
func (s *PostService) getOwnedPost(ctx context.Context, callerEmail, id, operation string) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.String("id", id))
			s.metrics.IncrementPostOperations(operation, false)
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post",
			slog.String("id", id),
			slog.String("error", err.Error()))
		s.metrics.IncrementPostOperations(operation, false)
		return nil, custom_errors.ErrDatabaseQuery
	}

	if post.UserEmail != callerEmail {
		s.log.Debug("Caller is not the owner of post",
			slog.String("caller_email", callerEmail),
			slog.String("owner_email", post.UserEmail))
		s.metrics.IncrementPostOperations(operation, false)
		return nil, custom_errors.ErrForbidden
	}

	return post, nil
}

// assembleDTOs joins posts with their owners' display names. A missing user
// record resolves to "Unknown", any other lookup failure is logged and
// degrades the same way rather than failing the listing.
func (s *PostService) assembleDTOs(ctx context.Context, posts []*model.Post) []*model.PostDTO {
	dtos := make([]*model.PostDTO, 0, len(posts))
	for _, post := range posts {
		username := unknownUsername
		user, err := s.userClient.GetUserByEmail(ctx, post.UserEmail)
		switch {
		case err == nil:
			username = user.Username
		case errors.Is(err, custom_errors.ErrUserNotFound):
			s.log.Debug("Owner has no user record", slog.String("email", post.UserEmail))
		default:
			s.log.Warn("User lookup failed during DTO assembly",
				slog.String("email", post.UserEmail),
				slog.String("error", err.Error()))
		}
		dtos = append(dtos, model.PostToDTO(post, username))
	}
	return dtos
}
