package post_handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillshare-backend/internal/custom_errors"
	post_handler "skillshare-backend/internal/delivery/http/post"
	"skillshare-backend/internal/model"
	mockpost "skillshare-backend/mocks/post"
)

func TestCreatePostHandler_Handle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewCreatePostHandler(mockPostService)

		mockPostService.On("Create", mock.Anything, mock.MatchedBy(func(dto *model.PostDTO) bool {
			return dto.Title == "Learning Go" && dto.UserEmail == "alice@example.com"
		})).Return(&model.Post{
			ID:        "p1",
			Title:     "Learning Go",
			UserEmail: "alice@example.com",
		}, nil)

		req := newRequest(t, http.MethodPost, "/api/posts",
			`{"title":"Learning Go","content":"Notes","isPublic":true}`,
			"alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var created model.Post
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
		assert.Equal(t, "p1", created.ID)
		assert.Equal(t, "alice@example.com", created.UserEmail)
		mockPostService.AssertExpectations(t)
	})

	t.Run("ClientSuppliedOwnerIsOverwritten", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewCreatePostHandler(mockPostService)

		mockPostService.On("Create", mock.Anything, mock.MatchedBy(func(dto *model.PostDTO) bool {
			return dto.UserEmail == "alice@example.com"
		})).Return(&model.Post{ID: "p1", UserEmail: "alice@example.com"}, nil)

		req := newRequest(t, http.MethodPost, "/api/posts",
			`{"title":"Spoof","userEmail":"mallory@example.com"}`,
			"alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewCreatePostHandler(mockPostService)

		req := newRequest(t, http.MethodPost, "/api/posts", `{not json`, "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "InvalidRequest", decodeErrorCode(t, rec))
		mockPostService.AssertNotCalled(t, "Create")
	})

	t.Run("MissingCaller", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewCreatePostHandler(mockPostService)

		req := newRequest(t, http.MethodPost, "/api/posts", `{"title":"Learning Go"}`, "", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockPostService.AssertNotCalled(t, "Create")
	})

	t.Run("ValidationError_FromService", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewCreatePostHandler(mockPostService)

		mockPostService.On("Create", mock.Anything, mock.AnythingOfType("*model.PostDTO")).
			Return(nil, custom_errors.ErrPostValidation)

		req := newRequest(t, http.MethodPost, "/api/posts", `{"title":"Learning Go"}`, "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "InvalidArgument", decodeErrorCode(t, rec))
		mockPostService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewCreatePostHandler(mockPostService)

		mockPostService.On("Create", mock.Anything, mock.AnythingOfType("*model.PostDTO")).
			Return(nil, custom_errors.ErrDatabaseQuery)

		req := newRequest(t, http.MethodPost, "/api/posts", `{"title":"Learning Go"}`, "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "InternalError", decodeErrorCode(t, rec))
		mockPostService.AssertExpectations(t)
	})
}
