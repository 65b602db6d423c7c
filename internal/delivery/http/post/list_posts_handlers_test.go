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

func TestListUserPostsHandler_Handle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewListUserPostsHandler(mockPostService)

		mockPostService.On("ListByOwner", mock.Anything, "alice@example.com").
			Return([]*model.PostDTO{
				{ID: "p1", Title: "First", UserEmail: "alice@example.com", Username: "alice"},
			}, nil)

		req := newRequest(t, http.MethodGet, "/api/posts/byLoggedInUser", "", "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var dtos []*model.PostDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
		require.Len(t, dtos, 1)
		assert.Equal(t, "alice", dtos[0].Username)
		mockPostService.AssertExpectations(t)
	})

	t.Run("EmptyListStaysAList", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewListUserPostsHandler(mockPostService)

		mockPostService.On("ListByOwner", mock.Anything, "alice@example.com").
			Return([]*model.PostDTO{}, nil)

		req := newRequest(t, http.MethodGet, "/api/posts/byLoggedInUser", "", "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
		mockPostService.AssertExpectations(t)
	})

	t.Run("MissingCaller", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewListUserPostsHandler(mockPostService)

		req := newRequest(t, http.MethodGet, "/api/posts/byLoggedInUser", "", "", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockPostService.AssertNotCalled(t, "ListByOwner")
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewListUserPostsHandler(mockPostService)

		mockPostService.On("ListByOwner", mock.Anything, "alice@example.com").
			Return(nil, custom_errors.ErrDatabaseQuery)

		req := newRequest(t, http.MethodGet, "/api/posts/byLoggedInUser", "", "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		mockPostService.AssertExpectations(t)
	})
}

func TestListPublicPostsHandler_Handle(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewListPublicPostsHandler(mockPostService)

		mockPostService.On("ListPublic", mock.Anything).
			Return([]*model.PostDTO{
				{ID: "p1", Title: "First", UserEmail: "alice@example.com", IsPublic: true, Username: "alice"},
				{ID: "p2", Title: "Second", UserEmail: "bob@example.com", IsPublic: true, Username: "Unknown"},
			}, nil)

		req := newRequest(t, http.MethodGet, "/api/posts/public", "", "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var dtos []*model.PostDTO
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
		assert.Len(t, dtos, 2)
		mockPostService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewListPublicPostsHandler(mockPostService)

		mockPostService.On("ListPublic", mock.Anything).
			Return(nil, custom_errors.ErrDatabaseQuery)

		req := newRequest(t, http.MethodGet, "/api/posts/public", "", "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		mockPostService.AssertExpectations(t)
	})
}
