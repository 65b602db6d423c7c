package post_handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"skillshare-backend/internal/custom_errors"
	post_handler "skillshare-backend/internal/delivery/http/post"
	"skillshare-backend/internal/model"
	mockpost "skillshare-backend/mocks/post"
)

func TestUpdateVisibilityHandler_Handle(t *testing.T) {
	validate := validator.New()

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewUpdateVisibilityHandler(mockPostService, validate)

		mockPostService.On("UpdateVisibility", mock.Anything, "alice@example.com", "p1", true).
			Return(&model.Post{ID: "p1", IsPublic: true, UserEmail: "alice@example.com"}, nil)

		req := newRequest(t, http.MethodPut, "/api/posts/p1/visibility",
			`{"isPublic":true}`, "alice@example.com", map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var updated model.Post
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		assert.True(t, updated.IsPublic)
		mockPostService.AssertExpectations(t)
	})

	t.Run("ExplicitFalseIsAccepted", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewUpdateVisibilityHandler(mockPostService, validate)

		mockPostService.On("UpdateVisibility", mock.Anything, "alice@example.com", "p1", false).
			Return(&model.Post{ID: "p1", IsPublic: false, UserEmail: "alice@example.com"}, nil)

		req := newRequest(t, http.MethodPut, "/api/posts/p1/visibility",
			`{"isPublic":false}`, "alice@example.com", map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("MissingIsPublic", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewUpdateVisibilityHandler(mockPostService, validate)

		req := newRequest(t, http.MethodPut, "/api/posts/p1/visibility",
			`{}`, "alice@example.com", map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "InvalidRequest", decodeErrorCode(t, rec))
		mockPostService.AssertNotCalled(t, "UpdateVisibility")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewUpdateVisibilityHandler(mockPostService, validate)

		mockPostService.On("UpdateVisibility", mock.Anything, "alice@example.com", "missing", true).
			Return(nil, custom_errors.ErrPostNotFound)

		req := newRequest(t, http.MethodPut, "/api/posts/missing/visibility",
			`{"isPublic":true}`, "alice@example.com", map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("Forbidden", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewUpdateVisibilityHandler(mockPostService, validate)

		mockPostService.On("UpdateVisibility", mock.Anything, "mallory@example.com", "p1", true).
			Return(nil, custom_errors.ErrForbidden)

		req := newRequest(t, http.MethodPut, "/api/posts/p1/visibility",
			`{"isPublic":true}`, "mallory@example.com", map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "PermissionDenied", decodeErrorCode(t, rec))
		mockPostService.AssertExpectations(t)
	})

	t.Run("MissingCaller", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewUpdateVisibilityHandler(mockPostService, validate)

		req := newRequest(t, http.MethodPut, "/api/posts/p1/visibility",
			`{"isPublic":true}`, "", map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockPostService.AssertNotCalled(t, "UpdateVisibility")
	})
}
