package post_handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"skillshare-backend/internal/custom_errors"
	post_handler "skillshare-backend/internal/delivery/http/post"
	mockpost "skillshare-backend/mocks/post"
)

func TestDeletePostHandler_Handle(t *testing.T) {
	validate := validator.New()

	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewDeletePostHandler(mockPostService, validate)

		mockPostService.On("Delete", mock.Anything, "alice@example.com", "p1").Return(true, nil)

		req := newRequest(t, http.MethodDelete, "/api/posts/p1", "", "alice@example.com",
			map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewDeletePostHandler(mockPostService, validate)

		mockPostService.On("Delete", mock.Anything, "alice@example.com", "missing").Return(false, nil)

		req := newRequest(t, http.MethodDelete, "/api/posts/missing", "", "alice@example.com",
			map[string]string{"id": "missing"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NotFound", decodeErrorCode(t, rec))
		mockPostService.AssertExpectations(t)
	})

	t.Run("NotOwnerAlsoReads404", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewDeletePostHandler(mockPostService, validate)

		mockPostService.On("Delete", mock.Anything, "mallory@example.com", "p1").
			Return(false, custom_errors.ErrForbidden)

		req := newRequest(t, http.MethodDelete, "/api/posts/p1", "", "mallory@example.com",
			map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NotFound", decodeErrorCode(t, rec))
		mockPostService.AssertExpectations(t)
	})

	t.Run("ValidationError", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewDeletePostHandler(mockPostService, validate)

		req := newRequest(t, http.MethodDelete, "/api/posts/", "", "alice@example.com", nil)
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockPostService.AssertNotCalled(t, "Delete")
	})

	t.Run("MissingCaller", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewDeletePostHandler(mockPostService, validate)

		req := newRequest(t, http.MethodDelete, "/api/posts/p1", "", "",
			map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockPostService.AssertNotCalled(t, "Delete")
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		handler := post_handler.NewDeletePostHandler(mockPostService, validate)

		mockPostService.On("Delete", mock.Anything, "alice@example.com", "p1").
			Return(false, custom_errors.ErrDatabaseQuery)

		req := newRequest(t, http.MethodDelete, "/api/posts/p1", "", "alice@example.com",
			map[string]string{"id": "p1"})
		rec := httptest.NewRecorder()
		handler.Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		mockPostService.AssertExpectations(t)
	})
}
