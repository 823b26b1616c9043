package handler_test

import (
	"net/http"
	"testing"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/handler"
	"labvote/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- MOCK SERVICE ---

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) Add(presentationID int64, userIdentifier, username, text string) (*dto.CommentResponse, error) {
	args := m.Called(presentationID, userIdentifier, username, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) List(presentationID int64) ([]dto.CommentResponse, error) {
	args := m.Called(presentationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CommentResponse), args.Error(1)
}

func (m *MockCommentService) Delete(commentID int64, userIdentifier string) error {
	args := m.Called(commentID, userIdentifier)
	return args.Error(0)
}

func setupCommentRouter(mockService *MockCommentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCommentHandler(mockService)
	h.RegisterRoutes(r.Group("/api"))
	return r
}

// --- TESTS ---

func TestCommentHandler_Create(t *testing.T) {
	mockService := new(MockCommentService)
	r := setupCommentRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.On("Add", int64(1), "u1", "User One", "great talk").
			Return(&dto.CommentResponse{ID: 1, PresentationID: 1, Username: "User One", CommentText: "great talk"}, nil).Once()

		w := performJSON(t, r, http.MethodPost, "/api/presentations/1/comments",
			gin.H{"user_identifier": "u1", "username": "User One", "comment_text": "great talk"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"comment_text":"great talk"`)
	})

	t.Run("MissingText", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/presentations/1/comments",
			gin.H{"user_identifier": "u1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("WhitespaceText", func(t *testing.T) {
		mockService.On("Add", int64(1), "u1", "", "   ").Return(nil, service.ErrEmptyComment).Once()

		w := performJSON(t, r, http.MethodPost, "/api/presentations/1/comments",
			gin.H{"user_identifier": "u1", "comment_text": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Comment cannot be empty")
	})

	t.Run("PresentationNotFound", func(t *testing.T) {
		mockService.On("Add", int64(99), "u1", "", "hello").Return(nil, service.ErrPresentationNotFound).Once()

		w := performJSON(t, r, http.MethodPost, "/api/presentations/99/comments",
			gin.H{"user_identifier": "u1", "comment_text": "hello"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	mockService.AssertExpectations(t)
}

func TestCommentHandler_List(t *testing.T) {
	mockService := new(MockCommentService)
	r := setupCommentRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		comments := []dto.CommentResponse{
			{ID: 2, CommentText: "newer"},
			{ID: 1, CommentText: "older"},
		}
		mockService.On("List", int64(1)).Return(comments, nil).Once()

		w := performJSON(t, r, http.MethodGet, "/api/presentations/1/comments", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"comments"`)
	})

	t.Run("PresentationNotFound", func(t *testing.T) {
		mockService.On("List", int64(99)).Return(nil, service.ErrPresentationNotFound).Once()

		w := performJSON(t, r, http.MethodGet, "/api/presentations/99/comments", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	mockService.AssertExpectations(t)
}

func TestCommentHandler_Delete(t *testing.T) {
	mockService := new(MockCommentService)
	r := setupCommentRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.On("Delete", int64(1), "u1").Return(nil).Once()

		w := performJSON(t, r, http.MethodDelete, "/api/comments/1",
			gin.H{"user_identifier": "u1"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotAuthor", func(t *testing.T) {
		mockService.On("Delete", int64(1), "u2").Return(service.ErrNotCommentAuthor).Once()

		w := performJSON(t, r, http.MethodDelete, "/api/comments/1",
			gin.H{"user_identifier": "u2"})

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService.On("Delete", int64(99), "u1").Return(service.ErrCommentNotFound).Once()

		w := performJSON(t, r, http.MethodDelete, "/api/comments/99",
			gin.H{"user_identifier": "u1"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("MissingUserIdentifier", func(t *testing.T) {
		w := performJSON(t, r, http.MethodDelete, "/api/comments/1", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	mockService.AssertExpectations(t)
}
