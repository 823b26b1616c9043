package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"labvote/internal/http-api/dto"
	"labvote/internal/http-api/handler"
	"labvote/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// performJSON sends a request with an optional JSON body and records the response
func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- MOCK SERVICE ---

type MockWeekService struct {
	mock.Mock
}

func (m *MockWeekService) ListWeeks() (map[string]dto.WeekPresentations, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]dto.WeekPresentations), args.Error(1)
}

func (m *MockWeekService) CreateWeek(label string) (*dto.WeekResponse, error) {
	args := m.Called(label)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WeekResponse), args.Error(1)
}

func (m *MockWeekService) DeleteWeek(label string) error {
	args := m.Called(label)
	return args.Error(0)
}

func (m *MockWeekService) ResetVotes(label string) error {
	args := m.Called(label)
	return args.Error(0)
}

func setupWeekRouter(mockService *MockWeekService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewWeekHandler(mockService)
	h.RegisterRoutes(r.Group("/api"))
	return r
}

// --- TESTS ---

func TestWeekHandler_List(t *testing.T) {
	mockService := new(MockWeekService)
	r := setupWeekRouter(mockService)

	weeks := map[string]dto.WeekPresentations{
		"2025-W42": {Presentations: []dto.PresentationResponse{{ID: 1, WeekID: "2025-W42", Title: "Talk"}}},
	}
	mockService.On("ListWeeks").Return(weeks, nil).Once()

	w := performJSON(t, r, http.MethodGet, "/api/weeks", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var got map[string]dto.WeekPresentations
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Contains(t, got, "2025-W42")
	assert.Equal(t, "Talk", got["2025-W42"].Presentations[0].Title)
	mockService.AssertExpectations(t)
}

func TestWeekHandler_Create(t *testing.T) {
	mockService := new(MockWeekService)
	r := setupWeekRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.On("CreateWeek", "2025-W42").
			Return(&dto.WeekResponse{ID: 1, WeekID: "2025-W42", Presentations: []dto.PresentationResponse{}}, nil).Once()

		w := performJSON(t, r, http.MethodPost, "/api/weeks", gin.H{"week_id": "2025-W42"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"week_id":"2025-W42"`)
	})

	t.Run("MissingLabel", func(t *testing.T) {
		w := performJSON(t, r, http.MethodPost, "/api/weeks", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "week_id is required")
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockService.On("CreateWeek", "2025-W42").Return(nil, service.ErrWeekExists).Once()

		w := performJSON(t, r, http.MethodPost, "/api/weeks", gin.H{"week_id": "2025-W42"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Week already exists")
	})

	mockService.AssertExpectations(t)
}

func TestWeekHandler_Delete(t *testing.T) {
	mockService := new(MockWeekService)
	r := setupWeekRouter(mockService)

	t.Run("Success", func(t *testing.T) {
		mockService.On("DeleteWeek", "2025-W42").Return(nil).Once()

		w := performJSON(t, r, http.MethodDelete, "/api/weeks/2025-W42", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService.On("DeleteWeek", "2099-W01").Return(service.ErrWeekNotFound).Once()

		w := performJSON(t, r, http.MethodDelete, "/api/weeks/2099-W01", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Week not found")
	})

	mockService.AssertExpectations(t)
}

func TestWeekHandler_ResetVotes(t *testing.T) {
	mockService := new(MockWeekService)
	r := setupWeekRouter(mockService)

	mockService.On("ResetVotes", "2025-W42").Return(nil).Once()

	w := performJSON(t, r, http.MethodPost, "/api/weeks/2025-W42/reset-votes", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
