package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHistoryService is a mock implementation of service.HistoryService
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) List(ctx context.Context, f repo.HistoryFilter, limit int) ([]model.MeetingHistory, error) {
	args := m.Called(ctx, f, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MeetingHistory), args.Error(1)
}

func (m *MockHistoryService) GetByID(ctx context.Context, id int) (*model.MeetingHistory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingHistory), args.Error(1)
}

func (m *MockHistoryService) ListByRoom(ctx context.Context, roomID, limit int) ([]model.MeetingHistory, error) {
	args := m.Called(ctx, roomID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MeetingHistory), args.Error(1)
}

func (m *MockHistoryService) ListByUser(ctx context.Context, userID, limit int) ([]model.MeetingHistory, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MeetingHistory), args.Error(1)
}

func (m *MockHistoryService) ListByMentor(ctx context.Context, mentorID, limit int) ([]model.MeetingHistory, error) {
	args := m.Called(ctx, mentorID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MeetingHistory), args.Error(1)
}

func (m *MockHistoryService) Create(ctx context.Context, in service.CreateHistoryInput) (*model.MeetingHistory, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingHistory), args.Error(1)
}

func (m *MockHistoryService) Update(ctx context.Context, id int, in service.UpdateHistoryInput) (*model.MeetingHistory, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingHistory), args.Error(1)
}

func (m *MockHistoryService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHistoryService) DurationStats(ctx context.Context, f repo.HistoryFilter) (*repo.DurationStats, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repo.DurationStats), args.Error(1)
}

func setupHistoryRouter(h *HistoryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/meeting-history", h.ListHistory)
	r.POST("/meeting-history", h.CreateHistory)
	r.GET("/meeting-history/:id", h.GetHistory)
	r.DELETE("/meeting-history/:id", h.DeleteHistory)
	r.GET("/meeting-history/room/:roomId", h.ListHistoryByRoom)
	r.GET("/meeting-history/stats/duration", h.GetDurationStats)
	return r
}

func TestHistoryHandler_CreateHistory(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockHistoryService)
		expectedStatus int
	}{
		{
			name: "created",
			body: `{"room_id":1,"mentor_id":2,"user_id":3,"duration_minutes":45}`,
			setup: func(svc *MockHistoryService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(&model.MeetingHistory{ID: 1, RoomID: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown room is a bad request",
			body: `{"room_id":99,"mentor_id":2,"user_id":3}`,
			setup: func(svc *MockHistoryService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrRoomNotFound)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing fields",
			body: `{"room_id":1}`,
			setup: func(svc *MockHistoryService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(nil, &service.ValidationError{Message: "Missing required fields: room_id, mentor_id, user_id"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockHistoryService{}
			tt.setup(mockService)

			router := setupHistoryRouter(NewHistoryHandler(mockService))
			req := httptest.NewRequest("POST", "/meeting-history", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			mockService.AssertExpectations(t)
		})
	}
}

func TestHistoryHandler_ListHistoryByRoom(t *testing.T) {
	t.Run("limit forwarded", func(t *testing.T) {
		mockService := &MockHistoryService{}
		mockService.On("ListByRoom", mock.Anything, 4, 3).Return([]model.MeetingHistory{}, nil)

		router := setupHistoryRouter(NewHistoryHandler(mockService))
		req := httptest.NewRequest("GET", "/meeting-history/room/4?limit=3", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("absent limit means default", func(t *testing.T) {
		mockService := &MockHistoryService{}
		mockService.On("ListByRoom", mock.Anything, 4, 0).Return([]model.MeetingHistory{}, nil)

		router := setupHistoryRouter(NewHistoryHandler(mockService))
		req := httptest.NewRequest("GET", "/meeting-history/room/4", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		mockService := &MockHistoryService{}

		router := setupHistoryRouter(NewHistoryHandler(mockService))
		req := httptest.NewRequest("GET", "/meeting-history/room/4?limit=-1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "ListByRoom", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHistoryHandler_DeleteHistory(t *testing.T) {
	mockService := &MockHistoryService{}
	mockService.On("Delete", mock.Anything, 8).Return(nil)

	router := setupHistoryRouter(NewHistoryHandler(mockService))
	req := httptest.NewRequest("DELETE", "/meeting-history/8", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "History deleted successfully", body["message"])
}

func TestHistoryHandler_GetDurationStats(t *testing.T) {
	total := int64(90)
	avg := 45.0

	mockService := &MockHistoryService{}
	mockService.On("DurationStats", mock.Anything, mock.MatchedBy(func(f repo.HistoryFilter) bool {
		return f.MentorID != nil && *f.MentorID == 1 && f.UserID == nil
	})).Return(&repo.DurationStats{TotalMeetings: 2, TotalDurationMinutes: &total, AverageDurationMinutes: &avg}, nil)

	router := setupHistoryRouter(NewHistoryHandler(mockService))
	req := httptest.NewRequest("GET", "/meeting-history/stats/duration?mentor_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["total_meetings"])
	assert.Equal(t, float64(90), body["total_duration_minutes"])
	assert.Equal(t, 45.0, body["average_duration_minutes"])
}

func TestHistoryHandler_ListHistory_FilterParsing(t *testing.T) {
	mockService := &MockHistoryService{}
	mockService.On("List", mock.Anything, mock.MatchedBy(func(f repo.HistoryFilter) bool {
		return f.RoomID != nil && *f.RoomID == 2 && f.UserID != nil && *f.UserID == 7
	}), 5).Return([]model.MeetingHistory{}, nil)

	router := setupHistoryRouter(NewHistoryHandler(mockService))
	req := httptest.NewRequest("GET", "/meeting-history?room_id=2&user_id=7&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
