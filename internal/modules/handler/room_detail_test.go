package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
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

// MockDetailService is a mock implementation of service.DetailService
type MockDetailService struct {
	mock.Mock
}

func (m *MockDetailService) List(ctx context.Context, f repo.DetailFilter) ([]model.MeetingRoomDetail, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailService) GetByID(ctx context.Context, id int) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailService) GetByRoomID(ctx context.Context, roomID int) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailService) Create(ctx context.Context, in service.CreateDetailInput) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailService) Update(ctx context.Context, id int, in service.UpdateDetailInput) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDetailService) AttachRecording(ctx context.Context, id int, fh *multipart.FileHeader) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, id, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailService) RecordingURL(ctx context.Context, id int) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func setupDetailRouter(h *DetailHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/room-details", h.ListDetails)
	r.POST("/room-details", h.CreateDetail)
	r.GET("/room-details/:id", h.GetDetail)
	r.GET("/room-details/room/:roomId", h.GetDetailByRoom)
	r.POST("/room-details/:id/recording", h.UploadRecording)
	r.GET("/room-details/:id/recording", h.GetRecordingURL)
	return r
}

func TestDetailHandler_CreateDetail(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockDetailService)
		expectedStatus int
		expectedError  string
	}{
		{
			name: "created",
			body: `{"room_id":1,"meeting_link":"https://meet.example.com/abc"}`,
			setup: func(svc *MockDetailService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(&model.MeetingRoomDetail{ID: 1, RoomID: 1}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown room is a bad request",
			body: `{"room_id":99,"meeting_link":"https://meet.example.com/abc"}`,
			setup: func(svc *MockDetailService) {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrRoomNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Room not found",
		},
		{
			name: "missing link",
			body: `{"room_id":1}`,
			setup: func(svc *MockDetailService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(nil, &service.ValidationError{Message: "Missing required fields: room_id, meeting_link"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockDetailService{}
			tt.setup(mockService)

			router := setupDetailRouter(NewDetailHandler(mockService))
			req := httptest.NewRequest("POST", "/room-details", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var body map[string]string
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			}
			mockService.AssertExpectations(t)
		})
	}
}

func TestDetailHandler_GetDetailByRoom(t *testing.T) {
	t.Run("no detail for the room", func(t *testing.T) {
		mockService := &MockDetailService{}
		mockService.On("GetByRoomID", mock.Anything, 9).Return(nil, service.ErrDetailNotFoundForRoom)

		router := setupDetailRouter(NewDetailHandler(mockService))
		req := httptest.NewRequest("GET", "/room-details/room/9", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Detail not found for this room", body["error"])
	})

	t.Run("found", func(t *testing.T) {
		mockService := &MockDetailService{}
		mockService.On("GetByRoomID", mock.Anything, 9).
			Return(&model.MeetingRoomDetail{ID: 4, RoomID: 9}, nil)

		router := setupDetailRouter(NewDetailHandler(mockService))
		req := httptest.NewRequest("GET", "/room-details/room/9", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestDetailHandler_UploadRecording(t *testing.T) {
	newUpload := func() (*bytes.Buffer, string) {
		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		part, _ := mw.CreateFormFile("file", "session.mp4")
		_, _ = part.Write([]byte("video-bytes"))
		_ = mw.Close()
		return buf, mw.FormDataContentType()
	}

	t.Run("uploaded", func(t *testing.T) {
		mockService := &MockDetailService{}
		mockService.On("AttachRecording", mock.Anything, 4, mock.Anything).
			Return(&model.MeetingRoomDetail{ID: 4}, nil)

		body, contentType := newUpload()
		router := setupDetailRouter(NewDetailHandler(mockService))
		req := httptest.NewRequest("POST", "/room-details/4/recording", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("missing file part", func(t *testing.T) {
		mockService := &MockDetailService{}

		router := setupDetailRouter(NewDetailHandler(mockService))
		req := httptest.NewRequest("POST", "/room-details/4/recording", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "AttachRecording", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown detail", func(t *testing.T) {
		mockService := &MockDetailService{}
		mockService.On("AttachRecording", mock.Anything, 404, mock.Anything).
			Return(nil, service.ErrDetailNotFound)

		body, contentType := newUpload()
		router := setupDetailRouter(NewDetailHandler(mockService))
		req := httptest.NewRequest("POST", "/room-details/404/recording", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDetailHandler_GetRecordingURL(t *testing.T) {
	t.Run("presigned url returned", func(t *testing.T) {
		mockService := &MockDetailService{}
		mockService.On("RecordingURL", mock.Anything, 4).Return("https://s3.example.com/signed", nil)

		router := setupDetailRouter(NewDetailHandler(mockService))
		req := httptest.NewRequest("GET", "/room-details/4/recording", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "https://s3.example.com/signed", body["url"])
	})

	t.Run("no recording attached", func(t *testing.T) {
		mockService := &MockDetailService{}
		mockService.On("RecordingURL", mock.Anything, 4).Return("", service.ErrRecordingNotFound)

		router := setupDetailRouter(NewDetailHandler(mockService))
		req := httptest.NewRequest("GET", "/room-details/4/recording", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
