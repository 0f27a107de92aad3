package service

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/mentorhub-io/meetingroom-api/internal/infra/blob"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockDetailRepo is a mock implementation of repo.DetailRepo
type MockDetailRepo struct {
	mock.Mock
}

func (m *MockDetailRepo) List(ctx context.Context, f repo.DetailFilter) ([]model.MeetingRoomDetail, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailRepo) GetByID(ctx context.Context, id int) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailRepo) GetByRoomID(ctx context.Context, roomID int) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailRepo) Create(ctx context.Context, d *model.MeetingRoomDetail) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDetailRepo) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.MeetingRoomDetail, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MeetingRoomDetail), args.Error(1)
}

func (m *MockDetailRepo) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockRecordingStore is a mock implementation of RecordingStore
type MockRecordingStore struct {
	mock.Mock
}

func (m *MockRecordingStore) UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, keyPrefix, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

func (m *MockRecordingStore) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func newDetailService(r repo.DetailRepo, rooms repo.RoomRepo, store RecordingStore) DetailService {
	return NewDetailService(r, rooms, store, func() time.Duration { return 15 * time.Minute })
}

func TestDetailService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateDetailInput
		setup   func(*MockDetailRepo, *MockRoomRepo)
		wantErr string
	}{
		{
			name: "successful create",
			input: CreateDetailInput{
				RoomID:      intPtr(1),
				MeetingLink: "https://meet.example.com/abc",
			},
			setup: func(d *MockDetailRepo, r *MockRoomRepo) {
				r.On("GetByID", mock.Anything, 1).Return(&model.MeetingRoom{ID: 1}, nil)
				d.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
		},
		{
			name:    "missing required fields",
			input:   CreateDetailInput{MeetingLink: "https://meet.example.com/abc"},
			setup:   func(d *MockDetailRepo, r *MockRoomRepo) {},
			wantErr: "Missing required fields: room_id, meeting_link",
		},
		{
			name: "unknown room",
			input: CreateDetailInput{
				RoomID:      intPtr(42),
				MeetingLink: "https://meet.example.com/abc",
			},
			setup: func(d *MockDetailRepo, r *MockRoomRepo) {
				r.On("GetByID", mock.Anything, 42).Return(nil, nil)
			},
			wantErr: "Room not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDetail := &MockDetailRepo{}
			mockRooms := &MockRoomRepo{}
			tt.setup(mockDetail, mockRooms)

			svc := newDetailService(mockDetail, mockRooms, &MockRecordingStore{})
			d, err := svc.Create(context.Background(), tt.input)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Nil(t, d)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, d.RoomID)
			}
			mockDetail.AssertExpectations(t)
			mockRooms.AssertExpectations(t)
		})
	}
}

func TestDetailService_GetByRoomID(t *testing.T) {
	t.Run("no detail for room", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockDetail.On("GetByRoomID", mock.Anything, 9).Return(nil, nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, &MockRecordingStore{})
		_, err := svc.GetByRoomID(context.Background(), 9)

		assert.ErrorIs(t, err, ErrDetailNotFoundForRoom)
	})

	t.Run("found", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockDetail.On("GetByRoomID", mock.Anything, 9).Return(&model.MeetingRoomDetail{ID: 4, RoomID: 9}, nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, &MockRecordingStore{})
		d, err := svc.GetByRoomID(context.Background(), 9)

		assert.NoError(t, err)
		assert.Equal(t, 9, d.RoomID)
	})
}

func TestDetailService_Update(t *testing.T) {
	t.Run("missing row maps to not found", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockDetail.On("Update", mock.Anything, 404, mock.Anything).Return(nil, nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, &MockRecordingStore{})
		_, err := svc.Update(context.Background(), 404, UpdateDetailInput{Notes: strPtr("late start")})

		assert.ErrorIs(t, err, ErrDetailNotFound)
	})

	t.Run("only supplied fields reach the repo", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockDetail.On("Update", mock.Anything, 4, map[string]interface{}{
			"notes": "late start",
		}).Return(&model.MeetingRoomDetail{ID: 4}, nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, &MockRecordingStore{})
		_, err := svc.Update(context.Background(), 4, UpdateDetailInput{Notes: strPtr("late start")})

		assert.NoError(t, err)
		mockDetail.AssertExpectations(t)
	})
}

func TestDetailService_Delete(t *testing.T) {
	mockDetail := &MockDetailRepo{}
	mockDetail.On("Delete", mock.Anything, 6).Return(false, nil)

	svc := newDetailService(mockDetail, &MockRoomRepo{}, &MockRecordingStore{})
	assert.ErrorIs(t, svc.Delete(context.Background(), 6), ErrDetailNotFound)
}

func TestDetailService_AttachRecording(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "session.mp4"}

	t.Run("uploads then stores the key", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockStore := &MockRecordingStore{}
		mockDetail.On("GetByID", mock.Anything, 4).Return(&model.MeetingRoomDetail{ID: 4}, nil)
		mockStore.On("UploadFormFile", mock.Anything, "recordings", fh).
			Return(&blob.UploadedMeta{Bucket: "b", Key: "recordings/2025/06/01/x.mp4"}, nil)
		mockDetail.On("Update", mock.Anything, 4, map[string]interface{}{
			"recorded_url": "recordings/2025/06/01/x.mp4",
		}).Return(&model.MeetingRoomDetail{ID: 4, RecordedURL: strPtr("recordings/2025/06/01/x.mp4")}, nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, mockStore)
		d, err := svc.AttachRecording(context.Background(), 4, fh)

		assert.NoError(t, err)
		assert.Equal(t, "recordings/2025/06/01/x.mp4", *d.RecordedURL)
		mockDetail.AssertExpectations(t)
		mockStore.AssertExpectations(t)
	})

	t.Run("unknown detail skips the upload", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockStore := &MockRecordingStore{}
		mockDetail.On("GetByID", mock.Anything, 404).Return(nil, nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, mockStore)
		_, err := svc.AttachRecording(context.Background(), 404, fh)

		assert.ErrorIs(t, err, ErrDetailNotFound)
		mockStore.AssertNotCalled(t, "UploadFormFile", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDetailService_RecordingURL(t *testing.T) {
	t.Run("presigns the stored key", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockStore := &MockRecordingStore{}
		mockDetail.On("GetByID", mock.Anything, 4).
			Return(&model.MeetingRoomDetail{ID: 4, RecordedURL: strPtr("recordings/x.mp4")}, nil)
		mockStore.On("PresignGet", mock.Anything, "recordings/x.mp4", 15*time.Minute).
			Return("https://s3.example.com/signed", nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, mockStore)
		url, err := svc.RecordingURL(context.Background(), 4)

		assert.NoError(t, err)
		assert.Equal(t, "https://s3.example.com/signed", url)
	})

	t.Run("no recording on the detail", func(t *testing.T) {
		mockDetail := &MockDetailRepo{}
		mockDetail.On("GetByID", mock.Anything, 4).Return(&model.MeetingRoomDetail{ID: 4}, nil)

		svc := newDetailService(mockDetail, &MockRoomRepo{}, &MockRecordingStore{})
		_, err := svc.RecordingURL(context.Background(), 4)

		assert.ErrorIs(t, err, ErrRecordingNotFound)
	})
}
