package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/mentorhub-io/meetingroom-api/internal/infra/blob"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
)

type DetailService interface {
	List(ctx context.Context, f repo.DetailFilter) ([]model.MeetingRoomDetail, error)
	GetByID(ctx context.Context, id int) (*model.MeetingRoomDetail, error)
	GetByRoomID(ctx context.Context, roomID int) (*model.MeetingRoomDetail, error)
	Create(ctx context.Context, in CreateDetailInput) (*model.MeetingRoomDetail, error)
	Update(ctx context.Context, id int, in UpdateDetailInput) (*model.MeetingRoomDetail, error)
	Delete(ctx context.Context, id int) error
	AttachRecording(ctx context.Context, id int, fh *multipart.FileHeader) (*model.MeetingRoomDetail, error)
	RecordingURL(ctx context.Context, id int) (string, error)
}

// RecordingStore is the subset of blob storage the detail service needs.
type RecordingStore interface {
	UploadFormFile(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error)
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
}

type detailService struct {
	r             repo.DetailRepo
	rooms         repo.RoomRepo
	store         RecordingStore
	presignExpire func() time.Duration
}

func NewDetailService(r repo.DetailRepo, rooms repo.RoomRepo, store RecordingStore, presignExpire func() time.Duration) DetailService {
	return &detailService{
		r:             r,
		rooms:         rooms,
		store:         store,
		presignExpire: presignExpire,
	}
}

func (s *detailService) List(ctx context.Context, f repo.DetailFilter) ([]model.MeetingRoomDetail, error) {
	return s.r.List(ctx, f)
}

func (s *detailService) GetByID(ctx context.Context, id int) (*model.MeetingRoomDetail, error) {
	detail, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrDetailNotFound
	}
	return detail, nil
}

func (s *detailService) GetByRoomID(ctx context.Context, roomID int) (*model.MeetingRoomDetail, error) {
	detail, err := s.r.GetByRoomID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrDetailNotFoundForRoom
	}
	return detail, nil
}

type CreateDetailInput struct {
	RoomID          *int
	MeetingLink     string
	MeetingPassword *string
	Notes           *string
	RecordedURL     *string
}

func (s *detailService) Create(ctx context.Context, in CreateDetailInput) (*model.MeetingRoomDetail, error) {
	if in.RoomID == nil || in.MeetingLink == "" {
		return nil, validationErr("Missing required fields: room_id, meeting_link")
	}

	// Existence check first so a dangling room_id yields the friendly error;
	// the FK constraint still rejects an insert that races a room delete.
	room, err := s.rooms.GetByID(ctx, *in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	detail := &model.MeetingRoomDetail{
		RoomID:          *in.RoomID,
		MeetingLink:     in.MeetingLink,
		MeetingPassword: in.MeetingPassword,
		Notes:           in.Notes,
		RecordedURL:     in.RecordedURL,
	}
	if err := s.r.Create(ctx, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

type UpdateDetailInput struct {
	RoomID          *int
	MeetingLink     *string
	MeetingPassword *string
	Notes           *string
	RecordedURL     *string
}

func (s *detailService) Update(ctx context.Context, id int, in UpdateDetailInput) (*model.MeetingRoomDetail, error) {
	fields := map[string]interface{}{}
	if in.RoomID != nil {
		fields["room_id"] = *in.RoomID
	}
	if in.MeetingLink != nil {
		fields["meeting_link"] = *in.MeetingLink
	}
	if in.MeetingPassword != nil {
		fields["meeting_password"] = *in.MeetingPassword
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.RecordedURL != nil {
		fields["recorded_url"] = *in.RecordedURL
	}

	detail, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrDetailNotFound
	}
	return detail, nil
}

func (s *detailService) Delete(ctx context.Context, id int) error {
	deleted, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDetailNotFound
	}
	return nil
}

func (s *detailService) AttachRecording(ctx context.Context, id int, fh *multipart.FileHeader) (*model.MeetingRoomDetail, error) {
	detail, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, ErrDetailNotFound
	}

	meta, err := s.store.UploadFormFile(ctx, "recordings", fh)
	if err != nil {
		return nil, err
	}

	updated, err := s.r.Update(ctx, id, map[string]interface{}{"recorded_url": meta.Key})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrDetailNotFound
	}
	return updated, nil
}

func (s *detailService) RecordingURL(ctx context.Context, id int) (string, error) {
	detail, err := s.r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if detail == nil {
		return "", ErrDetailNotFound
	}
	if detail.RecordedURL == nil || *detail.RecordedURL == "" {
		return "", ErrRecordingNotFound
	}
	return s.store.PresignGet(ctx, *detail.RecordedURL, s.presignExpire())
}
