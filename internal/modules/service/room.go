package service

import (
	"context"
	"strings"
	"time"

	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
)

type RoomService interface {
	List(ctx context.Context, f repo.RoomFilter) ([]model.MeetingRoom, error)
	GetByID(ctx context.Context, id int) (*model.MeetingRoom, error)
	Create(ctx context.Context, in CreateRoomInput) (*model.MeetingRoom, error)
	Update(ctx context.Context, id int, in UpdateRoomInput) (*model.MeetingRoom, error)
	Delete(ctx context.Context, id int) error
	ListByStatus(ctx context.Context, status string) ([]model.MeetingRoom, error)
	ListByUser(ctx context.Context, userID int) ([]model.MeetingRoom, error)
	ListByMentor(ctx context.Context, mentorID int) ([]model.MeetingRoom, error)
}

type roomService struct{ r repo.RoomRepo }

func NewRoomService(r repo.RoomRepo) RoomService {
	return &roomService{r: r}
}

func (s *roomService) List(ctx context.Context, f repo.RoomFilter) ([]model.MeetingRoom, error) {
	return s.r.List(ctx, f)
}

func (s *roomService) GetByID(ctx context.Context, id int) (*model.MeetingRoom, error) {
	room, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// CreateRoomInput carries room creation fields. Required fields are pointers
// so that absence is distinguishable from a zero value.
type CreateRoomInput struct {
	RoomName  string
	MentorID  *int
	UserID    *int
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

func (s *roomService) Create(ctx context.Context, in CreateRoomInput) (*model.MeetingRoom, error) {
	if in.RoomName == "" || in.MentorID == nil || in.UserID == nil || in.StartTime == nil {
		return nil, validationErr("Missing required fields: room_name, mentor_id, user_id, start_time")
	}

	status := model.StatusScheduled
	if in.Status != nil && *in.Status != "" {
		if !model.ValidRoomStatus(*in.Status) {
			return nil, invalidStatusErr()
		}
		status = *in.Status
	}

	room := &model.MeetingRoom{
		RoomName:  in.RoomName,
		MentorID:  *in.MentorID,
		UserID:    *in.UserID,
		StartTime: *in.StartTime,
		EndTime:   in.EndTime,
		Status:    status,
	}
	if err := s.r.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// UpdateRoomInput is a partial update: only non-nil fields change.
type UpdateRoomInput struct {
	RoomName  *string
	MentorID  *int
	UserID    *int
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

func (s *roomService) Update(ctx context.Context, id int, in UpdateRoomInput) (*model.MeetingRoom, error) {
	fields := map[string]interface{}{}
	if in.RoomName != nil {
		fields["room_name"] = *in.RoomName
	}
	if in.MentorID != nil {
		fields["mentor_id"] = *in.MentorID
	}
	if in.UserID != nil {
		fields["user_id"] = *in.UserID
	}
	if in.StartTime != nil {
		fields["start_time"] = *in.StartTime
	}
	if in.EndTime != nil {
		fields["end_time"] = *in.EndTime
	}
	if in.Status != nil {
		if !model.ValidRoomStatus(*in.Status) {
			return nil, invalidStatusErr()
		}
		fields["status"] = *in.Status
	}

	room, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) Delete(ctx context.Context, id int) error {
	deleted, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRoomNotFound
	}
	return nil
}

func (s *roomService) ListByStatus(ctx context.Context, status string) ([]model.MeetingRoom, error) {
	if !model.ValidRoomStatus(status) {
		return nil, invalidStatusErr()
	}
	return s.r.List(ctx, repo.RoomFilter{Status: &status})
}

func (s *roomService) ListByUser(ctx context.Context, userID int) ([]model.MeetingRoom, error) {
	return s.r.List(ctx, repo.RoomFilter{UserID: &userID})
}

func (s *roomService) ListByMentor(ctx context.Context, mentorID int) ([]model.MeetingRoom, error) {
	return s.r.List(ctx, repo.RoomFilter{MentorID: &mentorID})
}

func invalidStatusErr() error {
	return validationErr("Invalid status. Must be one of: " + strings.Join(model.RoomStatuses, ", "))
}
