package service

import (
	"context"

	"github.com/mentorhub-io/meetingroom-api/internal/config"
	"github.com/mentorhub-io/meetingroom-api/internal/infra/queue"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Default list limits, matching the per-scope defaults clients rely on.
const (
	DefaultHistoryLimit       = 50
	DefaultRoomHistoryLimit   = 10
	DefaultUserHistoryLimit   = 20
	DefaultMentorHistoryLimit = 20
)

type HistoryService interface {
	List(ctx context.Context, f repo.HistoryFilter, limit int) ([]model.MeetingHistory, error)
	GetByID(ctx context.Context, id int) (*model.MeetingHistory, error)
	ListByRoom(ctx context.Context, roomID, limit int) ([]model.MeetingHistory, error)
	ListByUser(ctx context.Context, userID, limit int) ([]model.MeetingHistory, error)
	ListByMentor(ctx context.Context, mentorID, limit int) ([]model.MeetingHistory, error)
	Create(ctx context.Context, in CreateHistoryInput) (*model.MeetingHistory, error)
	Update(ctx context.Context, id int, in UpdateHistoryInput) (*model.MeetingHistory, error)
	Delete(ctx context.Context, id int) error
	DurationStats(ctx context.Context, f repo.HistoryFilter) (*repo.DurationStats, error)
}

type historyService struct {
	r     repo.HistoryRepo
	rooms repo.RoomRepo
	log   *zap.Logger
	mq    *amqp.Connection
	cfg   *config.Config
}

func NewHistoryService(r repo.HistoryRepo, rooms repo.RoomRepo, log *zap.Logger, mq *amqp.Connection, cfg *config.Config) HistoryService {
	return &historyService{
		r:     r,
		rooms: rooms,
		log:   log,
		mq:    mq,
		cfg:   cfg,
	}
}

func (s *historyService) List(ctx context.Context, f repo.HistoryFilter, limit int) ([]model.MeetingHistory, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.r.List(ctx, f, limit)
}

func (s *historyService) GetByID(ctx context.Context, id int) (*model.MeetingHistory, error) {
	h, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHistoryNotFound
	}
	return h, nil
}

func (s *historyService) ListByRoom(ctx context.Context, roomID, limit int) ([]model.MeetingHistory, error) {
	if limit <= 0 {
		limit = DefaultRoomHistoryLimit
	}
	return s.r.List(ctx, repo.HistoryFilter{RoomID: &roomID}, limit)
}

func (s *historyService) ListByUser(ctx context.Context, userID, limit int) ([]model.MeetingHistory, error) {
	if limit <= 0 {
		limit = DefaultUserHistoryLimit
	}
	return s.r.List(ctx, repo.HistoryFilter{UserID: &userID}, limit)
}

func (s *historyService) ListByMentor(ctx context.Context, mentorID, limit int) ([]model.MeetingHistory, error) {
	if limit <= 0 {
		limit = DefaultMentorHistoryLimit
	}
	return s.r.List(ctx, repo.HistoryFilter{MentorID: &mentorID}, limit)
}

type CreateHistoryInput struct {
	RoomID          *int
	MentorID        *int
	UserID          *int
	DurationMinutes *int
}

func (s *historyService) Create(ctx context.Context, in CreateHistoryInput) (*model.MeetingHistory, error) {
	if in.RoomID == nil || in.MentorID == nil || in.UserID == nil {
		return nil, validationErr("Missing required fields: room_id, mentor_id, user_id")
	}

	room, err := s.rooms.GetByID(ctx, *in.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	h := &model.MeetingHistory{
		RoomID:          *in.RoomID,
		MentorID:        *in.MentorID,
		UserID:          *in.UserID,
		DurationMinutes: in.DurationMinutes,
	}
	if err := s.r.Create(ctx, h); err != nil {
		return nil, err
	}

	s.publishCompleted(ctx, h)

	return h, nil
}

// publishCompleted emits a meeting-completed event. The row is already
// written, so publish failures are logged, not surfaced.
func (s *historyService) publishCompleted(ctx context.Context, h *model.MeetingHistory) {
	if s.mq == nil {
		return
	}
	p, err := queue.NewPublisher(s.mq, s.cfg.RabbitMQ.ExchangeName, s.log)
	if err != nil {
		s.log.Warn("create history publisher", zap.Error(err))
		return
	}
	defer p.Close()
	if err := p.PublishJSON(ctx, s.cfg.RabbitMQ.RoutingKey, h); err != nil {
		s.log.Warn("publish history event", zap.Error(err), zap.Int("history_id", h.ID))
	}
}

type UpdateHistoryInput struct {
	RoomID          *int
	MentorID        *int
	UserID          *int
	DurationMinutes *int
}

func (s *historyService) Update(ctx context.Context, id int, in UpdateHistoryInput) (*model.MeetingHistory, error) {
	fields := map[string]interface{}{}
	if in.RoomID != nil {
		fields["room_id"] = *in.RoomID
	}
	if in.MentorID != nil {
		fields["mentor_id"] = *in.MentorID
	}
	if in.UserID != nil {
		fields["user_id"] = *in.UserID
	}
	if in.DurationMinutes != nil {
		fields["duration_minutes"] = *in.DurationMinutes
	}

	h, err := s.r.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrHistoryNotFound
	}
	return h, nil
}

func (s *historyService) Delete(ctx context.Context, id int) error {
	deleted, err := s.r.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHistoryNotFound
	}
	return nil
}

func (s *historyService) DurationStats(ctx context.Context, f repo.HistoryFilter) (*repo.DurationStats, error) {
	return s.r.DurationStats(ctx, f)
}
