package repo

import (
	"context"
	"errors"

	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"gorm.io/gorm"
)

type HistoryFilter struct {
	RoomID   *int
	MentorID *int
	UserID   *int
}

// DurationStats is the aggregate over duration_minutes for a filtered set.
// Sum and average are null when no row carries a duration.
type DurationStats struct {
	TotalMeetings          int64    `json:"total_meetings"`
	TotalDurationMinutes   *int64   `json:"total_duration_minutes"`
	AverageDurationMinutes *float64 `json:"average_duration_minutes"`
}

type HistoryRepo interface {
	List(ctx context.Context, f HistoryFilter, limit int) ([]model.MeetingHistory, error)
	GetByID(ctx context.Context, id int) (*model.MeetingHistory, error)
	Create(ctx context.Context, h *model.MeetingHistory) error
	Update(ctx context.Context, id int, fields map[string]interface{}) (*model.MeetingHistory, error)
	Delete(ctx context.Context, id int) (bool, error)
	DurationStats(ctx context.Context, f HistoryFilter) (*DurationStats, error)
}

type historyRepo struct{ db *gorm.DB }

func NewHistoryRepo(db *gorm.DB) HistoryRepo {
	return &historyRepo{db: db}
}

func (r *historyRepo) filtered(ctx context.Context, f HistoryFilter) *gorm.DB {
	q := r.db.WithContext(ctx)
	if f.RoomID != nil {
		q = q.Where("room_id = ?", *f.RoomID)
	}
	if f.MentorID != nil {
		q = q.Where("mentor_id = ?", *f.MentorID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	return q
}

func (r *historyRepo) List(ctx context.Context, f HistoryFilter, limit int) ([]model.MeetingHistory, error) {
	var items []model.MeetingHistory
	return items, r.filtered(ctx, f).
		Preload("Room").
		Order("completed_at DESC").
		Limit(limit).
		Find(&items).Error
}

func (r *historyRepo) GetByID(ctx context.Context, id int) (*model.MeetingHistory, error) {
	var h model.MeetingHistory
	err := r.db.WithContext(ctx).Preload("Room").First(&h, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *historyRepo) Create(ctx context.Context, h *model.MeetingHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historyRepo) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.MeetingHistory, error) {
	h, err := r.GetByID(ctx, id)
	if err != nil || h == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(h).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *historyRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.MeetingHistory{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *historyRepo) DurationStats(ctx context.Context, f HistoryFilter) (*DurationStats, error) {
	var stats DurationStats
	err := r.filtered(ctx, f).
		Model(&model.MeetingHistory{}).
		Select("COUNT(id) AS total_meetings, SUM(duration_minutes) AS total_duration_minutes, AVG(duration_minutes) AS average_duration_minutes").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
