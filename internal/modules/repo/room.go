package repo

import (
	"context"
	"errors"

	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"gorm.io/gorm"
)

// RoomFilter narrows room list queries. Nil fields are not applied.
type RoomFilter struct {
	Status   *string
	MentorID *int
	UserID   *int
}

type RoomRepo interface {
	List(ctx context.Context, f RoomFilter) ([]model.MeetingRoom, error)
	GetByID(ctx context.Context, id int) (*model.MeetingRoom, error)
	Create(ctx context.Context, room *model.MeetingRoom) error
	// Update applies the given column values and returns the refreshed row,
	// or nil when the id does not exist.
	Update(ctx context.Context, id int, fields map[string]interface{}) (*model.MeetingRoom, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int) (bool, error)
}

type roomRepo struct{ db *gorm.DB }

func NewRoomRepo(db *gorm.DB) RoomRepo {
	return &roomRepo{db: db}
}

func (r *roomRepo) List(ctx context.Context, f RoomFilter) ([]model.MeetingRoom, error) {
	q := r.db.WithContext(ctx).Preload("Detail")
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.MentorID != nil {
		q = q.Where("mentor_id = ?", *f.MentorID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}

	var rooms []model.MeetingRoom
	return rooms, q.Order("start_time DESC").Find(&rooms).Error
}

func (r *roomRepo) GetByID(ctx context.Context, id int) (*model.MeetingRoom, error) {
	var room model.MeetingRoom
	err := r.db.WithContext(ctx).Preload("Detail").First(&room, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepo) Create(ctx context.Context, room *model.MeetingRoom) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *roomRepo) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.MeetingRoom, error) {
	room, err := r.GetByID(ctx, id)
	if err != nil || room == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(room).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *roomRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.MeetingRoom{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
