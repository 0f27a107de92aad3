package repo

import (
	"context"
	"errors"

	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"gorm.io/gorm"
)

type DetailFilter struct {
	RoomID *int
}

type DetailRepo interface {
	List(ctx context.Context, f DetailFilter) ([]model.MeetingRoomDetail, error)
	GetByID(ctx context.Context, id int) (*model.MeetingRoomDetail, error)
	// GetByRoomID returns the first detail row for a room, or nil.
	GetByRoomID(ctx context.Context, roomID int) (*model.MeetingRoomDetail, error)
	Create(ctx context.Context, d *model.MeetingRoomDetail) error
	Update(ctx context.Context, id int, fields map[string]interface{}) (*model.MeetingRoomDetail, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type detailRepo struct{ db *gorm.DB }

func NewDetailRepo(db *gorm.DB) DetailRepo {
	return &detailRepo{db: db}
}

func (r *detailRepo) List(ctx context.Context, f DetailFilter) ([]model.MeetingRoomDetail, error) {
	q := r.db.WithContext(ctx).Preload("Room")
	if f.RoomID != nil {
		q = q.Where("room_id = ?", *f.RoomID)
	}

	var details []model.MeetingRoomDetail
	return details, q.Find(&details).Error
}

func (r *detailRepo) GetByID(ctx context.Context, id int) (*model.MeetingRoomDetail, error) {
	var detail model.MeetingRoomDetail
	err := r.db.WithContext(ctx).Preload("Room").First(&detail, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *detailRepo) GetByRoomID(ctx context.Context, roomID int) (*model.MeetingRoomDetail, error) {
	var detail model.MeetingRoomDetail
	err := r.db.WithContext(ctx).Preload("Room").Where("room_id = ?", roomID).First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *detailRepo) Create(ctx context.Context, d *model.MeetingRoomDetail) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *detailRepo) Update(ctx context.Context, id int, fields map[string]interface{}) (*model.MeetingRoomDetail, error) {
	detail, err := r.GetByID(ctx, id)
	if err != nil || detail == nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(detail).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

func (r *detailRepo) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.MeetingRoomDetail{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
