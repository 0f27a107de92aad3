package model

import (
	"time"
)

type MeetingHistory struct {
	ID              int       `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID          int       `gorm:"not null;index:fk_history_room" json:"room_id"`
	MentorID        int       `gorm:"not null" json:"mentor_id"`
	UserID          int       `gorm:"not null" json:"user_id"`
	DurationMinutes *int      `json:"duration_minutes"`
	CompletedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"completed_at"`

	// History <-> Room
	Room *MeetingRoom `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"room,omitempty"`
}

func (MeetingHistory) TableName() string { return "meetinghistory" }
