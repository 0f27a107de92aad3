package model

import (
	"time"
)

// Room status values. Status is a free-standing label: the API validates that a
// value belongs to this set but does not gate transitions between them.
const (
	StatusScheduled = "scheduled"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// RoomStatuses lists every recognized status value, in the order they are
// reported in validation errors.
var RoomStatuses = []string{StatusScheduled, StatusOngoing, StatusCompleted, StatusCanceled}

// ValidRoomStatus reports whether s is one of the recognized status values.
func ValidRoomStatus(s string) bool {
	for _, v := range RoomStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type MeetingRoom struct {
	ID        int        `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomName  string     `gorm:"type:varchar(100);not null" json:"room_name"`
	MentorID  int        `gorm:"not null" json:"mentor_id"`
	UserID    int        `gorm:"not null" json:"user_id"`
	StartTime time.Time  `gorm:"not null" json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    string     `gorm:"type:varchar(20);default:'scheduled'" json:"status"`

	// Room <-> Detail (at most one per room)
	Detail *MeetingRoomDetail `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"detail,omitempty"`

	// Room <-> History
	History []MeetingHistory `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"history,omitempty"`
}

func (MeetingRoom) TableName() string { return "meetingroom" }
