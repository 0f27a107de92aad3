package model

type MeetingRoomDetail struct {
	ID              int     `gorm:"primaryKey;autoIncrement" json:"id"`
	RoomID          int     `gorm:"not null;index:fk_detail_room" json:"room_id"`
	MeetingLink     string  `gorm:"type:varchar(255);not null" json:"meeting_link"`
	MeetingPassword *string `gorm:"type:varchar(50)" json:"meeting_password"`
	Notes           *string `gorm:"type:text" json:"notes"`
	// RecordedURL holds the storage object key once a recording is attached.
	RecordedURL *string `gorm:"type:varchar(255)" json:"recorded_url"`

	// Detail <-> Room
	Room *MeetingRoom `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"room,omitempty"`
}

func (MeetingRoomDetail) TableName() string { return "meetingroomdetail" }
