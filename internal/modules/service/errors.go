package service

import "errors"

// The closed error set handlers discriminate on. Message texts are part of the
// wire format, so they stay exactly as clients already expect them.
var (
	ErrRoomNotFound          = errors.New("Room not found")
	ErrDetailNotFound        = errors.New("Detail not found")
	ErrDetailNotFoundForRoom = errors.New("Detail not found for this room")
	ErrHistoryNotFound       = errors.New("History not found")
	ErrRecordingNotFound     = errors.New("Recording not found for this detail")
)

// ValidationError marks missing or malformed required input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}
