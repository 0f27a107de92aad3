package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/serializer"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/service"
)

type RoomHandler struct {
	svc service.RoomService
}

func NewRoomHandler(s service.RoomService) *RoomHandler {
	return &RoomHandler{svc: s}
}

// ListRooms godoc
//
//	@Summary		List rooms
//	@Description	List meeting rooms with their details, optionally filtered by status, mentor or user
//	@Tags			rooms
//	@Produce		json
//	@Param			status		query	string	false	"Filter by status"	Enums(scheduled, ongoing, completed, canceled)
//	@Param			mentor_id	query	integer	false	"Filter by mentor id"
//	@Param			user_id		query	integer	false	"Filter by user id"
//	@Success		200	{array}		model.MeetingRoom
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	var f repo.RoomFilter
	if s := c.Query("status"); s != "" {
		f.Status = &s
	}
	var err error
	if f.MentorID, err = intQuery(c, "mentor_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	if f.UserID, err = intQuery(c, "user_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	rooms, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom godoc
//
//	@Summary		Get room
//	@Description	Get one meeting room by id, joined with its detail
//	@Tags			rooms
//	@Produce		json
//	@Param			id	path	integer	true	"Room ID"
//	@Success		200	{object}	model.MeetingRoom
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	room, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, room)
}

type CreateRoomReq struct {
	RoomName  string     `json:"room_name" example:"Weekly sync"`
	MentorID  *int       `json:"mentor_id" example:"1"`
	UserID    *int       `json:"user_id" example:"2"`
	StartTime *time.Time `json:"start_time" example:"2024-01-01T10:00:00Z"`
	EndTime   *time.Time `json:"end_time"`
	Status    *string    `json:"status" example:"scheduled"`
}

// CreateRoom godoc
//
//	@Summary		Create room
//	@Description	Create a meeting room; status defaults to scheduled
//	@Tags			rooms
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateRoomReq	true	"CreateRoom payload"
//	@Success		201	{object}	model.MeetingRoom
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	req := CreateRoomReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	room, err := h.svc.Create(c.Request.Context(), service.CreateRoomInput{
		RoomName:  req.RoomName,
		MentorID:  req.MentorID,
		UserID:    req.UserID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
	})
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusCreated, room)
}

type UpdateRoomReq struct {
	RoomName  *string    `json:"room_name"`
	MentorID  *int       `json:"mentor_id"`
	UserID    *int       `json:"user_id"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	Status    *string    `json:"status"`
}

// UpdateRoom godoc
//
//	@Summary		Update room
//	@Description	Partially update a meeting room; only supplied fields change
//	@Tags			rooms
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer					true	"Room ID"
//	@Param			payload	body	handler.UpdateRoomReq	true	"UpdateRoom payload"
//	@Success		200	{object}	model.MeetingRoom
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	req := UpdateRoomReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	room, err := h.svc.Update(c.Request.Context(), id, service.UpdateRoomInput{
		RoomName:  req.RoomName,
		MentorID:  req.MentorID,
		UserID:    req.UserID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, serializer.Err(err))
		case errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, serializer.Err(err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.Err(err))
		}
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom godoc
//
//	@Summary		Delete room
//	@Description	Delete a meeting room; dependent detail and history rows cascade
//	@Tags			rooms
//	@Produce		json
//	@Param			id	path	integer	true	"Room ID"
//	@Success		200	{object}	serializer.MessageResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Msg("Room deleted successfully"))
}

// ListRoomsByStatus godoc
//
//	@Summary		List rooms by status
//	@Description	List meeting rooms in one of the recognized statuses
//	@Tags			rooms
//	@Produce		json
//	@Param			status	path	string	true	"Room status"	Enums(scheduled, ongoing, completed, canceled)
//	@Success		200	{array}		model.MeetingRoom
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms/status/{status} [get]
func (h *RoomHandler) ListRoomsByStatus(c *gin.Context) {
	rooms, err := h.svc.ListByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ListRoomsByUser godoc
//
//	@Summary		List rooms by user
//	@Tags			rooms
//	@Produce		json
//	@Param			userId	path	integer	true	"User ID"
//	@Success		200	{array}		model.MeetingRoom
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms/user/{userId} [get]
func (h *RoomHandler) ListRoomsByUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	rooms, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ListRoomsByMentor godoc
//
//	@Summary		List rooms by mentor
//	@Tags			rooms
//	@Produce		json
//	@Param			mentorId	path	integer	true	"Mentor ID"
//	@Success		200	{array}		model.MeetingRoom
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/rooms/mentor/{mentorId} [get]
func (h *RoomHandler) ListRoomsByMentor(c *gin.Context) {
	mentorID, err := pathID(c, "mentorId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	rooms, err := h.svc.ListByMentor(c.Request.Context(), mentorID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, rooms)
}
