package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/serializer"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/service"
)

type HistoryHandler struct {
	svc service.HistoryService
}

func NewHistoryHandler(s service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: s}
}

// ListHistory godoc
//
//	@Summary		List meeting history
//	@Description	List completed-meeting records joined with their room, newest first
//	@Tags			meeting-history
//	@Produce		json
//	@Param			room_id		query	integer	false	"Filter by room id"
//	@Param			mentor_id	query	integer	false	"Filter by mentor id"
//	@Param			user_id		query	integer	false	"Filter by user id"
//	@Param			limit		query	integer	false	"Max rows to return, default 50"
//	@Success		200	{array}		model.MeetingHistory
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history [get]
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	var f repo.HistoryFilter
	var err error
	if f.RoomID, err = intQuery(c, "room_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	if f.MentorID, err = intQuery(c, "mentor_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	if f.UserID, err = intQuery(c, "user_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	limit, err := limitQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	items, err := h.svc.List(c.Request.Context(), f, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetHistory godoc
//
//	@Summary		Get history record
//	@Tags			meeting-history
//	@Produce		json
//	@Param			id	path	integer	true	"History ID"
//	@Success		200	{object}	model.MeetingHistory
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history/{id} [get]
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	item, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// ListHistoryByRoom godoc
//
//	@Summary		List history by room
//	@Tags			meeting-history
//	@Produce		json
//	@Param			roomId	path	integer	true	"Room ID"
//	@Param			limit	query	integer	false	"Max rows to return, default 10"
//	@Success		200	{array}		model.MeetingHistory
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history/room/{roomId} [get]
func (h *HistoryHandler) ListHistoryByRoom(c *gin.Context) {
	roomID, err := pathID(c, "roomId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	limit, err := limitQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	items, err := h.svc.ListByRoom(c.Request.Context(), roomID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListHistoryByUser godoc
//
//	@Summary		List history by user
//	@Tags			meeting-history
//	@Produce		json
//	@Param			userId	path	integer	true	"User ID"
//	@Param			limit	query	integer	false	"Max rows to return, default 20"
//	@Success		200	{array}		model.MeetingHistory
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history/user/{userId} [get]
func (h *HistoryHandler) ListHistoryByUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	limit, err := limitQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	items, err := h.svc.ListByUser(c.Request.Context(), userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListHistoryByMentor godoc
//
//	@Summary		List history by mentor
//	@Tags			meeting-history
//	@Produce		json
//	@Param			mentorId	path	integer	true	"Mentor ID"
//	@Param			limit		query	integer	false	"Max rows to return, default 20"
//	@Success		200	{array}		model.MeetingHistory
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history/mentor/{mentorId} [get]
func (h *HistoryHandler) ListHistoryByMentor(c *gin.Context) {
	mentorID, err := pathID(c, "mentorId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	limit, err := limitQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	items, err := h.svc.ListByMentor(c.Request.Context(), mentorID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

type CreateHistoryReq struct {
	RoomID          *int `json:"room_id" example:"1"`
	MentorID        *int `json:"mentor_id" example:"1"`
	UserID          *int `json:"user_id" example:"2"`
	DurationMinutes *int `json:"duration_minutes" example:"45"`
}

// CreateHistory godoc
//
//	@Summary		Create history record
//	@Description	Record a completed meeting; completed_at defaults to now
//	@Tags			meeting-history
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateHistoryReq	true	"CreateHistory payload"
//	@Success		201	{object}	model.MeetingHistory
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history [post]
func (h *HistoryHandler) CreateHistory(c *gin.Context) {
	req := CreateHistoryReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	item, err := h.svc.Create(c.Request.Context(), service.CreateHistoryInput{
		RoomID:          req.RoomID,
		MentorID:        req.MentorID,
		UserID:          req.UserID,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.Is(err, service.ErrRoomNotFound), errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, serializer.Err(err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.Err(err))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

type UpdateHistoryReq struct {
	RoomID          *int `json:"room_id"`
	MentorID        *int `json:"mentor_id"`
	UserID          *int `json:"user_id"`
	DurationMinutes *int `json:"duration_minutes"`
}

// UpdateHistory godoc
//
//	@Summary		Update history record
//	@Description	Partially update a history record; only supplied fields change
//	@Tags			meeting-history
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer						true	"History ID"
//	@Param			payload	body	handler.UpdateHistoryReq	true	"UpdateHistory payload"
//	@Success		200	{object}	model.MeetingHistory
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history/{id} [put]
func (h *HistoryHandler) UpdateHistory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	req := UpdateHistoryReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, service.UpdateHistoryInput{
		RoomID:          req.RoomID,
		MentorID:        req.MentorID,
		UserID:          req.UserID,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteHistory godoc
//
//	@Summary		Delete history record
//	@Tags			meeting-history
//	@Produce		json
//	@Param			id	path	integer	true	"History ID"
//	@Success		200	{object}	serializer.MessageResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history/{id} [delete]
func (h *HistoryHandler) DeleteHistory(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrHistoryNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Msg("History deleted successfully"))
}

// GetDurationStats godoc
//
//	@Summary		Meeting duration statistics
//	@Description	Count, total and average duration over the filtered history set
//	@Tags			meeting-history
//	@Produce		json
//	@Param			mentor_id	query	integer	false	"Filter by mentor id"
//	@Param			user_id		query	integer	false	"Filter by user id"
//	@Success		200	{object}	repo.DurationStats
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/meeting-history/stats/duration [get]
func (h *HistoryHandler) GetDurationStats(c *gin.Context) {
	var f repo.HistoryFilter
	var err error
	if f.MentorID, err = intQuery(c, "mentor_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}
	if f.UserID, err = intQuery(c, "user_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	stats, err := h.svc.DurationStats(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, stats)
}
