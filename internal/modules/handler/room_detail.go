package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/serializer"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/service"
)

type DetailHandler struct {
	svc service.DetailService
}

func NewDetailHandler(s service.DetailService) *DetailHandler {
	return &DetailHandler{svc: s}
}

// ListDetails godoc
//
//	@Summary		List room details
//	@Description	List room details joined with their room, optionally filtered by room id
//	@Tags			room-details
//	@Produce		json
//	@Param			room_id	query	integer	false	"Filter by room id"
//	@Success		200	{array}		model.MeetingRoomDetail
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details [get]
func (h *DetailHandler) ListDetails(c *gin.Context) {
	var f repo.DetailFilter
	var err error
	if f.RoomID, err = intQuery(c, "room_id"); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	details, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, details)
}

// GetDetail godoc
//
//	@Summary		Get room detail
//	@Tags			room-details
//	@Produce		json
//	@Param			id	path	integer	true	"Detail ID"
//	@Success		200	{object}	model.MeetingRoomDetail
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details/{id} [get]
func (h *DetailHandler) GetDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	detail, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrDetailNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetDetailByRoom godoc
//
//	@Summary		Get room detail by room
//	@Description	Get the detail row attached to a room
//	@Tags			room-details
//	@Produce		json
//	@Param			roomId	path	integer	true	"Room ID"
//	@Success		200	{object}	model.MeetingRoomDetail
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details/room/{roomId} [get]
func (h *DetailHandler) GetDetailByRoom(c *gin.Context) {
	roomID, err := pathID(c, "roomId")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	detail, err := h.svc.GetByRoomID(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, service.ErrDetailNotFoundForRoom) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, detail)
}

type CreateDetailReq struct {
	RoomID          *int    `json:"room_id" example:"1"`
	MeetingLink     string  `json:"meeting_link" example:"https://meet.example.com/abc"`
	MeetingPassword *string `json:"meeting_password"`
	Notes           *string `json:"notes"`
	RecordedURL     *string `json:"recorded_url"`
}

// CreateDetail godoc
//
//	@Summary		Create room detail
//	@Description	Attach connection metadata to an existing room
//	@Tags			room-details
//	@Accept			json
//	@Produce		json
//	@Param			payload	body	handler.CreateDetailReq	true	"CreateDetail payload"
//	@Success		201	{object}	model.MeetingRoomDetail
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details [post]
func (h *DetailHandler) CreateDetail(c *gin.Context) {
	req := CreateDetailReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	detail, err := h.svc.Create(c.Request.Context(), service.CreateDetailInput{
		RoomID:          req.RoomID,
		MeetingLink:     req.MeetingLink,
		MeetingPassword: req.MeetingPassword,
		Notes:           req.Notes,
		RecordedURL:     req.RecordedURL,
	})
	if err != nil {
		var ve *service.ValidationError
		switch {
		// a dangling room_id is a bad request, not a missing resource
		case errors.Is(err, service.ErrRoomNotFound), errors.As(err, &ve):
			c.JSON(http.StatusBadRequest, serializer.Err(err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.Err(err))
		}
		return
	}
	c.JSON(http.StatusCreated, detail)
}

type UpdateDetailReq struct {
	RoomID          *int    `json:"room_id"`
	MeetingLink     *string `json:"meeting_link"`
	MeetingPassword *string `json:"meeting_password"`
	Notes           *string `json:"notes"`
	RecordedURL     *string `json:"recorded_url"`
}

// UpdateDetail godoc
//
//	@Summary		Update room detail
//	@Description	Partially update a room detail; only supplied fields change
//	@Tags			room-details
//	@Accept			json
//	@Produce		json
//	@Param			id		path	integer					true	"Detail ID"
//	@Param			payload	body	handler.UpdateDetailReq	true	"UpdateDetail payload"
//	@Success		200	{object}	model.MeetingRoomDetail
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details/{id} [put]
func (h *DetailHandler) UpdateDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	req := UpdateDetailReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	detail, err := h.svc.Update(c.Request.Context(), id, service.UpdateDetailInput{
		RoomID:          req.RoomID,
		MeetingLink:     req.MeetingLink,
		MeetingPassword: req.MeetingPassword,
		Notes:           req.Notes,
		RecordedURL:     req.RecordedURL,
	})
	if err != nil {
		if errors.Is(err, service.ErrDetailNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, detail)
}

// DeleteDetail godoc
//
//	@Summary		Delete room detail
//	@Tags			room-details
//	@Produce		json
//	@Param			id	path	integer	true	"Detail ID"
//	@Success		200	{object}	serializer.MessageResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details/{id} [delete]
func (h *DetailHandler) DeleteDetail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDetailNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusOK, serializer.Msg("Detail deleted successfully"))
}

// UploadRecording godoc
//
//	@Summary		Upload meeting recording
//	@Description	Store a recording in object storage and attach its key to the detail
//	@Tags			room-details
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		integer	true	"Detail ID"
//	@Param			file	formData	file	true	"Recording file"
//	@Success		201	{object}	model.MeetingRoomDetail
//	@Failure		400	{object}	serializer.ErrorResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details/{id}/recording [post]
func (h *DetailHandler) UploadRecording(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(errors.New("missing file upload")))
		return
	}

	detail, err := h.svc.AttachRecording(c.Request.Context(), id, fh)
	if err != nil {
		if errors.Is(err, service.ErrDetailNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.Err(err))
		return
	}
	c.JSON(http.StatusCreated, detail)
}

// GetRecordingURL godoc
//
//	@Summary		Get recording download link
//	@Description	Pre-signed URL for the stored recording; expiry is configured server-side
//	@Tags			room-details
//	@Produce		json
//	@Param			id	path	integer	true	"Detail ID"
//	@Success		200	{object}	serializer.URLResponse
//	@Failure		404	{object}	serializer.ErrorResponse
//	@Failure		500	{object}	serializer.ErrorResponse
//	@Router			/room-details/{id}/recording [get]
func (h *DetailHandler) GetRecordingURL(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.Err(err))
		return
	}

	url, err := h.svc.RecordingURL(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDetailNotFound), errors.Is(err, service.ErrRecordingNotFound):
			c.JSON(http.StatusNotFound, serializer.Err(err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.Err(err))
		}
		return
	}
	c.JSON(http.StatusOK, serializer.URLResponse{URL: url})
}
