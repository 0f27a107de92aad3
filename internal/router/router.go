package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/mentorhub-io/meetingroom-api/docs"
	"github.com/mentorhub-io/meetingroom-api/internal/middleware"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/handler"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	Log            *zap.Logger
	RoomHandler    *handler.RoomHandler
	DetailHandler  *handler.DetailHandler
	HistoryHandler *handler.HistoryHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	rooms := r.Group("/rooms")
	{
		rooms.GET("", d.RoomHandler.ListRooms)
		rooms.POST("", d.RoomHandler.CreateRoom)
		rooms.GET("/:id", d.RoomHandler.GetRoom)
		rooms.PUT("/:id", d.RoomHandler.UpdateRoom)
		rooms.DELETE("/:id", d.RoomHandler.DeleteRoom)

		rooms.GET("/status/:status", d.RoomHandler.ListRoomsByStatus)
		rooms.GET("/user/:userId", d.RoomHandler.ListRoomsByUser)
		rooms.GET("/mentor/:mentorId", d.RoomHandler.ListRoomsByMentor)
	}

	details := r.Group("/room-details")
	{
		details.GET("", d.DetailHandler.ListDetails)
		details.POST("", d.DetailHandler.CreateDetail)
		details.GET("/:id", d.DetailHandler.GetDetail)
		details.PUT("/:id", d.DetailHandler.UpdateDetail)
		details.DELETE("/:id", d.DetailHandler.DeleteDetail)

		details.GET("/room/:roomId", d.DetailHandler.GetDetailByRoom)

		details.POST("/:id/recording", d.DetailHandler.UploadRecording)
		details.GET("/:id/recording", d.DetailHandler.GetRecordingURL)
	}

	history := r.Group("/meeting-history")
	{
		history.GET("", d.HistoryHandler.ListHistory)
		history.POST("", d.HistoryHandler.CreateHistory)
		history.GET("/:id", d.HistoryHandler.GetHistory)
		history.PUT("/:id", d.HistoryHandler.UpdateHistory)
		history.DELETE("/:id", d.HistoryHandler.DeleteHistory)

		history.GET("/room/:roomId", d.HistoryHandler.ListHistoryByRoom)
		history.GET("/user/:userId", d.HistoryHandler.ListHistoryByUser)
		history.GET("/mentor/:mentorId", d.HistoryHandler.ListHistoryByMentor)
		history.GET("/stats/duration", d.HistoryHandler.GetDurationStats)
	}

	return r
}
