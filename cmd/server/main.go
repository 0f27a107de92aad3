package main

//	@title			Meeting Room API
//	@version		1.0
//	@description	CRUD backend for meeting rooms, room details and meeting history.
//	@schemes		http https
//	@BasePath		/

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mentorhub-io/meetingroom-api/internal/bootstrap"
	"github.com/mentorhub-io/meetingroom-api/internal/config"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/handler"
	"github.com/mentorhub-io/meetingroom-api/internal/router"
	"github.com/samber/do"
	"go.uber.org/zap"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	roomHandler := do.MustInvoke[*handler.RoomHandler](inj)
	detailHandler := do.MustInvoke[*handler.DetailHandler](inj)
	historyHandler := do.MustInvoke[*handler.HistoryHandler](inj)

	engine := router.NewRouter(router.RouterDeps{
		Log:            log,
		RoomHandler:    roomHandler,
		DetailHandler:  detailHandler,
		HistoryHandler: historyHandler,
	})

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
