package bootstrap

import (
	"context"
	"time"

	"github.com/mentorhub-io/meetingroom-api/internal/config"
	"github.com/mentorhub-io/meetingroom-api/internal/infra/blob"
	"github.com/mentorhub-io/meetingroom-api/internal/infra/db"
	"github.com/mentorhub-io/meetingroom-api/internal/infra/logger"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/handler"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/model"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/repo"
	"github.com/mentorhub-io/meetingroom-api/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.MeetingRoom{},
				&model.MeetingRoomDetail{},
				&model.MeetingHistory{},
			)
		}
		return d, nil
	})

	// RabbitMQ connection; nil when no URL is configured, which disables
	// event publishing without failing startup.
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})

	// S3
	do.Provide(inj, func(i *do.Injector) (*blob.S3Deps, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return blob.NewS3(context.Background(), cfg)
	})
	// get presign expire duration
	do.Provide(inj, func(i *do.Injector) (func() time.Duration, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return func() time.Duration {
			if cfg.S3.PresignExpireSec <= 0 {
				return 15 * time.Minute
			}
			return time.Duration(cfg.S3.PresignExpireSec) * time.Second
		}, nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.RoomRepo, error) {
		return repo.NewRoomRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.DetailRepo, error) {
		return repo.NewDetailRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.HistoryRepo, error) {
		return repo.NewHistoryRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.RoomService, error) {
		return service.NewRoomService(do.MustInvoke[repo.RoomRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DetailService, error) {
		return service.NewDetailService(
			do.MustInvoke[repo.DetailRepo](i),
			do.MustInvoke[repo.RoomRepo](i),
			do.MustInvoke[*blob.S3Deps](i),
			do.MustInvoke[func() time.Duration](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.HistoryService, error) {
		return service.NewHistoryService(
			do.MustInvoke[repo.HistoryRepo](i),
			do.MustInvoke[repo.RoomRepo](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[*config.Config](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.RoomHandler, error) {
		return handler.NewRoomHandler(do.MustInvoke[service.RoomService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DetailHandler, error) {
		return handler.NewDetailHandler(do.MustInvoke[service.DetailService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.HistoryHandler, error) {
		return handler.NewHistoryHandler(do.MustInvoke[service.HistoryService](i)), nil
	})

	return inj
}
