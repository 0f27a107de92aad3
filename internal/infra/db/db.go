package db

import (
	"github.com/mentorhub-io/meetingroom-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// New opens the postgres connection pool. MaxOpen bounds concurrent
// statements; requests beyond the cap queue on the pool.
func New(cfg *config.Config) (*gorm.DB, error) {
	d, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := d.DB()
	if err != nil {
		return nil, err
	}
	if cfg.Database.MaxOpen > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpen)
	}
	if cfg.Database.MaxIdle > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdle)
	}

	return d, nil
}
