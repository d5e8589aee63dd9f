package db

import (
	"fmt"
	"io"
	"log"

	"github.com/rogerio-castellano/soda-stock/internal/config"
	"github.com/rogerio-castellano/soda-stock/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// OpenSQLite opens the GORM sqlite connection and migrates the soda table.
func OpenSQLite(cfg config.SQLiteConfig) (*gorm.DB, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	gormLogger := gormlogger.New(
		log.New(io.Discard, "", log.LstdFlags),
		gormlogger.Config{LogLevel: gormlogger.Silent},
	)

	conn, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite connection: %w", err)
	}

	if err := conn.AutoMigrate(&models.Soda{}); err != nil {
		return nil, fmt.Errorf("migrating sqlite schema: %w", err)
	}
	return conn, nil
}
