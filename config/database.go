package config

import (
	"fmt"
	"time"

	"main/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type DatabaseConfig struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxConnIdleTime time.Duration
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Driver:          utils.GetEnvAsString("DB_DRIVER", "postgres"),
		DSN:             utils.GetEnvAsString("DATABASE_DSN", "host=localhost user=notes password=notes dbname=notes port=5432 sslmode=disable"),
		MaxOpenConns:    utils.GetEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		MaxIdleConns:    utils.GetEnvAsInt("DB_MIN_IDLE_CONNS", 10),
		MaxConnIdleTime: time.Duration(utils.GetEnvAsInt("DB_MAX_CONN_IDLE_TIME", 60)) * time.Second,
	}
}

// ConnectDatabase opens the relational store described by cfg and returns
// the handle the repositories are constructed with. TranslateError turns
// driver constraint violations into gorm's portable sentinel errors.
func ConnectDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN)
	default:
		dialector = postgres.Open(cfg.DSN)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxIdleTime(cfg.MaxConnIdleTime)

	return db, nil
}
