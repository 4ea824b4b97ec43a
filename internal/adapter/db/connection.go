package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Chikimuras/ezlife/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", conf.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if conf.DbMaxOpenConns > 0 {
		db.SetMaxOpenConns(conf.DbMaxOpenConns)
	}
	if conf.DbMaxIdleConns > 0 {
		db.SetMaxIdleConns(conf.DbMaxIdleConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
