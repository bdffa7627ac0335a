package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// Pool settings are fixed; callers cannot tune them.
const (
	ConnectTimeout  = 30 * time.Second
	ConnMaxIdleTime = 30 * time.Second
	ConnMaxLifetime = 60 * time.Second
)

func New(connStr string) (*sql.DB, error) {
	connConfig, err := pgx.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	connConfig.ConnectTimeout = ConnectTimeout

	db := stdlib.OpenDB(*connConfig)
	configure(db)

	ctx, cancel := context.WithTimeout(context.Background(), ConnectTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func configure(db *sql.DB) {
	db.SetConnMaxIdleTime(ConnMaxIdleTime)
	db.SetConnMaxLifetime(ConnMaxLifetime)
}
