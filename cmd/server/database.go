package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Register the pgx driver with database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connection pool settings. The API's queries are short-lived, so a modest
// pool keeps connection churn low without starving concurrent requests.
const (
	dbMaxOpenConns    = 25
	dbMaxIdleConns    = 25
	dbConnMaxIdleTime = 5 * time.Minute
	dbPingTimeout     = 5 * time.Second
)

// openDatabase establishes and verifies a PostgreSQL connection pool.
func openDatabase(ctx context.Context, url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxIdleTime(dbConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
