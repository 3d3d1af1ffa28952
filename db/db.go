package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB holds the database connection; nil when no database is configured
var DB *sql.DB

const schema = `
	CREATE TABLE IF NOT EXISTS print_jobs (
		id          UUID PRIMARY KEY,
		mode        TEXT NOT NULL,
		title       TEXT NOT NULL,
		client_name TEXT,
		label_count INTEGER NOT NULL,
		format      TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// InitDB opens and pings the database, then makes sure the print_jobs table exists
func InitDB(ctx context.Context, connStr string) error {
	if connStr == "" {
		return fmt.Errorf("database connection string is empty. Set DATABASE_URL or DB_HOST, DB_USER, DB_NAME")
	}

	conn, err := sql.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, schema); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create print_jobs table: %w", err)
	}

	DB = conn
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
