package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"variant-studio/config"
)

// DB holds the database connection
var DB *sql.DB

// Schema creates the product table. It is valid for both Postgres and SQLite.
const Schema = `
CREATE TABLE IF NOT EXISTS products (
	hash            TEXT PRIMARY KEY,
	image_path      TEXT NOT NULL DEFAULT '',
	shipping_charge BIGINT NOT NULL
)`

// InitDB opens the configured database, checks the connection and applies the schema
func InitDB(cfg *config.Config) error {
	conn, err := Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	DB = conn
	return nil
}

// Open connects to Postgres through pgx or to a SQLite file, depending on cfg.DBDriver
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch cfg.DBDriver {
	case config.DriverPostgres:
		conn, err = sql.Open("pgx", cfg.DatabaseURL)
	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." && cfg.SQLitePath != ":memory:" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		conn, err = sql.Open("sqlite", sqliteDSN(cfg.SQLitePath))
		if err == nil {
			// one writer at a time, and :memory: must stay on a single connection
			conn.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	log.Printf("✓ Database connection established successfully (%s)", cfg.DBDriver)
	return conn, nil
}

// Migrate applies Schema to conn
func Migrate(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// sqliteDSN enables WAL and a busy timeout for file databases
func sqliteDSN(path string) string {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return path
	}
	return "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
