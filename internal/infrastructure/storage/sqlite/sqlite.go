package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"

	"icecreams/internal/app/server/config"
	"icecreams/internal/infrastructure/migration"
)

const Scheme = "sqlite3://"

// Storage opens the database file on every call, mirroring the per-call PostgreSQL connector.
type Storage struct {
	path      string
	migration *migration.Migration
	log       *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) (*Storage, error) {
	path := strings.TrimPrefix(cfg.DB.DatabaseURL, Scheme)
	if path == "" {
		return nil, fmt.Errorf("sqlite database path is empty")
	}
	return &Storage{
		path:      path,
		migration: migration.NewMigration(migration.SQLite, Scheme+path, migration.DefaultEngine),
		log:       log.With("component", "sqlite"),
	}, nil
}

func (s *Storage) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *Storage) EnsureSchema(_ context.Context) error {
	if err := s.migration.Up(); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()
	return db.PingContext(ctx)
}

func (s *Storage) Close() error { return nil }
