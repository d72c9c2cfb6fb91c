package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"icecreams/internal/app/server/config"
	"icecreams/internal/infrastructure/migration"
)

// querier is the part of *pgx.Conn and *pgxpool.Pool the repository needs.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// connector hands out a querier for a single call; release must be called when done.
type connector interface {
	acquire(ctx context.Context) (q querier, release func(), err error)
	close()
}

// perCall opens a new connection for every call and closes it afterwards.
type perCall struct {
	cfg *pgx.ConnConfig
}

func (c perCall) acquire(ctx context.Context) (querier, func(), error) {
	conn, err := pgx.ConnectConfig(ctx, c.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect: %w", err)
	}
	return conn, func() { _ = conn.Close(context.Background()) }, nil
}

func (perCall) close() {}

type pooled struct {
	pool *pgxpool.Pool
}

func (p pooled) acquire(context.Context) (querier, func(), error) {
	return p.pool, func() {}, nil
}

func (p pooled) close() { p.pool.Close() }

type Storage struct {
	conn      connector
	migration *migration.Migration
	log       *slog.Logger
}

// New validates the connection string. No connection is made until the first call.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Storage, error) {
	log = log.With("component", "postgres")
	mg := migration.NewMigration(migration.Postgres, cfg.DB.DatabaseURL, migration.DefaultEngine)

	if !cfg.DB.Pool {
		connCfg, err := pgx.ParseConfig(cfg.DB.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("parse database url: %w", err)
		}
		log.Debug("using a connection per call")
		return &Storage{conn: perCall{cfg: connCfg}, migration: mg, log: log}, nil
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DB.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.DB.MaxConns
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	log.Debug("using a connection pool", "max_conns", cfg.DB.MaxConns)
	return &Storage{conn: pooled{pool: pool}, migration: mg, log: log}, nil
}

// EnsureSchema creates the icecreams table if it does not exist.
func (s *Storage) EnsureSchema(_ context.Context) error {
	if err := s.migration.Up(); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	q, release, err := s.conn.acquire(ctx)
	if err != nil {
		return err
	}
	defer release()
	return q.Ping(ctx)
}

func (s *Storage) Close() error {
	s.conn.close()
	return nil
}
