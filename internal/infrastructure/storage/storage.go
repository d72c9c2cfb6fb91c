package storage

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/exp/slog"

	"icecreams/internal/app/server/config"
	"icecreams/internal/domain/icecream"
	"icecreams/internal/infrastructure/storage/postgres"
	"icecreams/internal/infrastructure/storage/sqlite"
)

// Backend covers the lifecycle of a store, next to its icecream.Repository.
type Backend interface {
	// EnsureSchema is called once at startup; a failure must stop the process.
	EnsureSchema(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

type Store struct {
	Backend
	IceCreams icecream.Repository
}

// Open picks the backend from the scheme of the configured database URL.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Store, error) {
	url := cfg.DB.DatabaseURL

	switch {
	case strings.HasPrefix(url, sqlite.Scheme):
		st, err := sqlite.New(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return &Store{Backend: st, IceCreams: sqlite.NewIceCreamRepository(st, log)}, nil

	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		st, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &Store{Backend: st, IceCreams: postgres.NewIceCreamRepository(st, log)}, nil
	}

	return nil, fmt.Errorf("unsupported database url scheme: %q", schemeOf(url))
}

func schemeOf(url string) string {
	if i := strings.Index(url, "://"); i >= 0 {
		return url[:i]
	}
	return url
}
