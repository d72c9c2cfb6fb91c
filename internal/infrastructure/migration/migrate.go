package migration

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Blank imports register the pgx v5 and sqlite3 database drivers for migrations
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql
var scripts embed.FS

// Dialect selects the directory of migration scripts and the migrate database driver.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite3"
)

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine builds a migrator, so tests do not need a filesystem or a database.
type MigrationEngine func(dialect Dialect, databaseURL string) (Migrator, error)

type Migration struct {
	dialect     Dialect
	databaseURL string
	engine      MigrationEngine
}

func NewMigration(dialect Dialect, databaseURL string, engine MigrationEngine) *Migration {
	return &Migration{
		dialect:     dialect,
		databaseURL: databaseURL,
		engine:      engine,
	}
}

// DefaultEngine reads the embedded scripts for the dialect.
func DefaultEngine(dialect Dialect, databaseURL string) (Migrator, error) {
	src, err := iofs.New(scripts, "sql/"+string(dialect))
	if err != nil {
		return nil, fmt.Errorf("open migration scripts: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, driverURL(dialect, databaseURL))
}

// driverURL rewrites a connection string to the scheme migrate registered for the dialect.
func driverURL(dialect Dialect, databaseURL string) string {
	switch dialect {
	case Postgres:
		for _, prefix := range []string{"postgres://", "postgresql://"} {
			if strings.HasPrefix(databaseURL, prefix) {
				return "pgx5://" + strings.TrimPrefix(databaseURL, prefix)
			}
		}
	case SQLite:
		if !strings.HasPrefix(databaseURL, "sqlite3://") {
			return "sqlite3://" + databaseURL
		}
	}
	return databaseURL
}

// Up applies pending scripts. Running it against an up-to-date database is a no-op.
func (mg *Migration) Up() (err error) {
	m, err := mg.engine(mg.dialect, mg.databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up: %w", err)
	}
	return nil
}
