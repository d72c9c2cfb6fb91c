package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"icecreams/internal/app/server/config"
	"icecreams/internal/domain/icecream"
)

// Runs only when ICECREAMS_TEST_DATABASE_URL points at a disposable PostgreSQL database.
func TestIntegration_CRUD(t *testing.T) {
	url := os.Getenv("ICECREAMS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("ICECREAMS_TEST_DATABASE_URL is not set")
	}

	for _, pool := range []bool{false, true} {
		cfg := &config.Config{}
		cfg.DB.DatabaseURL = url
		cfg.DB.Pool = pool
		cfg.DB.MaxConns = 2

		ctx := context.Background()
		log := slog.Default()
		st, err := New(ctx, cfg, log)
		require.NoError(t, err)
		require.NoError(t, st.EnsureSchema(ctx))
		require.NoError(t, st.EnsureSchema(ctx))
		require.NoError(t, st.Ping(ctx))

		repo := NewIceCreamRepository(st, log)
		before, err := repo.FetchAll(ctx)
		require.NoError(t, err)

		id, err := repo.Insert(ctx, "vanilla", 10)
		require.NoError(t, err)

		ic, err := repo.FetchOne(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "vanilla", ic.Flavor)
		assert.Equal(t, 10, ic.Quantity)

		n, err := repo.Update(ctx, id, "chocolate", 3)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		after, err := repo.FetchAll(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before)+1)

		n, err = repo.Delete(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, err = repo.FetchOne(ctx, id)
		assert.ErrorIs(t, err, icecream.ErrNotFound)

		require.NoError(t, st.Close())
	}
}
