// cmd/server/cmd/root.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"

	"icecreams/internal/app/server/api"
	"icecreams/internal/app/server/api/tcp"
	"icecreams/internal/app/server/config"
	"icecreams/internal/infrastructure/storage"
	"icecreams/internal/utils/logger"
)

const shutdownTimeout = 5 * time.Second

var rootCmd = &cobra.Command{
	Use:   "icecreams",
	Short: "Ice cream inventory service",
	Long: `icecreams serves a CRUD API over a single table of ice cream flavors.

By default requests are read from raw TCP connections one at a time; set
--transport=http to serve the same routes through net/http instead.`,
	RunE:          serve,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration, the logger and the store, and ensures the schema.
func setup(ctx context.Context) (*config.Config, *slog.Logger, *storage.Store, error) {
	cfg := config.MustLoad()
	log := logger.NewWithFile(cfg.Env, cfg.Logger.File)

	store, err := storage.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := store.EnsureSchema(ctx); err != nil {
		_ = store.Close()
		return nil, nil, nil, err
	}
	return cfg, log, store, nil
}

func serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, store, err := setup(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	log.Info("starting", "transport", cfg.Server.Transport, "address", cfg.Server.RunAddress, "pool", cfg.DB.Pool)

	if cfg.Server.Transport == config.TransportHTTP {
		return serveHTTP(ctx, cfg, store, log)
	}
	srv := tcp.NewServer(cfg.Server.RunAddress, api.NewRouter(store, log), cfg.Server.ReadBufferSize, log)
	return srv.ListenAndServe(ctx)
}

func serveHTTP(ctx context.Context, cfg *config.Config, store *storage.Store, log *slog.Logger) error {
	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: api.New(store, log),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("database-url", "", "database connection string (postgres:// or sqlite3://)")
	flags.String("addr", "", "listen address")
	flags.String("transport", "", "tcp or http")
	flags.Bool("pool", false, "use a connection pool instead of a connection per request")
	flags.String("env", "", "local, dev or prod")

	bind := map[string]string{
		config.KeyDatabaseURL: "database-url",
		config.KeyRunAddress:  "addr",
		config.KeyTransport:   "transport",
		config.KeyDBPool:      "pool",
		config.KeyEnv:         "env",
	}
	for key, flag := range bind {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(migrateCmd)
}
