package logger

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"golang.org/x/exp/slog"
	"golang.org/x/term"

	"icecreams/internal/app/server/config"
)

const (
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 5
	logFileMaxAgeDays = 28
)

// New returns a logger writing to stdout, configured for the environment.
func New(env string) *slog.Logger {
	return build(env, os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
}

// NewWithFile is New with output going to a rotating file instead of stdout.
// An empty path falls back to New.
func NewWithFile(env, path string) *slog.Logger {
	if path == "" {
		return New(env)
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    logFileMaxSizeMB,
		MaxBackups: logFileMaxBackups,
		MaxAge:     logFileMaxAgeDays,
		Compress:   true,
	}
	return build(env, w, false)
}

func build(env string, w io.Writer, colored bool) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(newPrettyHandler(w, slog.LevelDebug, colored))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
