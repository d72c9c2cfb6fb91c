package logger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/exp/slog"
	"icecreams/internal/app/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
		{
			name:          "unknown environment falls back to prod",
			env:           "staging",
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.True(t, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestBuild_LocalIsPretty(t *testing.T) {
	var buf bytes.Buffer
	logger := build(config.EnvLocal, &buf, false)
	require.NotNil(t, logger)

	logger.Debug("debug visible", "component", "router")

	out := buf.String()
	assert.Contains(t, out, "DEBUG:")
	assert.Contains(t, out, "debug visible")
	assert.Contains(t, out, `"component": "router"`)
}

func TestPrettyHandler_GroupedAttrs(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newPrettyHandler(&buf, slog.LevelDebug, false)).
		With("component", "tcp_server").
		WithGroup("request").
		With("method", "GET")

	log.Info("request served", "path", "/icecreams/1")

	out := buf.String()
	assert.Contains(t, out, `"component": "tcp_server"`)
	assert.Contains(t, out, `"request.method": "GET"`)
	assert.Contains(t, out, `"request.path": "/icecreams/1"`)
	assert.NotContains(t, out, `"method": "GET"`)
}

func TestPrettyHandler_Output(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newPrettyHandler(&buf, slog.LevelDebug, false)).With("component", "tcp_server")

	log.Error("read failed", "error", errors.New("connection reset"), "remote_addr", "10.0.0.1:5000")

	out := buf.String()
	assert.Contains(t, out, "ERROR:")
	assert.Contains(t, out, "read failed")
	assert.Contains(t, out, `"component": "tcp_server"`)
	assert.Contains(t, out, `"error": "connection reset"`)
	assert.Contains(t, out, `"remote_addr": "10.0.0.1:5000"`)
}

func TestPrettyHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newPrettyHandler(&buf, slog.LevelInfo, false))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icecreams.log")

	log := NewWithFile(config.EnvProd, path)
	log.Info("server started", "address", "0.0.0.0:8080")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"server started"`)
	assert.Contains(t, string(data), `"address":"0.0.0.0:8080"`)
}

func TestNewWithFile_EmptyPath(t *testing.T) {
	log := NewWithFile(config.EnvDev, "")
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
}
