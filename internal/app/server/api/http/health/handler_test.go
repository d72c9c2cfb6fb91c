package health

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHandler_healthCheck(t *testing.T) {
	tests := []struct {
		name           string
		pingErr        error
		expectedStatus string
		expectErr      bool
	}{
		{
			name:           "health check returns OK",
			expectedStatus: "OK",
		},
		{
			name:      "store down",
			pingErr:   errors.New("connection refused"),
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			handler := NewHandler(stubPinger{err: tt.pingErr}, slog.Default(), huma.Middlewares{})

			// Act
			output, err := handler.healthCheck(context.Background(), &Input{})

			// Assert
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, output)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, output)
			assert.Equal(t, tt.expectedStatus, output.Body.Status)
			assert.Equal(t, "OK", output.Body.Database)
		})
	}
}

func TestHandler_SetupRoutes(t *testing.T) {
	_, api := humatest.New(t)
	NewHandler(stubPinger{err: errors.New("down")}, slog.Default(), huma.Middlewares{}).SetupRoutes(api)

	resp := api.Get("/health")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestNewHandler(t *testing.T) {
	// Arrange
	middleware := huma.Middlewares{}

	// Act
	handler := NewHandler(stubPinger{}, slog.Default(), middleware)

	// Assert
	assert.NotNil(t, handler)
	assert.NotNil(t, handler.store)
	assert.NotNil(t, handler.log)
	assert.NotNil(t, handler.middleware)
}
