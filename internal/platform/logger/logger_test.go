package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmaier/taskline-api/internal/config"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level string
	}{
		{"debug"},
		{"info"},
		{"warn"},
		{"error"},
		{"DEBUG"}, // case-insensitive
		{"bogus"}, // falls back to info
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: tc.level})
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	base := slog.Default().With(slog.String("trace_id", "abc123"))

	ctx := WithLogger(context.Background(), base)
	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))
}

func TestFromContextOrDefaultFallbacks(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))

	def := slog.Default().With(slog.String("component", "test"))
	assert.Same(t, def, FromContextOrDefault(ctx, def))

	// never returns nil
	assert.NotNil(t, FromContextOrDefault(ctx, nil))
}
