package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "WARN", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.input, func(t *testing.T) {
			level, err := parseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	_, err := Setup(LoggerConfig{Level: "verbose"})
	assert.Error(t, err)
}

func TestContextCarry(t *testing.T) {
	t.Parallel()

	base := slog.Default().With("trace_id", "abc123")
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx, nil))

	t.Run("empty context falls back", func(t *testing.T) {
		fallback := slog.Default().With("component", "test")
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
		assert.NotNil(t, FromContext(context.Background()))
	})
}
