package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordvault/wordvault-api/internal/config"
)

func TestSetupAcceptsKnownLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Info"} {
		t.Run(level, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: level})
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestSetupFallsBackOnUnknownLevel(t *testing.T) {
	logger, err := Setup(config.ServerConfig{Port: 8080, LogLevel: "loud"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestContextRoundTrip(t *testing.T) {
	_, testLogger := SetupTestLogger(t, nil)

	ctx := WithLogger(context.Background(), testLogger)
	assert.Same(t, testLogger, FromContext(ctx))
	assert.Same(t, testLogger, FromContextOrDefault(ctx, slog.Default()))
}

func TestFromContextOrDefaultFallback(t *testing.T) {
	ctx := context.Background()

	assert.Nil(t, FromContext(ctx))

	_, def := SetupTestLogger(t, nil)
	assert.Same(t, def, FromContextOrDefault(ctx, def))
	assert.Same(t, slog.Default(), FromContextOrDefault(ctx, nil))
}

func TestTestLogBufferParsesEntries(t *testing.T) {
	buf, testLogger := SetupTestLogger(t, &slog.HandlerOptions{Level: slog.LevelDebug})

	testLogger.Info("state saved", "word_id", "abc")
	testLogger.Debug("selection drawn", "count", 5)

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "state saved", entries[0]["msg"])
	assert.Equal(t, "abc", entries[0]["word_id"])
}
