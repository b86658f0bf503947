package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// TestInit verifies logger initialization for different environments.
func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		err := Init("development", "debug")
		require.NoError(t, err)
		assert.NotNil(t, globalLogger)
		assert.True(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		err := Init("production", "info")
		require.NoError(t, err)
		assert.False(t, globalLogger.Core().Enabled(zap.DebugLevel))
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevelFallsBackToDefault", func(t *testing.T) {
		err := Init("production", "invalid_level")
		require.NoError(t, err)
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})
}

// TestGet verifies that Get never returns nil.
func TestGet(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())

	require.NoError(t, Init("development", "info"))
	assert.Same(t, globalLogger, Get())
}

func TestForRequest(t *testing.T) {
	require.NoError(t, Init("development", "info"))
	assert.NotNil(t, ForRequest("ray-1"))
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	globalLogger = zap.New(core)
	defer func() { globalLogger = nil }()

	ctx := WithRayID(context.Background(), "ray-42")
	id, ok := RayID(ctx)
	require.True(t, ok)
	assert.Equal(t, "ray-42", id)

	FromContext(ctx).Info("with ray")
	FromContext(context.Background()).Info("without ray")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "ray-42", entries[0].ContextMap()["ray_id"])
	assert.NotContains(t, entries[1].ContextMap(), "ray_id")

	_, ok = RayID(WithRayID(context.Background(), ""))
	assert.False(t, ok)
}

// TestSync verifies that Sync does not panic even if logger is nil.
func TestSync(t *testing.T) {
	globalLogger = nil
	Sync()

	require.NoError(t, Init("development", "info"))
	Sync()
}
