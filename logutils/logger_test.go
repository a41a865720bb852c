package logutils

import (
	"context"
	"testing"

	"github.com/agentsmithers/mcp-server-config/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(&config.Log{Level: "warn", Mode: config.LogModeProd})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = NewLogger(&config.Log{Level: "debug", Mode: config.LogModeDev})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger(&config.Log{Level: "info", Mode: "verbose"})
	assert.Error(t, err)

	_, err = NewLogger(&config.Log{Level: "loud", Mode: config.LogModeProd})
	assert.Error(t, err)
}

func TestContextLogger(t *testing.T) {
	assert.Equal(t, zap.L(), LoggerFromContext(context.Background()))

	l := zap.NewNop()
	ctx := ContextWithLogger(context.Background(), l)
	assert.Same(t, l, LoggerFromContext(ctx))
}
