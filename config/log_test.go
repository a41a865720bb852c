package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLogZapConfig(t *testing.T) {
	zc, err := (&Log{Level: "warn", Mode: LogModeProd}).ZapConfig()
	require.NoError(t, err)
	assert.Equal(t, "json", zc.Encoding)
	assert.Equal(t, zapcore.WarnLevel, zc.Level.Level())
	assert.Equal(t, []string{"stderr"}, zc.OutputPaths)

	zc, err = (&Log{Level: "debug", Mode: LogModeDev}).ZapConfig()
	require.NoError(t, err)
	assert.Equal(t, "console", zc.Encoding)
	assert.Equal(t, zapcore.DebugLevel, zc.Level.Level())
	assert.Equal(t, []string{"stderr"}, zc.OutputPaths)

	_, err = (&Log{Level: "info", Mode: ""}).ZapConfig()
	assert.ErrorIs(t, err, errLogUnknownMode)

	_, err = (&Log{Level: "loud", Mode: LogModeProd}).ZapConfig()
	assert.ErrorIs(t, err, errLogUnknownLevel)
}
