package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		development bool
		want        zapcore.Level
	}{
		{"default", "", false, zapcore.InfoLevel},
		{"debug", "debug", false, zapcore.DebugLevel},
		{"upper case", "WARN", false, zapcore.WarnLevel},
		{"development", "error", true, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, lvl, err := New(tt.level, tt.development)
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Equal(t, tt.want, lvl.Level())
			assert.True(t, logger.Core().Enabled(tt.want))
		})
	}
}

func TestNewLevelIsAdjustable(t *testing.T) {
	logger, lvl, err := New("info", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	lvl.SetLevel(zapcore.DebugLevel)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New("loud", false)
	assert.ErrorContains(t, err, `level "loud"`)
}
