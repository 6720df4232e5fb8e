package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		debugOn    bool
	}{
		{"production", true, false},
		{"development", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.production)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.debugOn, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}
