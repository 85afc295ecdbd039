package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Levels(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name          string
		logFn         func(l Logger)
		expectedLevel zapcore.Level
		expectedMsg   string
	}

	tests := []testCase{
		{
			name:          "info",
			logFn:         func(l Logger) { l.Info("payment processed", "account", "12345") },
			expectedLevel: zapcore.InfoLevel,
			expectedMsg:   "payment processed",
		},
		{
			name:          "warn",
			logFn:         func(l Logger) { l.Warn("publish skipped", "account", "12345") },
			expectedLevel: zapcore.WarnLevel,
			expectedMsg:   "publish skipped",
		},
		{
			name:          "error",
			logFn:         func(l Logger) { l.Error("store failed", "account", "12345") },
			expectedLevel: zapcore.ErrorLevel,
			expectedMsg:   "store failed",
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.DebugLevel)
			logger := WrapZap(zap.New(core))

			tt.logFn(logger)

			entries := logs.All()
			if assert.Len(t, entries, 1) {
				assert.Equal(t, tt.expectedLevel, entries[0].Level)
				assert.Equal(t, tt.expectedMsg, entries[0].Message)
				assert.Equal(t, "12345", entries[0].ContextMap()["account"])
			}
		})
	}
}
