package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level  string
		expect zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Setup(tt.level, "console")
			if Log == nil {
				t.Fatal("expected Log to be initialized")
			}
			if got := zerolog.GlobalLevel(); got != tt.expect {
				t.Errorf("level %s: expected %v, got %v", tt.level, tt.expect, got)
			}
		})
	}
}

func TestLoggerFields(t *testing.T) {
	Setup("debug", "json")

	// None of these should panic.
	Log.Info("plain message")
	Log.Debug("kv pairs", "layer", "encoder.0.weight", "elems", 4096)
	Log.Warn("odd args", "key1", "value1", "orphan")
	Log.Error("non-string key", 123, "value")
	Log.Info("nil value", "key", nil)
}
