package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := New(core)

	logger.Infow("Parsed subtitle file", "sections", 3, "input", "a.srt")
	logger.Debugw("dropped below level")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["sections"] != int64(3) {
		t.Errorf("sections field = %v", fields["sections"])
	}
	if fields["input"] != "a.srt" {
		t.Errorf("input field = %v", fields["input"])
	}
}

func TestNewLoggerLevels(t *testing.T) {
	if NewLogger(false).Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("quiet logger should drop info")
	}
	if !NewLogger(true).Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose logger should keep debug")
	}
	NewNop().Infow("ignored")
}
