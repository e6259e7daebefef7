package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "glint.log")

	if err := InitWithRotation("debug", DefaultRotation(logPath), false); err != nil {
		t.Fatalf("InitWithRotation: %v", err)
	}

	Info("hello from test")
	Debug("debug line")
	Sync()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}

	content := string(data)
	if !strings.Contains(content, "hello from test") {
		t.Errorf("log file missing info entry, got: %s", content)
	}
	if !strings.Contains(content, "debug line") {
		t.Errorf("log file missing debug entry, got: %s", content)
	}
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "glint.log")

	if err := InitWithRotation("warn", DefaultRotation(logPath), false); err != nil {
		t.Fatalf("InitWithRotation: %v", err)
	}

	Info("should be filtered")
	Warn("should appear")
	Sync()

	data, _ := os.ReadFile(logPath)
	content := string(data)
	if strings.Contains(content, "should be filtered") {
		t.Error("info entry leaked through warn level")
	}
	if !strings.Contains(content, "should appear") {
		t.Error("warn entry missing")
	}
}
