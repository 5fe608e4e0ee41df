package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelInfo)

	logger.Info("tick failed", "error", errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "err=boom") {
		t.Errorf("output %q should contain err=boom", out)
	}
	if strings.Contains(out, "error=") {
		t.Errorf("output %q should not contain the long key", out)
	}
}

func TestNewWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, slog.LevelWarn)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info record written at warn level: %q", buf.String())
	}
}

func TestNewNop(t *testing.T) {
	NewNop().Error("dropped")
}
