package panzoom

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewLoggerFormats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogOptions{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("json output: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "hello" || rec["component"] != "panzoom" {
		t.Errorf("record = %v", rec)
	}
}

func TestNewLoggerDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LogOptions{Output: &buf})
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("quiet")
	logger.Warn("loud")
	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewLoggerRejectsUnknown(t *testing.T) {
	if _, err := NewLogger(LogOptions{Level: "verbose"}); err == nil {
		t.Error("expected error for unknown level")
	}
	if _, err := NewLogger(LogOptions{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConfigLogOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts := cfg.LogOptions()
	if opts.Level != "warn" || opts.Format != "text" {
		t.Errorf("LogOptions = %+v", opts)
	}
}
