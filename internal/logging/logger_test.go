package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewDefaultsToWarn(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Output: buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked at default level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := New(Options{Level: "info", Format: "json", Output: buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("entry published", "targets", 2)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "entry published" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record["targets"] != float64(2) {
		t.Fatalf("unexpected targets attr: %v", record["targets"])
	}
}

func TestNewRejectsUnknownValues(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if _, err := New(Options{Level: "loud"}); err == nil {
		t.Fatal("expected error for unknown level")
	}
}
