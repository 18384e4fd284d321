package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func TestSetup_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Output: &buf})
	defer cleanup()

	L().Info("server.started", "addr", "0.0.0.0:5000")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "server.started" {
		t.Errorf("msg = %v", rec["msg"])
	}
	if rec["addr"] != "0.0.0.0:5000" {
		t.Errorf("addr = %v", rec["addr"])
	}
	ts, _ := rec["time"].(string)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		t.Fatalf("time %q not RFC3339Nano: %v", ts, err)
	}
	if parsed.Location() != time.UTC {
		t.Errorf("time %q not UTC", ts)
	}
}

func TestSetup_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Output: &buf, Level: slog.LevelWarn})
	defer cleanup()

	L().Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info logged at warn level: %q", buf.String())
	}
	L().Warn("kept")
	if buf.Len() == 0 {
		t.Fatal("warn not logged")
	}
}

func TestCleanup_Discards(t *testing.T) {
	var buf bytes.Buffer
	cleanup := Setup(Config{Output: &buf})
	cleanup()

	L().Error("after cleanup")
	if buf.Len() != 0 {
		t.Fatalf("logged after cleanup: %q", buf.String())
	}
}
