package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "prod", slog.LevelInfo, "1.2.3")

	logger.Info("measurement added", "id", "m-1")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "measurement added" || entry["version"] != "1.2.3" || entry["env"] != "prod" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNew_DevRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "dev", slog.LevelWarn, "dev")

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn line missing: %q", out)
	}
}
