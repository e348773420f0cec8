package msg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testMessages = `
bot:
  searching: "Buscando clima para \"{0}\"..."
  forecast-day: "{0}: {1}°C, lluvia {2}%"
app:
  req-fail: "{0} failed after {1}: {2}"
`

func TestGetMessage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.yml")
	if err := os.WriteFile(path, []byte(testMessages), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	tests := []struct {
		name     string
		key      string
		args     []any
		expected string
	}{
		{name: "string argument", key: "bot.searching", args: []any{"Madrid"}, expected: `Buscando clima para "Madrid"...`},
		{name: "numbers", key: "bot.forecast-day", args: []any{"Vie 10 May", 14.6, 20}, expected: "Vie 10 May: 14.6°C, lluvia 20%"},
		{name: "stringer and error", key: "app.req-fail", args: []any{"GET /", 1500 * time.Millisecond, errors.New("boom")}, expected: "GET / failed after 1.5s: boom"},
		{name: "missing arguments keep placeholders", key: "bot.searching", expected: `Buscando clima para "{0}"...`},
		{name: "unknown key", key: "bot.unknown", expected: "Message not found: bot.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetMessage(tt.key, tt.args...); got != tt.expected {
				t.Errorf("GetMessage(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}
