package resource

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const testProperties = `
app:
  name: ${TEST_APP_NAME:weather}
  server:
    port: ${TEST_PORT:8080}
  weather:
    api-key: ${TEST_API_KEY:}
    timeout: 3s
    forecast:
      max-days: 7
  bot:
    debug: true
`

func writeProperties(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	if err := os.WriteFile(path, []byte(testProperties), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestInitResolvesPlaceholders(t *testing.T) {
	t.Setenv("TEST_PORT", "9090")

	if err := Init(writeProperties(t)); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	tests := []struct {
		key      string
		expected string
	}{
		{key: "app.name", expected: "weather"},
		{key: "app.server.port", expected: "9090"},
		{key: "app.weather.api-key", expected: ""},
	}
	for _, tt := range tests {
		if got := GetString(tt.key); got != tt.expected {
			t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.expected)
		}
	}

	if got := GetDuration("app.weather.timeout"); got != 3*time.Second {
		t.Errorf("timeout = %v, want 3s", got)
	}
	if got := GetInt("app.weather.forecast.max-days"); got != 7 {
		t.Errorf("max-days = %d, want 7", got)
	}
	if !GetBool("app.bot.debug") {
		t.Errorf("app.bot.debug = false, want true")
	}
}

func TestDefaults(t *testing.T) {
	if err := Init(writeProperties(t)); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}

	if got := GetStringOrDefault("app.weather.api-key", "fallback"); got != "fallback" {
		t.Errorf("GetStringOrDefault = %q, want fallback", got)
	}
	if got := GetIntOrDefault("app.weather.forecast.default-days", 5); got != 5 {
		t.Errorf("GetIntOrDefault = %d, want 5", got)
	}

	Set("app.weather.forecast.default-days", 3)
	if got := GetIntOrDefault("app.weather.forecast.default-days", 5); got != 3 {
		t.Errorf("GetIntOrDefault after Set = %d, want 3", got)
	}
}

func TestInitMissingFile(t *testing.T) {
	if err := Init(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("Init with a missing file returned nil error")
	}
}
