package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ENVIRONMENT", "LOG_LEVEL", "LOG_FILE", "DATA_DIR", "SCENARIO", "SEED", "TEXT_WIDTH"} {
		t.Setenv(k, "")
	}
	t.Chdir(t.TempDir())

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "andre_adventure.yaml", cfg.Scenario)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, 0, cfg.TextWidth)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DATA_DIR", "/srv/adventure")
	t.Setenv("SEED", "42")
	t.Setenv("TEXT_WIDTH", "not-a-number")

	cfg := Load()
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0, cfg.TextWidth, "invalid numbers fall back to the default")
	assert.Equal(t, filepath.Join("/srv/adventure", "scenarios"), cfg.ScenarioDir())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLogLevel(tt.in); got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScenarioPath(t *testing.T) {
	cfg := &Config{DataDir: "data", Scenario: "default.yaml"}
	assert.Equal(t, filepath.Join("data", "scenarios", "default.yaml"), cfg.ScenarioPath(""))
	assert.Equal(t, filepath.Join("data", "scenarios", "other.json"), cfg.ScenarioPath("other.json"))
	assert.Equal(t, "./mine/custom.lua", cfg.ScenarioPath("./mine/custom.lua"))
}
