package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/internal/config"
)

const tinyScenario = `name: Tiny
rooms:
  - key: hall
    name: Hall
    description: A long hall.
  - key: attic
    name: Attic
    description: Dusty rafters.
connections:
  - from: hall
    to: attic
    direction: up
player:
  name: Andre
  max_hp: 10
  defense: 1
  damage: 2
  to_hit: 0.5
`

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "scenarios"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "scenarios", "tiny.yaml"), []byte(tinyScenario), 0644))
	return &config.Config{DataDir: dir, Scenario: "tiny.yaml", Seed: 7}
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		input    string
		wantCode int
		wantOut  []string
		wantErr  string
	}{
		{
			name:     "plays until quit",
			input:    "up\nscore\nquit\n",
			wantCode: 0,
			wantOut:  []string{"TINY", "A long hall.", "Dusty rafters.", "Your score: 2", "Exiting the game."},
		},
		{
			name:     "end of input quits",
			input:    "look\n",
			wantCode: 0,
			wantOut:  []string{"Hall"},
		},
		{
			name:     "scenario argument",
			args:     []string{"tiny.yaml"},
			input:    "quit\n",
			wantCode: 0,
			wantOut:  []string{"A long hall."},
		},
		{
			name:     "missing scenario",
			args:     []string{"nowhere.yaml"},
			wantCode: 1,
			wantErr:  "Failed to load scenario",
		},
		{
			name:     "too many arguments",
			args:     []string{"a.yaml", "b.yaml"},
			wantCode: 1,
			wantErr:  "Usage:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.LogLevel = slog.LevelError + 4
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), cfg, tt.args, strings.NewReader(tt.input), &stdout, &stderr)

			assert.Equal(t, tt.wantCode, code)
			for _, want := range tt.wantOut {
				assert.Contains(t, stdout.String(), want)
			}
			if tt.wantErr != "" {
				assert.Contains(t, stderr.String(), tt.wantErr)
			}
		})
	}
}

func TestRun_InvalidScenario(t *testing.T) {
	cfg := testConfig(t)
	bad := filepath.Join(cfg.ScenarioDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: Broken\nrooms: []\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), cfg, []string{"broken.yaml"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Invalid scenario")
}
