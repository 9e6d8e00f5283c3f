package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/scenario"
)

func newTestStorage(t *testing.T, files map[string]string) *FileStorage {
	t.Helper()
	dir := t.TempDir()
	scenDir := filepath.Join(dir, "scenarios")
	require.NoError(t, os.MkdirAll(scenDir, 0755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(scenDir, name), []byte(content), 0644))
	}
	return NewFileStorage(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestFileStorage_ListScenarios(t *testing.T) {
	fs := newTestStorage(t, map[string]string{
		"one.json":    `{"name": "One", "rooms": []}`,
		"two.yaml":    "name: Two\n",
		"three.lua":   `adventure.name("Three")`,
		"broken.json": `{"name": `,
		"notes.txt":   "not a scenario",
	})

	got, err := fs.ListScenarios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"One":   "one.json",
		"Two":   "two.yaml",
		"Three": "three.lua",
	}, got)
}

func TestFileStorage_ListScenarios_MissingDir(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "nope"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := fs.ListScenarios(context.Background())
	assert.Error(t, err)
}

func TestFileStorage_GetScenario(t *testing.T) {
	fs := newTestStorage(t, map[string]string{"one.json": `{"name": "One", "rooms": [{"name": "Hall"}]}`})
	ctx := context.Background()

	s, err := fs.GetScenario(ctx, "one.json")
	require.NoError(t, err)
	assert.Equal(t, "One", s.Name)
	assert.Equal(t, "one.json", s.FileName)
	require.Len(t, s.Rooms, 1)

	_, err = fs.GetScenario(ctx, "missing.json")
	assert.True(t, errors.Is(err, ErrScenarioNotFound))

	_, err = fs.GetScenario(ctx, "../one.json")
	assert.Error(t, err)
}

func TestFileStorage_BundledData(t *testing.T) {
	fs := NewFileStorage("../../data", slog.New(slog.NewTextHandler(io.Discard, nil)))
	got, err := fs.ListScenarios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "andre_adventure.yaml", got["Andre's Adventure"])
}

func TestMockStorage(t *testing.T) {
	m := NewMockStorage()
	ctx := context.Background()
	m.AddScenario("a.yaml", &scenario.Scenario{Name: "A"})

	list, err := m.ListScenarios(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "a.yaml"}, list)

	s, err := m.GetScenario(ctx, "a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "a.yaml", s.FileName)

	_, err = m.GetScenario(ctx, "b.yaml")
	assert.True(t, errors.Is(err, ErrScenarioNotFound))

	m.SetListError(errors.New("boom"))
	_, err = m.ListScenarios(ctx)
	assert.Error(t, err)
}
