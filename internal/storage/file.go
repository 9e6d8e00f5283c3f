package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jwebster45206/adventure-engine/pkg/scenario"
)

// ErrScenarioNotFound is returned when no scenario file has the requested name.
var ErrScenarioNotFound = errors.New("scenario not found")

// FileStorage reads scenarios from DATA_DIR/scenarios.
type FileStorage struct {
	logger  *slog.Logger
	dataDir string
}

// Ensure FileStorage implements Storage interface
var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a filesystem-backed scenario store.
func NewFileStorage(dataDir string, logger *slog.Logger) *FileStorage {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &FileStorage{
		logger:  logger,
		dataDir: dataDir,
	}
}

func (f *FileStorage) scenariosDir() string {
	return filepath.Join(f.dataDir, "scenarios")
}

// ListScenarios walks the scenarios directory. Files that fail to load are
// skipped with a warning.
func (f *FileStorage) ListScenarios(ctx context.Context) (map[string]string, error) {
	scenarios := make(map[string]string)

	err := filepath.WalkDir(f.scenariosDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !scenario.IsScenarioFile(path) {
			return nil
		}

		s, err := scenario.Load(path)
		if err != nil {
			f.logger.Warn("Failed to load scenario file", "path", path, "error", err)
			return nil
		}

		rel, err := filepath.Rel(f.scenariosDir(), path)
		if err != nil {
			rel = filepath.Base(path)
		}
		name := s.Name
		if name == "" {
			name = rel
		}
		scenarios[name] = rel
		return nil
	})

	if err != nil {
		f.logger.Error("Failed to walk scenarios directory", "error", err)
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	return scenarios, nil
}

// GetScenario loads one scenario file relative to the scenarios directory.
func (f *FileStorage) GetScenario(ctx context.Context, filename string) (*scenario.Scenario, error) {
	if !filepath.IsLocal(filename) {
		return nil, fmt.Errorf("invalid scenario file name: %q", filename)
	}
	path := filepath.Join(f.scenariosDir(), filename)
	f.logger.Debug("Loading scenario", "filename", filename, "full_path", path)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Error("Scenario file not found", "path", path)
			return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, filename)
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}
