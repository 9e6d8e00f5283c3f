package scenario

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files that are not JSON, YAML or Lua.
var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// Extensions lists the file extensions Load understands.
var Extensions = []string{".json", ".yaml", ".yml", ".lua"}

// IsScenarioFile reports whether the path has a scenario extension.
func IsScenarioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Load reads a scenario file, choosing the decoder by extension.
// Unknown fields are rejected in every format.
func Load(path string) (*Scenario, error) {
	var (
		s   *Scenario
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lua":
		s, err = LoadLua(path)
	case ".json", ".yaml", ".yml":
		var data []byte
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read scenario file: %w", err)
		}
		s, err = Decode(data, filepath.Ext(path))
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	s.FileName = filepath.Base(path)
	return s, nil
}

// Decode parses JSON or YAML scenario data; ext selects the format.
func Decode(data []byte, ext string) (*Scenario, error) {
	var s Scenario
	switch strings.ToLower(ext) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &s, nil
}
