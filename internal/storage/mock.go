package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwebster45206/adventure-engine/pkg/scenario"
)

// MockStorage is an in-memory Storage for tests.
type MockStorage struct {
	mu        sync.RWMutex
	scenarios map[string]*scenario.Scenario
	listError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		scenarios: make(map[string]*scenario.Scenario),
	}
}

// AddScenario registers a scenario under a file name.
func (m *MockStorage) AddScenario(filename string, s *scenario.Scenario) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.FileName = filename
	m.scenarios[filename] = s
}

// SetListError makes ListScenarios fail with err.
func (m *MockStorage) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listError = err
}

func (m *MockStorage) ListScenarios(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.listError != nil {
		return nil, m.listError
	}
	out := make(map[string]string, len(m.scenarios))
	for filename, s := range m.scenarios {
		out[s.Name] = filename
	}
	return out, nil
}

func (m *MockStorage) GetScenario(ctx context.Context, filename string) (*scenario.Scenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.scenarios[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScenarioNotFound, filename)
	}
	return s, nil
}
