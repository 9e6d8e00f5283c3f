package storage

import (
	"context"

	"github.com/jwebster45206/adventure-engine/pkg/scenario"
)

// Storage provides access to the scenario library.
type Storage interface {
	// ListScenarios maps scenario display names to file names.
	ListScenarios(ctx context.Context) (map[string]string, error)

	// GetScenario loads a scenario by file name.
	GetScenario(ctx context.Context, filename string) (*scenario.Scenario, error)
}
