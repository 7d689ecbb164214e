package commands

import (
	"fmt"
	"log/slog"

	"github.com/ruminaider/pickset/internal/selection"
)

// ReplayStep records one toggle.
type ReplayStep struct {
	ID       string
	Added    []string
	Removed  []string
	Selected []string // display order
}

// ReplayResult holds the starting selection and the effect of each toggle.
type ReplayResult struct {
	Initial   []string
	Steps     []ReplayStep
	Final     []string
	Satisfied bool
	Prompt    selection.Prompt
}

// Replay toggles ids one after another starting from the set's seed and
// records every intermediate selection. It stops at the first unknown id.
func Replay(path string, o Overrides, ids []string, logger *slog.Logger) (*ReplayResult, error) {
	l, err := Open(path, o, logger)
	if err != nil {
		return nil, err
	}

	result := &ReplayResult{Initial: l.State.Ordered()}
	for _, id := range ids {
		change, err := l.State.Toggle(id)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", len(result.Steps)+1, err)
		}
		result.Steps = append(result.Steps, ReplayStep{
			ID:       id,
			Added:    change.Added,
			Removed:  change.Removed,
			Selected: l.State.Ordered(),
		})
	}
	result.Final = l.State.Ordered()
	result.Satisfied = l.State.Satisfied()
	result.Prompt = l.State.Problem()
	return result, nil
}
