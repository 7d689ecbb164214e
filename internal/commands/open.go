package commands

import (
	"fmt"
	"log/slog"

	"github.com/ruminaider/pickset/internal/optionset"
	"github.com/ruminaider/pickset/internal/selection"
)

// Overrides replace policy fields from the option-set file. Zero values keep
// the file's setting.
type Overrides struct {
	Mode     string // selection mode name, e.g. "multiple"
	Require  bool   // force requires_selection on
	Selected []string
}

// Loaded is an option set ready to present.
type Loaded struct {
	Path   string
	File   optionset.File
	Policy selection.Policy
	State  *selection.State[string]
}

// Title returns the set's title, or its path when untitled.
func (l *Loaded) Title() string {
	if l.File.Title != "" {
		return l.File.Title
	}
	return l.Path
}

// Open loads the option set at path, applies overrides, and builds a state
// seeded from the file or from o.Selected.
func Open(path string, o Overrides, logger *slog.Logger) (*Loaded, error) {
	if logger == nil {
		logger = slog.Default()
	}
	f, err := optionset.Load(path)
	if err != nil {
		return nil, err
	}
	if o.Mode != "" {
		f.Policy = o.Mode
	}
	if o.Require {
		f.RequiresSelection = true
	}
	policy, err := f.SelectionPolicy()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	state, err := f.State(logger.With("set", path), policy, o.Selected...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Loaded{Path: path, File: f, Policy: policy, State: state}, nil
}
