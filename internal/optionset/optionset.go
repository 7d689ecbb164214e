package optionset

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"

	"github.com/ruminaider/pickset/internal/selection"
	"go.yaml.in/yaml/v3"
)

// Option is one entry under `options:`.
type Option struct {
	Title  string `yaml:"title"`
	Detail string `yaml:"detail,omitempty"`
}

// File represents an option-set YAML file.
type File struct {
	Title             string            `yaml:"title,omitempty"`
	Policy            string            `yaml:"policy,omitempty"`
	RequiresSelection bool              `yaml:"requires_selection,omitempty"`
	Max               int               `yaml:"max,omitempty"`
	SectionMax        int               `yaml:"section_max,omitempty"`
	Min               int               `yaml:"min,omitempty"`
	SectionMin        int               `yaml:"section_min,omitempty"`
	Options           map[string]Option `yaml:"options"`
	Order             [][]string        `yaml:"order,omitempty"`
	SectionTitles     []string          `yaml:"section_titles,omitempty"`
	Selected          []string          `yaml:"selected,omitempty"`
}

// Parse parses option-set bytes. The policy name is checked here; the
// layout is checked by Index.
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing option set: %w", err)
	}
	if len(f.Options) == 0 {
		return File{}, fmt.Errorf("parsing option set: no options")
	}
	if _, err := f.SelectionPolicy(); err != nil {
		return File{}, fmt.Errorf("parsing option set: %w", err)
	}
	return f, nil
}

// Load reads and parses the option set at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading option set: %w", err)
	}
	return Parse(data)
}

// Marshal serializes an option set to YAML bytes.
func Marshal(f File) ([]byte, error) {
	return yaml.Marshal(f)
}

// SelectionPolicy converts the policy fields. An empty policy name means
// single, matching the picker's default.
func (f File) SelectionPolicy() (selection.Policy, error) {
	mode := selection.Single
	if f.Policy != "" {
		m, err := selection.ParseMode(f.Policy)
		if err != nil {
			return selection.Policy{}, err
		}
		mode = m
	}
	p := selection.Policy{
		Mode:              mode,
		RequiresSelection: f.RequiresSelection,
		Max:               f.Max,
		SectionMax:        f.SectionMax,
		Min:               f.Min,
		SectionMin:        f.SectionMin,
	}
	if err := p.Validate(); err != nil {
		return selection.Policy{}, err
	}
	return p, nil
}

// Index builds the option index. Without an explicit order every option goes
// into one section sorted by id.
func (f File) Index(logger *slog.Logger) (*selection.Index[string], error) {
	labels := make(map[string]selection.Label, len(f.Options))
	for id, o := range f.Options {
		labels[id] = selection.Label{Title: o.Title, Detail: o.Detail}
	}
	order, titles := f.Order, f.SectionTitles
	if len(order) == 0 {
		order = nil
	}
	if len(titles) == 0 {
		titles = nil
	}
	return selection.Build(selection.IndexConfig[string]{
		Options:       labels,
		Order:         order,
		SectionTitles: titles,
		Compare:       cmp.Compare[string],
		Logger:        logger,
	})
}

// State builds the index and a state seeded with `selected:`, or with
// override when it is non-empty.
func (f File) State(logger *slog.Logger, policy selection.Policy, override ...string) (*selection.State[string], error) {
	idx, err := f.Index(logger)
	if err != nil {
		return nil, err
	}
	seed := f.Selected
	if len(override) > 0 {
		seed = override
	}
	return selection.NewState(idx, policy, seed...)
}
