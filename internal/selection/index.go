// Package selection holds the option index and selection state behind a
// pickset session. It knows nothing about rendering: callers build an Index
// once, mutate a State through Toggle, and ask Satisfied before they let the
// user leave.
package selection

import (
	"log/slog"
	"slices"
)

// Label is the display text for one option.
type Label struct {
	Title  string
	Detail string // optional secondary text
}

// Option is a Label bound to its id.
type Option[K comparable] struct {
	ID     K
	Title  string
	Detail string
}

// Position locates an option in the sectioned ordering.
type Position struct {
	Section int
	Row     int
}

// Section is an ordered group of option ids with an optional title.
type Section[K comparable] struct {
	Title string
	IDs   []K
}

// IndexConfig describes the options and how to lay them out.
type IndexConfig[K comparable] struct {
	Options map[K]Label

	// Order lists the ids of each section. When nil, every option is placed
	// in one section sorted with Compare.
	Order [][]K

	// SectionTitles, when set, must have one entry per section.
	SectionTitles []string

	// Compare orders ids when Order is nil. Required in that case.
	Compare func(a, b K) int

	// Logger receives build diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Index is an immutable two-way mapping between option ids and their
// (section, row) positions. It is safe to share once built.
type Index[K comparable] struct {
	sections     []Section[K]
	labels       map[K]Label
	positions    map[K]Position
	unreferenced []K
}

// Build validates cfg and returns the index. A duplicate id in the ordering,
// an id missing from Options, a title count mismatch, or a missing ordering
// yields a *ConfigError. Options that no section references are not an
// error; they are logged and available from Unreferenced.
func Build[K comparable](cfg IndexConfig[K]) (*Index[K], error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	order := cfg.Order
	if order == nil {
		if cfg.Compare == nil {
			return nil, configErr(ErrNoOrdering, nil, -1)
		}
		ids := make([]K, 0, len(cfg.Options))
		for id := range cfg.Options {
			ids = append(ids, id)
		}
		slices.SortFunc(ids, cfg.Compare)
		order = [][]K{ids}
	}

	if cfg.SectionTitles != nil && len(cfg.SectionTitles) != len(order) {
		return nil, configErr(ErrTitleCount, nil, len(cfg.SectionTitles))
	}

	idx := &Index[K]{
		sections:  make([]Section[K], len(order)),
		labels:    make(map[K]Label, len(cfg.Options)),
		positions: make(map[K]Position, len(cfg.Options)),
	}

	for s, ids := range order {
		if len(ids) == 0 {
			logger.Debug("option index has an empty section", "section", s)
		}
		sec := Section[K]{IDs: make([]K, 0, len(ids))}
		if cfg.SectionTitles != nil {
			sec.Title = cfg.SectionTitles[s]
		}
		for r, id := range ids {
			label, ok := cfg.Options[id]
			if !ok {
				return nil, configErr(ErrUnknownOption, id, s)
			}
			if _, dup := idx.positions[id]; dup {
				return nil, configErr(ErrDuplicateOption, id, s)
			}
			idx.positions[id] = Position{Section: s, Row: r}
			idx.labels[id] = label
			sec.IDs = append(sec.IDs, id)
		}
		idx.sections[s] = sec
	}

	for id := range cfg.Options {
		if _, ok := idx.positions[id]; !ok {
			idx.unreferenced = append(idx.unreferenced, id)
		}
	}
	if cfg.Compare != nil {
		slices.SortFunc(idx.unreferenced, cfg.Compare)
	}
	if len(idx.unreferenced) > 0 {
		logger.Warn("options not referenced by any section are hidden",
			"count", len(idx.unreferenced), "ids", idx.unreferenced)
	}

	return idx, nil
}

// PositionOf returns where id is displayed.
func (x *Index[K]) PositionOf(id K) (Position, bool) {
	pos, ok := x.positions[id]
	return pos, ok
}

// IDAt returns the id at (section, row). Out-of-range input reports false.
func (x *Index[K]) IDAt(section, row int) (K, bool) {
	var zero K
	if section < 0 || section >= len(x.sections) {
		return zero, false
	}
	ids := x.sections[section].IDs
	if row < 0 || row >= len(ids) {
		return zero, false
	}
	return ids[row], true
}

// OptionAt returns the option at (section, row).
func (x *Index[K]) OptionAt(section, row int) (Option[K], bool) {
	id, ok := x.IDAt(section, row)
	if !ok {
		return Option[K]{}, false
	}
	l := x.labels[id]
	return Option[K]{ID: id, Title: l.Title, Detail: l.Detail}, true
}

// Label returns the display text for id.
func (x *Index[K]) Label(id K) (Label, bool) {
	l, ok := x.labels[id]
	return l, ok
}

// Contains reports whether id is laid out in some section.
func (x *Index[K]) Contains(id K) bool {
	_, ok := x.positions[id]
	return ok
}

// SectionCount returns the number of sections.
func (x *Index[K]) SectionCount() int { return len(x.sections) }

// RowCount returns the rows in section, or 0 when out of range.
func (x *Index[K]) RowCount(section int) int {
	if section < 0 || section >= len(x.sections) {
		return 0
	}
	return len(x.sections[section].IDs)
}

// TitleOf returns the title of section, or "" when untitled or out of range.
func (x *Index[K]) TitleOf(section int) string {
	if section < 0 || section >= len(x.sections) {
		return ""
	}
	return x.sections[section].Title
}

// Len returns the number of displayed options.
func (x *Index[K]) Len() int { return len(x.positions) }

// IDs returns every displayed id in display order.
func (x *Index[K]) IDs() []K {
	out := make([]K, 0, len(x.positions))
	for _, sec := range x.sections {
		out = append(out, sec.IDs...)
	}
	return out
}

// Sections returns a copy of the section layout.
func (x *Index[K]) Sections() []Section[K] {
	out := make([]Section[K], len(x.sections))
	for i, sec := range x.sections {
		out[i] = Section[K]{Title: sec.Title, IDs: slices.Clone(sec.IDs)}
	}
	return out
}

// Unreferenced returns options that were supplied but never laid out.
func (x *Index[K]) Unreferenced() []K {
	return slices.Clone(x.unreferenced)
}
