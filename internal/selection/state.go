package selection

import (
	"fmt"
	"slices"
)

// Change is the outcome of one mutation.
type Change[K comparable] struct {
	Selected []K // selection after the change, oldest first
	Added    []K
	Removed  []K // includes ids evicted by the policy
	Changed  bool
}

// State is the mutable set of selected ids for one session. It is bound to
// one index and one policy and is not safe for concurrent use; callers
// serialise Toggle calls through a single owner.
type State[K comparable] struct {
	index    *Index[K]
	policy   Policy
	selected []K // selection order, oldest first
	set      map[K]struct{}
}

// NewState returns a state seeded with ids. Seeds are applied in order with
// the policy's limits, so seeding two ids under Single keeps only the last.
// Every seed must be known to the index.
func NewState[K comparable](index *Index[K], policy Policy, seed ...K) (*State[K], error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	s := &State[K]{
		index:  index,
		policy: policy,
		set:    make(map[K]struct{}, len(seed)),
	}
	if err := s.Reset(seed...); err != nil {
		return nil, err
	}
	return s, nil
}

// Policy returns the policy the state enforces.
func (s *State[K]) Policy() Policy { return s.policy }

// Index returns the index the state was built against.
func (s *State[K]) Index() *Index[K] { return s.index }

// Toggle flips id. Deselecting is always allowed, even when the policy
// requires a selection; that requirement is only checked by Satisfied.
// Selecting evicts the oldest selections the policy no longer permits:
// everything under Single, the same section under SingleSectioned.
//
// Toggling an id the index does not know returns an error wrapping
// ErrUnknownOption and leaves the state untouched.
func (s *State[K]) Toggle(id K) (Change[K], error) {
	if !s.index.Contains(id) {
		return Change[K]{Selected: s.Selected()}, fmt.Errorf("toggling %v: %w", id, ErrUnknownOption)
	}
	if s.IsSelected(id) {
		s.remove(id)
		return Change[K]{Selected: s.Selected(), Removed: []K{id}, Changed: true}, nil
	}
	evicted := s.add(id)
	return Change[K]{
		Selected: s.Selected(),
		Added:    []K{id},
		Removed:  evicted,
		Changed:  true,
	}, nil
}

// IsSelected reports whether id is selected.
func (s *State[K]) IsSelected(id K) bool {
	_, ok := s.set[id]
	return ok
}

// Selected returns the selected ids, oldest first.
func (s *State[K]) Selected() []K {
	return slices.Clone(s.selected)
}

// Ordered returns the selected ids in display order.
func (s *State[K]) Ordered() []K {
	out := make([]K, 0, len(s.selected))
	for _, id := range s.index.IDs() {
		if s.IsSelected(id) {
			out = append(out, id)
		}
	}
	return out
}

// Len returns the number of selected ids.
func (s *State[K]) Len() int { return len(s.selected) }

// SectionLen returns how many selected ids fall in section.
func (s *State[K]) SectionLen(section int) int {
	n := 0
	for _, id := range s.selected {
		if pos, _ := s.index.PositionOf(id); pos.Section == section {
			n++
		}
	}
	return n
}

// Satisfied reports whether the selection meets the policy's requirement.
// Without RequiresSelection it is always true. Flat modes need at least Min
// selections (default 1); sectioned modes need SectionMin (default 1) in
// every section and Min in total.
func (s *State[K]) Satisfied() bool {
	if !s.policy.RequiresSelection {
		return true
	}
	if len(s.selected) < s.policy.minTotal() {
		return false
	}
	return len(s.MissingSections()) == 0
}

// MissingSections lists sections below the per-section minimum. It is
// always empty for flat modes and when no selection is required.
func (s *State[K]) MissingSections() []int {
	if !s.policy.RequiresSelection || !s.policy.Mode.Sectioned() {
		return nil
	}
	need := s.policy.minPerSection()
	var missing []int
	for sec := 0; sec < s.index.SectionCount(); sec++ {
		if s.SectionLen(sec) < need {
			missing = append(missing, sec)
		}
	}
	return missing
}

// Clear deselects everything.
func (s *State[K]) Clear() Change[K] {
	removed := s.Selected()
	s.selected = s.selected[:0]
	clear(s.set)
	return Change[K]{Selected: s.Selected(), Removed: removed, Changed: len(removed) > 0}
}

// SelectAll selects every unselected id in display order. Limits still
// apply, so under Single only the last option stays selected.
func (s *State[K]) SelectAll() Change[K] {
	var c Change[K]
	for _, id := range s.index.IDs() {
		if s.IsSelected(id) {
			continue
		}
		c.Added = append(c.Added, id)
		c.Removed = append(c.Removed, s.add(id)...)
	}
	c.Selected = s.Selected()
	c.Changed = len(c.Added) > 0
	return c
}

// Reset replaces the selection with ids, applied in order under the policy.
// On an unknown id the state is left unchanged.
func (s *State[K]) Reset(ids ...K) error {
	for _, id := range ids {
		if !s.index.Contains(id) {
			return fmt.Errorf("selecting %v: %w", id, ErrUnknownOption)
		}
	}
	s.Clear()
	for _, id := range ids {
		if !s.IsSelected(id) {
			s.add(id)
		}
	}
	return nil
}

// add selects id after evicting whatever the policy's limits require,
// returning the evicted ids.
func (s *State[K]) add(id K) []K {
	var evicted []K
	if hi := s.policy.maxPerSection(); hi > 0 {
		pos, _ := s.index.PositionOf(id)
		for s.SectionLen(pos.Section) >= hi {
			oldest := s.oldestIn(pos.Section)
			s.remove(oldest)
			evicted = append(evicted, oldest)
		}
	}
	if hi := s.policy.maxTotal(); hi > 0 {
		for len(s.selected) >= hi {
			oldest := s.selected[0]
			s.remove(oldest)
			evicted = append(evicted, oldest)
		}
	}
	s.selected = append(s.selected, id)
	s.set[id] = struct{}{}
	return evicted
}

func (s *State[K]) oldestIn(section int) K {
	for _, id := range s.selected {
		if pos, _ := s.index.PositionOf(id); pos.Section == section {
			return id
		}
	}
	var zero K
	return zero
}

func (s *State[K]) remove(id K) {
	if i := slices.Index(s.selected, id); i >= 0 {
		s.selected = slices.Delete(s.selected, i, i+1)
	}
	delete(s.set, id)
}
