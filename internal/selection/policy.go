package selection

import "fmt"

// Mode is the auto-deselection behaviour of a policy.
type Mode int

const (
	// Single allows one selection overall.
	Single Mode = iota
	// SingleSectioned allows one selection per section.
	SingleSectioned
	// Multiple allows any number of selections.
	Multiple
	// MultipleSectioned allows any number of selections; when a selection is
	// required, every section needs one.
	MultipleSectioned
)

var modeNames = map[Mode]string{
	Single:            "single",
	SingleSectioned:   "single-sectioned",
	Multiple:          "multiple",
	MultipleSectioned: "multiple-sectioned",
}

// String returns the name used in option-set files and flags.
func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, n := range modeNames {
		if n == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidPolicy, s)
}

// Sectioned reports whether satisfaction is judged per section.
func (m Mode) Sectioned() bool {
	return m == SingleSectioned || m == MultipleSectioned
}

// Policy is pure configuration: a Mode, whether a selection is mandatory at
// dismissal, and optional limits. Zero limits take the Mode's defaults.
type Policy struct {
	Mode              Mode
	RequiresSelection bool

	// Max caps the total selection; the oldest selection is evicted first.
	// Single implies 1.
	Max int
	// SectionMax caps selections within one section, oldest evicted first.
	// SingleSectioned implies 1.
	SectionMax int
	// Min is the total required when RequiresSelection. Flat modes default
	// to 1, sectioned modes to 0.
	Min int
	// SectionMin is the per-section count required when RequiresSelection
	// in a sectioned mode. Defaults to 1.
	SectionMin int
}

// NewPolicy returns a policy for mode with default limits.
func NewPolicy(mode Mode, requiresSelection bool) Policy {
	return Policy{Mode: mode, RequiresSelection: requiresSelection}
}

// Required returns a copy of p that demands a selection at dismissal.
func (p Policy) Required() Policy {
	p.RequiresSelection = true
	return p
}

// Validate rejects negative limits and minimums above their maximums.
func (p Policy) Validate() error {
	if _, ok := modeNames[p.Mode]; !ok {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidPolicy, int(p.Mode))
	}
	if p.Max < 0 || p.SectionMax < 0 || p.Min < 0 || p.SectionMin < 0 {
		return fmt.Errorf("%w: limits must not be negative", ErrInvalidPolicy)
	}
	if hi := p.maxTotal(); hi > 0 && p.minTotal() > hi {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidPolicy, p.minTotal(), hi)
	}
	if hi := p.maxPerSection(); hi > 0 && p.Mode.Sectioned() && p.minPerSection() > hi {
		return fmt.Errorf("%w: section min %d exceeds section max %d", ErrInvalidPolicy, p.minPerSection(), hi)
	}
	return nil
}

// AllowsMultiple reports whether more than one option can be selected at once.
func (p Policy) AllowsMultiple() bool {
	return p.maxTotal() != 1
}

// Exclusive reports whether each scope holds at most one selection: the
// whole list when the total limit is 1, otherwise each section.
func (p Policy) Exclusive() bool {
	return p.maxTotal() == 1 || p.maxPerSection() == 1
}

func (p Policy) maxTotal() int {
	if p.Max > 0 {
		return p.Max
	}
	if p.Mode == Single {
		return 1
	}
	return 0
}

func (p Policy) maxPerSection() int {
	if p.SectionMax > 0 {
		return p.SectionMax
	}
	if p.Mode == SingleSectioned {
		return 1
	}
	return 0
}

func (p Policy) minTotal() int {
	if p.Min > 0 {
		return p.Min
	}
	if p.Mode.Sectioned() {
		return 0
	}
	return 1
}

func (p Policy) minPerSection() int {
	if p.SectionMin > 0 {
		return p.SectionMin
	}
	return 1
}

// String describes the policy for status lines, e.g. "single-sectioned, required".
func (p Policy) String() string {
	s := p.Mode.String()
	if p.Max > 0 {
		s += fmt.Sprintf(", max %d", p.Max)
	}
	if p.SectionMax > 0 {
		s += fmt.Sprintf(", max %d per section", p.SectionMax)
	}
	if p.RequiresSelection {
		s += ", required"
	}
	return s
}
