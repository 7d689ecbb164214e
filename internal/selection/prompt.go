package selection

import (
	"fmt"
	"strings"
)

// Prompt is what a presenter shows instead of dismissing when the selection
// does not satisfy the policy.
type Prompt struct {
	Title   string
	Message string
	Button  string
}

// IsZero reports whether there is nothing to show.
func (p Prompt) IsZero() bool { return p.Message == "" }

// Problem explains why the state is not satisfied. It returns the zero
// Prompt when it is.
func (s *State[K]) Problem() Prompt {
	if s.Satisfied() {
		return Prompt{}
	}

	var parts []string
	if missing := s.MissingSections(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, sec := range missing {
			names[i] = s.sectionName(sec)
		}
		if need := s.policy.minPerSection(); need > 1 {
			parts = append(parts, fmt.Sprintf("Please select at least %d for %s.", need, strings.Join(names, ", ")))
		} else {
			parts = append(parts, fmt.Sprintf("Please make a selection for %s.", strings.Join(names, ", ")))
		}
	}

	if have, need := len(s.selected), s.policy.minTotal(); have < need {
		switch diff := need - have; {
		case have == 0 && need == 1:
			parts = append(parts, "Please make a selection.")
		case diff == 1:
			parts = append(parts, "Please select another choice.")
		default:
			parts = append(parts, fmt.Sprintf("Please select another %d choices.", diff))
		}
	}

	if len(parts) == 0 {
		parts = append(parts, "Please make a selection.")
	}
	return Prompt{Message: strings.Join(parts, " "), Button: "OK"}
}

// sectionName is the title of sec, or "Section N" (1-based) when untitled.
func (s *State[K]) sectionName(sec int) string {
	if t := s.index.TitleOf(sec); t != "" {
		return t
	}
	return fmt.Sprintf("Section %d", sec+1)
}
