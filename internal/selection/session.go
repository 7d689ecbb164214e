package selection

import "slices"

// Completion receives the end of a selection flow. Confirm gets the final
// selection in display order; Cancel gets the selection the session started
// with.
type Completion[K comparable] interface {
	Confirm(selected []K)
	Cancel(previous []K)
}

// CompletionFuncs adapts two closures to Completion. Nil funcs are skipped.
type CompletionFuncs[K comparable] struct {
	OnConfirm func(selected []K)
	OnCancel  func(previous []K)
}

func (f CompletionFuncs[K]) Confirm(selected []K) {
	if f.OnConfirm != nil {
		f.OnConfirm(selected)
	}
}

func (f CompletionFuncs[K]) Cancel(previous []K) {
	if f.OnCancel != nil {
		f.OnCancel(previous)
	}
}

// Session drives one presentation: toggles go to the state, Dismiss gates on
// Satisfied, Cancel hands back the starting selection. Exactly one of
// Confirm or Cancel fires per session.
type Session[K comparable] struct {
	Title string // copied into prompts

	state    *State[K]
	previous []K
	done     Completion[K]
	finished bool
}

// NewSession starts a session over state. The state's current selection is
// remembered for Cancel.
func NewSession[K comparable](state *State[K], done Completion[K]) *Session[K] {
	if done == nil {
		done = CompletionFuncs[K]{}
	}
	return &Session[K]{
		state:    state,
		previous: state.Ordered(),
		done:     done,
	}
}

// State returns the session's selection state.
func (s *Session[K]) State() *State[K] { return s.state }

// Previous returns the selection the session started with.
func (s *Session[K]) Previous() []K { return slices.Clone(s.previous) }

// Done reports whether Confirm or Cancel has fired.
func (s *Session[K]) Done() bool { return s.finished }

// Toggle forwards to State.Toggle.
func (s *Session[K]) Toggle(id K) (Change[K], error) {
	if s.finished {
		return Change[K]{Selected: s.state.Selected()}, ErrFinished
	}
	return s.state.Toggle(id)
}

// Dirty reports whether the selection differs from the starting one.
func (s *Session[K]) Dirty() bool {
	cur := s.state.Ordered()
	return !slices.Equal(cur, s.previous)
}

// Dismiss finalises the session when the selection is satisfied, calling
// Confirm and returning true. Otherwise it returns the prompt to show and
// leaves the session open. A finished session returns false and an empty
// prompt.
func (s *Session[K]) Dismiss() (Prompt, bool) {
	if s.finished {
		return Prompt{}, false
	}
	if p := s.state.Problem(); !p.IsZero() {
		p.Title = s.Title // shown as given, no case change
		return p, false
	}
	s.finished = true
	s.done.Confirm(s.state.Ordered())
	return Prompt{}, true
}

// Cancel ends the session without checking the selection and hands the
// starting selection to Completion.Cancel.
func (s *Session[K]) Cancel() {
	if s.finished {
		return
	}
	s.finished = true
	s.done.Cancel(s.Previous())
}
