package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/pickset/internal/selection"
)

// overlayContext tracks what the currently-active overlay was opened for.
type overlayContext int

const (
	overlayNone    overlayContext = iota
	overlayAlert                  // selection cannot be confirmed yet
	overlayDiscard                // leave with unsaved changes
)

// Outcome is how the picker ended. Selected holds the confirmed selection,
// or the starting one when the user cancelled.
type Outcome struct {
	Confirmed bool
	Selected  []string
}

// Model is the root bubbletea model: a titled picker, a status bar and an
// optional modal overlay.
type Model struct {
	session   *selection.Session[string]
	title     string
	picker    Picker
	statusBar StatusBar
	overlay   Overlay

	overlayCtx    overlayContext
	width, height int
	ready         bool // set after first WindowSizeMsg
	quitting      bool

	// Written by the session's completion, read after the program exits.
	outcome *Outcome
}

// NewModel builds the root model over state. done, when non-nil, is told
// about the outcome after the model records it.
func NewModel(title string, state *selection.State[string], done selection.Completion[string]) Model {
	out := &Outcome{}
	session := selection.NewSession(state, selection.CompletionFuncs[string]{
		OnConfirm: func(sel []string) {
			out.Confirmed = true
			out.Selected = sel
			if done != nil {
				done.Confirm(sel)
			}
		},
		OnCancel: func(prev []string) {
			out.Confirmed = false
			out.Selected = prev
			if done != nil {
				done.Cancel(prev)
			}
		},
	})
	session.Title = title

	m := Model{
		session:   session,
		title:     title,
		picker:    NewPicker(session),
		statusBar: NewStatusBar(),
		outcome:   out,
	}
	m.syncStatusBar()
	return m
}

// Outcome returns the result recorded by the session.
func (m Model) Outcome() Outcome {
	return *m.outcome
}

// Session exposes the underlying session.
func (m Model) Session() *selection.Session[string] {
	return m.session
}

// Init satisfies tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model. Routes messages to the overlay or the picker.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.distributeSize()
		return m, nil

	case DismissRequestMsg:
		return m.dismiss()

	case CancelRequestMsg:
		return m.requestCancel()
	}

	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "ctrl+c" {
		m.session.Cancel()
		m.quitting = true
		return m, tea.Quit
	}

	// When overlay is active, route ALL messages to the overlay.
	if m.overlay.Active() {
		return m.updateOverlay(msg)
	}

	return m.updatePicker(msg)
}

// View satisfies tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}

	statusView := m.statusBar.View()
	var b strings.Builder
	if m.title != "" {
		b.WriteString(TitleStyle.Render(m.title))
		b.WriteString("\n")
	}
	b.WriteString(m.picker.View())
	main := clampHeight(b.String(), m.height-1)
	pad := max(m.height-1-strings.Count(main, "\n"), 1)
	frame := main + strings.Repeat("\n", pad) + statusView

	if m.overlay.Active() {
		return Composite(frame, m.overlay.View(), m.width, m.height)
	}
	return frame
}

// --- Update helpers ---

func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	m.syncStatusBar()

	// Handle picker requests directly instead of sending them through the
	// event loop. Only enter and esc produce them; other keys may carry
	// filter cursor commands that must not run here.
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter":
			if extractDismissRequest(cmd) {
				return m.dismiss()
			}
		case "esc":
			if extractCancelRequest(cmd) {
				return m.requestCancel()
			}
		}
	}
	return m, cmd
}

func (m Model) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	wasActive := m.overlay.Active()
	var cmd tea.Cmd
	m.overlay, cmd = m.overlay.Update(msg)

	// When the overlay just closed, the cmd is an OverlayCloseMsg producer.
	// Handle it directly instead of sending through the event loop.
	if wasActive && !m.overlay.Active() && cmd != nil {
		if closeMsg := extractOverlayClose(cmd); closeMsg != nil {
			return m.handleOverlayClose(*closeMsg)
		}
	}

	return m, cmd
}

func (m Model) handleOverlayClose(msg OverlayCloseMsg) (tea.Model, tea.Cmd) {
	ctx := m.overlayCtx
	m.overlayCtx = overlayNone

	switch ctx {
	case overlayDiscard:
		if msg.Confirmed {
			m.session.Cancel()
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// dismiss finishes when the policy is satisfied and otherwise explains
// what is missing.
func (m Model) dismiss() (tea.Model, tea.Cmd) {
	prompt, ok := m.session.Dismiss()
	if ok {
		m.quitting = true
		return m, tea.Quit
	}
	if m.session.Done() {
		return m, nil
	}
	title := prompt.Title
	if title == "" {
		title = "Incomplete selection"
	}
	m.overlay = NewAlertOverlay(title, prompt.Message, prompt.Button)
	m.overlay.SetWidth(OverlayMaxWidth(m.width))
	m.overlayCtx = overlayAlert
	return m, nil
}

// requestCancel asks before discarding changes; an untouched selection
// cancels straight away.
func (m Model) requestCancel() (tea.Model, tea.Cmd) {
	if m.session.Dirty() {
		m.overlay = NewConfirmOverlay("Discard changes", "Leave without keeping the new selection?")
		m.overlay.SetWidth(OverlayMaxWidth(m.width))
		m.overlayCtx = overlayDiscard
		return m, nil
	}
	m.session.Cancel()
	m.quitting = true
	return m, tea.Quit
}

// --- Size distribution ---

func (m *Model) distributeSize() {
	statusBarHeight := 1
	titleHeight := 0
	if m.title != "" {
		titleHeight = 1
	}
	m.picker.SetHeight(m.height - statusBarHeight - titleHeight)
	m.picker.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
}

func (m *Model) syncStatusBar() {
	m.statusBar.Update(m.picker.Summary(), !m.picker.Radio())
}

// clampHeight keeps at most maxLines lines of s.
func clampHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return strings.Join(lines, "\n")
}

// --- Message extraction helpers ---
// These helpers run a tea.Cmd synchronously to extract the message it produces.
// This is safe because our commands are all simple closures returning a message.

func extractOverlayClose(cmd tea.Cmd) *OverlayCloseMsg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if m, ok := msg.(OverlayCloseMsg); ok {
		return &m
	}
	return nil
}

func extractDismissRequest(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(DismissRequestMsg)
	return ok
}

func extractCancelRequest(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(CancelRequestMsg)
	return ok
}

// Ensure Model satisfies tea.Model at compile time.
var _ tea.Model = Model{}
