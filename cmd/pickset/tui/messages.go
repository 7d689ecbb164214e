package tui

// --- Inter-component messages ---

// DismissRequestMsg is sent when the user asks to finish with the current
// selection. The root model decides whether the policy allows it.
type DismissRequestMsg struct{}

// CancelRequestMsg is sent when the user asks to leave without keeping
// changes.
type CancelRequestMsg struct{}

// OverlayCloseMsg is emitted when any overlay is dismissed.
type OverlayCloseMsg struct {
	Confirmed bool // true = OK, false = Cancel/Esc
}

// SelectionSummary carries counts for the status bar.
type SelectionSummary struct {
	Selected  int
	Total     int
	Policy    string
	Satisfied bool
}
