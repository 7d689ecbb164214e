package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row with selection counts and keyboard shortcuts.
type StatusBar struct {
	summary  SelectionSummary
	multiple bool // whether ctrl+a is offered
	width    int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status bar with a new selection summary.
func (s *StatusBar) Update(summary SelectionSummary, multiple bool) {
	s.summary = summary
	s.multiple = multiple
}

// View renders the status bar.
func (s StatusBar) View() string {
	leftPart := fmt.Sprintf("%d/%d selected · %s", s.summary.Selected, s.summary.Total, s.summary.Policy)
	if !s.summary.Satisfied {
		leftPart += " " + StatusBarWarnStyle.Render("· incomplete")
	}

	shortcuts := []string{
		StatusBarKeyStyle.Render("Space") + ": toggle",
		StatusBarKeyStyle.Render("Enter") + ": done",
		StatusBarKeyStyle.Render("Esc") + ": cancel",
	}
	if s.multiple {
		shortcuts = append(shortcuts, StatusBarKeyStyle.Render("Ctrl+A")+": all")
	}
	shortcuts = append(shortcuts, StatusBarKeyStyle.Render("Ctrl+N")+": none")

	// Drop trailing shortcuts until the row fits.
	leftWidth := ansi.StringWidth(leftPart)
	availableWidth := s.width - 2 // account for StatusBarStyle padding
	rightPart := strings.Join(shortcuts, " · ")
	for len(shortcuts) > 0 && leftWidth+1+ansi.StringWidth(rightPart) > availableWidth {
		shortcuts = shortcuts[:len(shortcuts)-1]
		rightPart = strings.Join(shortcuts, " · ")
	}

	gap := availableWidth - leftWidth - ansi.StringWidth(rightPart)
	if gap < 1 {
		gap = 1
	}

	content := leftPart + strings.Repeat(" ", gap) + rightPart

	return StatusBarStyle.Width(s.width).Render(content)
}
