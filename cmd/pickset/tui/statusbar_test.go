package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusBar_View(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(120)
	s.Update(SelectionSummary{Selected: 2, Total: 6, Policy: "multiple", Satisfied: true}, true)

	v := s.View()
	assert.Contains(t, v, "2/6 selected")
	assert.Contains(t, v, "multiple")
	assert.Contains(t, v, "Ctrl+A")
	assert.Contains(t, v, "Ctrl+N")
	assert.NotContains(t, v, "incomplete")
}

func TestStatusBar_Incomplete(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(120)
	s.Update(SelectionSummary{Selected: 0, Total: 6, Policy: "single, required"}, false)

	v := s.View()
	assert.Contains(t, v, "incomplete")
	assert.NotContains(t, v, "Ctrl+A")
}
