package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/ruminaider/pickset/internal/selection"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"
)

// pickerRow is one rendered line: a section header or an option.
type pickerRow struct {
	header  bool
	section int
	id      string
	title   string
	detail  string
}

// Picker is a sectioned list over a selection session. Toggling goes
// through the session so the policy decides what else gets deselected.
type Picker struct {
	session *selection.Session[string]
	rows    []pickerRow
	cursor  int // index into visible()
	height  int // viewport height (number of visible rows)
	width   int
	offset  int // scroll offset for long lists
	focused bool

	filter     textinput.Model
	filterText string
	filterView []int // indexes into rows; nil when no filter is active
}

// NewPicker lays out the session's index. The cursor starts on the first
// option.
func NewPicker(session *selection.Session[string]) Picker {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter"
	ti.Focus()

	p := Picker{
		session: session,
		rows:    buildRows(session.State().Index()),
		height:  20,
		focused: true,
		filter:  ti,
	}
	p.cursor = p.firstSelectable(0, +1)
	return p
}

// buildRows flattens the index into headers and options. Untitled sections
// get no header.
func buildRows(idx *selection.Index[string]) []pickerRow {
	var rows []pickerRow
	for s := 0; s < idx.SectionCount(); s++ {
		if idx.RowCount(s) == 0 {
			continue
		}
		if title := idx.TitleOf(s); title != "" {
			rows = append(rows, pickerRow{header: true, section: s, title: title})
		}
		for r := 0; r < idx.RowCount(s); r++ {
			opt, _ := idx.OptionAt(s, r)
			rows = append(rows, pickerRow{section: s, id: opt.ID, title: opt.Title, detail: opt.Detail})
		}
	}
	return rows
}

// SetHeight sets the viewport height.
func (p *Picker) SetHeight(h int) {
	p.height = h
	p.clampScroll()
}

// SetWidth sets the available width.
func (p *Picker) SetWidth(w int) {
	p.width = w
}

// SetFocused sets whether this picker currently has keyboard focus.
func (p *Picker) SetFocused(f bool) {
	p.focused = f
}

// Current returns the id under the cursor.
func (p Picker) Current() (string, bool) {
	vis := p.visible()
	if p.cursor < 0 || p.cursor >= len(vis) {
		return "", false
	}
	row := p.rows[vis[p.cursor]]
	if row.header {
		return "", false
	}
	return row.id, true
}

// Radio reports whether the policy allows one option per scope, which
// renders radio markers and disables select-all.
func (p Picker) Radio() bool {
	return p.session.State().Policy().Exclusive()
}

// Summary reports counts for the status bar.
func (p Picker) Summary() SelectionSummary {
	st := p.session.State()
	return SelectionSummary{
		Selected:  st.Len(),
		Total:     st.Index().Len(),
		Policy:    st.Policy().String(),
		Satisfied: st.Satisfied(),
	}
}

// Update handles key messages when the picker has focus.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch km.String() {
	case "up":
		p.moveCursor(-1)
	case "down":
		p.moveCursor(+1)
	case "pgup":
		for i := 0; i < p.listHeight(); i++ {
			p.moveCursor(-1)
		}
	case "pgdown":
		for i := 0; i < p.listHeight(); i++ {
			p.moveCursor(+1)
		}
	case "home":
		p.cursor = p.firstSelectable(0, +1)
		p.clampScroll()
	case "end":
		p.cursor = p.firstSelectable(len(p.visible())-1, -1)
		p.clampScroll()
	case " ":
		p.toggleCurrent()
	case "enter":
		return p, func() tea.Msg { return DismissRequestMsg{} }
	case "esc":
		if p.filterText != "" {
			p.setFilter("")
			return p, nil
		}
		return p, func() tea.Msg { return CancelRequestMsg{} }
	case "ctrl+a":
		if !p.Radio() && !p.session.Done() {
			p.session.State().SelectAll()
		}
	case "ctrl+n":
		if !p.session.Done() {
			p.session.State().Clear()
		}
	default:
		if km.Type == tea.KeyRunes || km.Type == tea.KeyBackspace {
			var cmd tea.Cmd
			p.filter, cmd = p.filter.Update(km)
			p.setFilter(p.filter.Value())
			return p, cmd
		}
	}
	return p, nil
}

// View renders the picker list with scrolling support.
func (p Picker) View() string {
	var b strings.Builder

	height := p.listHeight()
	if p.filterText != "" {
		b.WriteString(FilterStyle.Render("/ ") + p.filter.View() + "\n")
	}

	vis := p.visible()
	if len(vis) == 0 {
		if p.filterText != "" {
			b.WriteString(dimStyle.Render("(no matches)"))
		} else {
			b.WriteString(dimStyle.Render("(no options)"))
		}
		return ContentPaneStyle.Render(b.String())
	}

	// Reserve lines for scroll indicators so total output stays within height.
	visibleItems := height
	hasAbove := p.offset > 0
	hasBelow := p.offset+height < len(vis)
	if hasAbove {
		visibleItems--
	}
	if hasBelow {
		visibleItems--
	}
	if visibleItems < 1 {
		visibleItems = 1
	}

	if hasAbove {
		b.WriteString(dimStyle.Render("  ↑ more") + "\n")
	}

	end := p.offset + visibleItems
	if end > len(vis) {
		end = len(vis)
	}

	st := p.session.State()
	radio := p.Radio()

	for i := p.offset; i < end; i++ {
		row := p.rows[vis[i]]

		if row.header {
			line := "── " + row.title + " ──"
			if p.focused {
				b.WriteString(HeaderStyle.Render(line))
			} else {
				b.WriteString(dimStyle.Render(line))
			}
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		if p.focused && i == p.cursor {
			cursor = "> "
		}

		b.WriteString(cursor + renderMarker(st.IsSelected(row.id), radio, p.focused) + " ")

		var title string
		switch {
		case p.focused && i == p.cursor:
			title = lipgloss.NewStyle().Bold(true).Foreground(colorText).Render(row.title)
		case p.focused:
			title = row.title
		default:
			title = dimStyle.Render(row.title)
		}
		b.WriteString(title)
		if row.detail != "" {
			b.WriteString("  " + DetailStyle.Render(row.detail))
		}
		b.WriteString("\n")
	}

	if end < len(vis) {
		b.WriteString(dimStyle.Render("  ↓ more") + "\n")
	}

	return ContentPaneStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderMarker draws "(•)"/"( )" for one-per-scope policies and
// "[x]"/"[ ]" otherwise.
func renderMarker(selected, radio, focused bool) string {
	on, off := "[x]", "[ ]"
	if radio {
		on, off = "(•)", "( )"
	}
	switch {
	case !focused && selected:
		return dimStyle.Render(on)
	case !focused:
		return dimStyle.Render(off)
	case selected:
		return SelectedStyle.Render(on)
	default:
		return UnselectedStyle.Render(off)
	}
}

// --- Internal helpers ---

// visible returns the row indexes currently shown.
func (p Picker) visible() []int {
	if p.filterView != nil {
		return p.filterView
	}
	all := make([]int, len(p.rows))
	for i := range all {
		all[i] = i
	}
	return all
}

func (p *Picker) setFilter(text string) {
	p.filterText = text
	if text == "" {
		p.filter.Reset()
	}
	p.refilter()
	p.offset = 0
	p.cursor = p.firstSelectable(0, +1)
	p.clampScroll()
}

// refilter narrows the rows to options whose title or detail fuzzily match
// the filter text. Headers stay only when one of their options matches.
func (p *Picker) refilter() {
	if p.filterText == "" {
		p.filterView = nil
		return
	}

	var haystack []string
	var rowOf []int
	for i, row := range p.rows {
		if row.header {
			continue
		}
		haystack = append(haystack, strings.TrimSpace(row.title+" "+row.detail))
		rowOf = append(rowOf, i)
	}

	matched := make(map[int]bool)
	for _, m := range fuzzy.Find(p.filterText, haystack) {
		matched[rowOf[m.Index]] = true
	}

	view := []int{}
	for i, row := range p.rows {
		if row.header {
			if p.sectionHasMatch(row.section, matched) {
				view = append(view, i)
			}
			continue
		}
		if matched[i] {
			view = append(view, i)
		}
	}
	p.filterView = view
}

func (p *Picker) sectionHasMatch(section int, matched map[int]bool) bool {
	for i := range matched {
		if p.rows[i].section == section {
			return true
		}
	}
	return false
}

// firstSelectable returns the first non-header visible index starting at
// from and walking in dir. Returns from when none is found.
func (p *Picker) firstSelectable(from, dir int) int {
	vis := p.visible()
	for i := from; i >= 0 && i < len(vis); i += dir {
		if !p.rows[vis[i]].header {
			return i
		}
	}
	if from < 0 {
		return 0
	}
	return from
}

// moveCursor advances the cursor in the given direction (+1 or -1), skipping
// headers. It also adjusts the scroll offset to keep the cursor visible.
func (p *Picker) moveCursor(dir int) {
	vis := p.visible()
	for next := p.cursor + dir; next >= 0 && next < len(vis); next += dir {
		if !p.rows[vis[next]].header {
			p.cursor = next
			p.clampScroll()
			return
		}
	}
}

// toggleCurrent toggles the option at the cursor through the session.
func (p *Picker) toggleCurrent() {
	id, ok := p.Current()
	if !ok {
		return
	}
	// The id comes from the index, so the only possible error is a finished
	// session, which leaves nothing to toggle.
	_, _ = p.session.Toggle(id)
}

// listHeight is the number of lines left for rows once the filter line is
// drawn.
func (p Picker) listHeight() int {
	if p.filterText != "" {
		return p.height - 1
	}
	return p.height
}

// clampScroll ensures the cursor is within the visible window by adjusting
// the scroll offset.
func (p *Picker) clampScroll() {
	height := p.listHeight()
	if height <= 0 {
		return
	}
	total := len(p.visible())

	// When rows overflow, scroll indicators take up to 2 lines.
	effectiveHeight := height
	if total > height {
		effectiveHeight -= 2
	}
	if effectiveHeight < 1 {
		effectiveHeight = 1
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+effectiveHeight {
		p.offset = p.cursor - effectiveHeight + 1
	}
	maxOffset := total - effectiveHeight
	if maxOffset < 0 {
		maxOffset = 0
	}
	if p.offset > maxOffset {
		p.offset = maxOffset
	}
	// Keep a section header above its first option in view.
	if effectiveHeight > 1 && p.offset > 0 && p.offset == p.cursor {
		if vis := p.visible(); p.rows[vis[p.offset-1]].header {
			p.offset--
		}
	}
}
