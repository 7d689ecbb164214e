package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayType identifies the kind of modal overlay.
type OverlayType int

const (
	OverlayAlert   OverlayType = iota // message with a single button
	OverlayConfirm                    // Cancel/OK confirmation
)

// Overlay renders a centered modal box on top of existing content.
type Overlay struct {
	overlayType OverlayType
	title       string
	message     string
	button      string // label for the single Alert button
	cursor      int    // button index for Confirm: 0=Cancel, 1=OK
	width       int    // overlay box width
	active      bool
}

// NewAlertOverlay creates a message box with one button. Enter and Esc both
// close it.
func NewAlertOverlay(title, message, button string) Overlay {
	if button == "" {
		button = "OK"
	}
	return Overlay{
		overlayType: OverlayAlert,
		title:       title,
		message:     message,
		button:      button,
		active:      true,
	}
}

// NewConfirmOverlay creates a confirmation dialog with Cancel/OK buttons.
func NewConfirmOverlay(title, message string) Overlay {
	return Overlay{
		overlayType: OverlayConfirm,
		title:       title,
		message:     message,
		cursor:      0, // default to Cancel
		active:      true,
	}
}

// Active returns whether the overlay is currently shown.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles key messages for the overlay.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	if !o.active {
		return o, nil
	}

	switch o.overlayType {
	case OverlayAlert:
		return o.updateAlert(msg)
	case OverlayConfirm:
		return o.updateConfirm(msg)
	}
	return o, nil
}

func (o Overlay) updateAlert(msg tea.Msg) (Overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc", "enter", " ":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: true}
			}
		}
	}
	return o, nil
}

func (o Overlay) updateConfirm(msg tea.Msg) (Overlay, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "tab", "left", "right", "h", "l":
			o.cursor = 1 - o.cursor // toggle between 0 and 1
		case "y":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: true}
			}
		case "n":
			o.active = false
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: false}
			}
		case "enter":
			o.active = false
			confirmed := o.cursor == 1
			return o, func() tea.Msg {
				return OverlayCloseMsg{Confirmed: confirmed}
			}
		}
	}
	return o, nil
}

// View renders the overlay box. It does not composite over a background;
// that is the caller's responsibility using Composite().
func (o Overlay) View() string {
	if !o.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(OverlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.wrapMessage())
	b.WriteString("\n\n")
	switch o.overlayType {
	case OverlayAlert:
		b.WriteString(OverlayButtonActiveStyle.Render(o.button))
	case OverlayConfirm:
		b.WriteString(o.renderButtons("Cancel", "OK"))
	}

	return OverlayStyle.Render(b.String())
}

// wrapMessage wraps the body to the overlay width, leaving room for the
// border and padding.
func (o Overlay) wrapMessage() string {
	if o.width <= 6 {
		return o.message
	}
	return lipgloss.NewStyle().Width(o.width - 6).Render(o.message)
}

// renderButtons draws two side-by-side buttons with the cursor on one.
func (o Overlay) renderButtons(cancel, ok string) string {
	var cancelBtn, okBtn string
	if o.cursor == 0 {
		cancelBtn = OverlayButtonActiveStyle.Render(cancel)
		okBtn = OverlayButtonInactiveStyle.Render(ok)
	} else {
		cancelBtn = OverlayButtonInactiveStyle.Render(cancel)
		okBtn = OverlayButtonActiveStyle.Render(ok)
	}
	return cancelBtn + "  " + okBtn
}

// Composite places the overlay box centered on top of the background string.
// The background is expected to be a fully rendered terminal frame.
func Composite(background string, overlay string, totalWidth, totalHeight int) string {
	if overlay == "" {
		return background
	}

	bgLines := strings.Split(background, "\n")

	// Pad background to fill the screen height.
	for len(bgLines) < totalHeight {
		bgLines = append(bgLines, "")
	}

	overlayLines := strings.Split(overlay, "\n")
	overlayHeight := len(overlayLines)
	overlayWidth := 0
	for _, line := range overlayLines {
		if w := ansi.StringWidth(line); w > overlayWidth {
			overlayWidth = w
		}
	}

	startRow := (totalHeight - overlayHeight) / 2
	if startRow < 0 {
		startRow = 0
	}
	startCol := (totalWidth - overlayWidth) / 2
	if startCol < 0 {
		startCol = 0
	}

	for i, overlayLine := range overlayLines {
		row := startRow + i
		if row >= len(bgLines) {
			break
		}

		bgLine := bgLines[row]
		bgWidth := ansi.StringWidth(bgLine)

		// Background left + overlay + background right, cut on cell width so
		// styled backgrounds keep their escape sequences intact.
		left := ansi.Truncate(bgLine, startCol, "")
		if pad := startCol - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}

		overlayEnd := startCol + ansi.StringWidth(overlayLine)
		right := ""
		if overlayEnd < bgWidth {
			right = ansi.TruncateLeft(bgLine, overlayEnd, "")
		}

		bgLines[row] = left + overlayLine + right
	}

	if len(bgLines) > totalHeight {
		bgLines = bgLines[:totalHeight]
	}
	return strings.Join(bgLines, "\n")
}

// SetWidth sets the overlay box width used to wrap the message.
func (o *Overlay) SetWidth(w int) {
	o.width = w
}

// OverlayMaxWidth returns a reasonable maximum width for the overlay content.
func OverlayMaxWidth(termWidth int) int {
	w := termWidth * 2 / 3
	if w < 40 {
		w = 40
	}
	if w > 60 {
		w = 60
	}
	return w
}
