package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent centred over a greyed out copy of mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	baseLines := strings.Split(ansi.Strip(mainContent), "\n")
	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}
	if width <= 0 {
		width = lipgloss.Width(mainContent)
	}

	popupLines := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (len(baseLines) - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}

	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	out := make([]string, len(baseLines))
	for i, line := range baseLines {
		row := i - y
		if row < 0 || row >= len(popupLines) {
			out[i] = gray.Render(line)
			continue
		}
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+modalW, "")
		out[i] = gray.Render(left) + popupLines[row] + gray.Render(right)
	}
	return strings.Join(out, "\n")
}
