package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	PageLink      lipgloss.Style
	PageCurrent   lipgloss.Style
	PageDisabled  lipgloss.Style
	Report        lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Checked       lipgloss.Style
	DialogBox     lipgloss.Style
	DialogTitle   lipgloss.Style
	InputBox      lipgloss.Style
	HelpBox       lipgloss.Style
	Table         table.Styles
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	tbl := table.DefaultStyles()
	tbl.Header = tbl.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	tbl.Selected = tbl.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("238")).
		Bold(false)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim:           lipgloss.NewStyle().Faint(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PageLink:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1),
		PageCurrent:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("99")).Bold(true).Padding(0, 1),
		PageDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Padding(0, 1),
		Report:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Checked:       lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		DialogBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(1, 2),
		DialogTitle: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(12),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(1, 2),
		Table: tbl,
	}
}
