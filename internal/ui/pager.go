package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/noborus/ov/oviewer"

	"arttable/internal/domain"
	"arttable/internal/ui/views"
)

// selectionPagerMsg contains the result of a selection pager command
type selectionPagerMsg struct {
	err error
}

// RenderSelectionListing lists the selected records for the pager
func RenderSelectionListing(records []domain.Artwork) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	idStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	artistStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Selected artworks (%s)", humanize.Comma(int64(len(records))))))
	b.WriteString("\n\n")
	if len(records) == 0 {
		b.WriteString("Nothing selected.\n")
		return b.String()
	}
	for i, rec := range records {
		b.WriteString(fmt.Sprintf("%4d  %s  %s\n", i+1, idStyle.Render(fmt.Sprintf("%-8d", rec.ID)), rec.Title))
		if artist := views.FlattenArtist(rec.ArtistDisplay); artist != "" {
			b.WriteString(fmt.Sprintf("%16s%s\n", "", artistStyle.Render(artist)))
		}
	}
	return b.String()
}

// SelectionOps shows the selection in the ov pager
type SelectionOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewSelectionOps creates a new selection operations instance
func NewSelectionOps(program *tea.Program) *SelectionOps {
	return &SelectionOps{
		program: program,
	}
}

// SetProgram sets the program whose terminal is handed to the pager
func (s *SelectionOps) SetProgram(p *tea.Program) {
	s.program = p
}

// ShowInPager pages content with ov, handing the terminal over while it runs
func (s *SelectionOps) ShowInPager(content string) error {
	if s.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := s.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// let ov finish with the screen before bubbletea takes it back
		time.Sleep(100 * time.Millisecond)
		_ = s.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// Command wraps ShowInPager for the update loop
func (s *SelectionOps) Command(content string) tea.Cmd {
	return func() tea.Msg {
		return selectionPagerMsg{err: s.ShowInPager(content)}
	}
}
