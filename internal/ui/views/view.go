package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"arttable/internal/domain"
	"arttable/internal/ui/input/types"
	"arttable/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Records         []domain.Artwork
	Selected        map[int]bool
	SelectedCount   int
	Cursor          int
	Page            logic.PageState
	PageSizeOptions []int
	Loading         bool
	HasLoaded       bool
	StatusMessage   string
	StatusIsError   bool
	ShowHelp        bool
	DialogVisible   bool
	DialogMax       int
	DialogInput     string
	HelpModel       help.Model
	Keys            types.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	if !state.HasLoaded && len(state.Records) == 0 {
		if state.Loading {
			content.WriteString(r.styles.Dim.Render("Loading artworks..."))
		} else {
			content.WriteString(r.styles.Dim.Render("No artworks loaded. Press r to retry."))
		}
	} else {
		content.WriteString(r.renderTable(state))
	}
	content.WriteString("\n")
	content.WriteString(r.renderPaginator(state))
	content.WriteString("\n")
	content.WriteString(r.styles.Report.Render(Report(state.Page)))

	if status := r.renderStatus(state); status != "" {
		content.WriteString("\n\n")
		content.WriteString(status)
	}

	if !state.ShowHelp && !state.DialogVisible {
		helpView := state.HelpModel.ShortHelpView(state.Keys.ShortHelp())
		lines := strings.Count(content.String(), "\n") + 1
		// Container padding takes 2 lines, help takes 1
		if pad := state.Height - 2 - lines - 1; pad > 0 {
			content.WriteString(strings.Repeat("\n", pad))
		}
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(helpView))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.DialogVisible {
		return r.popupRender.RenderPopupOverlay(finalContent, r.renderDialog(state), state.Height, state.Width, r.styles.DialogBox)
	}
	if state.ShowHelp {
		helpContent := state.HelpModel.FullHelpView(state.Keys.FullHelp())
		return r.popupRender.RenderPopupOverlay(finalContent, helpContent, state.Height, state.Width, r.styles.HelpBox)
	}
	return finalContent
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("Artworks")

	var right []string
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		right = append(right, fmt.Sprintf("%s Loading", spinner[frame]))
	}
	if state.SelectedCount > 0 {
		right = append(right, fmt.Sprintf("%s selected", humanize.Comma(int64(state.SelectedCount))))
	}
	if len(right) == 0 {
		return logo
	}

	rightContent := r.styles.Dim.Render(strings.Join(right, " | "))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(rightContent)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + rightContent
}

// Checkbox renders a row or header checkbox
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

// FlattenArtist puts a multi-line artist_display on one line
func FlattenArtist(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Columns sizes the table columns for a terminal width
func Columns(width int, header string) []table.Column {
	if width <= 0 {
		width = 80
	}
	// four cells with one space of padding on each side
	avail := width - 4 - 8
	const checkW, idW = 3, 8
	rest := avail - checkW - idW
	if rest < 20 {
		rest = 20
	}
	titleW := rest * 55 / 100
	return []table.Column{
		{Title: header, Width: checkW},
		{Title: "ID", Width: idW},
		{Title: "Title", Width: titleW},
		{Title: "Artist", Width: rest - titleW},
	}
}

// Rows converts records into table rows
func Rows(records []domain.Artwork, selected map[int]bool) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{
			Checkbox(selected[rec.ID]),
			strconv.Itoa(rec.ID),
			rec.Title,
			FlattenArtist(rec.ArtistDisplay),
		})
	}
	return rows
}

func (r *Renderer) renderTable(state ViewState) string {
	if len(state.Records) == 0 {
		return r.styles.Dim.Render("No artworks on this page.")
	}

	t := table.New(
		table.WithColumns(Columns(state.Width, Checkbox(state.DialogVisible))),
		table.WithRows(Rows(state.Records, state.Selected)),
		table.WithFocused(!state.DialogVisible),
		table.WithStyles(r.styles.Table),
	)
	// header row and its border
	t.SetHeight(len(state.Records) + 2)
	t.SetCursor(state.Cursor)
	return t.View()
}

func (r *Renderer) renderPaginator(state ViewState) string {
	p := state.Page
	current := p.CurrentPage()
	last := p.PageCount() - 1

	link := func(label string, enabled bool) string {
		if enabled {
			return r.styles.PageLink.Render(label)
		}
		return r.styles.PageDisabled.Render(label)
	}

	parts := []string{link("«", current > 0), link("‹", current > 0)}
	for _, idx := range p.PageLinks(logic.DefaultPageLinkSize) {
		label := strconv.Itoa(idx + 1)
		if idx == current {
			parts = append(parts, r.styles.PageCurrent.Render(label))
		} else {
			parts = append(parts, r.styles.PageLink.Render(label))
		}
	}
	parts = append(parts, link("›", current < last), link("»", current < last))

	pg := paginator.New()
	pg.Type = paginator.Arabic
	pg.PerPage = p.Rows
	pg.SetTotalPages(p.Total)
	if pg.TotalPages < 1 {
		pg.TotalPages = 1
	}
	pg.Page = current

	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(parts, ""),
		"  ",
		r.styles.Dim.Render(pg.View()),
		"  ",
		r.renderRowsOptions(state),
	)
}

func (r *Renderer) renderRowsOptions(state ViewState) string {
	var opts []string
	for _, o := range state.PageSizeOptions {
		label := strconv.Itoa(o)
		if o == state.Page.Rows {
			opts = append(opts, r.styles.Highlight.Render("["+label+"]"))
		} else {
			opts = append(opts, r.styles.Dim.Render(label))
		}
	}
	return r.styles.Dim.Render("Rows: ") + strings.Join(opts, " ")
}

// Report is the "Showing {first} to {last} of {totalRecords} entries" line
func Report(p logic.PageState) string {
	first, last, total := p.ReportBounds()
	return fmt.Sprintf("Showing %s to %s of %s entries",
		humanize.Comma(int64(first)), humanize.Comma(int64(last)), humanize.Comma(int64(total)))
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return r.styles.StatusError.Render("✗ " + state.StatusMessage)
	}
	return r.styles.StatusInfo.Render(state.StatusMessage)
}

func (r *Renderer) renderDialog(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.DialogTitle.Render("Select rows"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Number of rows to select (0-%d):", state.DialogMax))
	b.WriteString("\n")
	b.WriteString(r.styles.InputBox.Render(state.DialogInput))
	b.WriteString("\n\n")
	b.WriteString(state.HelpModel.ShortHelpView(types.DialogKeyMap{KeyMap: state.Keys}.ShortHelp()))
	return b.String()
}
