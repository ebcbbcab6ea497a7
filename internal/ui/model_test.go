package ui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arttable/internal/artic"
	"arttable/internal/config"
	"arttable/internal/domain"
	"arttable/internal/testutil"
	"arttable/internal/ui/commands"
	"arttable/internal/ui/services/selection"
)

type fetchCall struct {
	page, limit int
}

type fakeFetcher struct {
	mu    sync.Mutex
	total int
	calls []fetchCall
	fail  map[int]error
	extra int // records returned beyond limit
}

func (f *fakeFetcher) FetchPage(ctx context.Context, page, limit int) (*domain.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fetchCall{page, limit})
	if err := f.fail[page]; err != nil {
		return nil, err
	}
	return &domain.Page{
		Records:    testutil.Artworks((page-1)*limit, limit+f.extra, f.total),
		TotalCount: f.total,
		Number:     page,
		Limit:      limit,
	}, nil
}

func (f *fakeFetcher) lastCall() fetchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func newTestModel(t *testing.T, total int) (*Model, *fakeFetcher) {
	t.Helper()
	f := &fakeFetcher{total: total, fail: map[int]error{}}
	m := NewModel(context.Background(), config.DefaultConfig(), f, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, f
}

// run executes cmd and any batched commands, returning the produced messages
// except animation ticks
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, run(c)...)
		}
		return out
	case tickMsg:
		return nil
	case nil:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// deliver runs cmd and feeds the results back into the model
func deliver(m *Model, cmd tea.Cmd) {
	for _, msg := range run(cmd) {
		m.Update(msg)
	}
}

func press(m *Model, keys string) tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range keys {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func pressType(m *Model, t tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: t})
	return cmd
}

func loaded(t *testing.T, total int) (*Model, *fakeFetcher) {
	t.Helper()
	m, f := newTestModel(t, total)
	deliver(m, m.Init())
	require.Len(t, m.State().Records, 6)
	return m, f
}

func TestInitLoadsFirstPage(t *testing.T) {
	m, f := loaded(t, 100)

	assert.Equal(t, fetchCall{1, 6}, f.lastCall())
	assert.Equal(t, 100, m.State().Page.Total)
	assert.Equal(t, 1, m.State().Records[0].ID)
	assert.False(t, m.State().Loading)
	assert.Equal(t, 6, m.Store().Len())
	assert.Contains(t, m.View(), "Showing 1 to 6 of 100 entries")
}

func TestOversizePageIsBoundedByRows(t *testing.T) {
	m, f := newTestModel(t, 100)
	f.extra = 4
	deliver(m, m.Init())

	require.Len(t, m.State().Records, 6)
	assert.Equal(t, 6, m.Store().Len(), "extra records are never selectable")
	assert.Contains(t, m.View(), "Showing 1 to 6 of 100 entries")
	assert.NotContains(t, m.View(), "Artwork 7")

	press(m, "a9")
	require.NotNil(t, m.Controller().RequestedCount())
	assert.Equal(t, 6, *m.Controller().RequestedCount())
	pressType(m, tea.KeyEnter)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, m.Controller().Selection().GetSelectedIDs())
}

func TestStaleResponseIsDropped(t *testing.T) {
	m, _ := loaded(t, 100)

	first := pressType(m, tea.KeyRight)
	second := pressType(m, tea.KeyRight)

	// the newer request answers first, the older one arrives late
	deliver(m, second)
	deliver(m, first)

	assert.Equal(t, 12, m.State().Page.First)
	assert.Equal(t, 13, m.State().Records[0].ID)
	assert.False(t, m.State().Loading)
}

func TestFetchErrorKeepsPageAndAllowsRetry(t *testing.T) {
	m, f := loaded(t, 100)
	f.fail[2] = &artic.APIError{StatusCode: 503, Class: artic.ErrorClassServer, Message: "unavailable"}

	deliver(m, pressType(m, tea.KeyRight))

	st := m.State()
	assert.True(t, st.StatusIsError)
	assert.Contains(t, st.StatusMessage, "load page 2")
	assert.Equal(t, 0, st.Page.First, "offset stays on the page on screen")
	assert.Equal(t, 1, st.Records[0].ID)

	delete(f.fail, 2)
	deliver(m, press(m, "r"))
	assert.Equal(t, fetchCall{2, 6}, f.lastCall())
	assert.Equal(t, 6, st.Page.First)
	assert.False(t, st.StatusIsError)
}

func TestSelectionSurvivesPaging(t *testing.T) {
	m, _ := loaded(t, 100)

	press(m, " ")
	deliver(m, pressType(m, tea.KeyRight))
	press(m, "j ")

	assert.Equal(t, []int{1, 8}, m.Controller().Selection().GetSelectedIDs())

	deliver(m, pressType(m, tea.KeyLeft))
	assert.True(t, m.Controller().Selection().IsSelected(1))
	assert.Equal(t, 12, m.Store().Len())
}

func TestSelectFirstNDialog(t *testing.T) {
	m, _ := loaded(t, 100)
	press(m, "jj ")

	press(m, "a")
	require.True(t, m.Controller().DialogVisible())
	assert.Equal(t, 6, m.Controller().Max())

	press(m, "3")
	require.NotNil(t, m.Controller().RequestedCount())
	assert.Equal(t, 3, *m.Controller().RequestedCount())
	assert.Contains(t, m.View(), "Select rows")

	pressType(m, tea.KeyEnter)
	assert.Equal(t, selection.Idle, m.Controller().Mode())
	assert.Equal(t, []int{1, 2, 3}, m.Controller().Selection().GetSelectedIDs())
	assert.Equal(t, "Selected 3 rows", m.State().StatusMessage)
}

func TestDialogClampsAndCancels(t *testing.T) {
	m, _ := loaded(t, 100)
	press(m, " ")

	press(m, "a9")
	require.NotNil(t, m.Controller().RequestedCount())
	assert.Equal(t, 6, *m.Controller().RequestedCount())

	pressType(m, tea.KeyEsc)
	assert.False(t, m.Controller().DialogVisible())
	assert.Equal(t, []int{1}, m.Controller().Selection().GetSelectedIDs())

	// header toggle while open cancels as well
	press(m, "a4a")
	assert.False(t, m.Controller().DialogVisible())
	assert.Equal(t, []int{1}, m.Controller().Selection().GetSelectedIDs())
}

func TestDialogSubmitEmptyKeepsSelection(t *testing.T) {
	m, _ := loaded(t, 100)
	press(m, " ")

	press(m, "a")
	pressType(m, tea.KeyEnter)
	assert.Equal(t, []int{1}, m.Controller().Selection().GetSelectedIDs())
}

func TestRowsPerPageChangeRestartsAtFirstPage(t *testing.T) {
	m, f := loaded(t, 100)
	deliver(m, pressType(m, tea.KeyRight))
	require.Equal(t, 6, m.State().Page.First)

	deliver(m, press(m, "+"))
	assert.Equal(t, fetchCall{1, 12}, f.lastCall())
	assert.Equal(t, 0, m.State().Page.First)
	assert.Equal(t, 12, m.State().Page.Rows)
	assert.Len(t, m.State().Records, 12)
}

func TestPageLinksAndLastPage(t *testing.T) {
	m, f := loaded(t, 100)

	deliver(m, press(m, "3"))
	assert.Equal(t, fetchCall{3, 6}, f.lastCall())

	deliver(m, press(m, "G"))
	assert.Equal(t, fetchCall{17, 6}, f.lastCall())
	assert.Len(t, m.State().Records, 4, "last page is partial")
	assert.Contains(t, m.View(), "Showing 97 to 100 of 100 entries")

	// already on the last page
	assert.Nil(t, run(press(m, "G")))
}

func TestClearSelection(t *testing.T) {
	m, _ := loaded(t, 100)
	press(m, " j ")
	require.Equal(t, 2, m.Controller().Selection().GetCount())

	press(m, "c")
	assert.False(t, m.Controller().Selection().HasSelection())
}

func TestViewSelectionWithoutProgram(t *testing.T) {
	m, _ := loaded(t, 100)
	press(m, "v")
	assert.True(t, m.State().StatusIsError)
}

func TestHelpToggle(t *testing.T) {
	m, _ := loaded(t, 100)
	press(m, "?")
	assert.True(t, m.State().ShowHelp)
	press(m, "j")
	assert.Equal(t, 0, m.State().Cursor, "keys are swallowed while help is open")
	press(m, "?")
	assert.False(t, m.State().ShowHelp)
}

func TestQuit(t *testing.T) {
	m, _ := loaded(t, 100)
	msgs := run(press(m, "q"))
	require.Len(t, msgs, 1)
	assert.IsType(t, tea.QuitMsg{}, msgs[0])
}

func TestNetworkErrorBeforeFirstPage(t *testing.T) {
	m, f := newTestModel(t, 100)
	f.fail[1] = errors.New("connection refused")

	deliver(m, m.Init())
	assert.True(t, m.State().StatusIsError)
	assert.Empty(t, m.State().Records)
	assert.Contains(t, m.View(), "connection refused")

	results := run(press(m, "r"))
	require.Len(t, results, 1)
	res, ok := results[0].(commands.PageResultMsg)
	require.True(t, ok)
	assert.Error(t, res.Err)
}

func TestRenderSelectionListing(t *testing.T) {
	out := RenderSelectionListing(testutil.Artworks(0, 2, 2))
	assert.Contains(t, out, "Selected artworks (2)")
	assert.Contains(t, out, "Artwork 2")
	assert.Contains(t, RenderSelectionListing(nil), "Nothing selected.")
}
