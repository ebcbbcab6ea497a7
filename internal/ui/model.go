package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"arttable/internal/artic"
	"arttable/internal/config"
	"arttable/internal/eventbus"
	recordstore "arttable/internal/logic"
	"arttable/internal/logging"
	"arttable/internal/ui/commands"
	"arttable/internal/ui/input"
	"arttable/internal/ui/input/modes"
	inputtypes "arttable/internal/ui/input/types"
	"arttable/internal/ui/logic"
	"arttable/internal/ui/services/selection"
	"arttable/internal/ui/state"
	"arttable/internal/ui/views"
)

// tickMsg is sent on a timer while a page is loading
type tickMsg time.Time

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state
	logger zerolog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        inputtypes.KeyMap
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	store        recordstore.RecordStore // every record fetched so far
	controller   *selection.Controller   // selection and row count dialog
	renderer     *views.Renderer         // view renderer
	cmdExecutor  *commands.Executor      // command executor
	inputHandler *input.Handler          // input handling
	selectionOps *SelectionOps           // ov pager for the selection

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil.
func NewModel(ctx context.Context, cfg *config.Config, fetcher artic.Fetcher, bus eventbus.EventBus) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState(cfg.UI.PageSize, cfg.UI.PageSizeOptions)
	keys := inputtypes.DefaultKeyMap()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		logger:       logging.NewLogger("ui"),
		help:         help.New(),
		keys:         keys,
		store:        recordstore.NewMemoryRecordStore(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		selectionOps: NewSelectionOps(nil),
	}

	m.controller = selection.NewController(selection.NewService(m.store, bus), bus)
	m.cmdExecutor = commands.NewExecutor(ctx, appState, bus, fetcher, cfg.API.Timeout())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.selectionOps.SetProgram(p)
}

// State exposes the application state
func (m *Model) State() *state.AppState {
	return m.state
}

// Controller exposes the selection controller
func (m *Model) Controller() *selection.Controller {
	return m.controller
}

// Store exposes the record store
func (m *Model) Store() recordstore.RecordStore {
	return m.store
}

// Init requests the first page
func (m *Model) Init() tea.Cmd {
	return m.requestPage(logic.PageEvent{First: 0, Rows: m.state.Page.Rows})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case commands.PageResultMsg:
		m.handlePageResult(msg)
		return m, nil

	case selectionPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("selection pager failed")
			m.state.SetError(fmt.Errorf("pager: %w", msg.err))
		}
		return m, nil

	case tickMsg:
		if m.state.Loading {
			return m, tick()
		}
		return m, nil
	}

	return m, m.inputHandler.Update(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.state.ShowHelp {
		switch msg.String() {
		case "ctrl+c":
			return tea.Quit
		case "esc", "?", "q":
			m.state.ShowHelp = false
		}
		return nil
	}

	actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())
	cmds := []tea.Cmd{cmd}
	for _, action := range actions {
		if c := m.processAction(action); c != nil {
			cmds = append(cmds, c)
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) inputContext() inputtypes.Context {
	return &input.ModelContext{State: m.state, Controller: m.controller}
}

// targetPage is the page the user is heading to: the pending request if
// one is in flight, the page on screen otherwise
func (m *Model) targetPage() logic.PageState {
	if m.state.Loading {
		return m.state.Page.Apply(m.state.Pending)
	}
	return m.state.Page
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		switch a.Direction {
		case "up":
			m.state.MoveCursor(-1)
		case "down":
			m.state.MoveCursor(1)
		case "top":
			m.state.Cursor = 0
		case "bottom":
			m.state.Cursor = len(m.state.Records) - 1
			m.state.ClampCursor()
		}

	case inputtypes.PageAction:
		target := m.targetPage()
		var e logic.PageEvent
		var ok bool
		switch a.Target {
		case "first":
			e, ok = target.FirstPage()
		case "prev":
			e, ok = target.Prev()
		case "next":
			e, ok = target.Next()
		case "last":
			e, ok = target.LastPage()
		}
		if ok {
			return m.requestPage(e)
		}

	case inputtypes.PageLinkAction:
		target := m.targetPage()
		links := target.PageLinks(logic.DefaultPageLinkSize)
		if a.Slot >= 0 && a.Slot < len(links) {
			if e, ok := target.Goto(links[a.Slot]); ok {
				return m.requestPage(e)
			}
		}

	case inputtypes.CycleRowsAction:
		target := m.targetPage()
		rows := logic.CycleRows(m.state.PageSizeOptions, target.Rows, a.Dir)
		if e, ok := target.WithRows(rows); ok {
			return m.requestPage(e)
		}

	case inputtypes.ReloadAction:
		if m.state.RetryEvent != nil {
			return m.requestPage(*m.state.RetryEvent)
		}
		target := m.targetPage()
		return m.requestPage(logic.PageEvent{First: target.First, Rows: target.Rows})

	case inputtypes.ToggleRowAction:
		idx := a.Index
		if idx < 0 {
			idx = m.state.Cursor
		}
		if rec, ok := m.state.RecordAt(idx); ok {
			return m.cmdExecutor.ExecuteToggleRow(m.controller.ToggleRow, rec)
		}

	case inputtypes.HeaderToggleAction:
		m.controller.HeaderToggle(len(m.state.Records))

	case inputtypes.UpdateTextAction:
		m.controller.SetRequested(modes.ParseCount(a.Text))

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSelectRows {
			m.controller.SetRequested(modes.ParseCount(a.Text))
			requested := m.controller.RequestedCount()
			m.controller.Submit(m.state.Records)
			if requested != nil && *requested > 0 {
				m.state.SetStatus(fmt.Sprintf("Selected %s rows", humanize.Comma(int64(m.controller.Selection().GetCount()))))
			}
		}

	case inputtypes.CancelTextAction:
		m.controller.Cancel()

	case inputtypes.ClearSelectionAction:
		m.controller.Selection().Clear()
		m.state.SetStatus("Selection cleared")

	case inputtypes.ViewSelectionAction:
		content := RenderSelectionListing(m.controller.Selection().GetSelected())
		if m.program == nil {
			m.state.SetError(fmt.Errorf("pager: program not set"))
			return nil
		}
		m.inPagerMode = true
		return m.selectionOps.Command(content)

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// requestPage issues a fetch for e; any response to an earlier request
// becomes stale
func (m *Model) requestPage(e logic.PageEvent) tea.Cmd {
	wasLoading := m.state.Loading
	fetch := m.cmdExecutor.ExecuteFetchPage(e)
	if fetch == nil {
		return nil
	}
	m.logger.Debug().Int("first", e.First).Int("rows", e.Rows).Uint64("seq", m.state.LatestSeq).Msg("requesting page")
	if wasLoading {
		return fetch
	}
	return tea.Batch(fetch, tick())
}

func (m *Model) handlePageResult(msg commands.PageResultMsg) {
	page := logic.RequestPage(msg.Event.First, msg.Event.Rows)

	if !m.state.IsLatest(msg.Seq) {
		m.logger.Debug().Uint64("seq", msg.Seq).Uint64("latest", m.state.LatestSeq).Msg("dropping stale page response")
		m.publish(eventbus.StaleResponseEvent{Seq: msg.Seq, Latest: m.state.LatestSeq})
		return
	}

	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Int("page", page).Str("class", string(artic.ClassOf(msg.Err))).Msg("page load failed")
		m.state.FailPage(msg.Event, fmt.Errorf("load page %d: %w (press r to retry)", page, msg.Err))
		m.publish(eventbus.PageFailedEvent{Seq: msg.Seq, Page: page, Err: msg.Err})
		return
	}

	if msg.Page != nil {
		if n := len(msg.Page.Records); n > msg.Event.Rows {
			m.logger.Warn().Int("page", page).Int("records", n).Int("rows", msg.Event.Rows).Msg("catalog returned more records than requested, truncating")
			bounded := *msg.Page
			bounded.Records = state.BoundRecords(msg.Page.Records, msg.Event.Rows)
			msg.Page = &bounded
		}
		m.store.AddRecords(msg.Page.Records)
	}
	m.state.ApplyPage(msg.Event, msg.Page)
	if m.state.StatusIsError {
		m.state.ClearStatus()
	}

	count, total := 0, 0
	if msg.Page != nil {
		count, total = len(msg.Page.Records), msg.Page.TotalCount
	}
	m.publish(eventbus.PageLoadedEvent{Seq: msg.Seq, Page: page, Count: count, TotalCount: total})
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func tick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	dialogInput := ""
	if ti := m.inputHandler.TextInput(); ti != nil {
		dialogInput = ti.View()
	}

	sel := m.controller.Selection()
	selected := make(map[int]bool, sel.GetCount())
	for _, id := range sel.GetSelectedIDs() {
		selected[id] = true
	}

	return m.renderer.Render(views.ViewState{
		Width:           m.width,
		Height:          m.height,
		Records:         m.state.Records,
		Selected:        selected,
		SelectedCount:   sel.GetCount(),
		Cursor:          m.state.Cursor,
		Page:            m.state.Page,
		PageSizeOptions: m.state.PageSizeOptions,
		Loading:         m.state.Loading,
		HasLoaded:       m.state.HasLoaded,
		StatusMessage:   m.state.StatusMessage,
		StatusIsError:   m.state.StatusIsError,
		ShowHelp:        m.state.ShowHelp,
		DialogVisible:   m.controller.DialogVisible(),
		DialogMax:       m.controller.Max(),
		DialogInput:     dialogInput,
		HelpModel:       m.help,
		Keys:            m.keys,
	})
}
