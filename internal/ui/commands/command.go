package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"arttable/internal/artic"
	"arttable/internal/domain"
	"arttable/internal/eventbus"
	"arttable/internal/ui/logic"
	"arttable/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx     context.Context
	State   *state.AppState
	Bus     eventbus.EventBus
	Fetcher artic.Fetcher
	Timeout time.Duration

	// cancels the fetch that the latest request superseded
	cancelInFlight context.CancelFunc
}

// PageResultMsg carries the outcome of a page request back to the model
type PageResultMsg struct {
	Seq   uint64
	Event logic.PageEvent
	Page  *domain.Page
	Err   error
}

// FetchPageCommand requests the page described by an event
type FetchPageCommand struct {
	ctx   *CommandContext
	event logic.PageEvent
}

// NewFetchPageCommand creates a new fetch page command
func NewFetchPageCommand(ctx *CommandContext, event logic.PageEvent) *FetchPageCommand {
	return &FetchPageCommand{
		ctx:   ctx,
		event: event,
	}
}

// Execute marks the request in flight and returns the command that performs it.
// The previous request, if still running, is cancelled so it stops waiting on
// the client's rate limiter.
func (c *FetchPageCommand) Execute() tea.Cmd {
	if c.ctx.Fetcher == nil {
		return nil
	}

	seq := c.ctx.State.NextSeq(c.event)
	page := logic.RequestPage(c.event.First, c.event.Rows)
	limit := c.event.Rows

	if c.ctx.Bus != nil {
		c.ctx.Bus.Publish(eventbus.PageRequestedEvent{Seq: seq, Page: page, Limit: limit})
	}

	parent := c.ctx.Ctx
	if parent == nil {
		parent = context.Background()
	}
	if c.ctx.cancelInFlight != nil {
		c.ctx.cancelInFlight()
	}
	parent, cancelFetch := context.WithCancel(parent)
	c.ctx.cancelInFlight = cancelFetch
	fetcher := c.ctx.Fetcher
	timeout := c.ctx.Timeout
	event := c.event

	return func() tea.Msg {
		defer cancelFetch()
		ctx := parent
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(parent, timeout)
			defer cancel()
		}
		result, err := fetcher.FetchPage(ctx, page, limit)
		return PageResultMsg{Seq: seq, Event: event, Page: result, Err: err}
	}
}

// ToggleRowCommand toggles one record through the selection controller
type ToggleRowCommand struct {
	ctx    *CommandContext
	toggle func(domain.Artwork) bool
	record domain.Artwork
}

// NewToggleRowCommand creates a new toggle row command
func NewToggleRowCommand(ctx *CommandContext, toggle func(domain.Artwork) bool, record domain.Artwork) *ToggleRowCommand {
	return &ToggleRowCommand{
		ctx:    ctx,
		toggle: toggle,
		record: record,
	}
}

// Execute performs the toggle and reports a refused add in the status bar
func (c *ToggleRowCommand) Execute() tea.Cmd {
	if !c.toggle(c.record) {
		c.ctx.State.SetStatus("Selection limit reached")
	}
	return nil
}
