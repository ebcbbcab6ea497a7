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

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, state *state.AppState, bus eventbus.EventBus, fetcher artic.Fetcher, timeout time.Duration) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Ctx:     ctx,
			State:   state,
			Bus:     bus,
			Fetcher: fetcher,
			Timeout: timeout,
		},
	}
}

// ExecuteFetchPage creates and executes a fetch page command
func (e *Executor) ExecuteFetchPage(event logic.PageEvent) tea.Cmd {
	cmd := NewFetchPageCommand(e.ctx, event)
	return cmd.Execute()
}

// ExecuteToggleRow creates and executes a toggle row command
func (e *Executor) ExecuteToggleRow(toggle func(domain.Artwork) bool, record domain.Artwork) tea.Cmd {
	cmd := NewToggleRowCommand(e.ctx, toggle, record)
	return cmd.Execute()
}
