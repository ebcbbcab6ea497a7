package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"arttable/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.Top):
		return []types.Action{types.NavigateAction{Direction: "top"}}, true
	case key.Matches(msg, k.Bottom):
		return []types.Action{types.NavigateAction{Direction: "bottom"}}, true

	case key.Matches(msg, k.NextPage):
		return []types.Action{types.PageAction{Target: "next"}}, true
	case key.Matches(msg, k.PrevPage):
		return []types.Action{types.PageAction{Target: "prev"}}, true
	case key.Matches(msg, k.FirstPage):
		return []types.Action{types.PageAction{Target: "first"}}, true
	case key.Matches(msg, k.LastPage):
		return []types.Action{types.PageAction{Target: "last"}}, true
	case key.Matches(msg, k.PageLink):
		slot := int(msg.String()[0] - '1')
		return []types.Action{types.PageLinkAction{Slot: slot}}, true
	case key.Matches(msg, k.MoreRows):
		return []types.Action{types.CycleRowsAction{Dir: 1}}, true
	case key.Matches(msg, k.FewerRows):
		return []types.Action{types.CycleRowsAction{Dir: -1}}, true
	case key.Matches(msg, k.Reload):
		return []types.Action{types.ReloadAction{}}, true

	case key.Matches(msg, k.Toggle):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleRowAction{Index: -1}}, true
	case key.Matches(msg, k.HeaderBox):
		return []types.Action{
			types.HeaderToggleAction{},
			types.ChangeModeAction{Mode: types.ModeSelectRows},
		}, true
	case key.Matches(msg, k.Clear):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.ClearSelectionAction{}}, true
	case key.Matches(msg, k.ViewSelect):
		return []types.Action{types.ViewSelectionAction{}}, true
	}

	return nil, false
}
