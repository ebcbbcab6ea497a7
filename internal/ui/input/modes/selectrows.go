package modes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"arttable/internal/ui/input/types"
)

// SelectRowsMode edits the row count of the "select first N" dialog.
// Only digits are accepted and the value never exceeds the dialog maximum.
type SelectRowsMode struct {
	TextInputMode
}

func NewSelectRowsMode(keys types.KeyMap, ti *textinput.Model) *SelectRowsMode {
	return &SelectRowsMode{
		TextInputMode: NewTextInputMode(types.ModeSelectRows, "select-rows", keys, ti),
	}
}

func (m *SelectRowsMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	if m.textInput != nil {
		m.textInput.Placeholder = "0"
		m.textInput.CharLimit = len(strconv.Itoa(ctx.DialogMax())) + 1
	}
	return nil
}

func (m *SelectRowsMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// the header checkbox closes the dialog like Esc does
	if key.Matches(msg, m.keys.HeaderBox) {
		return []types.Action{
			types.HeaderToggleAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	if msg.Type == tea.KeyRunes {
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return nil, true
			}
		}
	}
	if msg.Type == tea.KeySpace {
		return nil, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}

// Normalize drops non-digits and leading zeros and clamps to the dialog maximum
func (m *SelectRowsMode) Normalize(text string, ctx types.Context) string {
	return NormalizeCount(text, ctx.DialogMax())
}

// NormalizeCount reduces text to a decimal count in [0, max]. Empty stays empty.
func NormalizeCount(text string, max int) string {
	var b strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := strings.TrimLeft(b.String(), "0")
	if digits == "" {
		if b.Len() > 0 {
			return "0"
		}
		return ""
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n > max {
		if max < 0 {
			max = 0
		}
		return strconv.Itoa(max)
	}
	return digits
}

// ParseCount converts dialog text into a requested count. Empty text is nil.
func ParseCount(text string) *int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil
	}
	return &n
}
