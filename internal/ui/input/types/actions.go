package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "top", "bottom"
}

func (a NavigateAction) Type() string { return "navigate" }

// Paging actions
type PageAction struct {
	Target string // "first", "prev", "next", "last"
}

func (a PageAction) Type() string { return "page" }

// PageLinkAction jumps to the Slot'th visible page link (0-based)
type PageLinkAction struct {
	Slot int
}

func (a PageLinkAction) Type() string { return "page_link" }

// CycleRowsAction moves to the next (Dir > 0) or previous rows-per-page option
type CycleRowsAction struct {
	Dir int
}

func (a CycleRowsAction) Type() string { return "cycle_rows" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

// Selection actions
type ToggleRowAction struct {
	Index int // -1 for current
}

func (a ToggleRowAction) Type() string { return "toggle_row" }

type HeaderToggleAction struct{}

func (a HeaderToggleAction) Type() string { return "header_toggle" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

type ViewSelectionAction struct{}

func (a ViewSelectionAction) Type() string { return "view_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
