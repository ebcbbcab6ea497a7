package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings for the table and the row count dialog
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	NextPage   key.Binding
	PrevPage   key.Binding
	FirstPage  key.Binding
	LastPage   key.Binding
	PageLink   key.Binding
	MoreRows   key.Binding
	FewerRows  key.Binding
	Toggle     key.Binding
	HeaderBox  key.Binding
	Clear      key.Binding
	Reload     key.Binding
	ViewSelect key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding

	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:        key.NewBinding(key.WithKeys("K"), key.WithHelp("K", "first row")),
		Bottom:     key.NewBinding(key.WithKeys("J"), key.WithHelp("J", "last row")),
		NextPage:   key.NewBinding(key.WithKeys("right", "l", "pgdown", "n"), key.WithHelp("→/l", "next page")),
		PrevPage:   key.NewBinding(key.WithKeys("left", "h", "pgup", "p"), key.WithHelp("←/h", "prev page")),
		FirstPage:  key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first page")),
		LastPage:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last page")),
		PageLink:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "page link")),
		MoreRows:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		FewerRows:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "fewer rows")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle row")),
		HeaderBox:  key.NewBinding(key.WithKeys("a", "H"), key.WithHelp("a", "select first N")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Reload:     key.NewBinding(key.WithKeys("r", "f5"), key.WithHelp("r", "reload page")),
		ViewSelect: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view selection")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.HeaderBox, k.NextPage, k.PrevPage, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.NextPage, k.PrevPage, k.FirstPage, k.LastPage, k.PageLink},
		{k.Toggle, k.HeaderBox, k.Clear, k.ViewSelect},
		{k.MoreRows, k.FewerRows, k.Reload, k.Help, k.Quit},
	}
}

// DialogKeyMap is the help.KeyMap shown inside the row count dialog
type DialogKeyMap struct {
	KeyMap
}

// ShortHelp implements help.KeyMap
func (k DialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}

// FullHelp implements help.KeyMap
func (k DialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
