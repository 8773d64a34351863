package threadview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Collapse key.Binding
	Refresh  key.Binding
	SortNext key.Binding
	Sort1    key.Binding
	Sort2    key.Binding
	Sort3    key.Binding
	Sort4    key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/up", "up")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/down", "down")),
	PageUp:   key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
	PageDown: key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),
	Home:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	End:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	Collapse: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "collapse")),
	Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	SortNext: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next sort")),
	Sort1:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "best")),
	Sort2:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "new")),
	Sort3:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "top")),
	Sort4:    key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "controversial")),
}
