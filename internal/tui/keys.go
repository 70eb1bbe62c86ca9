package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the grid key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Sort   key.Binding
	Widen  key.Binding
	Narrow key.Binding
	Drop   key.Binding
	Move   key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Sort:   key.NewBinding(key.WithKeys("s", "enter"), key.WithHelp("s", "sort")),
	Widen:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "width")),
	Narrow: key.NewBinding(key.WithKeys("-", "_")),
	Drop:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop")),
	Move:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Sort, k.Widen, k.Drop, k.Move, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
