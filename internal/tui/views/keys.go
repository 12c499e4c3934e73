package views

import "github.com/charmbracelet/bubbles/key"

// kanbanKeyMap holds the bindings of the board view.
type kanbanKeyMap struct {
	Focus     key.Binding
	Add       key.Binding
	NewTask   key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Backward  key.Binding
	Forward   key.Binding
	Delete    key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKanbanKeyMap() kanbanKeyMap {
	return kanbanKeyMap{
		Focus:     key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "switch focus")),
		Add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		NewTask:   key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "new task")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Backward:  key.NewBinding(key.WithKeys("[", "shift+left"), key.WithHelp("[", "move back")),
		Forward:   key.NewBinding(key.WithKeys("]", "shift+right"), key.WithHelp("]", "move on")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// inputKeys is the help shown while the text input has focus.
type inputKeys struct{ kanbanKeyMap }

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Focus, k.ForceQuit}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// boardKeys is the help shown while the board has focus.
type boardKeys struct{ kanbanKeyMap }

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Backward, k.Forward, k.Delete, k.NewTask, k.Help, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Backward, k.Forward, k.Delete},
		{k.NewTask, k.Focus, k.Help, k.Quit},
	}
}

// todoKeyMap holds the bindings of the to-do view.
type todoKeyMap struct {
	Focus     key.Binding
	Add       key.Binding
	NewItem   key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Delete    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newTodoKeyMap() todoKeyMap {
	return todoKeyMap{
		Focus:     key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "switch focus")),
		Add:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		NewItem:   key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "new item")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
