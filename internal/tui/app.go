package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pablasso/kanban/internal/config"
	"github.com/pablasso/kanban/internal/tui/views"
)

// Model is the top-level Bubble Tea model. It hosts exactly one of the two
// applications for the lifetime of the program.
type Model struct {
	variant config.Variant
	kanban  views.KanbanModel
	todo    views.TodoModel
}

// Run starts the TUI application and blocks until the user quits. An error
// means the terminal could not be set up or the program crashed.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run %s: %w", opts.Variant, err)
	}
	return nil
}

// NewModel builds the model for opts.Variant.
func NewModel(opts Options) (Model, error) {
	m := Model{variant: opts.Variant}
	switch opts.Variant {
	case config.VariantKanban:
		m.kanban = views.NewKanbanModel(views.KanbanConfig{
			Title:  opts.Window.Title,
			Width:  opts.Window.Width,
			Height: opts.Window.Height,
			Logger: opts.Logger,
		})
	case config.VariantTodo:
		m.todo = views.NewTodoModel(views.TodoConfig{
			Title:  opts.Window.Title,
			Width:  opts.Window.Width,
			Height: opts.Window.Height,
			Logger: opts.Logger,
		})
	default:
		return Model{}, fmt.Errorf("unknown variant %q", opts.Variant)
	}
	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.variant == config.VariantTodo {
		return m.todo.Init()
	}
	return m.kanban.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.variant == config.VariantTodo {
		m.todo, cmd = m.todo.Update(msg)
	} else {
		m.kanban, cmd = m.kanban.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.variant == config.VariantTodo {
		return m.todo.View()
	}
	return m.kanban.View()
}
