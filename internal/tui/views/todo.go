package views

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/pablasso/kanban/internal/todo"
	"github.com/pablasso/kanban/internal/tui/components"
	"github.com/pablasso/kanban/internal/tui/styles"
	"github.com/sirupsen/logrus"
)

const todoInputLabel = "New item: "

// TodoConfig holds initialization parameters.
type TodoConfig struct {
	Title  string
	Width  int
	Height int
	Logger logrus.FieldLogger
}

// TodoModel is the single-column to-do list.
type TodoModel struct {
	list    *todo.List
	pending []int // item identifiers to delete after the current pass

	input  textinput.Model
	focus  focusArea
	cursor int
	region components.ScrollRegion

	keys      todoKeyMap
	statusBar components.StatusBar

	title       string
	frameWidth  int
	frameHeight int
	width       int
	height      int

	log logrus.FieldLogger
}

// NewTodoModel creates an empty list with the text input focused.
func NewTodoModel(config TodoConfig) TodoModel {
	log := config.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Something to do..."
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return TodoModel{
		list:        todo.NewList(log),
		input:       ti,
		focus:       focusInput,
		region:      components.NewScrollRegion(0, 0),
		keys:        newTodoKeyMap(),
		statusBar:   components.NewStatusBar(),
		title:       config.Title,
		frameWidth:  config.Width,
		frameHeight: config.Height,
		log:         log,
	}
}

// Init implements tea.Model.
func (m TodoModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(m.title))
}

// Update implements tea.Model.
func (m TodoModel) Update(msg tea.Msg) (TodoModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			m, cmd = m.updateInput(msg)
		} else {
			m, cmd = m.updateList(msg)
		}

	case tea.MouseMsg:
		if isClick(msg) {
			m, cmd = m.updateClick(msg)
		} else {
			cmd = m.scroll(msg)
		}

	default:
		if m.focus == focusInput {
			m.input, cmd = m.input.Update(msg)
		}
	}

	m.refresh()
	return m, cmd
}

func (m TodoModel) updateInput(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusBoard
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.addItem()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m TodoModel) updateList(msg tea.KeyMsg) (TodoModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.NewItem):
		m.focus = focusInput
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		cmd := m.scroll(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Delete):
		m.frame(keyInput(intentDelete))
	}
	return m, nil
}

func (m TodoModel) updateClick(msg tea.MouseMsg) (TodoModel, tea.Cmd) {
	if w, _ := m.frameSize(); msg.X >= w {
		return m, nil
	}
	if msg.Y == inputRowY {
		if onAddButton(todoInputLabel, m.input, msg.X) {
			m.addItem()
			return m, nil
		}
		if m.focus != focusInput {
			m.focus = focusInput
			cmd := m.input.Focus()
			return m, cmd
		}
		return m, nil
	}

	m.frame(clickInput(msg))
	return m, nil
}

func (m *TodoModel) addItem() {
	if _, ok := m.list.Add(m.input.Value()); ok {
		m.input.Reset()
	}
}

// scroll moves the list without moving the cursor off screen.
func (m *TodoModel) scroll(msg tea.Msg) tea.Cmd {
	cmd := m.region.Update(msg)
	if m.list.Len() == 0 {
		return cmd
	}
	top := m.region.YOffset()
	bottom := min(top+m.region.Height(), m.list.Len()) - 1
	m.cursor = min(max(m.cursor, top), max(bottom, top))
	return cmd
}

// frame runs one render pass that resolves in against the drawn delete
// buttons and then deletes whatever the pass recorded.
func (m *TodoModel) frame(in frameInput) {
	m.renderItems(in, &m.pending)
	if len(m.pending) == 0 {
		return
	}

	removed := todo.Reconcile(m.list, m.pending)
	m.log.WithFields(logrus.Fields{
		"requested": len(m.pending),
		"removed":   removed,
	}).Debug("frame reconciled")
	m.pending = m.pending[:0]

	if m.cursor > m.list.Len()-1 {
		m.cursor = max(m.list.Len()-1, 0)
	}
}

// renderItems draws one line per item. When pending is non-nil, the item
// whose delete button in asks for records its identifier: the selected row
// for a key, the row under the pointer for a click.
func (m TodoModel) renderItems(in frameInput, pending *[]int) []string {
	w, _ := m.frameSize()
	del := components.Button{Label: "✕", Danger: true}
	delView := del.Render()
	textWidth := max(w-lipgloss.Width(delView)-4, 1)
	// marker, text, one space
	delX := 2 + textWidth + 1
	top, height := m.region.YOffset(), m.region.Height()

	items := m.list.Items()
	lines := make([]string, 0, len(items))
	for i, item := range items {
		selected := m.focus == focusBoard && i == m.cursor
		if pending != nil {
			onScreen := i >= top && i < top+height
			switch {
			case selected && in.intent == intentDelete:
				*pending = append(*pending, item.ID)
			case onScreen && in.hits(delX, contentY+i-top, lipgloss.Width(delView)):
				*pending = append(*pending, item.ID)
			}
		}

		text := ansi.Truncate(item.Text, textWidth, "…")
		marker := "  "
		if selected {
			marker = "› "
			text = styles.SelectedStyle.Render(text)
		}
		pad := max(textWidth-lipgloss.Width(text), 0)
		lines = append(lines, marker+text+strings.Repeat(" ", pad+1)+delView)
	}
	return lines
}

// refresh redraws the list into the scroll region and keeps the cursor in view.
func (m *TodoModel) refresh() {
	lines := m.renderItems(frameInput{}, nil)
	if len(lines) == 0 {
		lines = []string{styles.SubtleStyle.Render("Nothing to do.")}
	}
	m.region.SetLines(lines)
	m.region.EnsureVisible(m.cursor)
}

func (m TodoModel) frameSize() (int, int) {
	w, h := m.width, m.height
	if m.frameWidth > 0 && m.frameWidth < w {
		w = m.frameWidth
	}
	if m.frameHeight > 0 && m.frameHeight < h {
		h = m.frameHeight
	}
	return w, h
}

func (m TodoModel) helpView(width int) string {
	if m.focus == focusInput {
		return m.statusBar.Render(width, components.Bindings{m.keys.Add, m.keys.Focus, m.keys.ForceQuit}, false)
	}
	return m.statusBar.Render(width, components.Bindings{m.keys.Up, m.keys.Down, m.keys.Delete, m.keys.NewItem, m.keys.Quit}, false)
}

// View implements tea.Model.
func (m TodoModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	w, _ := m.frameSize()
	separator := styles.SeparatorStyle.Render(strings.Repeat("─", w))

	return strings.Join([]string{
		styles.TitleStyle.Render(m.title),
		separator,
		inputRow(todoInputLabel, m.input),
		separator,
		m.region.View(),
		m.helpView(w),
	}, "\n")
}

// SetSize updates the model dimensions.
func (m *TodoModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	w, h := m.frameSize()

	addWidth := lipgloss.Width(addButton.Render())
	m.input.Width = max(w-lipgloss.Width(todoInputLabel)-addWidth-3, 10)
	// everything above the list, plus the help line
	m.region.SetSize(w, max(h-contentY-1, 1))
	m.refresh()
}

// List returns the list backing the view.
func (m TodoModel) List() *todo.List {
	return m.list
}

// InputFocused reports whether key presses go to the text input.
func (m TodoModel) InputFocused() bool {
	return m.focus == focusInput
}

// Cursor returns the selected row.
func (m TodoModel) Cursor() int {
	return m.cursor
}
