package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pablasso/kanban/internal/board"
	"github.com/pablasso/kanban/internal/tui/components"
	"github.com/pablasso/kanban/internal/tui/styles"
	"github.com/pablasso/kanban/internal/util"
	"github.com/sirupsen/logrus"
)

// focusArea is the part of the screen receiving key presses.
type focusArea int

const (
	focusInput focusArea = iota
	focusBoard
)

// intent is the control a key press asks for on the selected row.
type intent int

const (
	intentNone intent = iota
	intentBackward
	intentForward
	intentDelete
)

// control is a button drawn on a card.
type control struct {
	intent intent
	label  string
	to     board.Status
}

// controlsFor returns the buttons a card in status s shows. Only moves to an
// adjacent column are offered.
func controlsFor(s board.Status) []control {
	var controls []control
	if prev, ok := s.Backward(); ok {
		controls = append(controls, control{intent: intentBackward, label: "←", to: prev})
	}
	if next, ok := s.Forward(); ok {
		controls = append(controls, control{intent: intentForward, label: "→", to: next})
	}
	return append(controls, control{intent: intentDelete, label: "✕"})
}

func (c control) button() components.Button {
	return components.Button{Label: c.label, Danger: c.intent == intentDelete}
}

func (c control) action(id int) board.Action {
	if c.intent == intentDelete {
		return board.Delete{ID: id}
	}
	return board.ChangeStatus{ID: id, To: c.to}
}

const (
	inputLabel = "Add task: "
	// title, separator, input row, separator, column headers, overflow line
	kanbanChromeHeight = 6
)

// KanbanConfig holds initialization parameters.
type KanbanConfig struct {
	Title  string
	Width  int // frame width in cells, 0 follows the terminal
	Height int // frame height in cells, 0 follows the terminal
	Logger logrus.FieldLogger
}

// KanbanModel is the three-column board.
type KanbanModel struct {
	store   *board.Store
	pending board.Buffer

	input textinput.Model
	focus focusArea

	// Selected card: column index and position within that column.
	column int
	row    int

	keys      kanbanKeyMap
	statusBar components.StatusBar
	showHelp  bool

	title       string
	frameWidth  int
	frameHeight int
	width       int
	height      int

	log logrus.FieldLogger
}

// NewKanbanModel creates an empty board with the text input focused.
func NewKanbanModel(config KanbanConfig) KanbanModel {
	log := config.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	return KanbanModel{
		store:       board.NewStore(board.WithLogger(log)),
		input:       ti,
		focus:       focusInput,
		keys:        newKanbanKeyMap(),
		statusBar:   components.NewStatusBar(),
		title:       config.Title,
		frameWidth:  config.Width,
		frameHeight: config.Height,
		log:         log,
	}
}

// Init implements tea.Model.
func (m KanbanModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.SetWindowTitle(m.title))
}

// Update implements tea.Model.
func (m KanbanModel) Update(msg tea.Msg) (KanbanModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateBoard(msg)

	case tea.MouseMsg:
		if isClick(msg) {
			return m.updateClick(msg)
		}
		return m, nil
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m KanbanModel) updateInput(msg tea.KeyMsg) (KanbanModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusBoard
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.addTask()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateClick handles a left click. Clicks on the input row add or focus;
// any other click is resolved by a frame pass against the card controls.
func (m KanbanModel) updateClick(msg tea.MouseMsg) (KanbanModel, tea.Cmd) {
	if w, _ := m.frameSize(); msg.X >= w {
		return m, nil
	}
	if msg.Y == inputRowY {
		if onAddButton(inputLabel, m.input, msg.X) {
			m.addTask()
			return m, nil
		}
		if m.focus != focusInput {
			m.focus = focusInput
			m.showHelp = false
			cmd := m.input.Focus()
			return m, cmd
		}
		return m, nil
	}

	m.frame(clickInput(msg))
	return m, nil
}

func (m *KanbanModel) addTask() {
	if _, ok := m.store.Create(m.input.Value()); ok {
		m.input.Reset()
	}
}

func (m KanbanModel) updateBoard(msg tea.KeyMsg) (KanbanModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.NewTask):
		m.focus = focusInput
		m.showHelp = false
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Left):
		if m.column > 0 {
			m.column--
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Right):
		if m.column < len(board.Statuses())-1 {
			m.column++
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if m.row < m.columnLen(m.column)-1 {
			m.row++
		}
	case key.Matches(msg, m.keys.Backward):
		m.frame(keyInput(intentBackward))
	case key.Matches(msg, m.keys.Forward):
		m.frame(keyInput(intentForward))
	case key.Matches(msg, m.keys.Delete):
		m.frame(keyInput(intentDelete))
	}
	return m, nil
}

// frame runs one render pass that resolves in against the drawn controls,
// then applies whatever the pass recorded. The store is only touched after
// the pass has finished walking it.
func (m *KanbanModel) frame(in frameInput) {
	selected, hasSelection := m.selectedTask()

	m.renderColumns(in, &m.pending)
	if m.pending.Len() == 0 {
		return
	}

	actions := m.pending.Actions()
	res := board.Reconcile(m.store, &m.pending)
	m.log.WithFields(logrus.Fields{
		"actions": fmt.Sprint(actions),
		"applied": res.Applied,
		"skipped": res.Skipped,
	}).Debug("frame reconciled")
	if !res.Changed() {
		return
	}

	if hasSelection {
		if t, ok := m.store.Get(selected.ID); ok {
			m.selectTask(t)
			return
		}
	}
	m.clampCursor()
}

func (m KanbanModel) selectedTask() (board.Task, bool) {
	i := 0
	for t := range m.store.ListByStatus(board.Statuses()[m.column]) {
		if i == m.row {
			return t, true
		}
		i++
	}
	return board.Task{}, false
}

// selectTask moves the cursor onto t wherever it now lives.
func (m *KanbanModel) selectTask(t board.Task) {
	for col, status := range board.Statuses() {
		if status != t.Status {
			continue
		}
		row := 0
		for other := range m.store.ListByStatus(status) {
			if other.ID == t.ID {
				m.column, m.row = col, row
				return
			}
			row++
		}
	}
}

func (m *KanbanModel) clampCursor() {
	n := m.columnLen(m.column)
	if m.row > n-1 {
		m.row = max(n-1, 0)
	}
}

func (m KanbanModel) columnLen(col int) int {
	n := 0
	for range m.store.ListByStatus(board.Statuses()[col]) {
		n++
	}
	return n
}

// frameSize returns the area the board draws into: the configured frame,
// clamped to the terminal.
func (m KanbanModel) frameSize() (int, int) {
	w, h := m.width, m.height
	if m.frameWidth > 0 && m.frameWidth < w {
		w = m.frameWidth
	}
	if m.frameHeight > 0 && m.frameHeight < h {
		h = m.frameHeight
	}
	return w, h
}

func (m KanbanModel) helpView(width int) string {
	if m.focus == focusInput {
		return m.statusBar.Render(width, inputKeys{m.keys}, false)
	}
	return m.statusBar.Render(width, boardKeys{m.keys}, m.showHelp)
}

// cardsPerColumn returns how many cards fit in a column.
func (m KanbanModel) cardsPerColumn() int {
	w, h := m.frameSize()
	avail := h - kanbanChromeHeight - lipgloss.Height(m.helpView(w))
	return max(avail/components.CardHeight, 1)
}

// renderColumns walks every column and card. When buf is non-nil, the
// control that in asks for records its action into buf: the matching control
// of the selected card for a key, the control under the pointer for a click.
// The store itself is never modified here.
func (m KanbanModel) renderColumns(in frameInput, buf *board.Buffer) []string {
	w, _ := m.frameSize()
	statuses := board.Statuses()
	widths := components.ColumnWidths(w, len(statuses))
	counts := m.store.Counts()
	visible := m.cardsPerColumn()

	blocks := make([]string, len(statuses))
	x := 0
	for col, status := range statuses {
		cardWidth := max(widths[col]-1, 4)
		offset := 0
		if col == m.column {
			offset = max(m.row-visible+1, 0)
		}

		lines := []string{styles.ColumnTitleStyle.Render(fmt.Sprintf("%s (%d)", status, counts[status]))}
		row := 0
		for task := range m.store.ListByStatus(status) {
			selected := m.focus == focusBoard && col == m.column && row == m.row
			controls := controlsFor(status)

			if selected && buf != nil && in.intent != intentNone {
				for _, c := range controls {
					if c.intent == in.intent {
						buf.Push(c.action(task.ID))
					}
				}
			}

			if row >= offset && row < offset+visible {
				buttons := make([]components.Button, len(controls))
				for i, c := range controls {
					buttons[i] = c.button()
				}
				card := components.Card{
					Label:    util.FormatTaskID(task.ID) + " " + task.Text,
					Buttons:  buttons,
					Selected: selected,
				}

				// column title, then cards stacked below it
				top := contentY + 1 + (row-offset)*components.CardHeight
				if buf != nil && in.click {
					if i := card.ButtonAt(cardWidth, in.x-x, in.y-top); i >= 0 {
						buf.Push(controls[i].action(task.ID))
					}
				}
				lines = append(lines, card.Render(cardWidth))
			}
			row++
		}

		switch {
		case row == 0:
			lines = append(lines, styles.SubtleStyle.Render("no tasks"))
		case offset > 0 || row > offset+visible:
			above := offset
			below := max(row-offset-visible, 0)
			lines = append(lines, styles.SubtleStyle.Render(fmt.Sprintf("↑%d ↓%d", above, below)))
		}
		blocks[col] = strings.Join(lines, "\n")
		x += widths[col]
	}
	return blocks
}

// View implements tea.Model.
func (m KanbanModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	w, h := m.frameSize()
	separator := styles.SeparatorStyle.Render(strings.Repeat("─", w))

	header := strings.Join([]string{
		styles.TitleStyle.Render(m.title),
		separator,
		inputRow(inputLabel, m.input),
		separator,
		components.Columns(w, m.renderColumns(frameInput{}, nil)),
	}, "\n")

	help := m.helpView(w)
	padding := max(h-lipgloss.Height(header)-lipgloss.Height(help), 0)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("\n", padding))
	b.WriteString(help)
	return b.String()
}

// SetSize updates the model dimensions.
func (m *KanbanModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	w, _ := m.frameSize()
	addWidth := lipgloss.Width(addButton.Render())
	m.input.Width = max(w-lipgloss.Width(inputLabel)-addWidth-3, 10)
	m.clampCursor()
}

// Store returns the task store backing the board.
func (m KanbanModel) Store() *board.Store {
	return m.store
}

// InputFocused reports whether key presses go to the text input.
func (m KanbanModel) InputFocused() bool {
	return m.focus == focusInput
}

// Cursor returns the selected column index and row within it.
func (m KanbanModel) Cursor() (column, row int) {
	return m.column, m.row
}

// Pending returns the number of buffered actions. It is zero between frames.
func (m KanbanModel) Pending() int {
	return m.pending.Len()
}
