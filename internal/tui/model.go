// Package tui is the interactive terminal board. It drives a board.Session
// from key presses and remote results and renders its frames.
package tui

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"taskboard/internal/board"
	"taskboard/internal/logging"
	"taskboard/internal/remote"
)

// Syncer performs the board's network operations.
type Syncer interface {
	FetchInitial(ctx context.Context) ([]board.Task, error)
	CreateRemote(ctx context.Context, title string, completed bool) (board.Task, error)
}

type mode int

const (
	modeBoard mode = iota
	modeSearch
)

// form fields in focus order
const (
	fieldTitle = iota
	fieldDescription
	fieldCompleted
	fieldCount
)

type tasksLoadedMsg struct{ tasks []board.Task }
type loadFailedMsg struct{ err error }
type taskCreatedMsg struct {
	req  board.CreateRequest
	task board.Task
}
type createFailedMsg struct {
	req board.CreateRequest
	err error
}

// Model is the Bubble Tea model for the board.
type Model struct {
	ctx     context.Context
	sync    Syncer
	log     logrus.FieldLogger
	session *board.Session

	mode   mode
	cursor int
	width  int

	search      textinput.Model
	title       textinput.Model
	description textinput.Model
	completed   bool
	focus       int

	spinner spinner.Model
	keys    keyMap
	styles  styles
}

// New creates a board model. Nothing is fetched until Init runs.
func New(ctx context.Context, sync Syncer, log logrus.FieldLogger) *Model {
	if log == nil {
		log = logging.Discard()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search by title"
	search.CharLimit = 120

	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = "at least 3 characters"
	title.CharLimit = 200
	title.Width = 48

	description := textinput.New()
	description.Prompt = ""
	description.Placeholder = "optional"
	description.CharLimit = 500
	description.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot

	return &Model{
		ctx:         ctx,
		sync:        sync,
		log:         log,
		session:     board.NewSession(),
		search:      search,
		title:       title,
		description: description,
		spinner:     sp,
		keys:        newKeyMap(),
		styles:      newStyles(),
	}
}

// Session exposes the board state, mainly for tests.
func (m *Model) Session() *board.Session {
	return m.session
}

// Init starts the initial fetch.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

// Update handles key presses and remote results.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tasksLoadedMsg:
		m.session.LoadSucceeded(msg.tasks)
		m.log.WithField("count", len(msg.tasks)).Debug("board loaded")
		m.clampCursor()
		return m, nil

	case loadFailedMsg:
		m.session.LoadFailed(remote.Message(msg.err))
		m.log.WithError(msg.err).Debug("board load failed")
		return m, nil

	case taskCreatedMsg:
		wasOpen := m.session.Form.Open()
		task := m.session.CreateSucceeded(msg.req, msg.task)
		m.log.WithField("id", task.ID).Debug("task added to board")
		if wasOpen && !m.session.Form.Open() {
			m.blurForm()
		}
		m.cursor = 0
		return m, nil

	case createFailedMsg:
		m.session.CreateFailed(msg.req, remote.Message(msg.err))
		return m, nil

	case tea.KeyMsg:
		if m.session.Form.Open() {
			return m.updateForm(msg)
		}
		if m.mode == modeSearch {
			return m.updateSearch(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m *Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.down):
		if m.cursor < len(m.visibleCards())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.add):
		m.session.Notice = ""
		m.session.OpenCreate()
		return m, m.fillForm()

	case key.Matches(msg, m.keys.edit):
		if id, ok := m.selectedID(); ok && m.session.OpenEdit(id) {
			m.session.Notice = ""
			return m, m.fillForm()
		}

	case key.Matches(msg, m.keys.remove):
		if id, ok := m.selectedID(); ok {
			m.session.RemoveTask(id)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.toggle):
		if id, ok := m.selectedID(); ok {
			m.session.ToggleCompleted(id)
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.clear):
		n := m.session.ClearCompleted()
		m.log.WithField("removed", n).Debug("cleared completed")
		m.clampCursor()

	case key.Matches(msg, m.keys.filter):
		i := int(msg.String()[0] - '1')
		m.session.SetFilter(board.Filters[i])
		m.cursor = 0

	case key.Matches(msg, m.keys.search):
		m.mode = modeSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.reset):
		m.search.SetValue("")
		m.session.ResetFilters()
		m.cursor = 0

	case key.Matches(msg, m.keys.reload):
		m.session.Notice = ""
		return m, m.load()

	case key.Matches(msg, m.keys.dismiss):
		m.session.Notice = ""
	}
	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.mode = modeBoard
		m.search.Blur()
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.session.Query {
		m.session.SetQuery(m.search.Value())
		m.cursor = 0
	}
	return m, cmd
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.cancel):
		m.session.CloseForm()
		m.blurForm()
		return m, nil

	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.next):
		return m, m.focusField((m.focus + 1) % fieldCount)

	case key.Matches(msg, m.keys.prev):
		return m, m.focusField((m.focus + fieldCount - 1) % fieldCount)

	case key.Matches(msg, m.keys.complete),
		m.focus == fieldCompleted && msg.Type == tea.KeySpace:
		m.completed = !m.completed
		return m, nil

	case key.Matches(msg, m.keys.submit):
		return m, m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldDescription:
		m.description, cmd = m.description.Update(msg)
	}
	return m, cmd
}

// submit applies the form. Edits are local; creates go to the remote API
// and come back as taskCreatedMsg or createFailedMsg.
func (m *Model) submit() tea.Cmd {
	res, err := m.session.Submit(m.title.Value(), m.description.Value(), m.completed)
	if err != nil {
		return m.focusField(fieldTitle)
	}
	if res.Edited {
		m.blurForm()
		m.clampCursor()
		return nil
	}
	return m.create(*res.Create)
}

func (m *Model) load() tea.Cmd {
	m.session.BeginLoad()
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		tasks, err := sync.FetchInitial(ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func (m *Model) create(req board.CreateRequest) tea.Cmd {
	ctx, sync := m.ctx, m.sync
	return func() tea.Msg {
		task, err := sync.CreateRemote(ctx, req.Title, req.Completed)
		if err != nil {
			return createFailedMsg{req: req, err: err}
		}
		return taskCreatedMsg{req: req, task: task}
	}
}

// fillForm copies the session form into the inputs and focuses the title.
func (m *Model) fillForm() tea.Cmd {
	f := m.session.Form
	m.title.SetValue(f.Title)
	m.description.SetValue(f.Description)
	m.completed = f.Completed
	return m.focusField(fieldTitle)
}

func (m *Model) focusField(field int) tea.Cmd {
	m.focus = field
	m.title.Blur()
	m.description.Blur()
	switch field {
	case fieldTitle:
		return m.title.Focus()
	case fieldDescription:
		return m.description.Focus()
	}
	return nil
}

func (m *Model) blurForm() {
	m.title.Blur()
	m.description.Blur()
	m.title.SetValue("")
	m.description.SetValue("")
	m.completed = false
	m.focus = fieldTitle
}

func (m *Model) visibleCards() []board.Card {
	return m.session.Frame().List.Cards
}

func (m *Model) selectedID() (int, bool) {
	cards := m.visibleCards()
	if m.cursor < 0 || m.cursor >= len(cards) {
		return 0, false
	}
	return cards[m.cursor].ID, true
}

func (m *Model) clampCursor() {
	n := len(m.visibleCards())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Run starts the board on the terminal and blocks until the user quits or
// ctx is cancelled.
func Run(ctx context.Context, sync Syncer, log logrus.FieldLogger, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(New(ctx, sync, log),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
