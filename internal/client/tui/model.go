// Package tui renders the todo board in the terminal.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todoboard/internal/client/api"
	"todoboard/internal/client/board"
	"todoboard/internal/client/store"
)

// Store is the subset of the client store the board drives.
type Store interface {
	State() store.State
	FetchTodos(ctx context.Context) error
	AddTodo(ctx context.Context, input api.TodoInput) error
	UpdateTodo(ctx context.Context, id string, input api.TodoInput) error
	DeleteTodo(ctx context.Context, id string) error
}

// StateMsg carries a store snapshot into the update loop.
type StateMsg store.State

const (
	fieldTitle = iota
	fieldDescription
	fieldStatus
	fieldCount
)

type modalForm struct {
	open        bool
	modal       board.Modal
	title       textinput.Model
	description textinput.Model
	focus       int
	err         string
}

type Model struct {
	ctx   context.Context
	store Store
	state store.State

	column int
	row    int
	// carrying is the id of the picked-up card, empty when nothing is carried.
	carrying string

	form      modalForm
	keys      keyMap
	modalKeys modalKeyMap
	help      help.Model
	width     int
}

func New(ctx context.Context, s Store) Model {
	return Model{
		ctx:       ctx,
		store:     s,
		state:     s.State(),
		keys:      defaultKeyMap(),
		modalKeys: defaultModalKeyMap(),
		help:      help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.fetch()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case StateMsg:
		m.state = store.State(msg)
		if m.carrying != "" && !m.hasTodo(m.carrying) {
			m.carrying = ""
		}
		m.clampRow()
		return m, nil
	case tea.KeyMsg:
		if m.form.open {
			return m.updateModal(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		if m.column > 0 {
			m.column--
		}
		m.clampRow()
	case key.Matches(msg, m.keys.Right):
		if m.column < len(m.columns())-1 {
			m.column++
		}
		m.clampRow()
	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		m.row++
		m.clampRow()
	case key.Matches(msg, m.keys.Carry):
		if m.carrying != "" {
			return m.drop()
		}
		if todo, ok := m.selected(); ok {
			m.carrying = todo.ID
		}
	case key.Matches(msg, m.keys.Drop):
		if m.carrying != "" {
			return m.drop()
		}
	case key.Matches(msg, m.keys.Cancel):
		m.carrying = ""
	case key.Matches(msg, m.keys.Add):
		return m.openModal(board.NewCreateModal(m.columns()[m.column].Status))
	case key.Matches(msg, m.keys.Edit):
		if todo, ok := m.selected(); ok {
			return m.openModal(board.NewEditModal(todo))
		}
	case key.Matches(msg, m.keys.Delete):
		if todo, ok := m.selected(); ok {
			return m, m.run(func(ctx context.Context) error { return m.store.DeleteTodo(ctx, todo.ID) })
		}
	case key.Matches(msg, m.keys.Refresh):
		return m, m.fetch()
	}
	return m, nil
}

// drop releases the carried card over the current column.
func (m Model) drop() (tea.Model, tea.Cmd) {
	ev := board.DropEvent{SourceID: m.carrying, TargetStatus: m.columns()[m.column].Status}
	m.carrying = ""

	req, ok := board.Drop(m.state.Todos, ev)
	if !ok {
		return m, nil
	}
	return m, m.run(func(ctx context.Context) error { return m.store.UpdateTodo(ctx, req.ID, req.Input) })
}

func (m Model) openModal(modal board.Modal) (tea.Model, tea.Cmd) {
	title := textinput.New()
	title.Prompt = "> "
	title.Placeholder = "Title"
	title.CharLimit = 200
	title.SetValue(modal.Title)
	title.CursorEnd()

	description := textinput.New()
	description.Prompt = "> "
	description.Placeholder = "Description"
	description.CharLimit = 1000
	description.SetValue(modal.Description)

	m.form = modalForm{
		open:        true,
		modal:       modal,
		title:       title,
		description: description,
		focus:       fieldTitle,
	}
	cmd := m.form.title.Focus()
	return m, cmd
}

func (m Model) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.modalKeys.Close):
		m.form = modalForm{}
		return m, nil
	case key.Matches(msg, m.modalKeys.Next):
		cmd := m.focusField((m.form.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.modalKeys.Prev):
		cmd := m.focusField((m.form.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, m.modalKeys.Submit):
		return m.submitModal()
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case fieldTitle:
		m.form.title, cmd = m.form.title.Update(msg)
	case fieldDescription:
		m.form.description, cmd = m.form.description.Update(msg)
	case fieldStatus:
		switch msg.String() {
		case "left":
			m.form.modal = m.form.modal.NextStatus(-1)
		case "right":
			m.form.modal = m.form.modal.NextStatus(1)
		}
	}
	return m, cmd
}

func (m *Model) focusField(field int) tea.Cmd {
	m.form.focus = field
	m.form.title.Blur()
	m.form.description.Blur()

	switch field {
	case fieldTitle:
		return m.form.title.Focus()
	case fieldDescription:
		return m.form.description.Focus()
	}
	return nil
}

func (m Model) submitModal() (tea.Model, tea.Cmd) {
	modal := m.form.modal
	modal.Title = m.form.title.Value()
	modal.Description = m.form.description.Value()

	sub, err := modal.Submit()
	if err != nil {
		m.form.err = err.Error()
		return m, nil
	}

	m.form = modalForm{}
	if sub.IsCreate() {
		return m, m.run(func(ctx context.Context) error { return m.store.AddTodo(ctx, sub.Input) })
	}
	return m, m.run(func(ctx context.Context) error { return m.store.UpdateTodo(ctx, sub.ID, sub.Input) })
}

func (m Model) fetch() tea.Cmd {
	return m.run(m.store.FetchTodos)
}

// run performs a store action off the update loop and reports the resulting state.
// Failures are already recorded in the store state.
func (m Model) run(action func(ctx context.Context) error) tea.Cmd {
	ctx, s := m.ctx, m.store
	return func() tea.Msg {
		_ = action(ctx)
		return StateMsg(s.State())
	}
}

func (m Model) columns() []board.Column {
	return board.Columns(m.state.Todos)
}

func (m Model) selected() (api.Todo, bool) {
	todos := m.columns()[m.column].Todos
	if m.row < 0 || m.row >= len(todos) {
		return api.Todo{}, false
	}
	return todos[m.row], true
}

func (m *Model) clampRow() {
	n := len(m.columns()[m.column].Todos)
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m Model) hasTodo(id string) bool {
	for _, todo := range m.state.Todos {
		if todo.ID == id {
			return true
		}
	}
	return false
}
