package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/client/api"
	"todoboard/internal/client/store"
	"todoboard/internal/core/domain"
)

type call struct {
	name  string
	id    string
	input api.TodoInput
}

type fakeStore struct {
	state store.State
	calls []call
}

func (f *fakeStore) State() store.State { return f.state }

func (f *fakeStore) FetchTodos(_ context.Context) error {
	f.calls = append(f.calls, call{name: "fetch"})
	return nil
}

func (f *fakeStore) AddTodo(_ context.Context, input api.TodoInput) error {
	f.calls = append(f.calls, call{name: "add", input: input})
	return nil
}

func (f *fakeStore) UpdateTodo(_ context.Context, id string, input api.TodoInput) error {
	f.calls = append(f.calls, call{name: "update", id: id, input: input})
	return nil
}

func (f *fakeStore) DeleteTodo(_ context.Context, id string) error {
	f.calls = append(f.calls, call{name: "delete", id: id})
	return nil
}

func newFakeStore() *fakeStore {
	return &fakeStore{state: store.State{Todos: []api.Todo{
		{ID: "t1", Title: "Write", Description: "docs", Status: domain.TodoStatusTodo},
		{ID: "t2", Title: "Review", Status: domain.TodoStatusInProgress},
	}}}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

// press feeds a key and returns the model plus the command it produced.
func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_InitFetches(t *testing.T) {
	fake := newFakeStore()
	m := New(context.Background(), fake)

	msg := m.Init()()

	require.Equal(t, []call{{name: "fetch"}}, fake.calls)
	assert.IsType(t, StateMsg{}, msg)
}

func TestModel_DragToOtherColumnUpdatesStatusOnce(t *testing.T) {
	fake := newFakeStore()
	m := New(context.Background(), fake)

	m, cmd := press(t, m, keySpace)
	require.Nil(t, cmd)
	require.Equal(t, "t1", m.carrying)

	m, _ = press(t, m, keyRight)
	m, cmd = press(t, m, keySpace)
	require.NotNil(t, cmd)
	require.Empty(t, m.carrying)

	cmd()
	require.Equal(t, []call{{
		name:  "update",
		id:    "t1",
		input: api.TodoInput{Title: "Write", Description: "docs", Status: domain.TodoStatusInProgress},
	}}, fake.calls)
}

func TestModel_DropOnSameColumnDoesNothing(t *testing.T) {
	fake := newFakeStore()
	m := New(context.Background(), fake)

	m, _ = press(t, m, keySpace)
	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.Empty(t, m.carrying)
	assert.Empty(t, fake.calls)
}

func TestModel_EscCancelsCarry(t *testing.T) {
	m := New(context.Background(), newFakeStore())

	m, _ = press(t, m, keySpace)
	m, _ = press(t, m, keyEsc)

	assert.Empty(t, m.carrying)
}

func TestModel_AddPresetsColumnStatus(t *testing.T) {
	fake := newFakeStore()
	m := New(context.Background(), fake)

	m, _ = press(t, m, keyRight)
	m, _ = press(t, m, keyRunes("a"))
	require.True(t, m.form.open)
	assert.Equal(t, "New Task", m.form.modal.Heading())

	m, _ = press(t, m, keyRunes("Plan"))
	m, cmd := press(t, m, keyEnter)
	require.False(t, m.form.open)
	require.NotNil(t, cmd)

	cmd()
	require.Equal(t, []call{{
		name:  "add",
		input: api.TodoInput{Title: "Plan", Status: domain.TodoStatusInProgress},
	}}, fake.calls)
}

func TestModel_AddRejectsEmptyTitle(t *testing.T) {
	fake := newFakeStore()
	m := New(context.Background(), fake)

	m, _ = press(t, m, keyRunes("a"))
	m, cmd := press(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.True(t, m.form.open)
	assert.NotEmpty(t, m.form.err)
	assert.Empty(t, fake.calls)
}

func TestModel_EditChangesStatusThroughPicker(t *testing.T) {
	fake := newFakeStore()
	m := New(context.Background(), fake)

	m, _ = press(t, m, keyRunes("e"))
	require.True(t, m.form.open)
	assert.Equal(t, "Write", m.form.title.Value())

	m, _ = press(t, m, keyTab)
	m, _ = press(t, m, keyTab)
	require.Equal(t, fieldStatus, m.form.focus)
	m, _ = press(t, m, keyRight)
	m, _ = press(t, m, keyRight)

	m, cmd := press(t, m, keyEnter)
	require.NotNil(t, cmd)
	cmd()
	require.Equal(t, []call{{
		name:  "update",
		id:    "t1",
		input: api.TodoInput{Title: "Write", Description: "docs", Status: domain.TodoStatusDone},
	}}, fake.calls)
}

func TestModel_TypingInModalDoesNotQuit(t *testing.T) {
	m := New(context.Background(), newFakeStore())

	m, _ = press(t, m, keyRunes("a"))
	m, _ = press(t, m, keyRunes("q"))

	assert.True(t, m.form.open)
	assert.Equal(t, "q", m.form.title.Value())
}

func TestModel_DeleteAndRefresh(t *testing.T) {
	fake := newFakeStore()
	m := New(context.Background(), fake)

	m, cmd := press(t, m, keyRunes("d"))
	require.NotNil(t, cmd)
	cmd()

	_, cmd = press(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	cmd()

	require.Equal(t, []call{{name: "delete", id: "t1"}, {name: "fetch"}}, fake.calls)
}

func TestModel_StateMsgClampsCursorAndDropsVanishedCarry(t *testing.T) {
	m := New(context.Background(), newFakeStore())

	m, _ = press(t, m, keySpace)
	m, _ = press(t, m, StateMsg(store.State{Error: store.MsgFetchFailed}))

	assert.Empty(t, m.carrying)
	assert.Equal(t, 0, m.row)
	assert.Contains(t, m.View(), store.MsgFetchFailed)
}

func TestModel_ViewShowsColumns(t *testing.T) {
	m := New(context.Background(), newFakeStore())
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "To Do (1)")
	assert.Contains(t, view, "In Progress (1)")
	assert.Contains(t, view, "Done (0)")
	assert.Contains(t, view, "Review")
}
