// Package store keeps the board's view of the todo list in sync with the API.
package store

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"todoboard/internal/client/api"
)

const (
	MsgFetchFailed  = "Failed to fetch todos"
	MsgCreateFailed = "Failed to create todo"
	MsgUpdateFailed = "Failed to update todo"
	MsgDeleteFailed = "Failed to delete todo"
)

type API interface {
	ListTodos(ctx context.Context) ([]api.Todo, error)
	CreateTodo(ctx context.Context, input api.TodoInput) (api.Todo, error)
	UpdateTodo(ctx context.Context, id string, input api.TodoInput) (api.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

type State struct {
	Todos     []api.Todo
	IsLoading bool
	// Error holds the message of the last failed action until the next one starts.
	Error string
}

type Store struct {
	api API

	mu        sync.Mutex
	state     State
	listeners map[int]func(State)
	nextID    int
}

func New(client API) *Store {
	return &Store{
		api:       client,
		listeners: make(map[int]func(State)),
	}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to receive the state after every change.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) FetchTodos(ctx context.Context) error {
	s.begin()

	todos, err := s.api.ListTodos(ctx)
	if err != nil {
		s.fail(MsgFetchFailed, err)
		return err
	}

	s.finish(func(st *State) {
		st.Todos = todos
	})
	return nil
}

// AddTodo creates a todo and puts it at the front of the list, matching the API's newest-first order.
func (s *Store) AddTodo(ctx context.Context, input api.TodoInput) error {
	s.begin()

	todo, err := s.api.CreateTodo(ctx, input)
	if err != nil {
		s.fail(MsgCreateFailed, err)
		return err
	}

	s.finish(func(st *State) {
		st.Todos = append([]api.Todo{todo}, st.Todos...)
	})
	return nil
}

func (s *Store) UpdateTodo(ctx context.Context, id string, input api.TodoInput) error {
	s.begin()

	updated, err := s.api.UpdateTodo(ctx, id, input)
	if err != nil {
		s.fail(MsgUpdateFailed, err, zap.String("todo_id", id))
		return err
	}

	s.finish(func(st *State) {
		for i := range st.Todos {
			if st.Todos[i].ID == id {
				st.Todos[i] = updated
			}
		}
	})
	return nil
}

func (s *Store) DeleteTodo(ctx context.Context, id string) error {
	s.begin()

	if err := s.api.DeleteTodo(ctx, id); err != nil {
		s.fail(MsgDeleteFailed, err, zap.String("todo_id", id))
		return err
	}

	s.finish(func(st *State) {
		st.Todos = slices.DeleteFunc(st.Todos, func(t api.Todo) bool { return t.ID == id })
	})
	return nil
}

// begin and finish share a single IsLoading flag: with overlapping actions the
// first one to settle clears it while the others are still in flight.
func (s *Store) begin() {
	s.update(func(st *State) {
		st.IsLoading = true
		st.Error = ""
	})
}

// finish clears IsLoading unconditionally; see begin.
func (s *Store) finish(apply func(*State)) {
	s.update(func(st *State) {
		apply(st)
		st.IsLoading = false
	})
}

func (s *Store) fail(msg string, err error, fields ...zap.Field) {
	zap.L().Error(msg, append(fields, zap.Error(err))...)
	s.update(func(st *State) {
		st.Error = msg
		st.IsLoading = false
	})
}

// update mutates the state under the lock and notifies listeners after releasing it.
func (s *Store) update(apply func(*State)) {
	s.mu.Lock()
	apply(&s.state)
	snapshot := s.snapshotLocked()
	listeners := make([]func(State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

func (s *Store) snapshotLocked() State {
	st := s.state
	st.Todos = slices.Clone(s.state.Todos)
	return st
}
