package tests

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"todoboard/internal/core/domain"
)

// memoryTodoRepository keeps todos in a map and mirrors the SQL adapter's ordering and errors.
type memoryTodoRepository struct {
	mu    sync.Mutex
	todos map[string]domain.Todo
}

func newMemoryTodoRepository() *memoryTodoRepository {
	return &memoryTodoRepository{todos: make(map[string]domain.Todo)}
}

func (r *memoryTodoRepository) ListTodos(_ context.Context) ([]domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todos := make([]domain.Todo, 0, len(r.todos))
	for _, todo := range r.todos {
		todos = append(todos, todo)
	}
	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(todos[j].CreatedAt)
		}
		return todos[i].ID > todos[j].ID
	})
	return todos, nil
}

func (r *memoryTodoRepository) GetTodo(_ context.Context, id string) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.todos[id]
	if !ok {
		return domain.Todo{}, fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	return todo, nil
}

func (r *memoryTodoRepository) CreateTodo(_ context.Context, todo domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos[todo.ID] = todo
	return nil
}

func (r *memoryTodoRepository) UpdateTodo(_ context.Context, todo domain.Todo) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.todos[todo.ID]
	if !ok {
		return domain.Todo{}, fmt.Errorf("todo %s: %w", todo.ID, domain.ErrTodoNotFound)
	}
	current.Title = todo.Title
	current.Description = todo.Description
	current.Status = todo.Status
	current.UpdatedAt = todo.UpdatedAt
	r.todos[todo.ID] = current
	return current, nil
}

func (r *memoryTodoRepository) DeleteTodo(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.todos[id]; !ok {
		return fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	delete(r.todos, id)
	return nil
}
