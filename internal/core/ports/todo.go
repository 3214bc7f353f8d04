package ports

import (
	"context"

	"todoboard/internal/core/domain"
)

type TodoRepository interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id string) (domain.Todo, error)
	CreateTodo(ctx context.Context, todo domain.Todo) error
	// UpdateTodo overwrites title, description, status and updated_at of the row with todo.ID.
	UpdateTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

type TodoService interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id string) (domain.Todo, error)
	CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error)
	UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error)
	PatchTodo(ctx context.Context, id string, input domain.PatchTodoInput) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}
