package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
	now            func() time.Time
	newID          func() string
}

type Option func(*TodoService)

// WithClock overrides the clock used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *TodoService) { s.now = now }
}

// WithIDGenerator overrides the id generator used on create.
func WithIDGenerator(newID func() string) Option {
	return func(s *TodoService) { s.newID = newID }
}

func NewTodoService(todoRepository ports.TodoRepository, opts ...Option) *TodoService {
	s := &TodoService{
		todoRepository: todoRepository,
		now:            time.Now,
		newID:          func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return s.todoRepository.ListTodos(ctx)
}

func (s *TodoService) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	return s.todoRepository.GetTodo(ctx, id)
}

func (s *TodoService) CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	status := input.Status
	if status == "" {
		status = domain.TodoStatusTodo
	}
	if !status.IsValid() {
		return domain.Todo{}, domain.ErrInvalidTodoStatus
	}

	now := s.timestamp()
	todo := domain.Todo{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.todoRepository.CreateTodo(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("create todo: %w", err)
	}

	return todo, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	if !input.Status.IsValid() {
		return domain.Todo{}, domain.ErrInvalidTodoStatus
	}

	return s.todoRepository.UpdateTodo(ctx, domain.Todo{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		UpdatedAt:   s.timestamp(),
	})
}

func (s *TodoService) PatchTodo(ctx context.Context, id string, input domain.PatchTodoInput) (domain.Todo, error) {
	current, err := s.todoRepository.GetTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}

	if input.Title != nil {
		current.Title = *input.Title
	}
	if input.Description != nil {
		current.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return domain.Todo{}, domain.ErrInvalidTodoStatus
		}
		current.Status = *input.Status
	}
	current.UpdatedAt = s.timestamp()

	return s.todoRepository.UpdateTodo(ctx, current)
}

func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	return s.todoRepository.DeleteTodo(ctx, id)
}

// timestamp matches the microsecond resolution of both supported stores.
func (s *TodoService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

var _ ports.TodoService = (*TodoService)(nil)
