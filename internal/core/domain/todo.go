package domain

import (
	"strings"
	"time"
)

type TodoStatus string

const (
	TodoStatusTodo       TodoStatus = "TODO"
	TodoStatusInProgress TodoStatus = "IN_PROGRESS"
	TodoStatusDone       TodoStatus = "DONE"

	// todoStatusPending is the value older rows and clients use for TODO.
	todoStatusPending TodoStatus = "pending"
)

// TodoStatuses lists the status buckets in board order.
var TodoStatuses = []TodoStatus{TodoStatusTodo, TodoStatusInProgress, TodoStatusDone}

func (s TodoStatus) IsValid() bool {
	switch s {
	case TodoStatusTodo, TodoStatusInProgress, TodoStatusDone:
		return true
	}
	return false
}

// ParseTodoStatus normalizes raw input into one of the three buckets.
// The legacy "pending" value is read as TODO.
func ParseTodoStatus(value string) (TodoStatus, error) {
	status := TodoStatus(strings.TrimSpace(value))
	if status == todoStatusPending {
		return TodoStatusTodo, nil
	}
	if !status.IsValid() {
		return "", ErrInvalidTodoStatus
	}
	return status, nil
}

type Todo struct {
	ID          string
	Title       string
	Description string
	Status      TodoStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTodoInput struct {
	Title       string
	Description string
	Status      TodoStatus
}

// UpdateTodoInput replaces every mutable field.
type UpdateTodoInput struct {
	Title       string
	Description string
	Status      TodoStatus
}

// PatchTodoInput changes only the non-nil fields.
type PatchTodoInput struct {
	Title       *string
	Description *string
	Status      *TodoStatus
}

func (in PatchTodoInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.Status == nil
}
