package board

import (
	"errors"
	"strings"

	"todoboard/internal/client/api"
	"todoboard/internal/core/domain"
)

var ErrEmptyTitle = errors.New("title cannot be empty")

// Modal is the form state for creating or editing a todo.
type Modal struct {
	TodoID      string
	Title       string
	Description string
	Status      domain.TodoStatus
}

func NewCreateModal(status domain.TodoStatus) Modal {
	if !status.IsValid() {
		status = domain.TodoStatusTodo
	}
	return Modal{Status: status}
}

func NewEditModal(todo api.Todo) Modal {
	return Modal{
		TodoID:      todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      todo.Status,
	}
}

func (m Modal) IsEdit() bool {
	return m.TodoID != ""
}

func (m Modal) Heading() string {
	if m.IsEdit() {
		return "Edit Task"
	}
	return "New Task"
}

// NextStatus cycles the selected status in board order.
func (m Modal) NextStatus(step int) Modal {
	statuses := domain.TodoStatuses
	idx := 0
	for i, status := range statuses {
		if status == m.Status {
			idx = i
		}
	}
	n := len(statuses)
	m.Status = statuses[((idx+step)%n+n)%n]
	return m
}

// Submission is what a confirmed modal asks the store to do.
type Submission struct {
	// ID is empty for a create.
	ID    string
	Input api.TodoInput
}

func (s Submission) IsCreate() bool {
	return s.ID == ""
}

func (m Modal) Submit() (Submission, error) {
	title := strings.TrimSpace(m.Title)
	if title == "" {
		return Submission{}, ErrEmptyTitle
	}

	return Submission{
		ID: m.TodoID,
		Input: api.TodoInput{
			Title:       title,
			Description: m.Description,
			Status:      m.Status,
		},
	}, nil
}
