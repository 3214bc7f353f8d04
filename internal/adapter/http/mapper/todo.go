package mapper

import (
	"time"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	return dto.TodoItem{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      string(todo.Status),
		CreatedAt:   todo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   todo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
