// Package board holds the framework-free logic of the kanban view.
package board

import (
	"todoboard/internal/client/api"
	"todoboard/internal/core/domain"
)

type Column struct {
	Status domain.TodoStatus
	Title  string
	Todos  []api.Todo
}

var columnTitles = map[domain.TodoStatus]string{
	domain.TodoStatusTodo:       "To Do",
	domain.TodoStatusInProgress: "In Progress",
	domain.TodoStatusDone:       "Done",
}

func ColumnTitle(status domain.TodoStatus) string {
	return columnTitles[status]
}

// Columns splits todos into the three fixed status columns, keeping their relative order.
func Columns(todos []api.Todo) []Column {
	columns := make([]Column, 0, len(domain.TodoStatuses))
	for _, status := range domain.TodoStatuses {
		column := Column{Status: status, Title: ColumnTitle(status), Todos: []api.Todo{}}
		for _, todo := range todos {
			if todo.Status == status {
				column.Todos = append(column.Todos, todo)
			}
		}
		columns = append(columns, column)
	}
	return columns
}

// DropEvent is emitted when a carried card is released over a column.
type DropEvent struct {
	SourceID     string
	TargetStatus domain.TodoStatus
}

type UpdateRequest struct {
	ID    string
	Input api.TodoInput
}

// Drop returns the single status change a drop implies, or false when nothing should be sent.
func Drop(todos []api.Todo, ev DropEvent) (UpdateRequest, bool) {
	if !ev.TargetStatus.IsValid() {
		return UpdateRequest{}, false
	}

	for _, todo := range todos {
		if todo.ID != ev.SourceID {
			continue
		}
		if todo.Status == ev.TargetStatus {
			return UpdateRequest{}, false
		}
		return UpdateRequest{
			ID: todo.ID,
			Input: api.TodoInput{
				Title:       todo.Title,
				Description: todo.Description,
				Status:      ev.TargetStatus,
			},
		}, true
	}

	return UpdateRequest{}, false
}
