package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

// BuildCreateTodoInput requires a non-blank title, stored as sent. A missing, null or empty status means TODO.
func BuildCreateTodoInput(req dto.CreateTodoRequest) (domain.CreateTodoInput, error) {
	title := req.Title
	if isBlank(title) {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	status := domain.TodoStatusTodo
	if req.Status != nil && strings.TrimSpace(*req.Status) != "" {
		parsed, err := domain.ParseTodoStatus(*req.Status)
		if err != nil {
			return domain.CreateTodoInput{}, ErrInvalidTodoPayload
		}
		status = parsed
	}

	return domain.CreateTodoInput{
		Title:       title,
		Description: valueOrEmpty(req.Description),
		Status:      status,
	}, nil
}

// BuildUpdateTodoInput validates a full replace: title and status are required and
// an absent description is written as empty.
func BuildUpdateTodoInput(req dto.UpdateTodoRequest) (domain.UpdateTodoInput, error) {
	if req.Title == nil || req.Status == nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	title := *req.Title
	if isBlank(title) {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	status, err := domain.ParseTodoStatus(*req.Status)
	if err != nil {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	return domain.UpdateTodoInput{
		Title:       title,
		Description: valueOrEmpty(req.Description),
		Status:      status,
	}, nil
}

// BuildPatchTodoInput keeps only the fields present in the body. A null description clears it.
func BuildPatchTodoInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.PatchTodoInput, error) {
	var input domain.PatchTodoInput

	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.PatchTodoInput{}, ErrInvalidTodoPayload
		}
		title := *req.Title
		if isBlank(title) {
			return domain.PatchTodoInput{}, ErrInvalidTodoPayload
		}
		input.Title = &title
	}

	if hasJSONField(raw, "status") {
		if req.Status == nil {
			return domain.PatchTodoInput{}, ErrInvalidTodoPayload
		}
		status, err := domain.ParseTodoStatus(*req.Status)
		if err != nil {
			return domain.PatchTodoInput{}, ErrInvalidTodoPayload
		}
		input.Status = &status
	}

	if hasJSONField(raw, "description") {
		description := valueOrEmpty(req.Description)
		input.Description = &description
	}

	if input.IsEmpty() {
		return domain.PatchTodoInput{}, ErrInvalidTodoPayload
	}

	return input, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
