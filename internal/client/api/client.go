// Package api is the HTTP client the board uses to talk to the todo service.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/core/domain"
	"todoboard/pkg/apierrors"
)

var ErrNotFound = errors.New("todo not found")

// StatusError is returned for every non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.Code, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

type Todo struct {
	ID          string
	Title       string
	Description string
	Status      domain.TodoStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TodoInput carries the writable fields for create and full update.
type TodoInput struct {
	Title       string
	Description string
	Status      domain.TodoStatus
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListTodos(ctx context.Context) ([]Todo, error) {
	var items []dto.TodoItem
	if err := c.do(ctx, http.MethodGet, "/todos", nil, &items); err != nil {
		return nil, err
	}

	todos := make([]Todo, 0, len(items))
	for _, item := range items {
		todo, err := fromItem(item)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func (c *Client) GetTodo(ctx context.Context, id string) (Todo, error) {
	var item dto.TodoItem
	if err := c.do(ctx, http.MethodGet, todoPath(id), nil, &item); err != nil {
		return Todo{}, err
	}
	return fromItem(item)
}

func (c *Client) CreateTodo(ctx context.Context, input TodoInput) (Todo, error) {
	status := string(input.Status)
	body := dto.CreateTodoRequest{
		Title:       input.Title,
		Description: &input.Description,
		Status:      &status,
	}

	var item dto.TodoItem
	if err := c.do(ctx, http.MethodPost, "/todos", body, &item); err != nil {
		return Todo{}, err
	}
	return fromItem(item)
}

// UpdateTodo sends a full replace of title, description and status.
func (c *Client) UpdateTodo(ctx context.Context, id string, input TodoInput) (Todo, error) {
	status := string(input.Status)
	body := dto.UpdateTodoRequest{
		Title:       &input.Title,
		Description: &input.Description,
		Status:      &status,
	}

	var item dto.TodoItem
	if err := c.do(ctx, http.MethodPut, todoPath(id), body, &item); err != nil {
		return Todo{}, err
	}
	return fromItem(item)
}

func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	var resp dto.MessageResponse
	return c.do(ctx, http.MethodDelete, todoPath(id), nil, &resp)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeStatusError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeStatusError(resp *http.Response) error {
	statusErr := &StatusError{Code: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	var apiErr apierrors.JsonErr
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.ErrDetails.Message != "" {
		statusErr.Message = apiErr.ErrDetails.Message
	}
	return statusErr
}

func todoPath(id string) string {
	return "/todos/" + url.PathEscape(id)
}

func fromItem(item dto.TodoItem) (Todo, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, item.CreatedAt)
	if err != nil {
		return Todo{}, fmt.Errorf("api: todo %s createdAt: %w", item.ID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, item.UpdatedAt)
	if err != nil {
		return Todo{}, fmt.Errorf("api: todo %s updatedAt: %w", item.ID, err)
	}

	status, err := domain.ParseTodoStatus(item.Status)
	if err != nil {
		return Todo{}, fmt.Errorf("api: todo %s: %w", item.ID, err)
	}

	return Todo{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Status:      status,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
