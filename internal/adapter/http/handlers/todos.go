package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/adapter/http/mapper"
	"todoboard/internal/adapter/http/middleware"
	"todoboard/internal/adapter/http/validation"
	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
	"todoboard/pkg/apierrors"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)

	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(todos))
}

func (h *TodoHandler) GetTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := todoID(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, id, apierrors.MsgFailGetTodo, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, lang)
		return
	}

	input, err := validation.BuildCreateTodoInput(req)
	if err != nil {
		invalidPayload(c, lang)
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTodoStatus) {
			invalidPayload(c, lang)
			return
		}

		zap.L().Error("failed to create todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}

// UpdateTodo replaces title, description and status of an existing todo.
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := todoID(c, lang)
	if !ok {
		return
	}

	req, _, ok := bindUpdateRequest(c, lang)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateTodoInput(req)
	if err != nil {
		invalidPayload(c, lang)
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err, id, apierrors.MsgFailUpdateTodo, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

// PatchTodo changes only the fields present in the body.
func (h *TodoHandler) PatchTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := todoID(c, lang)
	if !ok {
		return
	}

	req, raw, ok := bindUpdateRequest(c, lang)
	if !ok {
		return
	}

	input, err := validation.BuildPatchTodoInput(req, raw)
	if err != nil {
		invalidPayload(c, lang)
		return
	}

	todo, err := h.todoService.PatchTodo(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err, id, apierrors.MsgFailUpdateTodo, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := todoID(c, lang)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		h.respondError(c, err, id, apierrors.MsgFailDeleteTodo, lang)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: apierrors.GetTransErrorMsg(apierrors.MsgTodoDeleted, lang),
	})
}

func (h *TodoHandler) respondError(c *gin.Context, err error, id string, failMsg string, lang string) {
	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
		)
	case errors.Is(err, domain.ErrInvalidTodoStatus):
		invalidPayload(c, lang)
	default:
		zap.L().Error("todo operation failed",
			zap.String("todo_id", id),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, failMsg, lang),
		)
	}
}

// todoID answers 404 for ids that are not UUIDs: no stored todo can carry one.
func todoID(c *gin.Context, lang string) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
		)
		return "", false
	}
	return id.String(), true
}

// bindUpdateRequest decodes the body twice: once into the typed request and once
// into a raw map so PATCH can tell an absent field from an explicit null.
func bindUpdateRequest(c *gin.Context, lang string) (dto.UpdateTodoRequest, map[string]json.RawMessage, bool) {
	var req dto.UpdateTodoRequest
	body, err := c.GetRawData()
	if err != nil {
		invalidPayload(c, lang)
		return req, nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		invalidPayload(c, lang)
		return req, nil, false
	}
	if err := json.Unmarshal(body, &req); err != nil {
		invalidPayload(c, lang)
		return req, nil, false
	}

	return req, raw, true
}

func invalidPayload(c *gin.Context, lang string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
	)
}
