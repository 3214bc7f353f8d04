package domain

import "errors"

var (
	ErrTodoNotFound      = errors.New("todo not found")
	ErrInvalidTodoStatus = errors.New("invalid todo status")
)
