package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"todoboard/internal/core/domain"
	"todoboard/internal/core/ports"
)

const todosTable = "todos"

// pgInvalidTextRepresentation is raised when a non-UUID id is cast to the uuid column.
const pgInvalidTextRepresentation = "22P02"

var todoColumns = []string{"id", "title", "description", "status", "created_at", "updated_at"}

type TodoRepository struct {
	db      *sqlx.DB
	dialect dialect
}

type todoRow struct {
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Status      string         `db:"status"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db, dialect: dialectFor(db.DriverName())}
}

func (r *TodoRepository) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	query, args, err := r.listQuery()
	if err != nil {
		return nil, err
	}

	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodoRowToDomainTodo(row))
	}

	return todos, nil
}

func (r *TodoRepository) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	query, args, err := r.getQuery(id)
	if err != nil {
		return domain.Todo{}, err
	}

	var row todoRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return domain.Todo{}, mapError(err, id)
	}

	return mapTodoRowToDomainTodo(row), nil
}

func (r *TodoRepository) CreateTodo(ctx context.Context, todo domain.Todo) error {
	query, args, err := r.insertQuery(todo)
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapError(err, todo.ID)
	}

	return nil
}

func (r *TodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) (domain.Todo, error) {
	query, args, err := r.updateQuery(todo)
	if err != nil {
		return domain.Todo{}, err
	}

	if r.dialect.hasReturning {
		var row todoRow
		if err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
			return domain.Todo{}, mapError(err, todo.ID)
		}
		return mapTodoRowToDomainTodo(row), nil
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return domain.Todo{}, mapError(err, todo.ID)
	}
	if err := requireAffected(result, todo.ID); err != nil {
		return domain.Todo{}, err
	}

	return r.GetTodo(ctx, todo.ID)
}

func (r *TodoRepository) DeleteTodo(ctx context.Context, id string) error {
	query, args, err := r.deleteQuery(id)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return mapError(err, id)
	}

	return requireAffected(result, id)
}

func (r *TodoRepository) listQuery() (string, []any, error) {
	return r.dialect.builder().
		Select(todoColumns...).
		From(todosTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func (r *TodoRepository) getQuery(id string) (string, []any, error) {
	return r.dialect.builder().
		Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (r *TodoRepository) insertQuery(todo domain.Todo) (string, []any, error) {
	return r.dialect.builder().
		Insert(todosTable).
		Columns(todoColumns...).
		Values(todo.ID, todo.Title, todo.Description, string(todo.Status), todo.CreatedAt, todo.UpdatedAt).
		ToSql()
}

func (r *TodoRepository) updateQuery(todo domain.Todo) (string, []any, error) {
	update := r.dialect.builder().
		Update(todosTable).
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("status", string(todo.Status)).
		Set("updated_at", todo.UpdatedAt).
		Where(sq.Eq{"id": todo.ID})

	if r.dialect.hasReturning {
		update = update.Suffix("RETURNING " + strings.Join(todoColumns, ", "))
	}

	return update.ToSql()
}

func (r *TodoRepository) deleteQuery(id string) (string, []any, error) {
	return r.dialect.builder().
		Delete(todosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func requireAffected(result sql.Result, id string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("todo %s: rows affected: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	return nil
}

// mapError converts driver errors to domain errors; context errors pass through wrapped.
func mapError(err error, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgInvalidTextRepresentation {
		return fmt.Errorf("todo %s: %w", id, domain.ErrTodoNotFound)
	}
	return fmt.Errorf("todo %s: %w", id, err)
}

func mapTodoRowToDomainTodo(row todoRow) domain.Todo {
	status, err := domain.ParseTodoStatus(row.Status)
	if err != nil {
		zap.L().Warn("unknown stored todo status", zap.String("todo_id", row.ID), zap.String("status", row.Status))
		status = domain.TodoStatusTodo
	}

	return domain.Todo{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description.String,
		Status:      status,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}
