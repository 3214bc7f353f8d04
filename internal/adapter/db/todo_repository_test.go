package db

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoboard/internal/core/domain"
)

func newRepositoryForDriver(driverName string) *TodoRepository {
	return NewTodoRepository(sqlx.NewDb(&sql.DB{}, driverName))
}

func TestTodoRepository_ListQueryOrdersByCreationDescending(t *testing.T) {
	repo := newRepositoryForDriver("pgx")

	query, args, err := repo.listQuery()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, title, description, status, created_at, updated_at FROM todos ORDER BY created_at DESC, id DESC", query)
	assert.Empty(t, args)
}

func TestTodoRepository_PostgresUsesDollarPlaceholdersAndReturning(t *testing.T) {
	repo := newRepositoryForDriver("pgx")
	updatedAt := time.Date(2026, 2, 13, 11, 20, 30, 0, time.UTC)

	query, args, err := repo.updateQuery(domain.Todo{
		ID:          "7d0f8f4e-9a43-4a4f-8d8c-000000000001",
		Title:       "Ship board",
		Description: "",
		Status:      domain.TodoStatusDone,
		UpdatedAt:   updatedAt,
	})
	require.NoError(t, err)
	assert.Contains(t, query, "UPDATE todos SET title = $1, description = $2, status = $3, updated_at = $4 WHERE id = $5")
	assert.Contains(t, query, "RETURNING id, title, description, status, created_at, updated_at")
	assert.Equal(t, []any{"Ship board", "", "DONE", updatedAt, "7d0f8f4e-9a43-4a4f-8d8c-000000000001"}, args)
}

func TestTodoRepository_MySQLUsesQuestionPlaceholdersWithoutReturning(t *testing.T) {
	repo := newRepositoryForDriver("mysql")

	query, _, err := repo.updateQuery(domain.Todo{ID: "id-1", Title: "x", Status: domain.TodoStatusTodo})
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE id = ?")
	assert.NotContains(t, query, "RETURNING")

	query, args, err := repo.deleteQuery("id-1")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM todos WHERE id = ?", query)
	assert.Equal(t, []any{"id-1"}, args)
}

func TestTodoRepository_InsertQueryCarriesAllColumns(t *testing.T) {
	repo := newRepositoryForDriver("pgx")
	now := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	query, args, err := repo.insertQuery(domain.Todo{
		ID:        "id-1",
		Title:     "Write docs",
		Status:    domain.TodoStatusTodo,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO todos")
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5,$6)")
	assert.Equal(t, []any{"id-1", "Write docs", "", "TODO", now, now}, args)
}

func TestTodoRepository_GetQueryFiltersByID(t *testing.T) {
	repo := newRepositoryForDriver("pgx")

	query, args, err := repo.getQuery("id-9")
	require.NoError(t, err)
	assert.Contains(t, query, "FROM todos WHERE id = $1")
	assert.Equal(t, []any{"id-9"}, args)
}

func TestMapTodoRowToDomainTodo(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.FixedZone("CET", 3600))

	todo := mapTodoRowToDomainTodo(todoRow{
		ID:        "id-1",
		Title:     "Legacy row",
		Status:    "pending",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})

	assert.Equal(t, domain.TodoStatusTodo, todo.Status)
	assert.Equal(t, "", todo.Description)
	assert.Equal(t, time.UTC, todo.CreatedAt.Location())
	assert.True(t, todo.CreatedAt.Equal(createdAt))
}

func TestMapError(t *testing.T) {
	assert.ErrorIs(t, mapError(sql.ErrNoRows, "id-1"), domain.ErrTodoNotFound)
	assert.NotErrorIs(t, mapError(sql.ErrConnDone, "id-1"), domain.ErrTodoNotFound)
}

func TestMapError_InvalidUUIDCastIsNotFound(t *testing.T) {
	castErr := fmt.Errorf("query: %w", &pgconn.PgError{Code: pgInvalidTextRepresentation})
	assert.ErrorIs(t, mapError(castErr, "does-not-exist"), domain.ErrTodoNotFound)

	uniqueErr := &pgconn.PgError{Code: "23505"}
	assert.NotErrorIs(t, mapError(uniqueErr, "id-1"), domain.ErrTodoNotFound)
}

type fakeResult struct{ affected int64 }

func (f fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (f fakeResult) RowsAffected() (int64, error) { return f.affected, nil }

func TestRequireAffected(t *testing.T) {
	assert.NoError(t, requireAffected(fakeResult{affected: 1}, "id-1"))
	assert.ErrorIs(t, requireAffected(fakeResult{affected: 0}, "id-1"), domain.ErrTodoNotFound)
}
