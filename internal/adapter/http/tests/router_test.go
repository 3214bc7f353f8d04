package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	httpadapter "todoboard/internal/adapter/http"
	"todoboard/internal/adapter/http/dto"
	"todoboard/internal/adapter/http/handlers"
	"todoboard/internal/adapter/http/middleware"
	appservice "todoboard/internal/app/service"
	"todoboard/internal/core/ports"
)

// steppingClock advances one second per call so consecutive writes get distinct timestamps.
type steppingClock struct {
	mu      sync.Mutex
	current time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{current: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(time.Second)
	return c.current
}

func newTestRouter(repository ports.TodoRepository, db *sqlx.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.CORS([]string{"*"}))

	todoService := appservice.NewTodoService(repository, appservice.WithClock(newSteppingClock().Now))
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(db, "todoboard", "test"),
		handlers.NewTodoHandler(todoService),
	)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeTodo(t *testing.T, rec *httptest.ResponseRecorder) dto.TodoItem {
	t.Helper()

	var got dto.TodoItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func decodeTodos(t *testing.T, rec *httptest.ResponseRecorder) []dto.TodoItem {
	t.Helper()

	var got []dto.TodoItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func parseTimestamp(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(time.RFC3339Nano, value)
	require.NoError(t, err)
	return parsed
}
