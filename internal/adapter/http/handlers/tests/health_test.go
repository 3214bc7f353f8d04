package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"todoboard/internal/adapter/http/handlers"
	"todoboard/internal/adapter/http/middleware"
)

func TestHealthHandler_NoDatabaseIsDown(t *testing.T) {
	handler := handlers.NewHealthHandler(nil, "todoboard", "1.2.3")

	router := gin.New()
	router.GET("/health", handler.CheckHealth)
	router.GET("/health/report", middleware.LanguageMiddleware(), handler.CheckHealthReport)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var basic handlers.HealthBasic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &basic))
	require.Equal(t, handlers.StatusDown, basic.Message)
	require.Equal(t, "todoboard", basic.AppName)
	require.Equal(t, "1.2.3", basic.AppVersion)

	req := httptest.NewRequest(http.MethodGet, "/health/report", nil)
	req.Header.Set("Accept-Language", "fr")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var report handlers.HealthAdvanced
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	require.Equal(t, handlers.StatusDown, report.Database.Status)
	require.Equal(t, "fr", report.Language)
}
