package http

import (
	"github.com/gin-gonic/gin"

	"todoboard/internal/adapter/http/handlers"
	"todoboard/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, todoHandler *handlers.TodoHandler) {
	docsHandler := handlers.NewDocsHandler()
	r.GET("/docs", docsHandler.Page)
	r.GET("/docs/openapi.yaml", docsHandler.OpenAPI)

	api := r.Group("/")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/todos", todoHandler.ListTodos)
		api.POST("/todos", todoHandler.CreateTodo)
		api.GET("/todos/:id", todoHandler.GetTodo)
		api.PUT("/todos/:id", todoHandler.UpdateTodo)
		api.PATCH("/todos/:id", todoHandler.PatchTodo)
		api.DELETE("/todos/:id", todoHandler.DeleteTodo)
	}
}
