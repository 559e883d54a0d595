package http

import (
	"github.com/gin-gonic/gin"

	"taskboard/internal/adapter/http/handlers"
	"taskboard/internal/adapter/http/middleware"
	"taskboard/internal/core/ports"
)

type Handlers struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
	Task   *handlers.TaskHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authenticator ports.Authenticator) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)
	}

	secured := api.Group("")
	secured.Use(middleware.TokenAuthMiddleware(authenticator))
	{
		secured.POST("/tasks", h.Task.CreateTask)
		secured.GET("/tasks/:id", h.Task.GetTask)
		secured.PATCH("/tasks/:id", h.Task.UpdateTask)
		secured.POST("/tasks/:id/assign", h.Task.AssignTask)
		secured.GET("/users/tasks", h.Task.ListUserTasks)
	}
}
