package http

import (
	"github.com/gin-gonic/gin"

	"github.com/LuisM11/TaskMaster/internal/adapter/http/handlers"
	"github.com/LuisM11/TaskMaster/internal/adapter/http/middleware"
	"github.com/LuisM11/TaskMaster/internal/auth"
)

type Handlers struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Task     *handlers.TaskHandler
	List     *handlers.ListHandler
	Category *handlers.CategoryHandler
}

func RegisterRoutes(r *gin.Engine, tokens *auth.Manager, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.POST("/auth/signup", h.Auth.Signup)
		api.POST("/auth/login", h.Auth.Login)
	}

	// Everything owner-scoped sits behind the auth gate.
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(tokens))
	{
		protected.POST("/auth/logout", h.Auth.Logout)

		protected.GET("/tasks", h.Task.ListTasks)
		protected.POST("/tasks", h.Task.CreateTask)
		protected.GET("/tasks/:id", h.Task.GetTask)
		protected.PATCH("/tasks/:id", h.Task.UpdateTask)
		protected.DELETE("/tasks/:id", h.Task.DeleteTask)
		protected.POST("/tasks/:id/complete", h.Task.CompleteTask)

		protected.GET("/lists", h.List.ListLists)
		protected.POST("/lists", h.List.CreateList)
		protected.GET("/lists/:id", h.List.GetList)
		protected.PATCH("/lists/:id", h.List.UpdateList)
		protected.DELETE("/lists/:id", h.List.DeleteList)

		protected.GET("/categories", h.Category.ListCategories)
		protected.POST("/categories", h.Category.CreateCategory)
		protected.PATCH("/categories/:id", h.Category.UpdateCategory)
		protected.DELETE("/categories/:id", h.Category.DeleteCategory)
	}
}
