package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Chikimuras/ezlife/internal/adapter/http/handlers"
	"github.com/Chikimuras/ezlife/internal/adapter/http/middleware"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type Handlers struct {
	Health     *handlers.HealthHandler
	Auth       *handlers.AuthHandler
	Admin      *handlers.AdminHandler
	Groups     *handlers.GroupHandler
	Categories *handlers.CategoryHandler
	Activities *handlers.ActivityHandler
	Timer      *handlers.TimerHandler
	TaskLists  *handlers.TaskListHandler
	Tasks      *handlers.TaskHandler
	Insights   *handlers.InsightsHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, authService ports.AuthService) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	v1 := api.Group("/v1")
	v1.POST("/login/google", h.Auth.LoginGoogle)
	v1.POST("/auth/refresh", h.Auth.Refresh)
	v1.POST("/auth/logout", h.Auth.Logout)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		protected.GET("/auth/me", h.Auth.Me)
		protected.POST("/auth/logout-all", h.Auth.LogoutAll)
		protected.GET("/auth/sessions", h.Auth.Sessions)

		protected.POST("/admin/cleanup-tokens", middleware.RequireSuperuser(), h.Admin.CleanupTokens)

		protected.GET("/groups", h.Groups.ListGroups)
		protected.POST("/groups", h.Groups.CreateGroup)
		protected.GET("/groups/:id", h.Groups.GetGroup)
		protected.PUT("/groups/:id", h.Groups.UpdateGroup)
		protected.DELETE("/groups/:id", h.Groups.DeleteGroup)

		protected.GET("/categories", h.Categories.ListCategories)
		protected.POST("/categories", h.Categories.CreateCategory)
		protected.GET("/categories/:id", h.Categories.GetCategory)
		protected.PUT("/categories/:id", h.Categories.UpdateCategory)
		protected.DELETE("/categories/:id", h.Categories.DeleteCategory)

		protected.GET("/activities", h.Activities.ListActivities)
		protected.POST("/activities", h.Activities.CreateActivity)
		protected.GET("/activities/date/:date", h.Activities.ListActivitiesByDate)
		protected.GET("/activities/:id", h.Activities.GetActivity)
		protected.PUT("/activities/:id", h.Activities.UpdateActivity)
		protected.DELETE("/activities/:id", h.Activities.DeleteActivity)

		protected.POST("/timer/start", h.Timer.StartTimer)
		protected.POST("/timer/stop", h.Timer.StopTimer)
		protected.POST("/timer/stop-at", h.Timer.StopTimerAt)
		protected.GET("/timer/active", h.Timer.ActiveTimer)

		protected.GET("/task-lists", h.TaskLists.ListTaskLists)
		protected.POST("/task-lists", h.TaskLists.CreateTaskList)
		protected.GET("/task-lists/:id", h.TaskLists.GetTaskList)
		protected.PUT("/task-lists/:id", h.TaskLists.UpdateTaskList)
		protected.DELETE("/task-lists/:id", h.TaskLists.DeleteTaskList)

		protected.GET("/tasks", h.Tasks.ListTasks)
		protected.POST("/tasks", h.Tasks.CreateTask)
		protected.POST("/tasks/generate-rolling", h.Tasks.GenerateRollingOccurrences)
		protected.GET("/tasks/:id", h.Tasks.GetTask)
		protected.PUT("/tasks/:id", h.Tasks.UpdateTask)
		protected.DELETE("/tasks/:id", h.Tasks.DeleteTask)
		protected.POST("/tasks/:id/generate-occurrences", h.Tasks.GenerateOccurrences)
		protected.POST("/tasks/:id/complete", h.Tasks.CompleteTask)
		protected.POST("/tasks/:id/convert-to-activity", h.Tasks.ConvertToActivity)

		protected.GET("/insights/weekly-comparison", h.Insights.WeeklyComparison)
		protected.GET("/insights/daily-comparison", h.Insights.DailyComparison)
	}
}
