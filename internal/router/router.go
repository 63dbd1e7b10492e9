package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskhive/backend/api/handler"
)

type Handlers struct {
	Auth     *apiHandler.AuthHandler
	Profile  *apiHandler.ProfileHandler
	Task     *apiHandler.TaskHandler
	Report   *apiHandler.ReportHandler
	Category *apiHandler.CategoryHandler
	Label    *apiHandler.LabelHandler
	Reminder *apiHandler.ReminderHandler
	Health   *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/api/v1/auth/login", handlers.Auth.Login)
	r.POST("/api/v1/auth/refresh", handlers.Auth.Refresh)

	// Protected routes
	r.GET("/api/v1/profile", authMiddleware(handlers.Profile.GetProfile))
	r.PUT("/api/v1/profile", authMiddleware(handlers.Profile.UpdateProfile))

	// Static task routes must register before the {id} parameter routes.
	r.GET("/api/v1/tasks", authMiddleware(handlers.Task.GetTasks))
	r.POST("/api/v1/tasks", authMiddleware(handlers.Task.CreateTask))
	r.PUT("/api/v1/tasks/reorder", authMiddleware(handlers.Task.ReorderTasks))
	r.GET("/api/v1/tasks/summary", authMiddleware(handlers.Report.GetSummary))
	r.GET("/api/v1/tasks/statistics", authMiddleware(handlers.Report.GetStatistics))
	r.GET("/api/v1/tasks/digest", authMiddleware(handlers.Report.GetDigest))
	r.GET("/api/v1/tasks/{id}", authMiddleware(handlers.Task.GetTask))
	r.PUT("/api/v1/tasks/{id}", authMiddleware(handlers.Task.UpdateTask))
	r.PATCH("/api/v1/tasks/{id}/complete", authMiddleware(handlers.Task.MarkCompleted))
	r.DELETE("/api/v1/tasks/{id}", authMiddleware(handlers.Task.DeleteTask))

	r.GET("/api/v1/categories", authMiddleware(handlers.Category.GetCategories))
	r.POST("/api/v1/categories", authMiddleware(handlers.Category.CreateCategory))
	r.PUT("/api/v1/categories/{id}", authMiddleware(handlers.Category.UpdateCategory))
	r.DELETE("/api/v1/categories/{id}", authMiddleware(handlers.Category.DeleteCategory))

	r.GET("/api/v1/labels", authMiddleware(handlers.Label.GetLabels))
	r.POST("/api/v1/labels", authMiddleware(handlers.Label.CreateLabel))
	r.PUT("/api/v1/labels/{id}", authMiddleware(handlers.Label.UpdateLabel))
	r.DELETE("/api/v1/labels/{id}", authMiddleware(handlers.Label.DeleteLabel))

	r.POST("/api/v1/reminders", authMiddleware(handlers.Reminder.SetReminder))
	r.GET("/api/v1/reminders/{id}", authMiddleware(handlers.Reminder.GetReminder))
	r.PUT("/api/v1/reminders/{id}", authMiddleware(handlers.Reminder.EditReminder))
	r.DELETE("/api/v1/reminders/{id}", authMiddleware(handlers.Reminder.DeleteReminder))

	return r
}
