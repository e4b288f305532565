package routes

import (
	"big_studio/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth          = "/auth"
	PathJobs          = "/jobs"
	PathClients       = "/clients"
	PathDrafts        = "/drafts"
	PathSettings      = "/settings"
	PathNotifications = "/notifications"
	PathCalendar      = "/calendar"
	PathReports       = "/reports"
	PathBackup        = "/backup"
)

type studioHandlers struct {
	jobs          *handlers.JobHandler
	clients       *handlers.ClientHandler
	drafts        *handlers.DraftHandler
	settings      *handlers.SettingsHandler
	notifications *handlers.NotificationHandler
	calendar      *handlers.CalendarHandler
	reports       *handlers.ReportHandler
	backup        *handlers.BackupHandler
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}
}

func addStudioRoutes(rg *gin.RouterGroup, h studioHandlers) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", h.jobs.ListJobs)
		jobs.POST("", h.jobs.CreateJob)
		jobs.GET("/:job_id", h.jobs.GetJob)
		jobs.PUT("/:job_id", h.jobs.UpdateJob)
		jobs.DELETE("/:job_id", h.jobs.DeleteJob)
		jobs.POST("/:job_id/payments", h.jobs.RegisterPayment)
		jobs.GET("/:job_id/summary", h.jobs.GetSummary)
		jobs.POST("/:job_id/charges", h.jobs.CreateCharge)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", h.clients.ListClients)
		clients.POST("", h.clients.CreateClient)
		clients.GET("/:client_id", h.clients.GetClient)
		clients.PUT("/:client_id", h.clients.UpdateClient)
		clients.DELETE("/:client_id", h.clients.DeleteClient)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.GET("", h.drafts.ListDrafts)
		drafts.POST("", h.drafts.CreateDraft)
		drafts.PUT("/:draft_id", h.drafts.UpdateDraft)
		drafts.DELETE("/:draft_id", h.drafts.DeleteDraft)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", h.settings.GetSettings)
		settings.PATCH("", h.settings.UpdateSettings)
	}

	notifications := rg.Group(PathNotifications)
	{
		notifications.GET("", h.notifications.ListNotifications)
		notifications.POST("/:notification_id/read", h.notifications.MarkAsRead)
	}

	calendar := rg.Group(PathCalendar)
	{
		calendar.GET("/events", h.calendar.ListEvents)
		calendar.POST("/sync", h.calendar.SyncEvents)
		calendar.POST("/connect", h.calendar.Connect)
		calendar.POST("/disconnect", h.calendar.Disconnect)
	}

	reports := rg.Group(PathReports)
	{
		reports.GET("/financials", h.reports.GetFinancials)
		reports.GET("/performance", h.reports.GetPerformance)
	}

	backup := rg.Group(PathBackup)
	{
		backup.GET("/export", h.backup.Export)
		backup.POST("/import", h.backup.Import)
	}
}
