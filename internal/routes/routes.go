package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"healio-server/internal/config"
	"healio-server/internal/handlers"
	"healio-server/internal/middleware"
	"healio-server/internal/models"
	"healio-server/internal/notify"
	"healio-server/internal/scheduling"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Wire the scheduling service with its collaborators
	repo := scheduling.NewGormRepository(db)
	mailer := notify.NewMailer(cfg.Email)
	service := scheduling.NewService(repo, mailer, notify.LogSMSSender{}, cfg.AppURL, cfg.DisplayTimezone)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	patientHandler := handlers.NewPatientHandler(db)
	appointmentHandler := handlers.NewAppointmentHandler(service)
	reminderHandler := handlers.NewReminderHandler(service, cfg)
	adminHandler := handlers.NewAdminHandler(cfg)

	// Public routes (no authentication required)
	public := router.Group("/api/v1")
	{
		authRoutes := public.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/refresh-token", authHandler.RefreshToken)
		}

		// Static physician directory; needed by the booking form before login
		public.GET("/doctors", handlers.GetDoctors)

		// Cron-triggered reminder sweep; guarded by its own bearer secret
		public.GET("/cron/reminders", reminderHandler.SendReminders)
	}

	// Authenticated routes
	private := router.Group("/api/v1")
	private.Use(middleware.AuthMiddleware(cfg))
	{
		authRoutesPrivate := private.Group("/auth")
		{
			authRoutesPrivate.POST("/logout", authHandler.Logout)
			authRoutesPrivate.GET("/profile", authHandler.GetProfile)
			authRoutesPrivate.PUT("/profile", authHandler.UpdateProfile)
		}

		// Patient intake
		patientRoutes := private.Group("/patients")
		{
			patientRoutes.POST("", patientHandler.RegisterPatient)
			patientRoutes.GET("/:userId", patientHandler.GetPatient) // Authorization inside handler
		}

		// Appointment lifecycle; per-operation authorization inside the
		// handlers (listing differentiates by role, patch covers both
		// schedule and cancel)
		appointmentRoutes := private.Group("/appointments")
		{
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("", appointmentHandler.GetAppointmentsForUser)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PATCH("/:id", appointmentHandler.UpdateAppointment)
		}

		// Admin dashboard gate
		adminRoutes := private.Group("/admin")
		adminRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.POST("/verify", adminHandler.VerifyPasskey)
		}
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
