package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/prem7151/Kashtex-Agency/internal/audit"
	"github.com/prem7151/Kashtex-Agency/internal/config"
	domainAppointment "github.com/prem7151/Kashtex-Agency/internal/domain/appointment"
	"github.com/prem7151/Kashtex-Agency/internal/handlers"
	infraRepo "github.com/prem7151/Kashtex-Agency/internal/infra/repository"
	"github.com/prem7151/Kashtex-Agency/internal/mailer"
	"github.com/prem7151/Kashtex-Agency/internal/metrics"
	"github.com/prem7151/Kashtex-Agency/internal/middleware"
	ucAppointment "github.com/prem7151/Kashtex-Agency/internal/usecase/appointment"
	ucChatlog "github.com/prem7151/Kashtex-Agency/internal/usecase/chatlog"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	chatLogRepo := infraRepo.NewChatLogGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	smtpSender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.MailFrom)
	mailDispatcher := mailer.NewDispatcher(smtpSender, cfg.NotifyTo)

	m := metrics.New(prometheus.DefaultRegisterer)

	catalog := domainAppointment.Catalog(cfg.SlotCatalog)
	if len(catalog) == 0 {
		catalog = domainAppointment.DefaultCatalog
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
		mailDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		catalog,
	)

	updateStatusUC := ucAppointment.NewUpdateStatus(
		appointmentRepo,
		auditDispatcher,
	)

	chatUpsertUC := ucChatlog.NewUpsert(chatLogRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		availabilityUC,
		updateStatusUC,
		appointmentRepo,
		m,
	)

	contactHandler := handlers.NewContactHandler(db, auditDispatcher, mailDispatcher, m)
	chatLogHandler := handlers.NewChatLogHandler(chatLogRepo, chatUpsertUC, m)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicLimit := middleware.RateLimit(rdb, cfg.RateLimitPerMinute, time.Minute)

	// ======================================================
	// OBSERVABILITY
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/appointments/available", appointmentHandler.Available)
		api.POST("/appointments", publicLimit, appointmentHandler.Create)

		api.POST("/contacts", publicLimit, contactHandler.Create)

		api.POST("/chat-logs", publicLimit, chatLogHandler.Create)
		api.PATCH("/chat-logs/:sessionId", chatLogHandler.UpsertBySession)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.POST("/admin/setup", authHandler.Setup)

		// ------------------------------
		// ADMIN
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", authHandler.Me)

			secured.GET("/admin/appointments", appointmentHandler.List)
			secured.PATCH("/admin/appointments/:id/status", appointmentHandler.UpdateStatus)

			secured.GET("/admin/contacts", contactHandler.List)
			secured.PATCH("/admin/contacts/:id/read", contactHandler.MarkRead)

			secured.GET("/admin/chat-logs", chatLogHandler.List)

			secured.GET("/admin/audit-logs", auditLogsHandler.List)
		}
	}
}
