package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/UticaHairSalon/salon-booking/internal/audit"
	"github.com/UticaHairSalon/salon-booking/internal/cache"
	"github.com/UticaHairSalon/salon-booking/internal/config"
	"github.com/UticaHairSalon/salon-booking/internal/handlers"
	"github.com/UticaHairSalon/salon-booking/internal/imagestore"
	infraRepo "github.com/UticaHairSalon/salon-booking/internal/infra/repository"
	"github.com/UticaHairSalon/salon-booking/internal/middleware"
	ucAppointment "github.com/UticaHairSalon/salon-booking/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	galleryCache := cache.NewGalleryCache(cache.NewRedisClient(cfg))
	images := imagestore.New(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createBookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		auditDispatcher,
	)

	checkSlotUC := ucAppointment.NewCheckSlot(
		appointmentRepo,
	)

	cancelBookingUC := ucAppointment.NewCancelBooking(
		appointmentRepo,
		auditDispatcher,
	)

	attachReviewUC := ucAppointment.NewAttachReview(
		appointmentRepo,
		auditDispatcher,
	)

	bookingHistoryUC := ucAppointment.NewBookingHistory(
		appointmentRepo,
	)

	changeStatusUC := ucAppointment.NewChangeStatus(
		appointmentRepo,
		auditDispatcher,
	)

	rescheduleUC := ucAppointment.NewRescheduleBooking(
		appointmentRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(db, galleryCache)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		checkSlotUC,
		cancelBookingUC,
		attachReviewUC,
		bookingHistoryUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		db,
		changeStatusUC,
		rescheduleUC,
	)

	hairstyleHandler := handlers.NewHairstyleHandler(
		db,
		images,
		galleryCache,
		auditDispatcher,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/public/hairstyles", publicHandler.Gallery)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CUSTOMER AREA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/appointments", bookingHandler.Create)
			secured.GET("/me/appointments", bookingHandler.History)
			secured.GET("/me/appointments/availability", bookingHandler.Availability)
			secured.PATCH("/me/appointments/:id/cancel", bookingHandler.Cancel)
			secured.POST("/me/appointments/:id/review", bookingHandler.Review)

			// ------------------------------
			// ADMIN AREA
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/appointments", appointmentHandler.List)
				admin.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
				admin.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
				admin.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

				admin.GET("/hairstyles", hairstyleHandler.List)
				admin.POST("/hairstyles", hairstyleHandler.Create)
				admin.DELETE("/hairstyles/:id", hairstyleHandler.Delete)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
