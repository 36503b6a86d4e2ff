package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-manager/internal/audit"
	"github.com/BruksfildServices01/barber-manager/internal/auth"
	"github.com/BruksfildServices01/barber-manager/internal/bus"
	"github.com/BruksfildServices01/barber-manager/internal/collection"
	"github.com/BruksfildServices01/barber-manager/internal/config"
	"github.com/BruksfildServices01/barber-manager/internal/handlers"
	"github.com/BruksfildServices01/barber-manager/internal/middleware"
	"github.com/BruksfildServices01/barber-manager/internal/models"
	"github.com/BruksfildServices01/barber-manager/internal/store"
	ucAppointment "github.com/BruksfildServices01/barber-manager/internal/usecase/appointment"
	ucSale "github.com/BruksfildServices01/barber-manager/internal/usecase/sale"
	"github.com/BruksfildServices01/barber-manager/internal/view"
)

func RegisterRoutes(
	r *gin.Engine,
	st store.RecordStore,
	reg *collection.Registry,
	poller *bus.Poller,
	dashboard *view.Dashboard,
	cfg *config.Config,
	log zerolog.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	authService := auth.NewService(reg.Users, st, log)

	auditLogger := audit.New(st, log)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		reg.Appointments,
		reg.Services,
		auditDispatcher,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		reg.Appointments,
		auditDispatcher,
	)

	recordSaleUC := ucSale.NewRecordSale(
		reg.Products,
		reg.Sales,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(authService, cfg)
	barberHandler := handlers.NewBarberHandler(authService)

	appointmentHandler := handlers.NewAppointmentHandler(
		reg.Appointments,
		createAppointmentUC,
		transitionAppointmentUC,
	)

	serviceHandler := handlers.NewServiceHandler(reg.Services)
	productHandler := handlers.NewProductHandler(reg.Products)
	saleHandler := handlers.NewSaleHandler(reg.Sales, recordSaleUC)
	commissionHandler := handlers.NewCommissionHandler(reg.Commission)
	dashboardHandler := handlers.NewDashboardHandler(dashboard, poller)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", authHandler.Me)
			secured.POST("/auth/logout", authHandler.Logout)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.PUT("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// PRODUCTS + SALES
			// ------------------------------
			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			secured.GET("/sales", saleHandler.List)
			secured.POST("/sales", saleHandler.Create)

			// ------------------------------
			// BARBERS
			// ------------------------------
			secured.GET("/barbers", barberHandler.List)

			// ------------------------------
			// DASHBOARD
			// ------------------------------
			secured.GET("/dashboard", dashboardHandler.Summary)
			secured.GET("/dashboard/barbers/:name", dashboardHandler.BarberReport)
			secured.POST("/dashboard/sync", dashboardHandler.Sync)

			// ------------------------------
			// SÓ O DONO
			// ------------------------------
			owner := secured.Group("/")
			owner.Use(middleware.RequireRole(models.RoleOwner))
			{
				owner.POST("/barbers", barberHandler.Register)
				owner.PATCH("/barbers/:id", barberHandler.Update)
				owner.DELETE("/barbers/:id", barberHandler.Remove)

				owner.GET("/commission", commissionHandler.Get)
				owner.PUT("/commission", commissionHandler.Update)

				owner.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
