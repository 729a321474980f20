package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
)

// Services groups everything the routes call into
type Services struct {
	User        service.UserService
	Deceased    service.DeceasedService
	Lot         service.LotService
	Map         service.MapService
	Payment     service.PaymentService
	Dashboard   service.DashboardService
	Report      service.ReportService
	Activity    service.ActivityService
	Import      service.ImportService
	Preferences service.PreferenceService
	Reconcile   ReconcileJob
}

// SetupRoutes sets up all API routes
func SetupRoutes(router *gin.Engine, svc Services, logger *logger.Logger) {
	// Initialize handlers
	userHandler := NewUserHandler(svc.User, svc.Preferences, logger)
	deceasedHandler := NewDeceasedHandler(svc.Deceased, svc.Preferences, logger)
	lotHandler := NewLotHandler(svc.Lot, svc.Preferences, logger)
	mapHandler := NewMapHandler(svc.Map, logger)
	paymentHandler := NewPaymentHandler(svc.Payment, logger)
	dashboardHandler := NewDashboardHandler(svc.Dashboard, logger)
	reportHandler := NewReportHandler(svc.Report, logger)
	activityHandler := NewActivityHandler(svc.Activity, svc.Preferences, logger)
	importHandler := NewImportHandler(svc.Import, logger)
	preferenceHandler := NewPreferenceHandler(svc.Preferences, logger)
	schedulerHandler := NewSchedulerHandler(svc.Reconcile, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 group
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Session())
	{
		// Health check
		v1.GET("/health", HealthCheck)

		v1.POST("/auth/login", userHandler.Login)

		// Everything below needs a signed-in actor
		signedIn := v1.Group("", middleware.RequireActor())

		// Staff-only back office
		office := signedIn.Group("", middleware.RequireStaff())

		// Account routes
		accounts := office.Group("/accounts")
		{
			accounts.GET("", userHandler.ListAccounts)
			accounts.POST("", userHandler.CreateAccount)
			accounts.POST("/wizard/validate", userHandler.ValidateWizardStep)
			accounts.POST("/wizard/availability", userHandler.FieldAvailability)
			accounts.GET("/:id", userHandler.GetAccount)
			accounts.PUT("/:id", userHandler.UpdateAccount)
			accounts.DELETE("/:id", userHandler.DeleteAccount)
		}

		// Deceased record routes
		deceased := office.Group("/deceased")
		{
			deceased.GET("", deceasedHandler.List)
			deceased.POST("", deceasedHandler.Create)
			deceased.GET("/:id", deceasedHandler.Get)
			deceased.PUT("/:id", deceasedHandler.Update)
			deceased.DELETE("/:id", deceasedHandler.Delete)
		}

		// Lot routes
		lots := signedIn.Group("/lots")
		{
			lots.GET("", lotHandler.Search)
			lots.GET("/vault-options", lotHandler.VaultOptions)
			lots.GET("/:id", lotHandler.Get)
		}
		office.PUT("/lots/:id/vault", lotHandler.UpdateVault)
		signedIn.GET("/ownerships", lotHandler.Ownerships)

		// Map routes
		maps := signedIn.Group("/map")
		{
			maps.GET("/guide/:lot_id", mapHandler.Guide)
			maps.GET("/guide/:lot_id/animate", mapHandler.Animate)
		}

		// Payment routes
		payments := signedIn.Group("/payments")
		{
			payments.GET("/lots/:lot_id/schedule", paymentHandler.Schedule)
			payments.GET("/payable-lots", paymentHandler.PayableLots)
			payments.GET("/plans", paymentHandler.Plans)
			payments.GET("/history", paymentHandler.History)
			payments.POST("/checkout", paymentHandler.StartCheckout)
			payments.GET("/checkout/:session_id", paymentHandler.CheckoutStatus)
		}
		office.POST("/payments/office", paymentHandler.RecordOfficePayment)

		// Dashboard view routes
		views := signedIn.Group("/dashboard/views")
		{
			views.GET("", dashboardHandler.ActiveViews)
			views.POST("", dashboardHandler.RegisterView)
			views.PUT("/:id/heartbeat", dashboardHandler.Heartbeat)
			views.DELETE("/:id", dashboardHandler.UnregisterView)
		}

		// Report routes
		reports := office.Group("/reports")
		{
			reports.GET("/summary", reportHandler.Summary)
			reports.GET("/:kind", reportHandler.Dataset)
			reports.GET("/:kind/export", reportHandler.Export)
		}

		office.GET("/activity-logs", activityHandler.List)
		office.POST("/imports/:kind", importHandler.Import)

		// Preference routes
		prefs := signedIn.Group("/preferences")
		{
			prefs.GET("/page-size/:page", preferenceHandler.GetPageSize)
			prefs.PUT("/page-size/:page", preferenceHandler.SetPageSize)
		}

		// Scheduler routes
		sched := office.Group("/scheduler")
		{
			sched.GET("/logs", schedulerHandler.Logs)
			sched.POST("/reconcile", schedulerHandler.Run)
		}
	}
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string "Server is running"
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Memorial Park Console Service",
	})
}
