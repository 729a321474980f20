package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"memorial-park-svc/docs"
	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/database"
	"memorial-park-svc/internal/handler"
	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/repository"
	"memorial-park-svc/internal/scheduler"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/internal/validation"
	"memorial-park-svc/pkg/logger"
)

// @title Memorial Park Console Service API
// @version 1.0
// @description Back end for the memorial park management console: accounts, deceased records, lots, map guides, payments, reports and imports.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api/v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Title = "Memorial Park Console Service API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.BasePath = "/api/v1"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Money is sent as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Memorial Park Console Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		appLogger.WithField("error", err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize repositories
	pendingRepo := repository.NewPendingCheckoutRepository(db.DB)
	preferenceRepo := repository.NewListPreferenceRepository(db.DB)
	schedulerLogRepo := repository.NewSchedulerLogRepository(db.DB)

	// Remote API client and form validator
	client := apiclient.NewClient(cfg.RemoteAPI, appLogger)
	validator := validation.New()

	// Initialize services
	monitor := service.NewCheckoutMonitor(client, pendingRepo, cfg.Checkout, cfg.RemoteAPI.ServiceToken, appLogger)
	dashboardService := service.NewDashboardService(service.DefaultViewTTL, appLogger)
	reconciler := scheduler.NewReconcileScheduler(client, dashboardService, schedulerLogRepo, appLogger, cfg.Scheduler.ReconcileCronExpression, cfg.RemoteAPI.ServiceToken)

	services := handler.Services{
		User:        service.NewUserService(client, validator, cfg.Console, appLogger),
		Deceased:    service.NewDeceasedService(client, validator, appLogger),
		Lot:         service.NewLotService(client, appLogger),
		Map:         service.NewMapService(client, cfg.Map, appLogger),
		Payment:     service.NewPaymentService(client, monitor, pendingRepo, appLogger),
		Dashboard:   dashboardService,
		Report:      service.NewReportService(client, cfg.Console, appLogger),
		Activity:    service.NewActivityService(client, appLogger),
		Import:      service.NewImportService(client, appLogger),
		Preferences: service.NewPreferenceService(preferenceRepo, appLogger),
		Reconcile:   reconciler,
	}

	// Resume checkouts left pending by the previous run
	if err := monitor.Resume(); err != nil {
		appLogger.WithField("error", err).Error("Failed to resume pending checkouts")
	}

	// Start payment reconciliation
	if err := reconciler.Start(); err != nil {
		appLogger.WithField("error", err).Fatal("Failed to start reconcile scheduler")
	}

	// Initialize Gin router
	router := gin.New()

	// Add middleware
	router.Use(middleware.CORS(cfg.CORS))
	router.Use(middleware.RequestID())
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())
	router.HandleMethodNotAllowed = true

	// Setup routes
	handler.SetupRoutes(router, services, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithField("error", err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Stop background work before draining requests
	reconciler.Stop()
	monitor.Stop()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithField("error", err).Error("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithField("error", err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
