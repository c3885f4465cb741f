package main

import (
	"log"

	"court_watch_go/config"
	"court_watch_go/db"
	"court_watch_go/handlers"
	"court_watch_go/models"
	"court_watch_go/services"
	"court_watch_go/services/contact"
	"court_watch_go/services/jobs"
	"court_watch_go/services/sources"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.User{},
		&models.DeviceToken{},
		&models.CourtCase{},
		&models.CourtHearing{},
		&models.UserSubscription{},
		&models.Notification{},
		&models.ImportCheckpoint{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Load lookup tables (case-type map, noise words, months)
	if err := services.LoadReferenceData(cfg.ReferenceDataPath); err != nil {
		log.Fatalf("Failed to load reference data: %v", err)
	}

	// Build the pipeline
	store := services.NewCaseStore(db.DB, cfg.HearingIdentityMode)
	importer := services.NewCourtDataImporter(store, sources.NewClient(), sources.Defaults())
	dispatcher := services.NewNotificationDispatcher(
		db.DB,
		store,
		contact.NewPushService(cfg),
		contact.NewEmailService(cfg),
		contact.NewSMSService(cfg),
	)

	// Start the daily batch scheduler
	if cfg.SchedulerEnabled {
		scheduler := jobs.StartScheduler(db.DB, cfg.TimeZone, importer, dispatcher)
		defer scheduler.Stop()
	} else {
		log.Println("Scheduler disabled by configuration")
	}

	// Create Echo instance
	e := echo.New()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())

	// Notification read API
	e.GET("/api/notifications", handlers.GetNotificationsHandler)
	e.GET("/api/notifications/unread-count", handlers.GetUnreadCountHandler)
	e.POST("/api/notifications/:id/read", handlers.MarkNotificationReadHandler)
	e.POST("/api/notifications/read-all", handlers.MarkAllNotificationsReadHandler)

	// Subscription API
	e.POST("/api/subscriptions", handlers.CreateSubscriptionHandler)
	e.GET("/api/subscriptions", handlers.GetSubscriptionsHandler)
	e.DELETE("/api/subscriptions/:id", handlers.DeleteSubscriptionHandler)

	// Manual pipeline triggers
	admin := &handlers.AdminHandlers{Importer: importer, Dispatcher: dispatcher}
	e.POST("/api/admin/import", admin.TriggerImportHandler)
	e.POST("/api/admin/dispatch", admin.TriggerDispatchHandler)

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
