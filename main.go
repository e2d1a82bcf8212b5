// File: nestcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nestcare/config"
	"nestcare/cron"
	"nestcare/database"
	bookingRepoPkg "nestcare/database/repository/booking"
	caregiverRepoPkg "nestcare/database/repository/caregiver"
	"nestcare/handlers"
	"nestcare/middleware"
	"nestcare/routes"
	"nestcare/services/booking"
	"nestcare/services/feed"
	"nestcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	caregiverRepo := caregiverRepoPkg.NewMongoCaregiverRepo()

	// services.
	featuredService := &feed.DefaultFeaturedService{
		Repo:   caregiverRepo,
		Cache:  feed.NewRedisFeaturedCache(utils.GetFeedCacheClient()),
		Logger: logger,
	}
	reminderScheduler := cron.NewReminderScheduler(logger)
	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Featured:  featuredService,
		Payments:  booking.NewPaymentHandler(logger),
		Reminders: reminderScheduler,
		Workers:   config.AppConfig.EnrichmentWorkers,
		Logger:    logger,
	}

	// Background workers.
	cronCtx, cronCancel := context.WithCancel(context.Background())
	defer cronCancel()
	cron.InitReminderWorker()
	go feed.StartFeedCron(cronCtx, featuredService,
		time.Duration(config.AppConfig.FeedRefreshMins)*time.Minute)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:   &handlers.BookingHandler{Svc: bookingService, Logger: logger},
		Caregiver: &handlers.CaregiverHandler{Feed: featuredService, Logger: logger},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	cronCancel()
	if err := reminderScheduler.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder scheduler: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
