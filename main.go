// File: anceller-admin/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sohilkhan0021/anceller-admin-sub002/client"
	"github.com/Sohilkhan0021/anceller-admin-sub002/config"
	"github.com/Sohilkhan0021/anceller-admin-sub002/database"
	auditRepo "github.com/Sohilkhan0021/anceller-admin-sub002/database/repository/audit"
	"github.com/Sohilkhan0021/anceller-admin-sub002/handlers"
	"github.com/Sohilkhan0021/anceller-admin-sub002/middleware"
	"github.com/Sohilkhan0021/anceller-admin-sub002/routes"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/booking"
	"github.com/Sohilkhan0021/anceller-admin-sub002/services/provider"
	"github.com/Sohilkhan0021/anceller-admin-sub002/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitLockClient()
	utils.InitCache()

	// Marketplace backend client: the source of truth for every entity the
	// console renders.
	api := client.New(
		config.AppConfig.MarketplaceAPIURL,
		config.AppConfig.MarketplaceAPIKey,
		time.Duration(config.AppConfig.HTTPTimeoutSeconds)*time.Second,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	audit := auditRepo.NewMongoAuditRepo()
	if err := audit.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to create audit indexes: %v", err)
	}

	// services.
	bookingService := booking.NewDefaultBookingService(api, audit)

	verificationLock := provider.NewRedisVerificationLock(utils.GetLockClient())
	providerService, err := provider.NewDefaultProviderService(api, audit, verificationLock)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize provider service: %v", err)
	}

	// Admin sessions: tokens signed out before expiry are denied via redis.
	revoker := utils.NewRedisTokenRevoker()

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(revoker),
		Booking:  handlers.NewBookingHandler(bookingService),
		Provider: handlers.NewProviderHandler(providerService),
		Audit:    handlers.NewAuditHandler(audit),
		Revoker:  revoker,
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8081"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting admin console on %s...", srv.Addr)
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
