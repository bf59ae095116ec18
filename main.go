// File: vitrina/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitrina/config"
	"vitrina/database"
	hoursRepo "vitrina/database/repository/hours"
	"vitrina/handlers"
	"vitrina/middleware"
	"vitrina/routes"
	"vitrina/services/hours"
	"vitrina/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitEditorCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	repo := hoursRepo.NewMongoHoursRepo()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure business hours indexes: %v", err)
		}
		cancel()
	}

	// services.
	hoursService := &hours.DefaultHoursService{
		Repo: repo,
		Sessions: hours.NewRedisEditorStore(
			utils.GetEditorCacheClient(),
			time.Duration(config.AppConfig.EditorSessionTTL)*time.Second,
		),
		Cache: hours.NewRedisWeekCache(
			utils.GetCacheClient(),
			time.Duration(config.AppConfig.HoursCacheTTL)*time.Second,
		),
	}

	hoursHandler := handlers.NewBusinessHoursHandler(hoursService)

	// Register routes.
	routes.RegisterRoutes(router, hoursHandler)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
