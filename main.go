// File: tripwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripwise/config"
	"tripwise/database"
	catalogRepo "tripwise/database/repository/catalog"
	"tripwise/handlers"
	"tripwise/middleware"
	"tripwise/models"
	"tripwise/routes"
	ai "tripwise/services/intelligence"
	"tripwise/services/planner"
	"tripwise/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()

	// Load the package catalog once; it is immutable for the life of the
	// process and shared read-only across all sessions.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	catRepo := catalogRepo.NewMongoCatalogRepo()
	packages, err := catRepo.GetAll(ctx)
	cancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load package catalog: %v", err)
	}
	catalog := models.NewCatalog(packages)
	if catalog.Len() == 0 {
		logger.Warn("Package catalog is empty; every ranking will report no match")
	} else {
		logger.Info("Package catalog loaded",
			zap.Int("packages", catalog.Len()),
			zap.Int("destinations", len(catalog.Destinations())))
	}

	// Phrasing gateway. Without an API key the planner still runs on its
	// canned fallback phrases.
	var gateway planner.PhrasingGateway
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		g, err := ai.NewGeminiGateway(key)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize phrasing gateway: %v", err)
		}
		gateway = g
	} else {
		logger.Warn("GEMINI_API_KEY not set; planner will use fallback phrasing only")
	}

	sessionStore := planner.NewRedisSessionStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)

	plannerService := planner.NewDefaultPlannerService(sessionStore, gateway, catalog, utils.GetCacheClient())
	plannerService.PhrasingTimeout = time.Duration(config.AppConfig.PhrasingTimeoutMS) * time.Millisecond

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.HandlerBundle{
		Planner: handlers.NewPlannerHandler(plannerService, logger),
		Catalog: handlers.NewCatalogHandler(catalog),
	}
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), utils.GetSessionCacheClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Starting server", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
