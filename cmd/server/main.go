package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"nazarblog/internal/config"
	"nazarblog/internal/handlers"
	"nazarblog/internal/middleware"
	"nazarblog/internal/seed"
	"nazarblog/internal/store"
	"nazarblog/pkg/database"
	"nazarblog/pkg/logger"
	"nazarblog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists; the container environment sets these
	// directly in production.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// A failed connection must not prevent the server from starting: routes
	// that need the store report the failure per request, and /test stays up
	// for diagnosis.
	var st store.Store
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Database unavailable, starting without a store")
	} else {
		defer db.Close()

		if err := database.EnsureIndexes(context.Background(), db.Database); err != nil {
			appLogger.WithError(err).Warn("Index bootstrap failed")
		}
		st = store.NewMongoStore(db)
		appLogger.WithField("database", cfg.Database.Database).Info("Connected to MongoDB")
	}

	seeder := seed.NewSeeder(st, appLogger)
	contentHandler := handlers.NewContentHandler(st, seeder, appLogger)
	diagnosticHandler := handlers.NewDiagnosticHandler(st)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	routes.SetupDiagnosticRoutes(router, diagnosticHandler)

	api := router.Group("/api")
	{
		routes.SetupContentRoutes(api, contentHandler)
	}

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.WithField("port", cfg.App.Port).Info("Starting server")
	log.Fatal(http.ListenAndServe(addr, router))
}
