package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/cannedit/seller-api/internal/core/auth"
	"github.com/cannedit/seller-api/internal/core/export"
	"github.com/cannedit/seller-api/internal/modules/seller/handlers"
	"github.com/cannedit/seller-api/internal/modules/seller/repositories"
	"github.com/cannedit/seller-api/internal/modules/seller/services"
	"github.com/cannedit/seller-api/internal/shared/config"
	"github.com/cannedit/seller-api/internal/shared/database"
	"github.com/cannedit/seller-api/internal/shared/utils"
)

func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting seller-api")

	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	// Repositories
	storeRepo := repositories.NewStoreRepo(db.Database)
	datasetRepo := repositories.NewDatasetRepo(db.Database)
	shipmentRepo := repositories.NewShipmentRepo(db.Database)
	activityRepo := repositories.NewActivityRepo(db.Database)

	// Services
	exportService := export.NewService()
	analyticsService := services.NewAnalyticsService(storeRepo, datasetRepo, activityRepo, exportService, time.Now)
	shipmentService := services.NewShipmentService(storeRepo, shipmentRepo, activityRepo, time.Now)

	// Handlers
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	shipmentHandler := handlers.NewShipmentHandler(shipmentService)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)

	app := fiber.New(fiber.Config{AppName: "seller-api"})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(utils.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/seller", auth.Middleware(verifier))
	api.Get("/analytics", analyticsHandler.GetAnalytics)
	api.Get("/analytics/export", analyticsHandler.ExportAnalytics)
	api.Get("/shipments", shipmentHandler.ListShipments)
	api.Post("/shipments", shipmentHandler.CreateShipment)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Info().Msg("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			log.Error().Err(err).Msg("database disconnect failed")
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
