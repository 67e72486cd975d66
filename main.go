package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/config"
	"github.com/promovia/promovia-api/controllers"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/jobs"
	"github.com/promovia/promovia-api/middlewares"
	"github.com/promovia/promovia-api/models"
	"github.com/promovia/promovia-api/routes"
	"github.com/promovia/promovia-api/services/capture"
	"github.com/promovia/promovia-api/services/extraction"
	"github.com/promovia/promovia-api/services/feed"
	"github.com/promovia/promovia-api/services/sms"
	"github.com/promovia/promovia-api/services/storage"
)

func main() {
	initializers.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	initializers.ConnectToDB(cfg)
	initializers.SyncDatabase()

	blobs, err := storage.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Storage client error: %v", err)
	}

	engine := capture.NewEngine(
		capture.NewStore(initializers.DB),
		extraction.NewClient(cfg),
		blobs,
		cfg.DefaultPrompt,
	)
	hub := feed.NewHub()
	engine.Notify = func(order *models.CapturedOrder) {
		hub.Broadcast("orderCaptured", order)
	}

	controllers.Init(cfg, sms.NewClient(cfg), engine, hub)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:4200", "https://dashboard.promovia.io"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "x-api-key", "x-app-version"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireApiKey := middlewares.RequireAPIKey(cfg.APIKey)
	requirePromoter := middlewares.RequirePromoter(cfg)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, requirePromoter)
	routes.OrderRoutes(server, requireApiKey, requirePromoter)
	routes.BrandRoutes(server, requireApiKey)
	routes.ProjectRoutes(server, requireApiKey)
	routes.PromoterRoutes(server, requireApiKey, requirePromoter)
	routes.VendorRoutes(server, requireApiKey)
	routes.CityRoutes(server, requireApiKey)
	routes.ActivityRoutes(server, requireApiKey)
	routes.AdminRoutes(server, requireApiKey)

	jobs.StartSessionSweeper(context.Background(), cfg.SweepInterval, cfg.SessionTTL)

	server.Run(":" + cfg.Port)
}
