package main

import (
	"log"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/progress"
	"project/backend/routes"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Pick the snapshot storage backend
	var storage progress.Storage
	var db *gorm.DB
	switch cfg.StorageBackend {
	case "postgres":
		db, err = utils.InitDB(cfg)
		if err != nil {
			log.Fatalf("Error initializing database: %v", err)
		}
		storage = progress.NewGormStorage(db)
	default:
		storage = progress.NewFileStorage(cfg.StorageDir)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, storage, db, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
