package routes

import (
	"project/backend/config"
	"project/backend/controllers"
	"project/backend/middleware"
	"project/backend/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes wires every endpoint. db may be nil when the service runs with
// file-backed storage only.
func SetupRoutes(app *fiber.App, storage progress.Storage, db *gorm.DB, cfg *config.Config) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authMiddleware := middleware.AuthMiddleware(cfg)

	// Progress routes
	progressController := controllers.NewProgressController(storage, cfg)
	progressGroup := app.Group("/api/progress", authMiddleware)
	progressGroup.Get("/", progressController.GetProgress)
	progressGroup.Post("/topics", progressController.MarkTopicComplete)
	progressGroup.Post("/problems", progressController.MarkProblemComplete)
	progressGroup.Post("/streak", progressController.UpdateStreak)
	progressGroup.Put("/language", progressController.SetSelectedLanguage)
	progressGroup.Delete("/languages/:language", progressController.ResetLanguageProgress)

	// Roadmap and problem-catalog routes
	roadmapController := controllers.NewRoadmapController(db, cfg)
	roadmapGroup := app.Group("/api/roadmap", authMiddleware)
	roadmapGroup.Post("/generate", roadmapController.GenerateRoadmap)
	roadmapGroup.Get("/", roadmapController.ListRoadmaps)
	app.Get("/api/problems", authMiddleware, roadmapController.GetProblems)

	// Static content routes
	contentController := controllers.NewContentController()
	contentGroup := app.Group("/api/content", authMiddleware)
	contentGroup.Get("/languages", contentController.GetLanguages)
	contentGroup.Get("/languages/:language", contentController.GetLanguageRoadmap)
	contentGroup.Get("/languages/:language/sections/:section/questions", contentController.GetSectionQuestions)
}
