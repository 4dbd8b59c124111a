package controllers

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/middleware"
	"project/backend/models"
	"project/backend/roadmap"
)

type RoadmapController struct {
	// DB is optional: with file-backed storage the service runs without a
	// database and generated plans are simply not archived.
	DB  *gorm.DB
	Cfg *config.Config
}

func NewRoadmapController(db *gorm.DB, cfg *config.Config) *RoadmapController {
	return &RoadmapController{DB: db, Cfg: cfg}
}

type savedRoadmap struct {
	ID        string       `json:"id"`
	Track     string       `json:"track"`
	Plan      roadmap.Plan `json:"plan"`
	CreatedAt time.Time    `json:"created_at"`
}

// GenerateRoadmap godoc
// @Summary Generate a personalized roadmap
// @Description Deterministically builds a weekly plan from goals, time budget and level
// @Tags roadmap
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /roadmap/generate [post]
func (rc *RoadmapController) GenerateRoadmap(c *fiber.Ctx) error {
	var req roadmap.Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := validateStruct(req); errs != nil {
		return validationFailed(c, errs)
	}

	plan := roadmap.Generate(req)
	roadmapID := uuid.NewString()

	if rc.DB != nil {
		planJSON, err := json.Marshal(plan)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not serialize roadmap",
			})
		}
		row := models.Roadmap{
			ID:               roadmapID,
			UserID:           middleware.UserID(c),
			Track:            req.Track,
			Goals:            req.Goals,
			TimeAvailability: req.TimeAvailability,
			CurrentLevel:     req.CurrentLevel,
			Plan:             planJSON,
		}
		if err := rc.DB.Create(&row).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Could not save roadmap",
			})
		}
	}

	return c.JSON(fiber.Map{
		"roadmap_id": roadmapID,
		"plan":       plan,
	})
}

// ListRoadmaps godoc
// @Summary List the user's saved roadmaps
// @Tags roadmap
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /roadmap [get]
func (rc *RoadmapController) ListRoadmaps(c *fiber.Ctx) error {
	if rc.DB == nil {
		return c.JSON(fiber.Map{"roadmaps": []savedRoadmap{}})
	}

	var rows []models.Roadmap
	if err := rc.DB.
		Where("user_id = ?", middleware.UserID(c)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not load roadmaps",
		})
	}

	saved := make([]savedRoadmap, 0, len(rows))
	for _, row := range rows {
		var plan roadmap.Plan
		if err := json.Unmarshal(row.Plan, &plan); err != nil {
			continue
		}
		saved = append(saved, savedRoadmap{
			ID:        row.ID,
			Track:     row.Track,
			Plan:      plan,
			CreatedAt: row.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"roadmaps": saved})
}

// GetProblems godoc
// @Summary Filtered practice-problem catalog
// @Description Filters by level, focus area, category, platform, technology and search text
// @Tags problems
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /problems [get]
func (rc *RoadmapController) GetProblems(c *fiber.Ctx) error {
	level := roadmap.NormalizeLevel(c.Query("level", "beginner"))
	focus := c.Query("focus", roadmap.FocusWeb)
	filter := roadmap.ProblemFilter{
		Category:   c.Query("category"),
		Platform:   c.Query("platform"),
		Technology: c.Query("technology"),
		Search:     c.Query("search"),
	}

	problems := roadmap.FilterProblems(level, focus, filter)
	return c.JSON(fiber.Map{
		"problems": problems,
		"total":    len(problems),
	})
}
