package controllers

import (
	"project/backend/config"
	"project/backend/middleware"
	"project/backend/progress"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Storage progress.Storage
	Cfg     *config.Config
}

func NewProgressController(storage progress.Storage, cfg *config.Config) *ProgressController {
	return &ProgressController{Storage: storage, Cfg: cfg}
}

// store loads the calling user's record. Cheap enough to do per request; the
// snapshot is a single small JSON object.
func (pc *ProgressController) store(c *fiber.Ctx) *progress.Store {
	return progress.NewStore(pc.Storage, progress.KeyForUser(middleware.UserID(c)))
}

type topicInput struct {
	Language string `json:"language" validate:"required"`
	TopicID  string `json:"topic_id" validate:"required"`
}

type problemInput struct {
	Language  string `json:"language" validate:"required"`
	TopicID   string `json:"topic_id" validate:"required"`
	ProblemID string `json:"problem_id" validate:"required"`
}

type languageInput struct {
	Language string `json:"language" validate:"required"`
}

// GetProgress godoc
// @Summary Get progress summary
// @Description Returns streak, selected language, per-language topic counts and solved problems
// @Tags progress
// @Produce json
// @Success 200 {object} progress.Summary
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	return c.JSON(pc.store(c).Summarize())
}

// MarkTopicComplete godoc
// @Summary Mark a topic completed
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/topics [post]
func (pc *ProgressController) MarkTopicComplete(c *fiber.Ctx) error {
	var input topicInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := validateStruct(input); errs != nil {
		return validationFailed(c, errs)
	}

	store := pc.store(c)
	if err := store.MarkTopicComplete(input.Language, input.TopicID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save progress",
		})
	}
	return c.JSON(fiber.Map{
		"message":          "Topic completed",
		"language":         input.Language,
		"topics_completed": store.TopicProgress(input.Language),
	})
}

// MarkProblemComplete godoc
// @Summary Mark a problem solved
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/problems [post]
func (pc *ProgressController) MarkProblemComplete(c *fiber.Ctx) error {
	var input problemInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := validateStruct(input); errs != nil {
		return validationFailed(c, errs)
	}

	store := pc.store(c)
	if err := store.MarkProblemComplete(input.Language, input.TopicID, input.ProblemID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save progress",
		})
	}
	return c.JSON(fiber.Map{
		"message":         "Problem completed",
		"problems_solved": store.ProblemsSolved(),
	})
}

// UpdateStreak godoc
// @Summary Record today's activity for the streak
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /progress/streak [post]
func (pc *ProgressController) UpdateStreak(c *fiber.Ctx) error {
	store := pc.store(c)
	if err := store.UpdateStreak(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save progress",
		})
	}
	return c.JSON(fiber.Map{
		"streak": store.Streak(),
	})
}

// SetSelectedLanguage godoc
// @Summary Select the active language
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/language [put]
func (pc *ProgressController) SetSelectedLanguage(c *fiber.Ctx) error {
	var input languageInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if errs := validateStruct(input); errs != nil {
		return validationFailed(c, errs)
	}

	store := pc.store(c)
	if err := store.SetSelectedLanguage(input.Language); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save progress",
		})
	}
	return c.JSON(fiber.Map{
		"message":  "Language selected",
		"language": input.Language,
	})
}

// ResetLanguageProgress godoc
// @Summary Reset one language's progress
// @Description Clears completed topics and solved problems for the language; streak is kept
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /progress/languages/{language} [delete]
func (pc *ProgressController) ResetLanguageProgress(c *fiber.Ctx) error {
	language := c.Params("language")
	store := pc.store(c)
	if err := store.ResetLanguageProgress(language); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save progress",
		})
	}
	return c.JSON(fiber.Map{
		"message":  "Progress reset",
		"language": language,
	})
}
