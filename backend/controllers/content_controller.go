package controllers

import (
	"github.com/gofiber/fiber/v2"

	"project/backend/content"
)

type ContentController struct{}

func NewContentController() *ContentController {
	return &ContentController{}
}

// GetLanguages godoc
// @Summary List languages with a roadmap
// @Tags content
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /content/languages [get]
func (cc *ContentController) GetLanguages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"languages": content.Languages(),
	})
}

// GetLanguageRoadmap godoc
// @Summary Full roadmap content for a language
// @Tags content
// @Produce json
// @Success 200 {object} content.LanguageRoadmap
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /content/languages/{language} [get]
func (cc *ContentController) GetLanguageRoadmap(c *fiber.Ctx) error {
	language := c.Params("language")
	r, ok := content.Roadmap(language)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown language",
		})
	}
	return c.JSON(r)
}

// GetSectionQuestions godoc
// @Summary Practice questions for one roadmap section
// @Tags content
// @Produce json
// @Success 200 {object} content.Questions
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /content/languages/{language}/sections/{section}/questions [get]
func (cc *ContentController) GetSectionQuestions(c *fiber.Ctx) error {
	q, ok := content.SectionQuestions(c.Params("language"), c.Params("section"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Unknown language or section",
		})
	}
	return c.JSON(q)
}
