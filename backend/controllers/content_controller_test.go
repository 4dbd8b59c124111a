package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLanguages(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/content/languages", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	languages := decodeBody(t, resp)["languages"].([]interface{})
	assert.Equal(t, []interface{}{"python", "javascript"}, languages)
}

func TestGetLanguageRoadmap(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/content/languages/python", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	roadmap := decodeBody(t, resp)
	assert.Equal(t, "python", roadmap["language"])
	sections := roadmap["sections"].([]interface{})
	require.NotEmpty(t, sections)
	first := sections[0].(map[string]interface{})
	assert.Equal(t, "intro", first["id"])
}

func TestGetLanguageRoadmapUnknown(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/content/languages/cobol", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetSectionQuestions(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/content/languages/python/sections/intro/questions", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	questions := decodeBody(t, resp)
	assert.NotEmpty(t, questions["mcqs"])
}

func TestGetSectionQuestionsUnknownSection(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/content/languages/python/sections/missing/questions", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
