package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestProgressRequiresAuth(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, "GET", "/api/progress", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/progress", "not-a-token", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMarkTopicAndReadSummary(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/progress/topics", token, map[string]interface{}{
		"language": "python",
		"topic_id": "intro",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	assert.Equal(t, "Topic completed", result["message"])
	assert.Equal(t, float64(1), result["topics_completed"])

	resp = doJSON(t, app, "GET", "/api/progress", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	summary := decodeBody(t, resp)
	topics := summary["topicsCompleted"].(map[string]interface{})
	assert.Equal(t, float64(1), topics["python"])
}

func TestMarkTopicValidatesInput(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/progress/topics", token, map[string]interface{}{
		"language": "python",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestMarkProblemComplete(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/progress/problems", token, map[string]interface{}{
		"language":   "python",
		"topic_id":   "intro",
		"problem_id": "p1",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decodeBody(t, resp)
	assert.Equal(t, float64(1), result["problems_solved"])
}

func TestStreakEndpointIsIdempotentPerDay(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "POST", "/api/progress/streak", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["streak"])

	resp = doJSON(t, app, "POST", "/api/progress/streak", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), decodeBody(t, resp)["streak"])
}

func TestSelectLanguage(t *testing.T) {
	app, token := setupApp(t)

	resp := doJSON(t, app, "PUT", "/api/progress/language", token, map[string]interface{}{
		"language": "javascript",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/progress", token, nil)
	summary := decodeBody(t, resp)
	assert.Equal(t, "javascript", summary["selectedLanguage"])
}

func TestResetLanguageProgress(t *testing.T) {
	app, token := setupApp(t)

	doJSON(t, app, "POST", "/api/progress/topics", token, map[string]interface{}{
		"language": "python", "topic_id": "intro",
	})
	doJSON(t, app, "POST", "/api/progress/topics", token, map[string]interface{}{
		"language": "javascript", "topic_id": "intro",
	})
	doJSON(t, app, "POST", "/api/progress/problems", token, map[string]interface{}{
		"language": "python", "topic_id": "intro", "problem_id": "p1",
	})

	resp := doJSON(t, app, "DELETE", "/api/progress/languages/python", token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/progress", token, nil)
	summary := decodeBody(t, resp)
	topics := summary["topicsCompleted"].(map[string]interface{})
	assert.NotContains(t, topics, "python")
	assert.Equal(t, float64(1), topics["javascript"])
	assert.Equal(t, float64(0), summary["problemsSolved"])
}
