package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"project/backend/config"
	"project/backend/models"
	"project/backend/progress"
	"project/backend/routes"
	"project/backend/utils"
)

// setupApp builds a full application with file-backed snapshots and an
// in-memory database, plus a valid token for user 1.
func setupApp(t *testing.T) (*fiber.App, string) {
	t.Helper()

	cfg := &config.Config{JWTSecret: "test-secret"}
	storage := progress.NewFileStorage(t.TempDir())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ProgressSnapshot{}, &models.Roadmap{}))

	app := fiber.New()
	routes.SetupRoutes(app, storage, db, cfg)

	token, err := utils.GenerateJWTToken(1, cfg)
	require.NoError(t, err)

	return app, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}
