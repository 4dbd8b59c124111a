package middleware

import (
	"project/backend/config"
	"project/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the locals key the authenticated user id is stored under.
const UserIDKey = "userID"

// AuthMiddleware validates the bearer token (minted by the external auth
// service) and stores the user id for handlers downstream.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID reads the authenticated user id set by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals(UserIDKey).(uint); ok {
		return id
	}
	return 0
}
