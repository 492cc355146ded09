package middleware

import (
	"github.com/gofiber/fiber/v2"

	"projectassistant/backend/config"
	"projectassistant/backend/utils"
)

const UserIDKey = "user_id"

// AuthMiddleware rejects requests without a valid JWT and stores the caller's
// id in c.Locals(UserIDKey).
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the id stored by AuthMiddleware.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(UserIDKey).(uint)
	return id, ok
}
