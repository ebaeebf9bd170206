package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// UserIDKey is the Locals key under which the authenticated user id is stored.
const UserIDKey = "userID"

// RequireUser resolves the authenticated user id set by the fronting auth
// layer. Requests without an identity are rejected before the pipeline runs.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Get("X-User-ID")
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Not authenticated",
			})
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user id for the current request.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(UserIDKey).(string); ok {
		return id
	}
	return ""
}
