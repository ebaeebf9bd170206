package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/middleware"
)

func TestRequireUser(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", middleware.RequireUser(), func(c *fiber.Ctx) error {
		return c.SendString(middleware.UserID(c))
	})

	t.Run("rejects requests without identity", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("passes through the authenticated user id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("X-User-ID", "user-42")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := make([]byte, 16)
		n, _ := resp.Body.Read(body)
		assert.Equal(t, "user-42", string(body[:n]))
	})
}
