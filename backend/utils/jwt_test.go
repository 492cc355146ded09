package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectassistant/backend/config"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret", JWTTTL: time.Hour}

	token, err := GenerateJWTToken(42, cfg)
	require.NoError(t, err)

	id, err := ParseJWTToken(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = ParseJWTToken(token, &config.Config{JWTSecret: "othersecret"})
	assert.Error(t, err)
}

func TestExtractUserIDFromToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	token, err := GenerateJWTToken(7, cfg)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		id, err := ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return Unauthorized(c, err.Error())
		}
		return c.JSON(fiber.Map{"user_id": id})
	})

	for _, header := range []string{token, "Bearer " + token} {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
