package controllers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"projectassistant/backend/ai"
	"projectassistant/backend/store"
)

func TestFilenames(t *testing.T) {
	now := time.Date(2024, 9, 8, 7, 6, 5, 0, time.UTC)
	assert.Equal(t, "project_documentation_20240908_070605.txt", documentationFilename(now))
	assert.Equal(t, "portfolio_12_20240908.html", portfolioFilename(12, now))
}

func TestStoreErrorMapping(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	app := fiber.New()
	app.Get("/:kind", func(c *fiber.Ctx) error {
		switch c.Params("kind") {
		case "missing":
			return storeError(c, log, "op", store.ErrNotFound)
		case "invalid":
			return storeError(c, log, "op", store.ErrInvalidInput)
		default:
			return storeError(c, log, "op", errors.New("disk full"))
		}
	})

	for kind, want := range map[string]int{
		"missing": fiber.StatusNotFound,
		"invalid": fiber.StatusUnprocessableEntity,
		"broken":  fiber.StatusInternalServerError,
	} {
		resp, err := app.Test(httptest.NewRequest("GET", "/"+kind, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, kind)
	}

	// only the unexpected error is logged
	assert.Equal(t, 1, logs.FilterMessage("store operation failed").Len())
}

func TestLogAIFallbackLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := zap.New(core)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		logAIFallback(c, log, "ideas", ai.ErrNotConfigured)
		logAIFallback(c, log, "ideas", &ai.Error{Reason: ai.ReasonTimeout, Message: "slow"})
		return c.SendStatus(fiber.StatusOK)
	})
	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
}
