package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/fallback"
	"projectassistant/backend/middleware"
	"projectassistant/backend/store"
)

type HealthController struct {
	Store *store.Store
	AI    ai.Assistant
	Log   *zap.Logger
}

func NewHealthController(s *store.Store, assistant ai.Assistant, log *zap.Logger) *HealthController {
	return &HealthController{Store: s, AI: assistant, Log: log}
}

func (hc *HealthController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Smart Project Assistant API v" + fallback.Version})
}

// Health reports liveness. A failing database degrades the status but still
// answers 200 so the payload stays readable. With ?deep=true the AI provider is
// pinged as well and reported under "ai"; it does not change the status.
func (hc *HealthController) Health(c *fiber.Ctx) error {
	status, database := "healthy", "ok"
	if err := hc.Store.Ping(c.UserContext()); err != nil {
		hc.Log.Error("database ping failed", zap.Error(err))
		status, database = "degraded", "unavailable"
	}

	body := fiber.Map{
		"status":        status,
		"version":       fallback.Version,
		"timestamp":     time.Now().Format(time.RFC3339),
		"ai_configured": hc.AI.Configured(),
		"database":      database,
	}
	if c.QueryBool("deep") {
		body["ai"] = hc.aiStatus(c)
	}
	return c.JSON(body)
}

func (hc *HealthController) aiStatus(c *fiber.Ctx) string {
	if !hc.AI.Configured() {
		return "disabled"
	}
	if err := hc.AI.Ping(c.UserContext()); err != nil {
		hc.Log.Warn("ai ping failed", zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
		return "unavailable"
	}
	return "ok"
}
