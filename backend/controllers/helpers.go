package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/middleware"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

// Values of the "source" field on generated payloads.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
	SourceCache    = "cache"
	SourceTemplate = "template"
)

// userIDParam parses the :user_id route parameter.
func userIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("user_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("user_id must be a positive integer")
	}
	return uint(id), nil
}

func invalidUserID(c *fiber.Ctx) error {
	return utils.ValidationError(c, map[string]string{"user_id": "must be a positive integer"})
}

// storeError maps store sentinels to HTTP answers. Anything unexpected is
// logged and hidden behind a generic 500.
func storeError(c *fiber.Ctx, log *zap.Logger, op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return utils.NotFound(c, "Not found")
	case errors.Is(err, store.ErrInvalidInput):
		return utils.ValidationError(c, map[string]string{"request": err.Error()})
	}
	log.Error("store operation failed",
		zap.String("op", op),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	)
	return utils.InternalServerError(c, "Internal server error")
}

// logAIFallback records why a generated payload was replaced by canned content.
// A missing API key is expected in some deployments and logged at debug.
func logAIFallback(c *fiber.Ctx, log *zap.Logger, feature string, err error) {
	fields := []zap.Field{
		zap.String("feature", feature),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	}
	if errors.Is(err, ai.ErrNotConfigured) {
		log.Debug("ai disabled, serving fallback", fields...)
		return
	}
	log.Warn("ai call failed, serving fallback", fields...)
}

func documentationFilename(now time.Time) string {
	return "project_documentation_" + now.Format("20060102_150405") + ".txt"
}

func portfolioFilename(userID uint, now time.Time) string {
	return "portfolio_" + strconv.FormatUint(uint64(userID), 10) + "_" + now.Format("20060102") + ".html"
}
