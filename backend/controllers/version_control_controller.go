package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/fallback"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

type VersionControlController struct {
	Store *store.Store
	AI    ai.Assistant
	Log   *zap.Logger
}

func NewVersionControlController(s *store.Store, assistant ai.Assistant, log *zap.Logger) *VersionControlController {
	return &VersionControlController{Store: s, AI: assistant, Log: log}
}

type vcHelpInput struct {
	Request string `json:"request"`
	UserID  uint   `json:"user_id"`
}

// Help godoc
// @Summary Version control command cheatsheet
// @Description Commands only; requests asking for program code are rejected
// @Tags version-control
// @Accept json
// @Produce json
// @Param request body vcHelpInput true "What the user wants to do"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /get-version-control-help [post]
func (vc *VersionControlController) Help(c *fiber.Ctx) error {
	var input vcHelpInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(input.Request) == "" {
		return utils.ValidationError(c, map[string]string{"request": "is required"})
	}

	var rejected *ai.Error
	if err := ai.CheckVCRequest(input.Request); errors.As(err, &rejected) {
		return utils.BadRequest(c, rejected.Message)
	}

	if input.UserID != 0 {
		if _, err := vc.Store.GetUser(c.UserContext(), input.UserID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return utils.NotFound(c, "User not found")
			}
			return storeError(c, vc.Log, "get_user", err)
		}
	}

	commands, err := vc.AI.GenerateVCHelp(c.UserContext(), input.Request)
	source := SourceAI
	if err != nil {
		logAIFallback(c, vc.Log, fallback.FeatureVersionControl, err)
		commands = fallback.VersionControl(input.Request)
		source = SourceFallback
	}

	if input.UserID != 0 {
		// history is best effort; the answer is already computed
		if err := vc.Store.SaveVersionControlRequest(c.UserContext(), input.UserID, input.Request, commands); err != nil {
			vc.Log.Warn("save version control history failed", zap.Uint("user_id", input.UserID), zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{"commands": commands, "source": source})
}

func (vc *VersionControlController) History(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}
	limit := c.QueryInt("limit", store.DefaultHistoryLimit)

	history, err := vc.Store.GetVersionControlHistory(c.UserContext(), userID, limit)
	if err != nil {
		return storeError(c, vc.Log, "get_version_control_history", err)
	}
	return c.JSON(fiber.Map{"history": history})
}
