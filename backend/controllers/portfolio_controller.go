package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/fallback"
	"projectassistant/backend/models"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

type PortfolioController struct {
	Store *store.Store
	AI    ai.Assistant
	Log   *zap.Logger
	Now   func() time.Time
}

func NewPortfolioController(s *store.Store, assistant ai.Assistant, log *zap.Logger) *PortfolioController {
	return &PortfolioController{Store: s, AI: assistant, Log: log, Now: time.Now}
}

// GeneratePortfolio godoc
// @Summary Build a portfolio page
// @Description Renders a stored template when one is named, otherwise asks the AI provider and falls back to the built-in page
// @Tags portfolio
// @Accept json
// @Produce json
// @Param request body models.PortfolioInput true "Portfolio data"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /generate-portfolio [post]
func (pc *PortfolioController) GeneratePortfolio(c *fiber.Ctx) error {
	var input models.PortfolioInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.UserID == 0 {
		return utils.ValidationError(c, map[string]string{"user_id": "is required"})
	}
	ctx := c.UserContext()
	if _, err := pc.Store.GetUser(ctx, input.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return storeError(c, pc.Log, "get_user", err)
	}
	now := pc.Now()

	var page, source string
	if input.Template != "" {
		tmpl, err := pc.Store.GetPortfolioTemplate(ctx, input.Template)
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "Template not found")
		}
		if err != nil {
			return storeError(c, pc.Log, "get_portfolio_template", err)
		}
		page, source = fallback.RenderTemplate(tmpl.HTML, tmpl.CSS, input), SourceTemplate
	} else {
		html, err := pc.AI.GeneratePortfolio(ctx, input)
		if err != nil {
			logAIFallback(c, pc.Log, fallback.FeaturePortfolio, err)
			html, source = fallback.Portfolio(input, now), SourceFallback
		} else {
			source = SourceAI
		}
		page = html
	}

	if err := pc.Store.SavePortfolio(ctx, input.UserID, input); err != nil {
		return storeError(c, pc.Log, "save_portfolio", err)
	}

	return c.JSON(fiber.Map{
		"portfolio_html": page,
		"filename":       portfolioFilename(input.UserID, now),
		"source":         source,
	})
}

// GetPortfolio returns the last submitted portfolio data.
func (pc *PortfolioController) GetPortfolio(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}

	var data models.PortfolioInput
	err = pc.Store.GetPortfolio(c.UserContext(), userID, &data)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Portfolio not found")
	}
	if err != nil {
		return storeError(c, pc.Log, "get_portfolio", err)
	}
	return c.JSON(fiber.Map{"portfolio": data})
}

func (pc *PortfolioController) Templates(c *fiber.Ctx) error {
	templates, err := pc.Store.ListPortfolioTemplates(c.UserContext())
	if err != nil {
		return storeError(c, pc.Log, "list_portfolio_templates", err)
	}
	return c.JSON(fiber.Map{"templates": templates})
}
