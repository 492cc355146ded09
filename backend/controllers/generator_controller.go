package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/fallback"
	"projectassistant/backend/utils"
)

const (
	defaultIdeaCount = 5
	maxIdeaCount     = 10
)

// GeneratorController serves the stateless generative features. Every handler
// answers 200 with fallback content when the AI call fails.
type GeneratorController struct {
	AI  ai.Assistant
	Log *zap.Logger
	Now func() time.Time
}

func NewGeneratorController(assistant ai.Assistant, log *zap.Logger) *GeneratorController {
	return &GeneratorController{AI: assistant, Log: log, Now: time.Now}
}

type ideasInput struct {
	Domain     string `json:"domain"`
	SkillLevel string `json:"skill_level"`
	Count      int    `json:"count"`
}

// ProjectIdeas godoc
// @Summary Suggest project ideas
// @Tags generate
// @Accept json
// @Produce json
// @Param request body ideasInput true "Domain, level and count"
// @Success 200 {object} map[string]interface{}
// @Failure 422 {object} utils.ErrorResponse
// @Router /get-project-ideas [post]
func (gc *GeneratorController) ProjectIdeas(c *fiber.Ctx) error {
	var input ideasInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(input.Domain) == "" {
		return utils.ValidationError(c, map[string]string{"domain": "is required"})
	}
	if input.SkillLevel == "" {
		input.SkillLevel = "beginner"
	}
	switch {
	case input.Count <= 0:
		input.Count = defaultIdeaCount
	case input.Count > maxIdeaCount:
		input.Count = maxIdeaCount
	}

	ideas, err := gc.AI.GenerateIdeas(c.UserContext(), input.Domain, input.SkillLevel, input.Count)
	source := SourceAI
	if err != nil {
		logAIFallback(c, gc.Log, fallback.FeatureIdeas, err)
		ideas = fallback.Ideas(input.Domain, input.SkillLevel, input.Count)
		source = SourceFallback
	}

	return c.JSON(fiber.Map{"ideas": ideas, "source": source})
}

// GenerateDocumentation godoc
// @Summary Generate project documentation
// @Tags generate
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /generate-documentation [post]
func (gc *GeneratorController) GenerateDocumentation(c *fiber.Ctx) error {
	var input struct {
		ProjectDetails string `json:"project_details"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(input.ProjectDetails) == "" {
		return utils.ValidationError(c, map[string]string{"project_details": "is required"})
	}

	now := gc.Now()
	doc, err := gc.AI.GenerateDocs(c.UserContext(), input.ProjectDetails)
	source := SourceAI
	if err != nil {
		logAIFallback(c, gc.Log, fallback.FeatureDocumentation, err)
		doc = fallback.Documentation(input.ProjectDetails, now)
		source = SourceFallback
	}

	return c.JSON(fiber.Map{
		"documentation": doc,
		"filename":      documentationFilename(now),
		"source":        source,
	})
}

type snippetInput struct {
	Language   string `json:"language"`
	Prompt     string `json:"prompt"`
	Complexity string `json:"complexity"`
}

// GenerateCodeSnippet godoc
// @Summary Generate a code snippet
// @Tags generate
// @Accept json
// @Produce json
// @Param request body snippetInput true "Language, prompt and complexity"
// @Success 200 {object} map[string]interface{}
// @Router /generate-code-snippet [post]
func (gc *GeneratorController) GenerateCodeSnippet(c *fiber.Ctx) error {
	var input snippetInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	errs := map[string]string{}
	if strings.TrimSpace(input.Language) == "" {
		errs["language"] = "is required"
	}
	if strings.TrimSpace(input.Prompt) == "" {
		errs["prompt"] = "is required"
	}
	if len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}
	if input.Complexity == "" {
		input.Complexity = "beginner"
	}

	snippet, err := gc.AI.GenerateSnippet(c.UserContext(), input.Language, input.Prompt, input.Complexity)
	if err != nil {
		logAIFallback(c, gc.Log, fallback.FeatureSnippet, err)
		fb := fallback.Snippet(input.Language, input.Prompt, input.Complexity)
		return c.JSON(fiber.Map{"snippet": fb, "source": SourceFallback})
	}

	return c.JSON(fiber.Map{"snippet": snippet, "source": SourceAI})
}

// EvaluateProject scores a project description. Without a working AI provider
// it answers with the disabled-feature evaluation.
func (gc *GeneratorController) EvaluateProject(c *fiber.Ctx) error {
	var input struct {
		ProjectDescription string `json:"project_description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if strings.TrimSpace(input.ProjectDescription) == "" {
		return utils.ValidationError(c, map[string]string{"project_description": "is required"})
	}

	eval, err := gc.AI.EvaluateProject(c.UserContext(), input.ProjectDescription)
	if err != nil {
		logAIFallback(c, gc.Log, fallback.FeatureEvaluation, err)
		return c.JSON(fiber.Map{
			"message":    fallback.EvaluationDisabledMessage,
			"evaluation": fallback.Evaluation(),
			"source":     SourceFallback,
		})
	}

	return c.JSON(fiber.Map{"evaluation": eval, "source": SourceAI})
}
