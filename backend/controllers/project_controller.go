package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/fallback"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

type ProjectController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewProjectController(s *store.Store, log *zap.Logger) *ProjectController {
	return &ProjectController{Store: s, Log: log}
}

type projectInput struct {
	UserID      uint   `json:"user_id"`
	ProjectName string `json:"project_name"`
	ProjectType string `json:"project_type"`
	Domain      string `json:"domain"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// AddProjectHistory godoc
// @Summary Record a project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body projectInput true "Project"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /add-project-history [post]
func (pc *ProjectController) AddProjectHistory(c *fiber.Ctx) error {
	var input projectInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	errs := map[string]string{}
	if input.UserID == 0 {
		errs["user_id"] = "is required"
	}
	if strings.TrimSpace(input.ProjectName) == "" {
		errs["project_name"] = "is required"
	}
	if len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	projectID, err := pc.Store.AddProject(c.UserContext(), input.UserID, store.ProjectInput{
		ProjectName: input.ProjectName,
		ProjectType: input.ProjectType,
		Domain:      input.Domain,
		Status:      input.Status,
		Notes:       input.Notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	if err != nil {
		return storeError(c, pc.Log, "add_project", err)
	}

	return c.JSON(fiber.Map{"message": "Project added successfully", "project_id": projectID})
}

func (pc *ProjectController) ProjectHistory(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}

	projects, err := pc.Store.GetProjectHistory(c.UserContext(), userID)
	if err != nil {
		return storeError(c, pc.Log, "get_project_history", err)
	}
	return c.JSON(fiber.Map{"projects": projects})
}

// Checklist scores progress from the profile and project history.
func (pc *ProjectController) Checklist(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}
	ctx := c.UserContext()

	_, err = pc.Store.GetProfile(ctx, userID)
	hasProfile := err == nil
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return storeError(c, pc.Log, "get_profile", err)
	}

	projects, err := pc.Store.GetProjectHistory(ctx, userID)
	if err != nil {
		return storeError(c, pc.Log, "get_project_history", err)
	}

	checklist := fallback.BuildChecklist(hasProfile, projects)
	return c.JSON(fiber.Map{"checklist": checklist, "score": checklist.Score()})
}
