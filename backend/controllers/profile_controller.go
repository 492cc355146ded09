package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/models"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

type ProfileController struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewProfileController(s *store.Store, log *zap.Logger) *ProfileController {
	return &ProfileController{Store: s, Log: log}
}

type profileInput struct {
	UserID          uint   `json:"user_id"`
	CollegeName     string `json:"college_name"`
	Branch          string `json:"branch"`
	Semester        string `json:"semester"`
	SkillLevel      string `json:"skill_level"`
	CurrentProjects string `json:"current_projects"`
}

// SaveProfile godoc
// @Summary Create or update the student profile
// @Description Also assigns the exercise set for the profile's skill level
// @Tags profile
// @Accept json
// @Produce json
// @Param request body profileInput true "Profile"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /save-profile [post]
func (pc *ProfileController) SaveProfile(c *fiber.Ctx) error {
	var input profileInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	errs := map[string]string{}
	if input.UserID == 0 {
		errs["user_id"] = "is required"
	}
	if _, ok := models.ParseSkillLevel(input.SkillLevel); !ok {
		errs["skill_level"] = "must be beginner, intermediate or advanced"
	}
	if len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	err := pc.Store.UpsertProfile(c.UserContext(), input.UserID, store.ProfileInput{
		CollegeName:     input.CollegeName,
		Branch:          input.Branch,
		Semester:        input.Semester,
		SkillLevel:      input.SkillLevel,
		CurrentProjects: input.CurrentProjects,
	})
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	if err != nil {
		return storeError(c, pc.Log, "upsert_profile", err)
	}

	return c.JSON(fiber.Map{"message": "Profile saved successfully"})
}

func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}

	profile, err := pc.Store.GetProfile(c.UserContext(), userID)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Profile not found")
	}
	if err != nil {
		return storeError(c, pc.Log, "get_profile", err)
	}

	return c.JSON(fiber.Map{
		"user_id":          profile.UserID,
		"college_name":     profile.CollegeName,
		"branch":           profile.Branch,
		"semester":         profile.Semester,
		"skill_level":      profile.SkillLevel,
		"current_projects": profile.CurrentProjects,
		"updated_at":       profile.UpdatedAt,
	})
}
