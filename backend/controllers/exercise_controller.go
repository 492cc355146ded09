package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/fallback"
	"projectassistant/backend/models"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

const defaultField = "general"

type ExerciseController struct {
	Store *store.Store
	AI    ai.Assistant
	Log   *zap.Logger
}

func NewExerciseController(s *store.Store, assistant ai.Assistant, log *zap.Logger) *ExerciseController {
	return &ExerciseController{Store: s, AI: assistant, Log: log}
}

type skillExercisesInput struct {
	UserID     uint   `json:"user_id"`
	Interests  string `json:"interests"`
	SkillLevel string `json:"skill_level"`
}

// SkillExercises godoc
// @Summary Personalized skill exercises
// @Description Served from the per-user cache when fresh, otherwise generated and cached
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body skillExercisesInput true "User, interests and level"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /get-skill-exercises [post]
func (ec *ExerciseController) SkillExercises(c *fiber.Ctx) error {
	var input skillExercisesInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.UserID == 0 {
		return utils.ValidationError(c, map[string]string{"user_id": "is required"})
	}
	ctx := c.UserContext()
	if _, err := ec.Store.GetUser(ctx, input.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return storeError(c, ec.Log, "get_user", err)
	}

	level, field, err := ec.resolveLevelAndField(c, input)
	if errors.Is(err, errInvalidSkillLevel) {
		return utils.ValidationError(c, map[string]string{"skill_level": "must be beginner, intermediate or advanced"})
	}
	if err != nil {
		return storeError(c, ec.Log, "get_profile", err)
	}

	var cached []models.Exercise
	hit, err := ec.Store.GetExerciseCache(ctx, input.UserID, string(level), field, &cached)
	if err != nil {
		// a broken cache only costs a regeneration
		ec.Log.Warn("exercise cache read failed", zap.Uint("user_id", input.UserID), zap.Error(err))
	}
	if hit {
		return c.JSON(fiber.Map{"exercises": cached, "source": SourceCache})
	}

	exercises, err := ec.AI.GenerateExercises(ctx, string(level), field)
	if err != nil {
		logAIFallback(c, ec.Log, fallback.FeatureExercises, err)
		return c.JSON(fiber.Map{"exercises": fallback.Exercises(string(level)), "source": SourceFallback})
	}

	if err := ec.Store.SetExerciseCache(ctx, input.UserID, string(level), field, exercises); err != nil {
		ec.Log.Warn("exercise cache write failed", zap.Uint("user_id", input.UserID), zap.Error(err))
	}
	return c.JSON(fiber.Map{"exercises": exercises, "source": SourceAI})
}

var errInvalidSkillLevel = errors.New("invalid skill level")

// resolveLevelAndField prefers the request, then the stored profile.
func (ec *ExerciseController) resolveLevelAndField(c *fiber.Ctx, input skillExercisesInput) (models.SkillLevel, string, error) {
	field := strings.TrimSpace(input.Interests)
	level := models.SkillBeginner
	if input.SkillLevel != "" {
		parsed, ok := models.ParseSkillLevel(input.SkillLevel)
		if !ok {
			return "", "", errInvalidSkillLevel
		}
		level = parsed
	}
	if input.SkillLevel != "" && field != "" {
		return level, field, nil
	}

	profile, err := ec.Store.GetProfile(c.UserContext(), input.UserID)
	switch {
	case err == nil:
		if input.SkillLevel == "" && profile.SkillLevel != "" {
			level = profile.SkillLevel
		}
		if field == "" {
			field = strings.TrimSpace(profile.Branch)
		}
	case !errors.Is(err, store.ErrNotFound):
		return "", "", err
	}

	if field == "" {
		field = defaultField
	}
	return level, field, nil
}

// AssignedExercises lists the catalog exercises assigned to a user.
func (ec *ExerciseController) AssignedExercises(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}

	exercises, err := ec.Store.GetSkillExercises(c.UserContext(), userID)
	if err != nil {
		return storeError(c, ec.Log, "get_skill_exercises", err)
	}
	return c.JSON(fiber.Map{"exercises": exercises})
}

func (ec *ExerciseController) CompleteExercise(c *fiber.Ctx) error {
	userID, err := userIDParam(c)
	if err != nil {
		return invalidUserID(c)
	}
	exerciseType := strings.TrimSpace(c.Params("exercise_type"))

	err = ec.Store.MarkExerciseComplete(c.UserContext(), userID, exerciseType)
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "Exercise not assigned")
	}
	if err != nil {
		return storeError(c, ec.Log, "complete_exercise", err)
	}
	return c.JSON(fiber.Map{"message": "Exercise marked as complete"})
}
