package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/config"
	"projectassistant/backend/middleware"
	"projectassistant/backend/store"
	"projectassistant/backend/utils"
)

type AuthController struct {
	Store *store.Store
	Cfg   *config.Config
	Log   *zap.Logger
}

func NewAuthController(s *store.Store, cfg *config.Config, log *zap.Logger) *AuthController {
	return &AuthController{Store: s, Cfg: cfg, Log: log}
}

type registerInput struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

type loginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func credentialErrors(username, password string) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(username) == "" {
		errs["username"] = "is required"
	}
	if password == "" {
		errs["password"] = "is required"
	}
	return errs
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerInput true "Registration data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input registerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := credentialErrors(input.Username, input.Password); len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	userID, err := ac.Store.CreateUser(c.UserContext(), input.Username, input.Password, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return utils.BadRequest(c, "Username already exists")
		}
		return storeError(c, ac.Log, "create_user", err)
	}

	token, err := utils.GenerateJWTToken(userID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"message": "Registration successful",
		"user_id": userID,
		"token":   token,
	})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginInput true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input loginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := credentialErrors(input.Username, input.Password); len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	userID, err := ac.Store.Authenticate(c.UserContext(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return storeError(c, ac.Log, "authenticate", err)
	}

	token, err := utils.GenerateJWTToken(userID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user_id": userID,
		"token":   token,
	})
}

// Me returns the account behind the bearer token.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user, err := ac.Store.GetUser(c.UserContext(), userID)
	if err != nil {
		return storeError(c, ac.Log, "get_user", err)
	}

	return c.JSON(fiber.Map{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	})
}
