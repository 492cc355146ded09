package routes

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"projectassistant/backend/ai"
	"projectassistant/backend/config"
	"projectassistant/backend/controllers"
	"projectassistant/backend/middleware"
	"projectassistant/backend/store"
)

func SetupRoutes(app *fiber.App, s *store.Store, assistant ai.Assistant, cfg *config.Config, log *zap.Logger) {
	authMiddleware := middleware.AuthMiddleware(cfg)

	// Health routes
	healthController := controllers.NewHealthController(s, assistant, log)
	app.Get("/", healthController.Root)
	app.Get("/health", healthController.Health)

	// Auth routes
	authController := controllers.NewAuthController(s, cfg, log)
	app.Post("/register", authController.Register)
	app.Post("/login", authController.Login)
	app.Get("/me", authMiddleware, authController.Me)

	// Profile routes
	profileController := controllers.NewProfileController(s, log)
	app.Post("/save-profile", profileController.SaveProfile)
	app.Get("/get-profile/:user_id", profileController.GetProfile)

	// Generator routes
	generatorController := controllers.NewGeneratorController(assistant, log)
	app.Post("/get-project-ideas", generatorController.ProjectIdeas)
	app.Post("/generate-documentation", generatorController.GenerateDocumentation)
	app.Post("/generate-code-snippet", generatorController.GenerateCodeSnippet)
	app.Post("/evaluate-project", generatorController.EvaluateProject)

	// Exercise routes
	exerciseController := controllers.NewExerciseController(s, assistant, log)
	app.Post("/get-skill-exercises", exerciseController.SkillExercises)
	app.Get("/skill-exercises/:user_id", exerciseController.AssignedExercises)
	app.Post("/complete-exercise/:user_id/:exercise_type", exerciseController.CompleteExercise)

	// Version control routes
	vcController := controllers.NewVersionControlController(s, assistant, log)
	app.Post("/get-version-control-help", vcController.Help)
	app.Get("/version-control-history/:user_id", vcController.History)

	// Portfolio routes
	portfolioController := controllers.NewPortfolioController(s, assistant, log)
	app.Post("/generate-portfolio", portfolioController.GeneratePortfolio)
	app.Get("/portfolio/:user_id", portfolioController.GetPortfolio)
	app.Get("/portfolio-templates", portfolioController.Templates)

	// Project routes
	projectController := controllers.NewProjectController(s, log)
	app.Post("/add-project-history", projectController.AddProjectHistory)
	app.Get("/project-history/:user_id", projectController.ProjectHistory)
	app.Get("/project-checklist/:user_id", projectController.Checklist)
}
