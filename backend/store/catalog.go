package store

import "projectassistant/backend/models"

type catalogEntry struct {
	Type          string
	Description   string
	VideoURL      string
	Difficulty    string
	EstimatedTime string
}

// exerciseCatalog is the fixed set assigned on every profile save, by level.
var exerciseCatalog = map[models.SkillLevel][]catalogEntry{
	models.SkillBeginner: {
		{"form_validation", "Add form validation to login page", "https://youtube.com/form-validation", "Easy", "2 hours"},
		{"error_handling", "Implement proper error messages", "https://youtube.com/error-handling", "Easy", "1 hour"},
		{"responsive_design", "Make the UI responsive for mobile", "https://youtube.com/responsive-design", "Medium", "3 hours"},
	},
	models.SkillIntermediate: {
		{"jwt_auth", "Implement JWT authentication", "https://youtube.com/jwt-auth", "Medium", "4 hours"},
		{"api_integration", "Integrate with external API", "https://youtube.com/api-integration", "Medium", "3 hours"},
		{"database_optimization", "Optimize database queries", "https://youtube.com/database-optimization", "Hard", "5 hours"},
	},
	models.SkillAdvanced: {
		{"websockets", "Add real-time features with WebSockets", "https://youtube.com/websockets", "Hard", "6 hours"},
		{"caching", "Implement Redis caching", "https://youtube.com/redis-caching", "Hard", "4 hours"},
		{"testing", "Write unit tests for all endpoints", "https://youtube.com/unit-testing", "Medium", "3 hours"},
	},
}

func catalogFor(level models.SkillLevel) []catalogEntry {
	if entries, ok := exerciseCatalog[level]; ok {
		return entries
	}
	return exerciseCatalog[models.SkillBeginner]
}
