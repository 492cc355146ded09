// Package fallback holds the canned content served whenever the AI provider is
// unavailable or returns something unusable.
package fallback

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"projectassistant/backend/models"
)

const Version = "3.5"

const (
	FeatureIdeas          = "project_ideas"
	FeatureDocumentation  = "documentation"
	FeatureSnippet        = "code_snippet"
	FeatureExercises      = "skill_exercises"
	FeatureVersionControl = "version_control"
	FeaturePortfolio      = "portfolio"
	FeatureEvaluation     = "project_evaluation"
)

// Features lists every generative feature that has canned content here.
var Features = []string{
	FeatureIdeas,
	FeatureDocumentation,
	FeatureSnippet,
	FeatureExercises,
	FeatureVersionControl,
	FeaturePortfolio,
	FeatureEvaluation,
}

var ideasByDomain = map[string][]models.ProjectIdea{
	"web": {
		{Name: "Task Management App", Description: "A web app to manage daily tasks", Difficulty: "Beginner"},
		{Name: "E-commerce Website", Description: "Online store with product catalog", Difficulty: "Intermediate"},
	},
	"mobile": {
		{Name: "Expense Tracker App", Description: "Track daily expenses and budgets", Difficulty: "Beginner"},
	},
	"ai": {
		{Name: "Sentiment Analysis Tool", Description: "Analyze text sentiment from reviews", Difficulty: "Advanced"},
	},
	"data-science": {
		{Name: "Data Visualization Dashboard", Description: "Visualize data with charts and graphs", Difficulty: "Intermediate"},
	},
}

// Ideas returns at most count canned ideas for the domain. Unknown domains get
// a single generic idea.
func Ideas(domain, skillLevel string, count int) []models.ProjectIdea {
	key := strings.ToLower(strings.TrimSpace(domain))
	list, ok := ideasByDomain[key]
	if !ok {
		list = []models.ProjectIdea{{
			Name:        TitleCase(domain) + " Project",
			Description: fmt.Sprintf("A project in %s domain", domain),
			Difficulty:  skillLevel,
		}}
	}
	if count < len(list) {
		list = list[:max(count, 0)]
	}
	out := make([]models.ProjectIdea, len(list))
	copy(out, list)
	return out
}

const documentationTemplate = `# PROJECT DOCUMENTATION

## Project Overview
%[1]s

## Development Roadmap

### Phase 1: Planning & Design (Week 1-2)
1. Define requirements and specifications
2. Create wireframes and user flow diagrams
3. Design database schema
4. Set up development environment

### Phase 2: Backend Development (Week 3-5)
1. Set up server and API framework
2. Implement database models and migrations
3. Create REST API endpoints
4. Implement authentication and authorization

### Phase 3: Frontend Development (Week 6-8)
1. Create responsive UI components
2. Implement state management
3. Connect frontend to backend APIs
4. Add user interaction and validation

### Phase 4: Testing & Deployment (Week 9-10)
1. Write unit and integration tests
2. Perform user acceptance testing
3. Deploy to production environment
4. Monitor and optimize performance

## Technology Stack
- Frontend: HTML5, CSS3, JavaScript (ES6+)
- Backend: REST API service
- Database: SQLite/PostgreSQL
- Version Control: Git & GitHub
- Deployment: Docker, Cloud Platform (optional)

## Getting Started
1. Clone the repository
2. Install dependencies
3. Configure environment variables
4. Run database migrations
5. Start development server

## Features Checklist
- [ ] User authentication system
- [ ] CRUD operations
- [ ] Responsive design
- [ ] Error handling
- [ ] Data validation
- [ ] API documentation
- [ ] Testing suite
- [ ] Deployment configuration

## Future Enhancements
1. Add advanced features based on user feedback
2. Implement analytics and monitoring
3. Optimize performance and scalability
4. Add mobile application version

## Notes
%[1]s

---
Generated by Smart Project Assistant v%[2]s
Date: %[3]s
`

func Documentation(projectDetails string, now time.Time) string {
	return fmt.Sprintf(documentationTemplate, projectDetails, Version, now.Format("2006-01-02 15:04:05"))
}

// Snippet returns a skeleton program for the language. Languages without a
// skeleton get the JavaScript one.
func Snippet(language, prompt, complexity string) models.CodeSnippet {
	var s models.CodeSnippet
	switch strings.ToLower(strings.TrimSpace(language)) {
	case "python":
		s = models.CodeSnippet{
			Code:         fmt.Sprintf("# %s - Python\ndef main():\n    print('Implementation for: %s')\n    # Add your code here\n\nif __name__ == '__main__':\n    main()", prompt, prompt),
			Explanation:  "Python function structure for implementing " + prompt,
			UsageExample: "# Call the function\nmain()",
		}
	case "html":
		s = models.CodeSnippet{
			Code:         fmt.Sprintf("<!-- %s - HTML -->\n<!DOCTYPE html>\n<html>\n<head>\n    <title>Implementation</title>\n    <style>\n        /* CSS for %s */\n    </style>\n</head>\n<body>\n    <!-- Implementation here -->\n</body>\n</html>", prompt, prompt),
			Explanation:  "HTML/CSS structure for implementing " + prompt,
			UsageExample: "<!-- Save as index.html and open in browser -->",
		}
	default:
		s = models.CodeSnippet{
			Code:         fmt.Sprintf("// %s - JavaScript\nfunction main() {\n    console.log('Implementation for: %s');\n    // Add your code here\n}\n\n// Usage\nmain();", prompt, prompt),
			Explanation:  "Basic JavaScript structure for implementing " + prompt,
			UsageExample: "// Call the function\nmain();",
		}
	}
	s.Title = SnippetTitle(language, prompt)
	return s
}

func SnippetTitle(language, prompt string) string {
	return fmt.Sprintf("%s Code for: %s", TitleCase(language), prompt)
}

var beginnerExercises = []models.Exercise{
	{
		ExerciseType:    "html_css_basics",
		Title:           "HTML/CSS Fundamentals",
		Description:     "Build a responsive webpage with HTML5 and CSS3",
		LearningOutcome: "Master webpage structure and styling",
		Difficulty:      "beginner",
		EstimatedTime:   "2-3 hours",
		VideoURL:        "https://www.youtube.com/results?search_query=html+css+tutorial+beginners",
		Prerequisites:   "Basic computer knowledge",
		SuccessCriteria: "Create a functional webpage that works on all devices",
	},
	{
		ExerciseType:    "javascript_basics",
		Title:           "JavaScript Basics",
		Description:     "Learn variables, functions, and DOM manipulation",
		LearningOutcome: "Understand JavaScript fundamentals",
		Difficulty:      "beginner",
		EstimatedTime:   "3-4 hours",
		VideoURL:        "https://www.youtube.com/results?search_query=javascript+tutorial+beginners",
		Prerequisites:   "Basic HTML/CSS",
		SuccessCriteria: "Create an interactive web page",
	},
	{
		ExerciseType:    "python_fundamentals",
		Title:           "Python Programming",
		Description:     "Learn Python syntax and basic programming concepts",
		LearningOutcome: "Write basic Python programs",
		Difficulty:      "beginner",
		EstimatedTime:   "4-5 hours",
		VideoURL:        "https://www.youtube.com/results?search_query=python+tutorial+beginners",
		Prerequisites:   "None",
		SuccessCriteria: "Write a simple Python application",
	},
}

var intermediateExercises = []models.Exercise{
	{
		ExerciseType:    "api_development",
		Title:           "API Development",
		Description:     "Build REST APIs with Python and FastAPI",
		LearningOutcome: "Create and consume RESTful APIs",
		Difficulty:      "intermediate",
		EstimatedTime:   "4-6 hours",
		VideoURL:        "https://www.youtube.com/results?search_query=fastapi+tutorial",
		Prerequisites:   "Python basics",
		SuccessCriteria: "Build a functional API with endpoints",
	},
	{
		ExerciseType:    "database_design",
		Title:           "Database Design",
		Description:     "Design and implement database schemas",
		LearningOutcome: "Master database modeling and queries",
		Difficulty:      "intermediate",
		EstimatedTime:   "3-5 hours",
		VideoURL:        "https://www.youtube.com/results?search_query=sql+database+design",
		Prerequisites:   "Basic programming knowledge",
		SuccessCriteria: "Design and implement a database schema",
	},
}

// Exercises returns the default exercise list. Only intermediate has its own
// list; every other level gets the beginner set.
func Exercises(skillLevel string) []models.Exercise {
	src := beginnerExercises
	if strings.EqualFold(strings.TrimSpace(skillLevel), string(models.SkillIntermediate)) {
		src = intermediateExercises
	}
	out := make([]models.Exercise, len(src))
	copy(out, src)
	return out
}

const gitCheatsheet = `# Git Commands Cheatsheet

## Basic Commands
git init                    # Initialize repository
git clone <url>             # Clone repository
git status                  # Check status
git add <file>              # Stage file
git commit -m "message"     # Commit changes
git push                    # Push to remote
git pull                    # Pull from remote

## Branch Management
git branch                  # List branches
git branch <name>           # Create branch
git checkout <branch>       # Switch branch
git merge <branch>          # Merge branch

## Viewing History
git log                     # View commit history
git log --oneline           # Compact history
git diff                    # View changes
git show <commit>           # Show commit

## Undoing Changes
git reset <file>            # Unstage file
git checkout -- <file>      # Discard changes
git revert <commit>         # Revert commit

## Remote Repositories
git remote -v               # View remotes
git remote add <name> <url> # Add remote
git push -u origin main     # Push and set upstream`

const dockerCheatsheet = `# Docker Commands

## Container Management
docker run <image>          # Run container
docker ps                   # List containers
docker stop <container>     # Stop container
docker start <container>    # Start container
docker rm <container>       # Remove container

## Image Management
docker build -t <name> .    # Build image
docker images               # List images
docker rmi <image>          # Remove image
docker pull <image>         # Pull image

## Docker Compose
docker-compose up           # Start services
docker-compose down         # Stop services
docker-compose build        # Build services

## Useful Commands
docker logs <container>     # View logs
docker exec -it <container> bash  # Enter container
docker system prune         # Clean up system`

const genericCheatsheet = `# Version Control Commands

## Git Basics
1. Initialize: git init
2. Add files: git add .
3. Commit: git commit -m "message"
4. Push: git push origin main
5. Pull: git pull origin main

## Common Workflows
# Create feature branch
git checkout -b feature-name
git add .
git commit -m "Add feature"
git push origin feature-name

# Merge changes
git checkout main
git pull origin main
git merge feature-name
git push origin main

## Troubleshooting
# Discard local changes
git checkout -- .

# View remote URL
git remote -v

# View commit history
git log --oneline --graph`

// VersionControl picks a cheatsheet by the tool the request mentions.
func VersionControl(request string) string {
	lower := strings.ToLower(request)
	switch {
	case strings.Contains(lower, "git"):
		return gitCheatsheet
	case strings.Contains(lower, "docker"):
		return dockerCheatsheet
	default:
		return genericCheatsheet
	}
}

const EvaluationDisabledMessage = "Project evaluation feature is temporarily disabled"

func Evaluation() map[string]interface{} {
	return map[string]interface{}{
		"score":                     0,
		"strengths":                 []string{"Feature disabled"},
		"weaknesses":                []string{"Evaluation not available"},
		"missing_elements":          []string{"N/A"},
		"improvement_suggestions":   []string{"Please check back later"},
		"technical_recommendations": []string{"Feature coming soon"},
		"overall_feedback":          "Project evaluation is currently unavailable.",
		"estimated_timeline":        "N/A",
	}
}

// TitleCase upper-cases the first letter of every word, where any non-letter
// starts a new word.
func TitleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range strings.TrimSpace(s) {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}
