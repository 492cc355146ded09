package fallback

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectassistant/backend/models"
)

func TestFeaturesCovered(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"project_ideas", "documentation", "code_snippet", "skill_exercises",
		"version_control", "portfolio", "project_evaluation",
	}, Features)
}

func TestIdeas(t *testing.T) {
	ideas := Ideas("web", "beginner", 5)
	require.Len(t, ideas, 2)
	assert.Equal(t, "Task Management App", ideas[0].Name)

	assert.Len(t, Ideas("web", "beginner", 1), 1)
	assert.Empty(t, Ideas("web", "beginner", 0))

	ideas = Ideas("blockchain", "advanced", 3)
	require.Len(t, ideas, 1)
	assert.Equal(t, "Blockchain Project", ideas[0].Name)
	assert.Equal(t, "advanced", ideas[0].Difficulty)

	// callers may mutate the result without touching the table
	ideas = Ideas("mobile", "beginner", 1)
	ideas[0].Name = "changed"
	assert.Equal(t, "Expense Tracker App", Ideas("mobile", "beginner", 1)[0].Name)
}

func TestDocumentation(t *testing.T) {
	now := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	doc := Documentation("A library system", now)

	assert.True(t, strings.HasPrefix(doc, "# PROJECT DOCUMENTATION"))
	assert.Equal(t, 2, strings.Count(doc, "A library system"))
	assert.Contains(t, doc, "Generated by Smart Project Assistant v3.5")
	assert.Contains(t, doc, "Date: 2024-02-03 04:05:06")
}

func TestSnippet(t *testing.T) {
	py := Snippet("python", "sort a list", "beginner")
	assert.Equal(t, "Python Code for: sort a list", py.Title)
	assert.Contains(t, py.Code, "def main():")

	rust := Snippet("rust", "parse args", "beginner")
	assert.Equal(t, "Rust Code for: parse args", rust.Title)
	assert.Contains(t, rust.Code, "function main()")
	assert.NotEmpty(t, rust.UsageExample)
}

func TestExercises(t *testing.T) {
	assert.Equal(t, "html_css_basics", Exercises("beginner")[0].ExerciseType)
	assert.Len(t, Exercises("intermediate"), 2)
	assert.Equal(t, "api_development", Exercises("INTERMEDIATE")[0].ExerciseType)
	assert.Len(t, Exercises("advanced"), 3)
}

func TestVersionControl(t *testing.T) {
	assert.Contains(t, VersionControl("how do I use git rebase"), "Git Commands Cheatsheet")
	assert.Contains(t, VersionControl("Docker cleanup"), "Docker Commands")
	assert.Contains(t, VersionControl("undo my last change"), "Version Control Commands")
}

func TestEvaluation(t *testing.T) {
	eval := Evaluation()
	assert.Equal(t, 0, eval["score"])
	assert.Contains(t, eval, "overall_feedback")
}

func TestPortfolioEmptyInput(t *testing.T) {
	page := Portfolio(models.PortfolioInput{}, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.True(t, strings.HasPrefix(page, "<!DOCTYPE html>"))
	assert.True(t, strings.HasSuffix(page, "</html>"))
	assert.Contains(t, page, "<title>Student - Portfolio</title>")
	assert.Contains(t, page, `<span class="skill-tag">JavaScript</span>`)
	assert.Contains(t, page, "Smart Project Assistant</h3>")
	assert.Contains(t, page, "&copy; 2025")
}

func TestPortfolioEscapesAndLimitsProjects(t *testing.T) {
	in := models.PortfolioInput{
		Name:   "<script>alert(1)</script>",
		Skills: []string{"Go"},
	}
	for i := 0; i < 7; i++ {
		in.Projects = append(in.Projects, models.PortfolioProject{Description: "demo"})
	}
	page := Portfolio(in, time.Now())

	assert.NotContains(t, page, "<script>")
	assert.Contains(t, page, "&lt;script&gt;")
	assert.Equal(t, maxPortfolioProjects, strings.Count(page, `<div class="project-card">`))
	assert.Contains(t, page, "Project 5")
	assert.NotContains(t, page, "Project 6")
}

func TestRenderTemplate(t *testing.T) {
	body := "<h1>[[name]]</h1><p>[[education.college]] [[education.year]]</p><div>[[skills]]</div>[[projects]]<p>[[contact.email]]</p>"
	page := RenderTemplate(body, ".x{}", models.PortfolioInput{
		Name:      "Ada",
		Education: models.Education{College: "MIT"},
	})

	assert.Contains(t, page, "<h1>Ada</h1>")
	assert.Contains(t, page, "<p>MIT 2024</p>")
	assert.Contains(t, page, "Not provided")
	assert.Contains(t, page, ".x{}")
	assert.NotContains(t, page, "[[")
}

func TestChecklist(t *testing.T) {
	empty := BuildChecklist(false, nil)
	assert.Equal(t, 0, empty.Score())

	projects := []models.ProjectHistoryEntry{
		{ProjectName: "a", Status: "testing", Notes: "draft"},
		{ProjectName: "b", Status: "planned"},
	}
	c := BuildChecklist(true, projects)
	assert.True(t, c.IdeaDefined)
	assert.True(t, c.DocumentationStarted)
	assert.True(t, c.CodeStructured)
	assert.True(t, c.TestingDone)
	assert.False(t, c.DeploymentReady)
	assert.Equal(t, 83, c.Score())

	projects[1].Status = "completed"
	assert.Equal(t, 100, BuildChecklist(true, projects).Score())
}
