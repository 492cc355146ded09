package fallback

import (
	"strings"

	"projectassistant/backend/models"
)

// Checklist tracks how far a student's project work has progressed.
type Checklist struct {
	IdeaDefined          bool `json:"idea_defined"`
	ProfileComplete      bool `json:"profile_complete"`
	DocumentationStarted bool `json:"documentation_started"`
	CodeStructured       bool `json:"code_structured"`
	TestingDone          bool `json:"testing_done"`
	DeploymentReady      bool `json:"deployment_ready"`
}

func BuildChecklist(hasProfile bool, projects []models.ProjectHistoryEntry) Checklist {
	c := Checklist{
		IdeaDefined:     len(projects) > 0,
		ProfileComplete: hasProfile,
		CodeStructured:  len(projects) > 1,
	}
	for _, p := range projects {
		if strings.TrimSpace(p.Notes) != "" {
			c.DocumentationStarted = true
		}
		switch strings.ToLower(p.Status) {
		case "testing":
			c.TestingDone = true
		case "completed":
			c.TestingDone = true
			c.DeploymentReady = true
		}
	}
	return c
}

func (c Checklist) items() []bool {
	return []bool{
		c.IdeaDefined,
		c.ProfileComplete,
		c.DocumentationStarted,
		c.CodeStructured,
		c.TestingDone,
		c.DeploymentReady,
	}
}

// Score is the completed share as an integer percentage, rounded down.
func (c Checklist) Score() int {
	items := c.items()
	done := 0
	for _, ok := range items {
		if ok {
			done++
		}
	}
	return done * 100 / len(items)
}
