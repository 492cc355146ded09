package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"projectassistant/backend/models"
)

// Assistant is the generative surface used by the HTTP layer. Every method
// either returns a usable payload or an *Error.
type Assistant interface {
	GenerateIdeas(ctx context.Context, domain, skillLevel string, count int) ([]models.ProjectIdea, error)
	GenerateDocs(ctx context.Context, projectDetails string) (string, error)
	GenerateSnippet(ctx context.Context, language, prompt, complexity string) (*models.CodeSnippet, error)
	GenerateExercises(ctx context.Context, skillLevel, field string) ([]models.Exercise, error)
	GenerateVCHelp(ctx context.Context, request string) (string, error)
	GeneratePortfolio(ctx context.Context, in models.PortfolioInput) (string, error)
	EvaluateProject(ctx context.Context, description string) (map[string]interface{}, error)
	Configured() bool
	Ping(ctx context.Context) error
}

var _ Assistant = (*Client)(nil)

func (c *Client) GenerateIdeas(ctx context.Context, domain, skillLevel string, count int) ([]models.ProjectIdea, error) {
	var raw json.RawMessage
	if err := c.CompleteJSON(ctx, fmt.Sprintf(ideasPrompt, count, domain, skillLevel), &raw); err != nil {
		return nil, err
	}
	ideas, err := decodeIdeas(raw)
	if err != nil {
		return nil, err
	}
	if count > 0 && len(ideas) > count {
		ideas = ideas[:count]
	}
	return ideas, nil
}

func (c *Client) GenerateDocs(ctx context.Context, projectDetails string) (string, error) {
	text, err := c.Complete(ctx, fmt.Sprintf(docsPrompt, projectDetails))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", newError(ReasonMalformed, "empty documentation")
	}
	return text, nil
}

func (c *Client) GenerateSnippet(ctx context.Context, language, prompt, complexity string) (*models.CodeSnippet, error) {
	instruction, ok := languageInstructions[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		instruction = "Include proper syntax and comments."
	}
	var raw json.RawMessage
	err := c.CompleteJSON(ctx, fmt.Sprintf(snippetPrompt, complexity, language, prompt, instruction), &raw)
	if err != nil {
		return nil, err
	}
	snippet := NormalizeSnippet(raw, language, prompt)
	return &snippet, nil
}

func (c *Client) GenerateExercises(ctx context.Context, skillLevel, field string) ([]models.Exercise, error) {
	var raw json.RawMessage
	if err := c.CompleteJSON(ctx, fmt.Sprintf(exercisesPrompt, skillLevel, field), &raw); err != nil {
		return nil, err
	}
	exercises, err := decodeExercises(raw)
	if err != nil {
		return nil, err
	}
	AddVideoLinks(exercises)
	return exercises, nil
}

// GenerateVCHelp returns only the command lines of the reply. Requests asking
// for program code are rejected before any call goes out.
func (c *Client) GenerateVCHelp(ctx context.Context, request string) (string, error) {
	if err := CheckVCRequest(request); err != nil {
		return "", err
	}
	text, err := c.Complete(ctx, fmt.Sprintf(vcPrompt, request))
	if err != nil {
		return "", err
	}
	commands := ExtractCommands(text)
	if commands == "" {
		return "", newError(ReasonMalformed, "reply has no command lines")
	}
	return commands, nil
}

func (c *Client) GeneratePortfolio(ctx context.Context, in models.PortfolioInput) (string, error) {
	projects := "No projects provided"
	if len(in.Projects) > 0 {
		b, _ := json.MarshalIndent(in.Projects, "", "  ")
		projects = string(b)
	}
	skills := "HTML, CSS, JavaScript, Python"
	if len(in.Skills) > 0 {
		skills = strings.Join(in.Skills, ", ")
	}
	prompt := fmt.Sprintf(portfolioPrompt,
		orDefault(in.Name, "Student"),
		orDefault(in.Education.College, "University"),
		orDefault(in.Education.Branch, "Computer Science"),
		orDefault(in.Education.Semester, "Current"),
		skills, projects,
		orDefault(in.Contact.Email, "Not provided"),
		orDefault(in.Contact.Github, "Not provided"),
		orDefault(in.Contact.Linkedin, "Not provided"),
		orDefault(in.Contact.Bio, "Passionate student developer"),
	)

	text, err := c.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	page, ok := ExtractHTMLDocument(text)
	if !ok {
		return "", newError(ReasonMalformed, "reply is not an HTML document")
	}
	return page, nil
}

func (c *Client) EvaluateProject(ctx context.Context, description string) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := c.CompleteJSON(ctx, fmt.Sprintf(evaluationPrompt, description), &out); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, newError(ReasonMalformed, "empty evaluation")
	}
	return out, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
