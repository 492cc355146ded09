package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"projectassistant/backend/fallback"
	"projectassistant/backend/models"
)

// decodeIdeas accepts {"ideas": [...]}, a bare list, or a single idea object.
// List items may be objects or plain titles.
func decodeIdeas(raw json.RawMessage) ([]models.ProjectIdea, error) {
	items, err := listField(raw, "ideas", "projects", "project_ideas")
	if err != nil {
		return nil, err
	}

	ideas := make([]models.ProjectIdea, 0, len(items))
	for _, item := range items {
		var idea models.ProjectIdea
		if err := json.Unmarshal(item, &idea); err == nil {
			if idea.Name == "" {
				idea.Name = ideaNameAlias(item)
			}
			if idea.Name != "" {
				ideas = append(ideas, idea)
				continue
			}
		}
		var title string
		if err := json.Unmarshal(item, &title); err == nil && strings.TrimSpace(title) != "" {
			ideas = append(ideas, models.ProjectIdea{Name: title})
		}
	}
	if len(ideas) == 0 {
		return nil, newError(ReasonMalformed, "no project ideas in reply")
	}
	return ideas, nil
}

// ideaNameAlias reads the idea name from "title" or "project_name".
func ideaNameAlias(item json.RawMessage) string {
	var alias struct {
		Title       string `json:"title"`
		ProjectName string `json:"project_name"`
	}
	if err := json.Unmarshal(item, &alias); err != nil {
		return ""
	}
	if t := strings.TrimSpace(alias.Title); t != "" {
		return t
	}
	return strings.TrimSpace(alias.ProjectName)
}

// decodeExercises accepts {"exercises": [...]}, {"recommendations": [...]} or a bare list.
func decodeExercises(raw json.RawMessage) ([]models.Exercise, error) {
	items, err := listField(raw, "exercises", "recommendations")
	if err != nil {
		return nil, err
	}

	exercises := make([]models.Exercise, 0, len(items))
	for _, item := range items {
		var ex models.Exercise
		if err := json.Unmarshal(item, &ex); err != nil {
			continue
		}
		if ex.Title == "" && ex.Description == "" {
			continue
		}
		exercises = append(exercises, ex)
	}
	if len(exercises) == 0 {
		return nil, newError(ReasonMalformed, "no exercises in reply")
	}
	return exercises, nil
}

// listField finds the item list in raw: a top-level array, the first of keys
// holding an array, or the object itself as a one-item list.
func listField(raw json.RawMessage, keys ...string) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, newError(ReasonMalformed, "empty reply")
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, newError(ReasonMalformed, "unexpected reply shape")
	}
	for _, k := range keys {
		if v, ok := obj[k]; ok {
			if err := json.Unmarshal(v, &list); err == nil {
				return list, nil
			}
		}
	}
	return []json.RawMessage{raw}, nil
}

// NormalizeSnippet maps the shapes models return for a snippet onto CodeSnippet.
// A bare string is taken as the code. Code is never left empty.
func NormalizeSnippet(raw json.RawMessage, language, prompt string) models.CodeSnippet {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return models.CodeSnippet{
			Title:        fallback.SnippetTitle(language, prompt),
			Code:         text,
			Explanation:  fmt.Sprintf("This %s code implements the requested functionality.", language),
			UsageExample: "# Usage example\n# Call the main function or use as shown above",
		}
	}

	var obj struct {
		Title              string            `json:"title"`
		Code               models.FlexString `json:"code"`
		Snippet            models.FlexString `json:"snippet"`
		Explanation        models.FlexString `json:"explanation"`
		UsageExample       models.FlexString `json:"usage_example"`
		Example            models.FlexString `json:"example"`
		Usage              models.FlexString `json:"usage"`
		ComplexityAnalysis models.FlexString `json:"complexity_analysis"`
		Dependencies       models.FlexString `json:"dependencies"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fallback.Snippet(language, prompt, "beginner")
	}

	s := models.CodeSnippet{
		Title:              obj.Title,
		Code:               string(firstNonEmpty(obj.Code, obj.Snippet)),
		Explanation:        string(obj.Explanation),
		UsageExample:       string(firstNonEmpty(obj.UsageExample, obj.Example, obj.Usage)),
		ComplexityAnalysis: obj.ComplexityAnalysis,
		Dependencies:       obj.Dependencies,
	}
	if s.Title == "" {
		s.Title = fallback.TitleCase(language) + " Implementation"
	}
	if s.Code == "" {
		s.Code = fmt.Sprintf("# %s code for: %s\n# Implementation details here", language, prompt)
	}
	return s
}

func firstNonEmpty(values ...models.FlexString) models.FlexString {
	for _, v := range values {
		if strings.TrimSpace(string(v)) != "" {
			return v
		}
	}
	return ""
}

const youtubeSearchURL = "https://www.youtube.com/results?search_query="

// VideoSearchURL builds a YouTube search link for a tutorial on title.
func VideoSearchURL(title string) string {
	return youtubeSearchURL + url.QueryEscape(strings.TrimSpace(title)) + "+tutorial"
}

// AddVideoLinks fills missing video links from each exercise's title, or its
// description when the title is empty.
func AddVideoLinks(exercises []models.Exercise) {
	for i := range exercises {
		ex := &exercises[i]
		title := ex.Title
		if title == "" {
			title = ex.Description
		}
		if title == "" {
			continue
		}
		if len(ex.VideoResources) == 0 {
			ex.VideoResources = models.StringList{
				VideoSearchURL(title),
				"https://www.youtube.com/c/Freecodecamp",
				"https://www.youtube.com/c/TraversyMedia",
			}
		}
		if ex.VideoURL == "" {
			ex.VideoURL = ex.VideoResources[0]
		}
	}
}

var vcForbiddenKeywords = []string{"code", "program", "function", "algorithm", "application", "snippet", "example"}

// CheckVCRequest rejects version-control requests that ask for program code.
func CheckVCRequest(request string) error {
	lower := strings.ToLower(request)
	for _, kw := range vcForbiddenKeywords {
		if strings.Contains(lower, kw) {
			return &Error{
				Reason:  ReasonRejected,
				Message: "This mode only generates commands. Please ask for version control commands only.",
			}
		}
	}
	return nil
}

var commandPrefixes = []string{"#", "git", "docker", "npm", "pip"}

// ExtractCommands keeps the lines of text that look like commands or command
// comments, joined by newlines.
func ExtractCommands(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isCommandLine(trimmed) {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

func isCommandLine(trimmed string) bool {
	for _, p := range commandPrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	lower := strings.ToLower(trimmed)
	return strings.Contains(lower, " command") || strings.Contains(lower, " usage:")
}

var htmlDocRe = regexp.MustCompile(`(?is)(<!doctype html.*</html>|<html.*</html>)`)

// ExtractHTMLDocument pulls a full HTML document out of a reply that may wrap
// it in markdown fences or prose.
func ExtractHTMLDocument(text string) (string, bool) {
	doc := htmlDocRe.FindString(text)
	if doc == "" {
		return "", false
	}
	return doc, true
}
