package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// StringList accepts either a JSON array of strings or a single string.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var list []interface{}
	if err := json.Unmarshal(data, &list); err == nil {
		out := make([]string, 0, len(list))
		for _, item := range list {
			var s FlexString
			raw, _ := json.Marshal(item)
			if err := s.UnmarshalJSON(raw); err == nil && s != "" {
				out = append(out, string(s))
			}
		}
		*l = out
		return nil
	}
	var s FlexString
	if err := s.UnmarshalJSON(data); err != nil {
		return err
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = StringList{string(s)}
	return nil
}

func (l StringList) Join() string { return strings.Join(l, ", ") }

// FlexString accepts strings, numbers and booleans; null decodes to "".
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*f = ""
	case string:
		*f = FlexString(t)
	case float64:
		*f = FlexString(strconv.FormatFloat(t, 'f', -1, 64))
	case bool:
		*f = FlexString(strconv.FormatBool(t))
	default:
		*f = FlexString(string(data))
	}
	return nil
}

type ProjectIdea struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Features    StringList `json:"features,omitempty"`
	Skills      StringList `json:"skills,omitempty"`
	Timeline    FlexString `json:"timeline,omitempty"`
	Difficulty  string     `json:"difficulty"`
	Resources   StringList `json:"resources,omitempty"`
}

type CodeSnippet struct {
	Title              string     `json:"title"`
	Code               string     `json:"code"`
	Explanation        string     `json:"explanation"`
	UsageExample       string     `json:"usage_example"`
	ComplexityAnalysis FlexString `json:"complexity_analysis,omitempty"`
	Dependencies       FlexString `json:"dependencies,omitempty"`
}

type Exercise struct {
	ExerciseType       string     `json:"exercise_type,omitempty"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	LearningOutcome    FlexString `json:"learning_outcome,omitempty"`
	LearningObjectives StringList `json:"learning_objectives,omitempty"`
	Difficulty         FlexString `json:"difficulty"`
	EstimatedTime      FlexString `json:"estimated_time"`
	VideoURL           string     `json:"video_url,omitempty"`
	VideoResources     StringList `json:"video_resources,omitempty"`
	DocumentationLinks StringList `json:"documentation_links,omitempty"`
	PracticeTasks      StringList `json:"practice_tasks,omitempty"`
	Prerequisites      FlexString `json:"prerequisites,omitempty"`
	SuccessCriteria    FlexString `json:"success_criteria,omitempty"`
}

type Education struct {
	College  string `json:"college"`
	Branch   string `json:"branch"`
	Semester string `json:"semester"`
	Year     string `json:"year"`
}

type Contact struct {
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
}

type PortfolioProject struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Technologies StringList `json:"technologies"`
	Link         string     `json:"link,omitempty"`
}

// PortfolioInput is what a student submits to build a portfolio page.
type PortfolioInput struct {
	UserID    uint               `json:"user_id"`
	Name      string             `json:"name"`
	Skills    []string           `json:"skills"`
	Projects  []PortfolioProject `json:"projects"`
	Education Education          `json:"education"`
	Contact   Contact            `json:"contact"`
	Template  string             `json:"template,omitempty"`
}
