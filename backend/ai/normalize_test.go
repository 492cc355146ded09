package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSnippet(t *testing.T) {
	s := NormalizeSnippet(json.RawMessage(`"print('hi')"`), "python", "greet")
	assert.Equal(t, "print('hi')", s.Code)
	assert.Equal(t, "Python Code for: greet", s.Title)

	s = NormalizeSnippet(json.RawMessage(`{"title":"T","explanation":"e"}`), "go", "noop")
	assert.Equal(t, "T", s.Title)
	assert.Contains(t, s.Code, "go code for: noop")

	s = NormalizeSnippet(json.RawMessage(`42`), "python", "x")
	assert.Equal(t, "Python Code for: x", s.Title)
	assert.NotEmpty(t, s.Code)
}

func TestCheckVCRequest(t *testing.T) {
	assert.NoError(t, CheckVCRequest("how do I undo a commit"))
	assert.NoError(t, CheckVCRequest("docker compose restart"))

	for _, req := range []string{
		"write a function to undo a commit",
		"Show me an EXAMPLE",
		"git snippet please",
		"my application fails",
	} {
		assert.ErrorIs(t, CheckVCRequest(req), ErrRejected, req)
	}
}

func TestExtractCommands(t *testing.T) {
	text := "Intro paragraph\n\n  git status\nnpm install\nRun this command to clean\npip freeze\nplain text\n# heading"
	assert.Equal(t, "  git status\nnpm install\nRun this command to clean\npip freeze\n# heading", ExtractCommands(text))
	assert.Empty(t, ExtractCommands("nothing useful"))
}

func TestListFieldShapes(t *testing.T) {
	items, err := listField(json.RawMessage(`{"exercises":[{"title":"a"},{"title":"b"}]}`), "exercises")
	assert.NoError(t, err)
	assert.Len(t, items, 2)

	items, err = listField(json.RawMessage(`{"title":"single"}`), "exercises")
	assert.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = listField(json.RawMessage(` `), "exercises")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestDecodeIdeasNameAliases(t *testing.T) {
	ideas, err := decodeIdeas(json.RawMessage(`{"ideas":[
		{"title":"Expense tracker","description":"budgets"},
		{"project_name":"Weather bot"},
		{"name":"Chat app","title":"ignored"},
		"Quiz game",
		{"description":"nameless"}
	]}`))
	assert.NoError(t, err)
	if assert.Len(t, ideas, 4) {
		assert.Equal(t, "Expense tracker", ideas[0].Name)
		assert.Equal(t, "budgets", ideas[0].Description)
		assert.Equal(t, "Weather bot", ideas[1].Name)
		assert.Equal(t, "Chat app", ideas[2].Name)
		assert.Equal(t, "Quiz game", ideas[3].Name)
	}
}
