package utilcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	cfg := newProject(t, map[string]string{
		"index.html": `<div class="flex fb-card bg-brand-500 group-hover:block"></div>`,
		"nav.html":   "<nav>\n\t<a class=\"p-4 bg-brand-500\"></a>\n</nav>\n",
	})

	result, err := Check(CheckConfig{Config: cfg})
	require.NoError(t, err)

	assert.Equal(t, 2, result.FilesScanned)
	assert.Equal(t, 5, result.ClassesScanned)
	assert.Equal(t, 3, result.Resolved) // flex, group-hover:block, p-4
	assert.Equal(t, 1, result.BaseDefined)
	assert.Equal(t, 0, result.TruncatedCount)

	require.Len(t, result.Issues, 3)

	first := result.Issues[0]
	assert.Equal(t, "templates/index.html", first.Pos.Filename)
	assert.Equal(t, 1, first.Pos.Line)
	assert.Equal(t, 26, first.Pos.Column)
	assert.Equal(t, SeverityError, first.Severity)
	assert.Equal(t, `unknown utility class "bg-brand-500"`, first.Text)
	assert.Equal(t, LinterName, first.FromLinter)
	assert.Equal(t, []string{`<div class="flex fb-card bg-brand-500 group-hover:block"></div>`}, first.SourceLines)

	second := result.Issues[1]
	assert.Equal(t, SeverityWarning, second.Severity)
	assert.Equal(t, `modifier "group-hover" has no effect in "group-hover:block"`, second.Text)
	assert.Equal(t, "group-hover:block", second.Class)

	third := result.Issues[2]
	assert.Equal(t, "templates/nav.html", third.Pos.Filename)
	assert.Equal(t, 2, third.Pos.Line)
	assert.Equal(t, 16, third.Pos.Column)
	assert.Equal(t, "bg-brand-500", third.Class)

	// Check never writes the stylesheet
	_, statErr := os.Stat(filepath.Join(cfg.Root, cfg.Output))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCheck_MaxSameIssues(t *testing.T) {
	cfg := newProject(t, map[string]string{
		"a.html": `<p class="bg-brand-500"></p>`,
		"b.html": `<p class="bg-brand-500"></p>`,
		"c.html": `<p class="bg-brand-500 text-nope-1"></p>`,
	})

	result, err := Check(CheckConfig{Config: cfg, MaxSameIssues: 1})
	require.NoError(t, err)

	require.Len(t, result.Issues, 2)
	assert.Equal(t, 2, result.TruncatedCount)
	assert.Equal(t, "templates/a.html", result.Issues[0].Pos.Filename)
	assert.Equal(t, "text-nope-1", result.Issues[1].Class)
}

func TestCheck_Clean(t *testing.T) {
	cfg := newProject(t, map[string]string{"a.html": `<p class="flex dark:text-white"></p>`})

	result, err := Check(CheckConfig{Config: cfg})
	require.NoError(t, err)
	assert.Empty(t, result.Issues)
	assert.Equal(t, 2, result.Resolved)
}

func TestCheck_FatalError(t *testing.T) {
	cfg := newProject(t, nil)
	cfg.Input = "missing.css"

	_, err := Check(CheckConfig{Config: cfg})
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestSortIssues(t *testing.T) {
	issues := []Issue{
		{Pos: IssuePos{Filename: "b.html", Line: 1, Column: 1}},
		{Pos: IssuePos{Filename: "a.html", Line: 2, Column: 5}},
		{Pos: IssuePos{Filename: "a.html", Line: 2, Column: 1}},
		{Pos: IssuePos{Filename: "a.html", Line: 1, Column: 9}},
	}
	sortIssues(issues)

	got := make([]IssuePos, len(issues))
	for i, issue := range issues {
		got[i] = issue.Pos
	}
	assert.Equal(t, []IssuePos{
		{Filename: "a.html", Line: 1, Column: 9},
		{Filename: "a.html", Line: 2, Column: 1},
		{Filename: "a.html", Line: 2, Column: 5},
		{Filename: "b.html", Line: 1, Column: 1},
	}, got)
}
