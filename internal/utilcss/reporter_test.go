package utilcss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: "  <div class=\"flex\">",
			column:     15,
			want:       "              ^", // 14 spaces + caret
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t\t<button class=\"p-4\">",
			column:     17,
			want:       "\t\t              ^",
		},
		{
			name:       "start of line",
			sourceLine: "class=\"flex\"",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func sampleIssues() []Issue {
	return []Issue{
		{
			FromLinter:  LinterName,
			Text:        `modifier "group-hover" has no effect in "group-hover:block"`,
			Severity:    SeverityWarning,
			SourceLines: []string{`<li class="group-hover:block">`},
			Pos:         IssuePos{Filename: "templates/nav.html", Line: 3, Column: 12},
			Class:       "group-hover:block",
		},
		{
			FromLinter:  LinterName,
			Text:        `unknown utility class "bg-brand-500"`,
			Severity:    SeverityError,
			SourceLines: []string{`<div class="bg-brand-500">`},
			Pos:         IssuePos{Filename: "templates/base.html", Line: 10, Column: 13},
			Class:       "bg-brand-500",
		},
		{
			FromLinter:  LinterName,
			Text:        `unknown utility class "bg-brand-500"`,
			Severity:    SeverityError,
			SourceLines: []string{`<a class="bg-brand-500">`},
			Pos:         IssuePos{Filename: "templates/base.html", Line: 2, Column: 11},
			Class:       "bg-brand-500",
		},
	}
}

func TestReporter_PrintIssues(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf, printLines: true, printLinterName: true}

	reporter.PrintIssues(sampleIssues())

	want := "templates/base.html:2:11: unknown utility class \"bg-brand-500\" (utilcss)\n" +
		"\t<a class=\"bg-brand-500\">\n" +
		"\t          ^\n" +
		"templates/base.html:10:13: unknown utility class \"bg-brand-500\" (utilcss)\n" +
		"\t<div class=\"bg-brand-500\">\n" +
		"\t            ^\n" +
		"templates/nav.html:3:12: warning: modifier \"group-hover\" has no effect in \"group-hover:block\" (utilcss)\n" +
		"\t<li class=\"group-hover:block\">\n" +
		"\t           ^\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_PrintIssues_Compact(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintIssues(sampleIssues()[1:2])

	assert.Equal(t, "templates/base.html:10:13: unknown utility class \"bg-brand-500\"\n", buf.String())
}

func TestReporter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(&CheckResult{
		Issues:         sampleIssues(),
		FilesScanned:   4,
		Resolved:       12,
		BaseDefined:    2,
		TruncatedCount: 1,
	})

	out := buf.String()
	assert.Contains(t, out, "3 issues (2 errors, 1 warning, 1 issue truncated):\n")
	assert.Contains(t, out, "* bg-brand-500: 2\n* group-hover:block: 1\n")
	assert.Contains(t, out, "4 files scanned, 12 classes resolved, 2 defined by the base stylesheet\n")
	assert.Contains(t, out, "Hint: Run 'utilcss explain <class>'")
}

func TestReporter_PrintSummary_Clean(t *testing.T) {
	var buf bytes.Buffer
	reporter := &Reporter{w: &buf}

	reporter.PrintSummary(&CheckResult{FilesScanned: 1, Resolved: 1})

	assert.Equal(t, "\n0 issues:\n\n1 file scanned, 1 class resolved\nAll classes resolve.\n", buf.String())
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	assert.True(t, ShouldUseColors(true))

	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))

	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.True(t, ShouldUseColors(false))
}

func TestRenderStyle(t *testing.T) {
	assert.Equal(t, "plain", RenderStyle(StyleRed, "plain", false))
}
