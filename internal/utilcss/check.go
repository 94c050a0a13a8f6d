package utilcss

import (
	"fmt"
	"path/filepath"
	"sort"
)

// CheckConfig holds check configuration
type CheckConfig struct {
	Config

	Strict           bool // Exit with code 1 if issues found
	MaxSameIssues    int  // 0 = unlimited (default)
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (utilcss) suffix (default: true)
	UseColors        bool // Enable color output (default: auto-detect)
}

// CheckResult contains check findings and stats
type CheckResult struct {
	Issues         []Issue
	FilesScanned   int
	ClassesScanned int
	Resolved       int // Classes that produce at least one rule
	BaseDefined    int // Unresolved classes defined by the base stylesheet
	TruncatedCount int // Issues removed due to limits
}

// Check runs discovery, extraction and resolution without writing anything.
// Unresolved classes not defined by the base stylesheet are errors; modifiers
// with no effect on a resolved class are warnings.
func Check(cfg CheckConfig) (*CheckResult, error) {
	s, err := runScan(cfg.Config)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		FilesScanned:   s.filesScanned,
		ClassesScanned: s.classes.Len(),
	}
	root := cfg.Root
	if root == "" {
		root = "."
	}

	for _, class := range s.classes.Sorted() {
		tok := ParseToken(class)
		decl := Resolve(tok.Base)

		switch {
		case decl == nil && s.base.Defines(class):
			result.BaseDefined++
		case decl == nil:
			for _, loc := range s.classes.Occurrences(class) {
				result.Issues = append(result.Issues, newIssue(root, class, SeverityError, fmt.Sprintf(IssueUnknownClass, class), loc))
			}
		default:
			result.Resolved++
			for _, m := range tok.Modifiers {
				if IsKnownModifier(m) {
					continue
				}
				for _, loc := range s.classes.Occurrences(class) {
					result.Issues = append(result.Issues, newIssue(root, class, SeverityWarning, fmt.Sprintf(IssueIgnoredModifier, m, class), loc))
				}
			}
		}
	}

	sortIssues(result.Issues)
	if cfg.MaxSameIssues > 0 {
		before := len(result.Issues)
		result.Issues = deduplicateSameIssues(result.Issues, cfg.MaxSameIssues)
		result.TruncatedCount = before - len(result.Issues)
	}
	return result, nil
}

func newIssue(root, class, severity, text string, loc FileLocation) Issue {
	filename := loc.File
	if absRoot, err := filepath.Abs(root); err == nil {
		if rel, err := filepath.Rel(absRoot, loc.File); err == nil {
			filename = filepath.ToSlash(rel)
		}
	}
	return Issue{
		FromLinter:  LinterName,
		Text:        text,
		Severity:    severity,
		SourceLines: []string{loc.Text},
		Pos: IssuePos{
			Filename: filename,
			Line:     loc.Line,
			Column:   loc.Column,
		},
		Class: class,
	}
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
