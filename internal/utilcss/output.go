package utilcss

import (
	"fmt"
	"io"
)

// OutputFormat represents the check output format
type OutputFormat string

const (
	// OutputIssues shows findings in golangci-lint format followed by the summary
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows counts only
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data for tooling
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the requested name.
// Unknown names fall back to issues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch OutputFormat(formatFlag) {
	case OutputSummary:
		return OutputSummary
	case OutputJSON:
		return OutputJSON
	default:
		return OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) error {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	case OutputSummary:
		NewReporter(w, config).PrintSummary(result)
	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result)
	}
	return nil
}
