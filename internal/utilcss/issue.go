package utilcss

// Issue represents a single check finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "utilcss"
	Text        string   `json:"Text"`        // "unknown utility class \"bg-brand-500\""
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
	Class       string   `json:"Class"`       // Source class the issue is about
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "flowbite_admin/templates/admin/base.html"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, exact start of the class)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// LinterName tags every issue produced by check
const LinterName = "utilcss"

// Issue message formats
const (
	IssueUnknownClass    = "unknown utility class %q"
	IssueIgnoredModifier = "modifier %q has no effect in %q"
)
