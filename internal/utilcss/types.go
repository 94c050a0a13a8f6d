package utilcss

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Fatal error classes. Everything else degrades to "no rule emitted".
var (
	ErrMissingInput   = errors.New("base stylesheet not found")
	ErrConfig         = errors.New("invalid content configuration")
	ErrUnreadableRoot = errors.New("project root is not readable")
)

// Config holds compiler configuration
type Config struct {
	Root           string   // Project root, content patterns are relative to it
	TailwindConfig string   // "tailwind.config.js" (content configuration module)
	Input          string   // Base stylesheet, required
	Output         string   // Generated stylesheet, fully overwritten
	ExcludeDirs    []string // Dependency directory names: ["node_modules"]
	Ignore         []string // Literal class names never compiled
	UseGitIgnore   bool     // Also skip files matched by <root>/.gitignore
	WarnUnknown    bool     // Log unresolved classes as warnings
	Logger         *slog.Logger
}

// Default project layout
const (
	DefaultTailwindConfig = "tailwind.config.js"
	DefaultInput          = "flowbite_admin/static/flowbite_admin/css/input.css"
	DefaultOutput         = "flowbite_admin/static/flowbite_admin/css/flowbite-admin.css"
)

// DefaultExcludeDirs are skipped at any depth in addition to dot-prefixed directories.
var DefaultExcludeDirs = []string{"node_modules"}

// DefaultIgnore lists template variable names that tend to leak into class attributes.
var DefaultIgnore = []string{
	"alert_color",
	"else",
	"entry.is_addition",
	"entry.is_change",
	"entry.is_deletion",
}

// Result contains compilation stats
type Result struct {
	OutputPath     string
	FilesScanned   int
	ClassesScanned int      // Distinct candidate classes across all content files
	RulesGenerated int      // Utility rules emitted (base styles and preamble excluded)
	Unresolved     []string // Sorted classes that produced no rule
	Warnings       []string
}

// Summary renders the one-line human readable report printed after a build.
func (r *Result) Summary() string {
	return fmt.Sprintf("Generated %d utility rules for %d classes.", r.RulesGenerated, r.ClassesScanned)
}

// ParsedToken is a candidate class split on the modifier separator.
type ParsedToken struct {
	Class     string   // Full source class: "dark:hover:bg-gray-700"
	Modifiers []string // ["dark", "hover"]
	Base      string   // "bg-gray-700"
}

// Property is one CSS declaration.
type Property struct {
	Name  string
	Value string
}

// Kind tags how a declaration was produced.
type Kind int

const (
	KindStatic Kind = iota
	KindFontSize
	KindColor
	KindSpacing
	KindArbitrary
	KindRing
	KindSpace
)

var kindNames = map[Kind]string{
	KindStatic:    "static",
	KindFontSize:  "font-size",
	KindColor:     "color",
	KindSpacing:   "spacing",
	KindArbitrary: "arbitrary",
	KindRing:      "ring",
	KindSpace:     "space-between",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// FocusMode controls how a declaration behaves under the focus: modifier.
type FocusMode int

const (
	// FocusPseudo appends :focus to the selector, like hover.
	FocusPseudo FocusMode = iota
	// FocusOverride emits Focus properties in a :focus rule instead of Properties.
	FocusOverride
	// FocusCompose sets Focus custom properties on the element and adds the shared
	// :focus composition rule that reads them.
	FocusCompose
)

// Declaration is the resolved CSS for a base utility. A nil *Declaration means the
// utility is unknown.
type Declaration struct {
	Kind       Kind
	Properties []Property
	Focus      []Property // Used when the token carries the focus: modifier
	FocusMode  FocusMode
	Axis       string // "x" or "y" for KindSpace
}

// Block renders properties as a declaration block body: "a: b; c: d;"
func Block(props []Property) string {
	parts := make([]string, 0, len(props))
	for _, p := range props {
		parts = append(parts, p.Name+": "+p.Value+";")
	}
	return strings.Join(parts, " ")
}

// String renders the declaration's default properties.
func (d *Declaration) String() string {
	if d == nil {
		return ""
	}
	return Block(d.Properties)
}
