// Package utilcss compiles the utility classes used by server-rendered templates
// into a static stylesheet.
//
// Content files are located from the patterns of a content configuration module
// (tailwind.config.js, or a JSON, TOML or YAML equivalent). Every class="..."
// attribute is scanned, each class is split into modifiers and a base utility,
// the base utility is resolved against fixed design tokens, and one CSS rule is
// synthesized per class. The base stylesheet is copied ahead of the generated
// rules.
//
// # Building
//
//	config := utilcss.DefaultConfig()
//	config.Root = "."
//	result, err := utilcss.Compile(config)
//	if err != nil {
//		return err
//	}
//	fmt.Println(result.Summary())
//
// # Checking
//
// Check reports classes that no rule covers, without writing anything:
//
//	result, err := utilcss.Check(utilcss.CheckConfig{Config: config})
//
// # CLI Tool
//
//	go install github.com/flowbite-admin/utilcss/cmd/utilcss@latest
package utilcss

import (
	core "github.com/flowbite-admin/utilcss/internal/utilcss"
)

type (
	// Config holds compiler configuration
	Config = core.Config
	// Result contains compilation stats
	Result = core.Result
	// CheckConfig holds check configuration
	CheckConfig = core.CheckConfig
	// CheckResult contains check findings
	CheckResult = core.CheckResult
	// Explanation describes how one class compiles
	Explanation = core.Explanation
)

// Fatal errors returned by Compile and Check
var (
	ErrMissingInput   = core.ErrMissingInput
	ErrConfig         = core.ErrConfig
	ErrUnreadableRoot = core.ErrUnreadableRoot
)

// DefaultConfig returns the configuration of the stock project layout
func DefaultConfig() Config {
	return Config{
		Root:           ".",
		TailwindConfig: core.DefaultTailwindConfig,
		Input:          core.DefaultInput,
		Output:         core.DefaultOutput,
		ExcludeDirs:    append([]string(nil), core.DefaultExcludeDirs...),
		Ignore:         append([]string(nil), core.DefaultIgnore...),
	}
}

// Compile scans content files and writes the generated stylesheet
func Compile(config Config) (*Result, error) {
	return core.Compile(config)
}

// Check reports unresolved classes without writing the stylesheet
func Check(config CheckConfig) (*CheckResult, error) {
	return core.Check(config)
}

// Explain shows the declaration and rules a single class compiles to
func Explain(class string) Explanation {
	return core.Explain(class)
}
