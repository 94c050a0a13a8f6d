package main

import (
	"errors"
	"fmt"

	"github.com/flowbite-admin/utilcss"
	core "github.com/flowbite-admin/utilcss/internal/utilcss"
	"github.com/spf13/cobra"
)

// errIssuesFound makes strict check exit non-zero without an extra message
var errIssuesFound = errors.New("check found issues")

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report classes that compile to no rule",
	Long: `Run discovery, extraction and resolution without writing the stylesheet.
Classes that no utility covers and the base stylesheet does not define are errors.
Modifiers with no effect on the emitted rule are warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "issues", "Output format: issues|summary|json")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (utilcss) suffix on issues")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	config := buildCheckConfig()
	config.Logger = logger

	result, err := utilcss.Check(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		format := core.DetermineOutputFormat(getStringWithFallback("output-format", "check.output-format", ""))
		if err := core.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return err
		}
	}

	if config.Strict && len(result.Issues) > 0 {
		return fmt.Errorf("%w: %d", errIssuesFound, len(result.Issues))
	}
	return nil
}
