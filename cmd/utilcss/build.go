package main

import (
	"fmt"

	"github.com/flowbite-admin/utilcss"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"b"},
	Short:   "Compile the utility stylesheet",
	Long: `Locate content files, extract classes, resolve each utility and write the
base stylesheet followed by the generated rules to the output path.
The output file is fully overwritten.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, _ []string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	config := buildConfig()
	config.Logger = logger

	result, err := utilcss.Compile(config)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, result.Summary())
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "  Warning: %s\n", w)
	}
	return nil
}
