package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "utilcss",
	Short: "Utility-class stylesheet compiler for server-rendered templates",
	Long: `Scan template and script files for class="..." attributes and compile every
recognized utility class into one static stylesheet.
The base stylesheet is copied first, generated rules follow in class name order.`,
	// Default behavior: run build when no subcommand is given.
	// We must call loadConfig here because PreRunE of buildCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	pf.Bool("quiet", false, "Suppress all output (exit code only)")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")
	pf.String("log-level", "warn", "Log level: debug|info|warn|error")
	pf.String("log-format", "text", "Log format: text|json")

	// Compiler inputs shared by build and check
	pf.String("root", ".", "Project root; content patterns are relative to it")
	pf.String("tailwind-config", "tailwind.config.js", "Content configuration module (.js, .json, .toml, .yaml)")
	pf.String("input", "flowbite_admin/static/flowbite_admin/css/input.css", "Base stylesheet")
	pf.String("output", "flowbite_admin/static/flowbite_admin/css/flowbite-admin.css", "Generated stylesheet")
	pf.StringSlice("exclude-dirs", []string{"node_modules"}, "Directory names never scanned")
	pf.StringSlice("ignore", nil, "Class names never compiled (default: template variable names)")
	pf.Bool("gitignore", false, "Also skip files matched by .gitignore")
	pf.Bool("warn-unknown", false, "Warn about classes that produce no rule")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
