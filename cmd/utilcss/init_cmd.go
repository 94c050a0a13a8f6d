package main

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flowbite-admin/utilcss"
	"github.com/spf13/cobra"
)

//go:embed starter.css
var starterStylesheet string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .utilcss.yaml config file",
	Long: `Create a .utilcss.yaml configuration file in the current directory with sensible defaults.
With --with-stylesheet also write a starter base stylesheet at the input path,
relative to --root like build and check resolve it.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		withStylesheet, _ := cmd.Flags().GetBool("with-stylesheet")

		if err := writeNew(defaultConfigFile, defaultConfig, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)

		if !withStylesheet {
			return nil
		}
		input, _ := cmd.Flags().GetString("input")
		root, _ := cmd.Flags().GetString("root")
		input = utilcss.Config{Root: root}.ResolvePath(input)
		if err := os.MkdirAll(filepath.Dir(input), 0o750); err != nil {
			return fmt.Errorf("creating stylesheet directory: %w", err)
		}
		if err := writeNew(input, starterStylesheet, force); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", input)
		return nil
	},
}

// writeNew refuses to replace an existing file unless force is set
func writeNew(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

const defaultConfig = `# utilcss configuration

# Shared settings
root: .
verbose: false
log-level: warn            # debug | info | warn | error
log-format: text           # text | json

# Build settings
build:
  tailwind-config: tailwind.config.js
  input: flowbite_admin/static/flowbite_admin/css/input.css
  output: flowbite_admin/static/flowbite_admin/css/flowbite-admin.css
  exclude-dirs:
    - node_modules
  ignore:
    - alert_color
    - else
    - entry.is_addition
    - entry.is_change
    - entry.is_deletion
  gitignore: false
  warn-unknown: false

# Check settings
check:
  strict: false
  output-format: issues    # issues | summary | json
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
	initCmd.Flags().Bool("with-stylesheet", false, "Also write a starter base stylesheet at --input")
}
