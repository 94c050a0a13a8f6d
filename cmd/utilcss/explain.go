package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/flowbite-admin/utilcss"
	core "github.com/flowbite-admin/utilcss/internal/utilcss"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain <class>...",
	Short: "Show how classes compile",
	Long: `Print the modifiers, base utility, declaration kind and emitted rules of each class.
No files are read.`,
	Example: `  utilcss explain lg:block dark:hover:bg-gray-700 focus:ring-blue-500`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		useColors := core.ShouldUseColors(getBoolWithFallback("color", "color", false))
		for i, class := range args {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			printExplanation(cmd.OutOrStdout(), utilcss.Explain(class), useColors)
		}
		return nil
	},
}

func printExplanation(w io.Writer, exp utilcss.Explanation, useColors bool) {
	fmt.Fprintln(w, core.RenderStyle(core.StyleCyan, exp.Token.Class, useColors))

	modifiers := "(none)"
	if len(exp.Token.Modifiers) > 0 {
		modifiers = strings.Join(exp.Token.Modifiers, ", ")
	}
	fmt.Fprintf(w, "  modifiers: %s\n", modifiers)
	fmt.Fprintf(w, "  base:      %s\n", exp.Token.Base)
	for _, m := range exp.Ignored {
		fmt.Fprintf(w, "  %s\n", core.RenderStyle(core.StyleYellow, fmt.Sprintf("modifier %q has no effect", m), useColors))
	}

	if exp.Declaration == nil {
		fmt.Fprintf(w, "  %s\n", core.RenderStyle(core.StyleRed, "unknown utility, no rule emitted", useColors))
		return
	}
	fmt.Fprintf(w, "  kind:      %s\n", exp.Declaration.Kind)
	for _, rule := range exp.Rules {
		fmt.Fprintf(w, "  %s\n", core.RenderStyle(core.StyleGreen, rule, useColors))
	}
}
