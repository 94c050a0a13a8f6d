package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/flowbite-admin/utilcss"
	core "github.com/flowbite-admin/utilcss/internal/utilcss"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	defaultConfigFile = ".utilcss.yaml"
	envPrefix         = "UTILCSS_"
)

var k = koanf.New(".")

// envSections are the config file sections addressable from the environment
var envSections = []string{"build", "check"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// .env values become regular environment variables; real env wins
	_ = godotenv.Load()

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags set on the command line, so flag defaults never shadow the file
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps environment variables to config keys:
//
//	UTILCSS_BUILD_INPUT           -> build.input
//	UTILCSS_BUILD_WARN_UNKNOWN    -> build.warn-unknown
//	UTILCSS_CHECK_MAX_SAME_ISSUES -> check.max-same-issues
//	UTILCSS_LOG_LEVEL             -> log-level
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	for _, section := range envSections {
		if rest, ok := strings.CutPrefix(key, section+"_"); ok {
			return section + "." + strings.ReplaceAll(rest, "_", "-")
		}
	}
	return strings.ReplaceAll(key, "_", "-")
}

// buildConfig constructs the compiler Config from koanf state.
func buildConfig() utilcss.Config {
	defaults := utilcss.DefaultConfig()
	return utilcss.Config{
		Root:           getStringWithFallback("root", "root", defaults.Root),
		TailwindConfig: getStringWithFallback("tailwind-config", "build.tailwind-config", defaults.TailwindConfig),
		Input:          getStringWithFallback("input", "build.input", defaults.Input),
		Output:         getStringWithFallback("output", "build.output", defaults.Output),
		ExcludeDirs:    getStringsWithFallback("exclude-dirs", "build.exclude-dirs", defaults.ExcludeDirs),
		Ignore:         getStringsWithFallback("ignore", "build.ignore", defaults.Ignore),
		UseGitIgnore:   getBoolWithFallback("gitignore", "build.gitignore", false),
		WarnUnknown:    getBoolWithFallback("warn-unknown", "build.warn-unknown", false),
	}
}

// buildCheckConfig constructs the check configuration from koanf state.
func buildCheckConfig() utilcss.CheckConfig {
	return utilcss.CheckConfig{
		Config:           buildConfig(),
		Strict:           getBoolWithFallback("strict", "check.strict", false),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintLinterName:  getBoolWithFallback("print-linter-name", "check.print-linter-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// buildLogger configures slog from log-level and log-format. --verbose is a
// shorthand for debug.
func buildLogger() (*slog.Logger, error) {
	cfg := core.DefaultLoggerConfig()

	level, err := core.ParseLogLevel(getStringWithFallback("log-level", "log-level", string(cfg.Level)))
	if err != nil {
		return nil, err
	}
	if getBoolWithFallback("verbose", "verbose", false) {
		level = core.LevelDebug
	}
	format, err := core.ParseLogFormat(getStringWithFallback("log-format", "log-format", string(cfg.Format)))
	if err != nil {
		return nil, err
	}

	cfg.Level = level
	cfg.Format = format
	return core.NewLogger(cfg), nil
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getStringsWithFallback is getStringWithFallback for lists. A plain string value,
// as set from the environment, is split on commas.
func getStringsWithFallback(flagKey, configKey string, defaultVal []string) []string {
	for _, key := range []string{flagKey, configKey} {
		if !k.Exists(key) {
			continue
		}
		if s, ok := k.Get(key).(string); ok {
			return splitList(s)
		}
		return k.Strings(key)
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
