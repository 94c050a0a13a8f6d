package utilcss

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// scan is the shared front half of build and check: base stylesheet, content
// configuration, located files and extracted classes.
type scan struct {
	base         *BaseStylesheet
	content      *ContentConfig
	files        []string
	filesScanned int
	classes      *ClassSet
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// ResolvePath anchors a relative path at the project root
func (c Config) ResolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	root := c.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, path)
}

func runScan(cfg Config) (*scan, error) {
	logger := cfg.logger()

	base, err := ReadBaseStylesheet(cfg.ResolvePath(cfg.Input))
	if err != nil {
		return nil, err
	}

	content, err := LoadContentConfig(cfg.ResolvePath(cfg.TailwindConfig))
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded content configuration", "path", content.Path, "patterns", content.Content, "plugins", len(content.Plugins))

	root := cfg.Root
	if root == "" {
		root = "."
	}
	files, err := LocateFiles(root, content.Content, LocateOptions{
		ExcludeDirs:  cfg.ExcludeDirs,
		UseGitIgnore: cfg.UseGitIgnore,
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	classes, scanned := ExtractFromFiles(files, logger)
	for _, class := range cfg.Ignore {
		classes.Remove(class)
	}

	return &scan{
		base:         base,
		content:      content,
		files:        files,
		filesScanned: scanned,
		classes:      classes,
	}, nil
}

// Compile runs the full pipeline and overwrites cfg.Output. Nothing is written
// when a fatal error occurs.
func Compile(cfg Config) (*Result, error) {
	logger := cfg.logger()

	s, err := runScan(cfg)
	if err != nil {
		return nil, err
	}

	synthesis := Synthesize(s.classes.Sorted())
	result := &Result{
		OutputPath:     cfg.ResolvePath(cfg.Output),
		FilesScanned:   s.filesScanned,
		ClassesScanned: s.classes.Len(),
		RulesGenerated: len(synthesis.Rules),
		Unresolved:     synthesis.Unresolved,
	}

	for _, class := range synthesis.Unresolved {
		logger.Debug("no rule for class", "class", class)
		if cfg.WarnUnknown && !s.base.Defines(class) {
			msg := fmt.Sprintf("unknown utility class %q", class)
			if loc, ok := s.classes.Location(class); ok {
				msg = fmt.Sprintf("%s:%d:%d: %s", loc.File, loc.Line, loc.Column, msg)
			}
			result.Warnings = append(result.Warnings, msg)
			logger.Warn("unknown utility class", "class", class)
		}
	}

	stylesheet := Assemble(s.base.Content, synthesis.Rules)
	if err := writeFileAtomic(result.OutputPath, []byte(stylesheet)); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}

	logger.Debug("wrote stylesheet", "path", result.OutputPath, "rules", result.RulesGenerated, "classes", result.ClassesScanned)
	return result, nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	// Fails harmlessly once the rename succeeded
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
