package utilcss

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// LocateOptions controls content file discovery
type LocateOptions struct {
	ExcludeDirs  []string // Directory names skipped at any depth
	UseGitIgnore bool     // Skip files matched by <root>/.gitignore
	Logger       *slog.Logger
}

// NormalizePattern converts a content pattern to the slash-separated, root-relative form
// used for matching: "./templates/**/*.html" -> "templates/**/*.html"
func NormalizePattern(pattern string) string {
	p := strings.ReplaceAll(pattern, "\\", "/")
	for strings.HasPrefix(p, "./") || strings.HasPrefix(p, "/") {
		p = strings.TrimPrefix(p, "./")
		p = strings.TrimPrefix(p, "/")
	}
	return p
}

// LocateFiles walks root and returns the sorted absolute paths of files whose
// root-relative path matches at least one pattern. Dot-prefixed files are
// skipped, dot-prefixed directories and ExcludeDirs are never entered. Invalid or unmatched patterns yield zero files.
func LocateFiles(root string, patterns []string, opts LocateOptions) ([]string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableRoot, root, err)
	}
	if _, err := os.ReadDir(absRoot); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableRoot, absRoot, err)
	}

	valid := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		normalized := NormalizePattern(pattern)
		if normalized == "" || !doublestar.ValidatePattern(normalized) {
			logger.Warn("skipping invalid content pattern", "pattern", pattern)
			continue
		}
		valid = append(valid, normalized)
	}
	if len(valid) == 0 {
		return []string{}, nil
	}

	excluded := make(map[string]bool, len(opts.ExcludeDirs))
	for _, name := range opts.ExcludeDirs {
		excluded[name] = true
	}

	var gi *ignore.GitIgnore
	if opts.UseGitIgnore {
		gi = loadGitIgnore(absRoot)
	}

	seen := make(map[string]bool)
	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == absRoot {
				return walkErr
			}
			logger.Debug("walk error", "path", path, "error", walkErr)
			return nil
		}

		if path == absRoot {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if shouldSkipDir(d.Name(), excluded) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if gi != nil && gi.MatchesPath(relPath) {
			return nil
		}

		for _, pattern := range valid {
			if ok, _ := doublestar.Match(pattern, relPath); ok {
				if !seen[path] {
					seen[path] = true
					files = append(files, path)
				}
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadableRoot, absRoot, err)
	}

	sort.Strings(files)
	logger.Debug("located content files", "root", absRoot, "patterns", len(valid), "files", len(files))

	return files, nil
}

// shouldSkipDir reports whether a directory is a dependency or hidden directory
func shouldSkipDir(name string, excluded map[string]bool) bool {
	return strings.HasPrefix(name, ".") || excluded[name]
}

// loadGitIgnore compiles <root>/.gitignore.
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
