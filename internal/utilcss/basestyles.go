package utilcss

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// BaseStylesheet is the hand-written stylesheet copied verbatim ahead of the
// generated rules.
type BaseStylesheet struct {
	Path    string
	Content string
	Classes map[string]struct{} // Class names appearing in any selector
}

// ReadBaseStylesheet loads the base stylesheet. A missing file is ErrMissingInput.
func ReadBaseStylesheet(path string) (*BaseStylesheet, error) {
	// #nosec G304 - path comes from trusted configuration
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingInput, path)
		}
		return nil, fmt.Errorf("read base stylesheet: %w", err)
	}
	return &BaseStylesheet{
		Path:    path,
		Content: string(content),
		Classes: DefinedClasses(string(content)),
	}, nil
}

// Defines reports whether class appears in a selector of the base stylesheet
func (b *BaseStylesheet) Defines(class string) bool {
	if b == nil {
		return false
	}
	_, ok := b.Classes[class]
	return ok
}

// DefinedClasses collects class selectors from CSS source. A '.' delimiter
// followed by an identifier is a class, escapes are resolved.
func DefinedClasses(content string) map[string]struct{} {
	classes := make(map[string]struct{})
	lexer := css.NewLexer(parse.NewInputString(content))
	afterDot := false
	for {
		tt, text := lexer.Next()
		if tt == css.ErrorToken {
			// ErrorToken at EOF is normal
			return classes
		}
		if afterDot && tt == css.IdentToken {
			classes[unescapeIdent(string(text))] = struct{}{}
		}
		afterDot = tt == css.DelimToken && len(text) == 1 && text[0] == '.'
	}
}

// unescapeIdent drops the backslash of simple escapes: `lg\:block` -> "lg:block"
func unescapeIdent(ident string) string {
	if !strings.Contains(ident, "\\") {
		return ident
	}
	var b strings.Builder
	escaped := false
	for _, r := range ident {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
