package utilcss

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// ContentConfig is the subset of the content configuration module the compiler reads
type ContentConfig struct {
	Path    string   `json:"-" toml:"-"`
	Content []string `json:"content" toml:"content"`
	Plugins []string `json:"plugins" toml:"plugins"` // Opaque, recorded for reporting only
}

// LoadContentConfig reads the content configuration module at path. The format is
// chosen by extension. JavaScript modules are lexed, never executed.
func LoadContentConfig(path string) (*ContentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	var cfg *ContentConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".js", ".cjs", ".mjs":
		cfg, err = parseJSContentConfig(data)
	case ".json":
		cfg, err = parseJSONContentConfig(data)
	case ".toml":
		cfg, err = parseTOMLContentConfig(data)
	case ".yaml", ".yml":
		cfg, err = parseYAMLContentConfig(data)
	default:
		err = fmt.Errorf("unsupported extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	if cfg.Content == nil {
		return nil, fmt.Errorf("%w: %s: no content array", ErrConfig, path)
	}

	cfg.Path = path
	for i, p := range cfg.Content {
		cfg.Content[i] = NormalizePattern(p)
	}
	return cfg, nil
}

func parseJSONContentConfig(data []byte) (*ContentConfig, error) {
	var raw struct {
		Content []string          `json:"content"`
		Plugins []json.RawMessage `json:"plugins"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	cfg := &ContentConfig{Content: raw.Content}
	for _, p := range raw.Plugins {
		cfg.Plugins = append(cfg.Plugins, string(bytes.TrimSpace(p)))
	}
	return cfg, nil
}

func parseTOMLContentConfig(data []byte) (*ContentConfig, error) {
	var cfg ContentConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseYAMLContentConfig(data []byte) (*ContentConfig, error) {
	m, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, err
	}
	cfg := &ContentConfig{}
	if raw, ok := m["content"]; ok {
		list, ok := raw.([]interface{})
		if !ok {
			return nil, fmt.Errorf("content must be a list, got %T", raw)
		}
		cfg.Content = make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("content entries must be strings, got %T", item)
			}
			cfg.Content = append(cfg.Content, s)
		}
	}
	if list, ok := m["plugins"].([]interface{}); ok {
		for _, item := range list {
			cfg.Plugins = append(cfg.Plugins, fmt.Sprint(item))
		}
	}
	return cfg, nil
}

// jsToken is a significant token of a JavaScript module
type jsToken struct {
	tt   js.TokenType
	data string
}

// parseJSContentConfig finds the first `content: [...]` and `plugins: [...]`
// arrays in a JavaScript module. Only string literal entries of content are
// kept; plugin entries are recorded as source text.
func parseJSContentConfig(data []byte) (*ContentConfig, error) {
	tokens, err := lexJS(data)
	if err != nil {
		return nil, err
	}

	cfg := &ContentConfig{}
	for i := 0; i+2 < len(tokens); i++ {
		key, ok := propertyKey(tokens[i])
		if !ok || tokens[i+1].tt != js.ColonToken || tokens[i+2].tt != js.OpenBracketToken {
			continue
		}
		elements, end := arrayElements(tokens, i+2)
		switch {
		case key == "content" && cfg.Content == nil:
			cfg.Content = []string{}
			for _, el := range elements {
				if len(el) == 1 {
					if s, ok := stringLiteral(el[0]); ok {
						cfg.Content = append(cfg.Content, s)
					}
				}
			}
		case key == "plugins" && cfg.Plugins == nil:
			cfg.Plugins = []string{}
			for _, el := range elements {
				cfg.Plugins = append(cfg.Plugins, joinTokens(el))
			}
		}
		i = end
	}
	return cfg, nil
}

func lexJS(data []byte) ([]jsToken, error) {
	l := js.NewLexer(parse.NewInputBytes(data))
	var tokens []jsToken
	for {
		tt, text := l.Next()
		switch tt {
		case js.ErrorToken:
			if err := l.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, err
			}
			return tokens, nil
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}
		tokens = append(tokens, jsToken{tt: tt, data: string(text)})
	}
}

// propertyKey accepts `content` and `"content"` as object keys
func propertyKey(tok jsToken) (string, bool) {
	if tok.tt == js.IdentifierToken {
		return tok.data, true
	}
	return stringLiteral(tok)
}

func stringLiteral(tok jsToken) (string, bool) {
	switch tok.tt {
	case js.StringToken:
		if len(tok.data) < 2 {
			return "", false
		}
		return tok.data[1 : len(tok.data)-1], true
	case js.TemplateToken:
		if len(tok.data) < 2 || strings.Contains(tok.data, "${") {
			return "", false
		}
		return tok.data[1 : len(tok.data)-1], true
	}
	return "", false
}

// arrayElements splits the array opening at tokens[open] into its top-level
// elements and returns the index of the closing bracket.
func arrayElements(tokens []jsToken, open int) ([][]jsToken, int) {
	var (
		elements [][]jsToken
		current  []jsToken
		depth    int
	)
	for i := open; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.tt {
		case js.OpenBracketToken, js.OpenBraceToken, js.OpenParenToken:
			depth++
			if depth == 1 {
				continue
			}
		case js.CloseBracketToken, js.CloseBraceToken, js.CloseParenToken:
			depth--
			if depth == 0 {
				if len(current) > 0 {
					elements = append(elements, current)
				}
				return elements, i
			}
		case js.CommaToken:
			if depth == 1 {
				if len(current) > 0 {
					elements = append(elements, current)
				}
				current = nil
				continue
			}
		}
		current = append(current, tok)
	}
	return elements, len(tokens) - 1
}

func joinTokens(tokens []jsToken) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.data)
	}
	return b.String()
}
