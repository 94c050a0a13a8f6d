package utilcss

import (
	"fmt"
	"sort"
	"strings"
)

// GeneratedMarker separates the base stylesheet from generated rules
const GeneratedMarker = "/* Generated utility classes */"

// EscapeClass backslash-escapes every character outside [A-Za-z0-9_-] so the
// class name is a valid selector: "lg:w-1/2" -> `lg\:w-1\/2`. A digit at the
// start, or right after a leading hyphen, becomes a code point escape:
// "2xl:block" -> `\32 xl\:block`.
func EscapeClass(class string) string {
	var b strings.Builder
	b.Grow(len(class) + 4)
	for i, r := range class {
		switch {
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && class[0] == '-')):
			fmt.Fprintf(&b, "\\%x ", r)
			continue
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RulesFor renders the CSS rules for one parsed token. A nil declaration
// yields no rules.
//
// The selector is the escaped full class. A dark modifier prefixes ".dark ",
// the first state modifier appends its pseudo-class, and the first breakpoint
// modifier wraps every produced rule in its @media block.
func RulesFor(tok ParsedToken, decl *Declaration) []string {
	if decl == nil {
		return nil
	}

	selector := "." + EscapeClass(tok.Class)
	if tok.Dark() {
		selector = ".dark " + selector
	}
	state, pseudo, hasState := tok.State()

	var rules []string
	switch {
	case decl.Kind == KindSpace:
		if hasState {
			selector += pseudo
		}
		rules = []string{spaceRule(selector, decl)}
	case hasState && state == "focus" && decl.FocusMode == FocusCompose:
		// The composition rule is shared across themes, only the custom
		// property rule carries the dark prefix.
		composeSelector := "." + EscapeClass(tok.Class) + pseudo
		rules = []string{
			rule(selector, decl.Focus),
			rule(composeSelector, focusComposition),
		}
	case hasState && state == "focus" && decl.FocusMode == FocusOverride:
		rules = []string{rule(selector+pseudo, decl.Focus)}
	case hasState:
		rules = []string{rule(selector+pseudo, decl.Properties)}
	default:
		rules = []string{rule(selector, decl.Properties)}
	}

	if bp, ok := tok.Breakpoint(); ok {
		for i, r := range rules {
			rules[i] = "@media " + bp.MediaQuery() + " { " + r + " }"
		}
	}
	return rules
}

func rule(selector string, properties []Property) string {
	return selector + " { " + Block(properties) + " }"
}

// spaceRule targets every visible child after the first:
// ".space-y-4 > :not([hidden]) ~ :not([hidden]) { margin-top: 1rem; }"
func spaceRule(selector string, decl *Declaration) string {
	return selector + " > :not([hidden]) ~ :not([hidden]) { " + Block(decl.Properties) + " }"
}

// Synthesis is the ordered, deduplicated rule list for a class set
type Synthesis struct {
	Rules      []string
	Unresolved []string
}

// SortClasses orders classes by the synthesis sort key: ascending byte-wise
// comparison of the full source class, modifiers included. Output order, and
// therefore which duplicate rule is kept, depends only on this key.
func SortClasses(classes []string) []string {
	sorted := append([]string(nil), classes...)
	sort.Strings(sorted)
	return sorted
}

// Synthesize resolves every class in sort-key order and collects the rules.
// A rule whose text equals an earlier one is dropped. Classes with no known
// declaration are reported in Unresolved, also in sort-key order.
func Synthesize(classes []string) Synthesis {
	var out Synthesis
	rules := newRuleSet()
	for _, class := range SortClasses(classes) {
		tok := ParseToken(class)
		emitted := RulesFor(tok, Resolve(tok.Base))
		if len(emitted) == 0 {
			out.Unresolved = append(out.Unresolved, class)
			continue
		}
		rules.add(emitted...)
	}
	out.Rules = rules.list
	return out
}

// ruleSet keeps rules in first-seen order, keyed by their exact text
type ruleSet struct {
	seen map[string]struct{}
	list []string
}

func newRuleSet() *ruleSet {
	return &ruleSet{seen: make(map[string]struct{})}
}

func (s *ruleSet) add(rules ...string) {
	for _, r := range rules {
		if _, dup := s.seen[r]; dup {
			continue
		}
		s.seen[r] = struct{}{}
		s.list = append(s.list, r)
	}
}

// Assemble joins the base stylesheet, the generated marker, the focus ring
// preamble and the rules, newline separated with a trailing newline.
func Assemble(base string, rules []string) string {
	parts := make([]string, 0, len(rules)+3)
	parts = append(parts, strings.TrimRight(base, "\n"), GeneratedMarker, FocusRingPreamble)
	parts = append(parts, rules...)
	return strings.Join(parts, "\n") + "\n"
}
