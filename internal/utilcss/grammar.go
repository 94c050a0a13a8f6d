package utilcss

// ModifierSeparator splits variant prefixes from the base utility
const ModifierSeparator = ":"

// DarkModifier conditions a rule on an ancestor carrying the .dark class
const DarkModifier = "dark"

// Breakpoint is a responsive prefix mapped to its media query
type Breakpoint struct {
	Name     string
	MinWidth string
}

// MediaQuery returns the condition used in @media
func (b Breakpoint) MediaQuery() string {
	return "(min-width: " + b.MinWidth + ")"
}

// Breakpoints in mobile-first order
var Breakpoints = []Breakpoint{
	{Name: "sm", MinWidth: "640px"},
	{Name: "md", MinWidth: "768px"},
	{Name: "lg", MinWidth: "1024px"},
	{Name: "xl", MinWidth: "1280px"},
	{Name: "2xl", MinWidth: "1536px"},
}

// stateSelectors maps state prefixes to the pseudo-class they append
var stateSelectors = map[string]string{
	"hover":         ":hover",
	"focus":         ":focus",
	"active":        ":active",
	"focus-within":  ":focus-within",
	"focus-visible": ":focus-visible",
	"disabled":      ":disabled",
}

// ParseToken splits a class on the modifier separator. The last segment is the base
// utility, everything before it is a modifier kept in source order.
//
// "dark:hover:bg-gray-700" -> {Modifiers: [dark hover], Base: bg-gray-700}
func ParseToken(class string) ParsedToken {
	parts := splitOutsideBrackets(class, ModifierSeparator[0])
	return ParsedToken{
		Class:     class,
		Modifiers: parts[:len(parts)-1],
		Base:      parts[len(parts)-1],
	}
}

// splitOutsideBrackets splits s on sep, ignoring separators inside [...]
func splitOutsideBrackets(s string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// Breakpoint returns the first responsive modifier
func (t ParsedToken) Breakpoint() (Breakpoint, bool) {
	for _, m := range t.Modifiers {
		for _, bp := range Breakpoints {
			if bp.Name == m {
				return bp, true
			}
		}
	}
	return Breakpoint{}, false
}

// State returns the first pseudo-state modifier and its pseudo-class
func (t ParsedToken) State() (name, pseudo string, ok bool) {
	for _, m := range t.Modifiers {
		if sel, found := stateSelectors[m]; found {
			return m, sel, true
		}
	}
	return "", "", false
}

// Dark reports whether the dark-theme modifier is present
func (t ParsedToken) Dark() bool {
	for _, m := range t.Modifiers {
		if m == DarkModifier {
			return true
		}
	}
	return false
}

// IsKnownModifier reports whether m has an effect on rule synthesis
func IsKnownModifier(m string) bool {
	if m == DarkModifier {
		return true
	}
	if _, ok := stateSelectors[m]; ok {
		return true
	}
	for _, bp := range Breakpoints {
		if bp.Name == m {
			return true
		}
	}
	return false
}
