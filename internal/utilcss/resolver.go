package utilcss

import (
	"strings"
)

// resolveRule pairs a predicate with the resolver tried when it matches.
// Rules are tried in order; the first non-nil declaration wins.
type resolveRule struct {
	name    string
	match   func(base string) bool
	resolve func(base string) *Declaration
}

// resolveRules is the dispatch table for base utility names
var resolveRules = []resolveRule{
	{name: "static", match: isStatic, resolve: resolveStatic},
	{name: "font-size", match: isFontSize, resolve: resolveFontSize},
	{name: "arbitrary", match: isArbitrary, resolve: resolveArbitrary},
	{name: "color", match: hasPrefix("bg-", "text-", "border-"), resolve: resolveColor},
	{name: "ring", match: hasPrefix("ring-"), resolve: resolveRing},
	{name: "space", match: hasPrefix("space-x-", "space-y-"), resolve: resolveSpace},
	{name: "grid-cols", match: hasPrefix("grid-cols-"), resolve: resolveGridCols},
	{name: "spacing", match: isSpacingUtility, resolve: resolveSpacing},
}

// Resolve maps a base utility name to its declaration. It returns nil for unknown
// utilities, unknown palette or spacing keys, and malformed bracket values.
func Resolve(base string) *Declaration {
	for _, rule := range resolveRules {
		if !rule.match(base) {
			continue
		}
		if decl := rule.resolve(base); decl != nil {
			return decl
		}
	}
	return nil
}

func hasPrefix(prefixes ...string) func(string) bool {
	return func(base string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(base, p) {
				return true
			}
		}
		return false
	}
}

func isStatic(base string) bool {
	_, ok := staticUtilities[base]
	return ok
}

func resolveStatic(base string) *Declaration {
	decl := &Declaration{Kind: KindStatic, Properties: staticUtilities[base]}
	if focus, ok := focusOverrides[base]; ok {
		decl.Focus = focus
		decl.FocusMode = FocusOverride
	}
	return decl
}

func isFontSize(base string) bool {
	_, ok := FontSizes[base]
	return ok
}

func resolveFontSize(base string) *Declaration {
	fs := FontSizes[base]
	return &Declaration{
		Kind:       KindFontSize,
		Properties: props("font-size", fs.Size, "line-height", fs.LineHeight),
	}
}

// arbitraryUtility maps a utility prefix accepting [value] to its CSS property
type arbitraryUtility struct {
	prefix   string
	property string
	tracks   bool // top-level commas separate track sizes
}

var arbitraryUtilities = []arbitraryUtility{
	{prefix: "grid-cols-", property: "grid-template-columns", tracks: true},
	{prefix: "grid-rows-", property: "grid-template-rows", tracks: true},
	{prefix: "min-h-", property: "min-height"},
	{prefix: "min-w-", property: "min-width"},
	{prefix: "max-h-", property: "max-height"},
	{prefix: "max-w-", property: "max-width"},
	{prefix: "w-", property: "width"},
	{prefix: "h-", property: "height"},
	{prefix: "bg-", property: "background-color"},
}

func isArbitrary(base string) bool {
	return strings.HasSuffix(base, "]") && strings.Contains(base, "-[")
}

func resolveArbitrary(base string) *Declaration {
	for _, u := range arbitraryUtilities {
		if !strings.HasPrefix(base, u.prefix+"[") {
			continue
		}
		value := strings.TrimSuffix(strings.TrimPrefix(base, u.prefix+"["), "]")
		if value == "" || strings.ContainsAny(value, "[]") {
			return nil
		}
		value = strings.ReplaceAll(value, "_", " ")
		if u.tracks {
			value = trackList(value)
		}
		return &Declaration{Kind: KindArbitrary, Properties: props(u.property, value)}
	}
	return nil
}

// trackList turns top-level commas into spaces: "2fr,1fr" -> "2fr 1fr".
// Commas inside functions such as minmax(0,1fr) are kept.
func trackList(value string) string {
	var b strings.Builder
	depth := 0
	for _, r := range value {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				r = ' '
			}
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

var colorProperties = []struct {
	prefix   string
	property string
}{
	{prefix: "bg-", property: "background-color"},
	{prefix: "text-", property: "color"},
	{prefix: "border-", property: "border-color"},
}

func resolveColor(base string) *Declaration {
	for _, cp := range colorProperties {
		key, ok := strings.CutPrefix(base, cp.prefix)
		if !ok {
			continue
		}
		value, ok := ColorValue(key)
		if !ok {
			return nil
		}
		return &Declaration{Kind: KindColor, Properties: props(cp.property, value)}
	}
	return nil
}

// Focus ring custom properties read by the :focus composition rule
const (
	ringWidthVar       = "--fb-focus-ring-width"
	ringOffsetVar      = "--fb-focus-ring-offset"
	ringColorVar       = "--fb-focus-ring-color"
	ringOffsetColorVar = "--fb-focus-ring-offset-color"

	ringDefaultShadow = "rgba(148, 163, 184, 0.4)"
	ringFocusAlpha    = 0.45
)

// FocusRingPreamble declares the defaults for the focus ring custom properties
var FocusRingPreamble = ":root { " + Block(props(
	ringWidthVar, "2px",
	ringOffsetVar, "0",
	ringColorVar, "rgba(59, 130, 246, 0.45)",
	ringOffsetColorVar, "transparent",
)) + " }"

// focusComposition is the body shared by every focus:ring-* utility
var focusComposition = props(
	"outline", "none",
	"box-shadow", "0 0 0 var("+ringOffsetVar+", 0) var("+ringOffsetColorVar+", transparent), "+
		"0 0 0 calc(var("+ringWidthVar+", 2px) + var("+ringOffsetVar+", 0)) var("+ringColorVar+", rgba(59, 130, 246, 0.45))",
)

func resolveRing(base string) *Declaration {
	if key, ok := strings.CutPrefix(base, "ring-offset-"); ok {
		if numericKey.MatchString(key) {
			width := key + "px"
			return &Declaration{
				Kind:       KindRing,
				Properties: props(ringOffsetVar, width),
				Focus:      props(ringOffsetVar, width),
				FocusMode:  FocusCompose,
			}
		}
		solid, ok := ColorValue(key)
		if !ok {
			return nil
		}
		focus, ok := ringColor(key, 1)
		if !ok {
			return nil
		}
		return &Declaration{
			Kind:       KindRing,
			Properties: props(ringOffsetColorVar, solid),
			Focus:      props(ringOffsetColorVar, focus),
			FocusMode:  FocusCompose,
		}
	}

	key := strings.TrimPrefix(base, "ring-")
	if numericKey.MatchString(key) {
		width := key + "px"
		return &Declaration{
			Kind:       KindRing,
			Properties: props("box-shadow", "0 0 0 "+width+" "+ringDefaultShadow),
			Focus:      props(ringWidthVar, width),
			FocusMode:  FocusCompose,
		}
	}

	solid, ok := ColorValue(key)
	if !ok {
		return nil
	}
	focus, ok := ringColor(key, ringFocusAlpha)
	if !ok {
		return nil
	}
	return &Declaration{
		Kind:       KindRing,
		Properties: props("box-shadow", "0 0 0 1px "+solid, ringColorVar, focus),
		Focus:      props(ringColorVar, focus),
		FocusMode:  FocusCompose,
	}
}

// ringColor renders a palette key as rgba. An explicit /alpha suffix wins over
// defaultAlpha.
func ringColor(key string, defaultAlpha float64) (string, bool) {
	if strings.Contains(key, "/") {
		return ColorValue(key)
	}
	return paletteRGBA(key, defaultAlpha)
}

func resolveSpace(base string) *Declaration {
	axis, property := "y", "margin-top"
	key, ok := strings.CutPrefix(base, "space-y-")
	if !ok {
		key = strings.TrimPrefix(base, "space-x-")
		axis, property = "x", "margin-left"
	}
	value, ok := Spacing(key)
	if !ok {
		return nil
	}
	return &Declaration{Kind: KindSpace, Properties: props(property, value), Axis: axis}
}

func resolveGridCols(base string) *Declaration {
	key := strings.TrimPrefix(base, "grid-cols-")
	if !numericKey.MatchString(key) || key == "0" {
		return nil
	}
	return &Declaration{
		Kind:       KindSpacing,
		Properties: props("grid-template-columns", "repeat("+key+", minmax(0, 1fr))"),
	}
}

// spacingUtility maps a prefix to the properties its spacing value is written to
type spacingUtility struct {
	prefix     string
	properties []string
	negative   bool // accepts a leading "-"
	auto       bool // accepts "auto"
	sizing     bool // accepts "full", "screen" and fractions
}

// Longer prefixes first so "gap-x-2" is not read as gap with key "x-2".
var spacingUtilities = []spacingUtility{
	{prefix: "gap-x", properties: []string{"column-gap"}},
	{prefix: "gap-y", properties: []string{"row-gap"}},
	{prefix: "gap", properties: []string{"gap"}},
	{prefix: "px", properties: []string{"padding-left", "padding-right"}},
	{prefix: "py", properties: []string{"padding-top", "padding-bottom"}},
	{prefix: "pt", properties: []string{"padding-top"}},
	{prefix: "pr", properties: []string{"padding-right"}},
	{prefix: "pb", properties: []string{"padding-bottom"}},
	{prefix: "pl", properties: []string{"padding-left"}},
	{prefix: "p", properties: []string{"padding"}},
	{prefix: "mx", properties: []string{"margin-left", "margin-right"}, negative: true, auto: true},
	{prefix: "my", properties: []string{"margin-top", "margin-bottom"}, negative: true, auto: true},
	{prefix: "mt", properties: []string{"margin-top"}, negative: true, auto: true},
	{prefix: "mr", properties: []string{"margin-right"}, negative: true, auto: true},
	{prefix: "mb", properties: []string{"margin-bottom"}, negative: true, auto: true},
	{prefix: "ml", properties: []string{"margin-left"}, negative: true, auto: true},
	{prefix: "m", properties: []string{"margin"}, negative: true, auto: true},
	{prefix: "inset-x", properties: []string{"left", "right"}, negative: true, auto: true, sizing: true},
	{prefix: "inset-y", properties: []string{"top", "bottom"}, negative: true, auto: true, sizing: true},
	{prefix: "inset", properties: []string{"inset"}, negative: true, auto: true, sizing: true},
	{prefix: "top", properties: []string{"top"}, negative: true, auto: true, sizing: true},
	{prefix: "right", properties: []string{"right"}, negative: true, auto: true, sizing: true},
	{prefix: "bottom", properties: []string{"bottom"}, negative: true, auto: true, sizing: true},
	{prefix: "left", properties: []string{"left"}, negative: true, auto: true, sizing: true},
	{prefix: "min-h", properties: []string{"min-height"}, sizing: true},
	{prefix: "size", properties: []string{"width", "height"}, auto: true, sizing: true},
	{prefix: "w", properties: []string{"width"}, auto: true, sizing: true},
	{prefix: "h", properties: []string{"height"}, auto: true, sizing: true},
}

var screenValues = map[string]string{
	"width":  "100vw",
	"height": "100vh",
}

func isSpacingUtility(base string) bool {
	name := strings.TrimPrefix(base, "-")
	for _, u := range spacingUtilities {
		if strings.HasPrefix(name, u.prefix+"-") {
			return true
		}
	}
	return false
}

func resolveSpacing(base string) *Declaration {
	name, negative := strings.CutPrefix(base, "-")
	for _, u := range spacingUtilities {
		key, ok := strings.CutPrefix(name, u.prefix+"-")
		if !ok {
			continue
		}
		if negative && !u.negative {
			return nil
		}
		value, ok := spacingValue(u, key)
		if !ok {
			continue
		}
		if negative && value != "0rem" && value != "auto" {
			value = "-" + value
		}
		pairs := make([]string, 0, len(u.properties)*2)
		for _, p := range u.properties {
			v := value
			if key == "screen" {
				v = screenValues[p]
			}
			pairs = append(pairs, p, v)
		}
		return &Declaration{Kind: KindSpacing, Properties: props(pairs...)}
	}
	return nil
}

func spacingValue(u spacingUtility, key string) (string, bool) {
	if v, ok := Spacing(key); ok {
		return v, true
	}
	if u.auto && key == "auto" {
		return "auto", true
	}
	if !u.sizing {
		return "", false
	}
	if key == "full" {
		return "100%", true
	}
	if key == "screen" {
		for _, p := range u.properties {
			if _, ok := screenValues[p]; !ok {
				return "", false
			}
		}
		return "screen", true
	}
	return Fraction(key)
}
