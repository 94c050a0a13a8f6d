package utilcss

// Explanation describes how one class compiles
type Explanation struct {
	Token       ParsedToken
	Declaration *Declaration // nil when the base utility is unknown
	Rules       []string
	Ignored     []string // Modifiers with no effect on the emitted rules
}

// Explain parses, resolves and synthesizes a single class
func Explain(class string) Explanation {
	tok := ParseToken(class)
	decl := Resolve(tok.Base)
	exp := Explanation{
		Token:       tok,
		Declaration: decl,
		Rules:       RulesFor(tok, decl),
	}
	for _, m := range tok.Modifiers {
		if !IsKnownModifier(m) {
			exp.Ignored = append(exp.Ignored, m)
		}
	}
	return exp
}
