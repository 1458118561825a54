package owl

// LiteralKind discriminates the three literal shapes of the Functional
// Syntax grammar: a bare quoted string, a string with a language tag, and
// a string with an explicit datatype.
type LiteralKind string

const (
	// LiteralPlain is a quoted lexical form with no suffix.
	LiteralPlain LiteralKind = "plain"

	// LiteralLang is a lexical form followed by @tag.
	LiteralLang LiteralKind = "lang"

	// LiteralTyped is a lexical form followed by ^^datatype.
	LiteralTyped LiteralKind = "typed"
)

// Literal is an OWL2 literal: a lexical form plus exactly one of
// {nothing, language tag, datatype IRI}. The language tag and the
// datatype are mutually exclusive; construct literals through
// NewLiteral, NewLangLiteral, or NewTypedLiteral to preserve that
// invariant.
type Literal struct {
	// Lexical is the quoted text exactly as written, without the quotes.
	Lexical string

	// Lang is the language tag for LiteralLang literals, empty otherwise.
	Lang string

	// Datatype is the datatype IRI for LiteralTyped literals, empty otherwise.
	Datatype IRI
}

// NewLiteral creates a plain literal with no language tag or datatype.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewLangLiteral creates a language-tagged literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// NewTypedLiteral creates a literal with an explicit datatype.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	return Literal{Lexical: lexical, Datatype: datatype}
}

// Kind reports which of the three literal shapes this value has.
func (l Literal) Kind() LiteralKind {
	switch {
	case l.Lang != "":
		return LiteralLang
	case l.Datatype != "":
		return LiteralTyped
	default:
		return LiteralPlain
	}
}
