// Package lexer implements the Neurolucida ASC token stream and the
// lookahead cursor consumed by the ASC parser. Tokenization is longest-match
// over a fixed, priority-ordered rule table; ties on match length are broken
// by rule order.
package lexer

// Kind is the lexical class of a token.
type Kind int

const (
	// KindIllegal marks a byte sequence no rule matched.
	KindIllegal Kind = iota
	// KindWhitespace is a run of spaces, tabs, or carriage returns.
	KindWhitespace
	// KindNewline is a single line feed; it advances the line counter.
	KindNewline
	// KindComment is a ';' line comment up to the end of the line.
	KindComment
	// KindLParen is '('.
	KindLParen
	// KindRParen is ')'.
	KindRParen
	// KindSpineOpen is the spine opener '<('.
	KindSpineOpen
	// KindSpineClose is the spine closer ')>'.
	KindSpineClose
	// KindComma is ','.
	KindComma
	// KindPipe is the bifurcation separator '|'.
	KindPipe
	// KindCellBody is the soma introducer "CellBody" or "Cell Body"
	// (case-insensitive, exactly one optional internal space).
	KindCellBody
	// KindAxon is the axon introducer.
	KindAxon
	// KindApical is the apical dendrite introducer.
	KindApical
	// KindDendrite is the basal dendrite introducer.
	KindDendrite
	// KindColor is the Color metadata word.
	KindColor
	// KindFont is the Font metadata word.
	KindFont
	// KindMarker is one of the fixed marker names, optionally suffixed by
	// digits denoting a variant.
	KindMarker
	// KindBranchEnd is one of the branch termination keywords.
	KindBranchEnd
	// KindString is a double-quoted string; the lexeme keeps the quotes.
	KindString
	// KindNumber is a signed decimal number with optional exponent.
	KindNumber
	// KindWord is the catch-all alphanumeric word.
	KindWord
)

// String returns the name of the token kind.
func (k Kind) String() string {
	switch k {
	case KindIllegal:
		return "illegal"
	case KindWhitespace:
		return "whitespace"
	case KindNewline:
		return "newline"
	case KindComment:
		return "comment"
	case KindLParen:
		return "'('"
	case KindRParen:
		return "')'"
	case KindSpineOpen:
		return "'<('"
	case KindSpineClose:
		return "')>'"
	case KindComma:
		return "','"
	case KindPipe:
		return "'|'"
	case KindCellBody:
		return "cell body"
	case KindAxon:
		return "axon"
	case KindApical:
		return "apical"
	case KindDendrite:
		return "dendrite"
	case KindColor:
		return "color"
	case KindFont:
		return "font"
	case KindMarker:
		return "marker"
	case KindBranchEnd:
		return "branch end"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Token is one lexical token. Lexeme is a subslice of the input buffer and
// must not outlive it; Line is the 1-based line the token starts on.
type Token struct {
	Kind   Kind
	Lexeme string
	Line   int
}

// IsTrivia reports whether the token is skipped by the lookahead cursor.
func (t Token) IsTrivia() bool {
	return t.Kind == KindWhitespace || t.Kind == KindNewline || t.Kind == KindComment
}

// IsNeuriteType reports whether the token introduces a neurite tree.
func (t Token) IsNeuriteType() bool {
	switch t.Kind {
	case KindCellBody, KindAxon, KindApical, KindDendrite:
		return true
	default:
		return false
	}
}
