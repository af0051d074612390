// This file contains the lookahead cursor: a two-state (active / end of
// input) wrapper over the token stream that skips trivia transparently and
// exposes the assertion and consume primitives used by the parser.
package lexer

import (
	"neuromorph/pkg/morphtypes"
)

// Cursor maintains the current and lookahead tokens of a stream. Whitespace,
// newline, and comment tokens are never surfaced; line numbers stay accurate
// because every token records the line it started on.
type Cursor struct {
	stream *Stream
	path   string

	cur    Token
	curOK  bool
	next   Token
	nextOK bool

	// line of the most recently surfaced token, used for end-of-input
	// diagnostics once no token remains.
	lastLine int
}

// NewCursor returns a cursor over src. path is carried into diagnostics.
func NewCursor(path, src string) *Cursor {
	c := &Cursor{stream: NewStream(src), path: path, lastLine: 1}
	c.cur, c.curOK = c.scan()
	c.next, c.nextOK = c.scan()
	if c.curOK {
		c.lastLine = c.cur.Line
	}
	return c
}

// scan pulls the next non-trivia token from the stream.
func (c *Cursor) scan() (Token, bool) {
	for {
		tok, ok := c.stream.Next()
		if !ok {
			return Token{}, false
		}
		if tok.IsTrivia() {
			continue
		}
		return tok, true
	}
}

// Current returns the current token without consuming it.
func (c *Cursor) Current() (Token, bool) {
	return c.cur, c.curOK
}

// Peek returns the lookahead token without consuming anything.
func (c *Cursor) Peek() (Token, bool) {
	return c.next, c.nextOK
}

// Done reports whether the cursor has reached end of input.
func (c *Cursor) Done() bool {
	return !c.curOK
}

// Line returns the line of the current token, or of the last surfaced token
// once the input is exhausted.
func (c *Cursor) Line() int {
	if c.curOK {
		return c.cur.Line
	}
	return c.lastLine
}

// errf builds a raw-data diagnostic at the cursor position.
func (c *Cursor) errf(format string, args ...interface{}) error {
	return morphtypes.NewError(morphtypes.KindRawData, c.path, c.Line(), format, args...)
}

// Expect fails with a token-mismatch diagnostic when the current token is
// not of the given kind. It never advances.
func (c *Cursor) Expect(kind Kind, context string) error {
	if !c.curOK {
		return c.errf("expected %s but reached end of input while parsing %s", kind, context)
	}
	if c.cur.Kind != kind {
		return c.errf("expected %s but found %q while parsing %s", kind, c.cur.Lexeme, context)
	}
	return nil
}

// Advance shifts the lookahead into the current slot. It fails with an
// end-of-input diagnostic when the cursor is already exhausted.
func (c *Cursor) Advance() error {
	if !c.curOK {
		return c.errf("unexpected end of input")
	}
	c.lastLine = c.cur.Line
	c.cur, c.curOK = c.next, c.nextOK
	c.next, c.nextOK = c.scan()
	if c.curOK {
		c.lastLine = c.cur.Line
	}
	return nil
}

// Consume asserts the current token's kind, advances past it, and returns
// the new current token (the zero token at end of input).
func (c *Cursor) Consume(kind Kind, context string) (Token, error) {
	if err := c.Expect(kind, context); err != nil {
		return Token{}, err
	}
	if err := c.Advance(); err != nil {
		return Token{}, err
	}
	return c.cur, nil
}

// ConsumeUntil advances, discarding tokens, until a token of the given kind
// has been consumed (inclusive).
func (c *Cursor) ConsumeUntil(kind Kind) error {
	for {
		if !c.curOK {
			return c.errf("unexpected end of input while looking for %s", kind)
		}
		found := c.cur.Kind == kind
		if err := c.Advance(); err != nil {
			return err
		}
		if found {
			return nil
		}
	}
}

// ConsumeBalancedParens discards tokens until the parenthesis depth returns
// to zero. The caller has already consumed the opening '('; spine delimiters
// count toward the depth, but the terminating token must be ')'.
func (c *Cursor) ConsumeBalancedParens() error {
	depth := 1
	for depth > 0 {
		if !c.curOK {
			return c.errf("unbalanced parentheses: reached end of input at depth %d", depth)
		}
		tok := c.cur
		switch tok.Kind {
		case KindLParen, KindSpineOpen:
			depth++
		case KindRParen, KindSpineClose:
			depth--
		}
		if err := c.Advance(); err != nil {
			return err
		}
		if depth == 0 && tok.Kind != KindRParen {
			return c.errf("unbalanced parentheses: block closed by %q", tok.Lexeme)
		}
	}
	return nil
}
