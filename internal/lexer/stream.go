// This file contains the token stream: a lazy, longest-match scan over one
// immutable input buffer with line tracking.
package lexer

// Stream produces tokens from an input buffer on demand. Tokens borrow
// subslices of the buffer and must not outlive it.
type Stream struct {
	src  string
	pos  int
	line int
}

// NewStream returns a stream over src starting at line 1.
func NewStream(src string) *Stream {
	return &Stream{src: src, line: 1}
}

// Next returns the next token, or ok=false at end of input. Bytes no rule
// matches are surfaced one at a time as KindIllegal tokens.
func (s *Stream) Next() (Token, bool) {
	if s.pos >= len(s.src) {
		return Token{}, false
	}
	rest := s.src[s.pos:]

	bestLen := 0
	bestKind := KindIllegal
	for _, r := range rules() {
		loc := r.re.FindStringIndex(rest)
		if loc == nil {
			continue
		}
		// Anchored patterns always match at 0; keep the longest match, and
		// on equal length the earliest rule.
		if loc[1] > bestLen {
			bestLen = loc[1]
			bestKind = r.kind
		}
	}
	if bestLen == 0 {
		bestLen = 1
		bestKind = KindIllegal
	}

	tok := Token{Kind: bestKind, Lexeme: rest[:bestLen], Line: s.line}
	s.pos += bestLen
	if bestKind == KindNewline {
		s.line++
	}
	return tok, true
}

// Line returns the 1-based line of the next token to be produced.
func (s *Stream) Line() int {
	return s.line
}
