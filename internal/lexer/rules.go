// This file contains the compiled tokenization rule table. The table is
// built once per process and is read-only afterwards, so concurrent parses
// may share it freely.
package lexer

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// markerNames are the fixed Neurolucida marker words. Each may be followed by
// digits selecting a numeric variant (e.g. Flower2 vs Flower).
var markerNames = []string{
	"Dot",
	"OpenStar",
	"FilledStar",
	"ShadedStar",
	"TexacoStar",
	"TriStar",
	"OpenCircle",
	"FilledCircle",
	"DoubleCircle",
	"MultiCircle",
	"CircleArrow",
	"CircleCross",
	"OpenSquare",
	"FilledSquare",
	"OpenDiamond",
	"FilledDiamond",
	"OpenUpTriangle",
	"FilledUpTriangle",
	"OpenDownTriangle",
	"FilledDownTriangle",
	"Asterisk",
	"Plus",
	"Cross",
	"Splat",
	"Flower",
	"Pinwheel",
	"SnowFlake",
	"MalteseCross",
}

// branchEndNames are the keywords that terminate a branch with no child.
var branchEndNames = []string{
	"Incomplete",
	"Generated",
	"High",
	"Low",
	"Normal",
	"Midpoint",
	"Origin",
}

// rule pairs a token kind with its anchored pattern. Earlier rules win ties
// on match length.
type rule struct {
	kind Kind
	re   *regexp.Regexp
}

var (
	ruleTableOnce sync.Once
	ruleTable     []rule
)

// alternation builds a regexp alternation from names, longest name first so
// leftmost-first matching cannot stop at a proper prefix of a longer name.
func alternation(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })
	for i, n := range sorted {
		sorted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(sorted, "|")
}

// rules returns the process-wide rule table, compiling it on first use.
func rules() []rule {
	ruleTableOnce.Do(func() {
		ruleTable = []rule{
			{KindWhitespace, regexp.MustCompile(`^[ \t\r]+`)},
			{KindNewline, regexp.MustCompile(`^\n`)},
			{KindComment, regexp.MustCompile(`^;[^\n]*`)},
			{KindSpineOpen, regexp.MustCompile(`^<\(`)},
			{KindSpineClose, regexp.MustCompile(`^\)>`)},
			{KindLParen, regexp.MustCompile(`^\(`)},
			{KindRParen, regexp.MustCompile(`^\)`)},
			{KindComma, regexp.MustCompile(`^,`)},
			{KindPipe, regexp.MustCompile(`^\|`)},
			{KindCellBody, regexp.MustCompile(`^(?i:cell ?body)`)},
			{KindAxon, regexp.MustCompile(`^(?i:axon)`)},
			{KindApical, regexp.MustCompile(`^(?i:apical)`)},
			{KindDendrite, regexp.MustCompile(`^(?i:dendrite)`)},
			{KindColor, regexp.MustCompile(`^(?i:color)`)},
			{KindFont, regexp.MustCompile(`^(?i:font)`)},
			{KindMarker, regexp.MustCompile(`^(?:` + alternation(markerNames) + `)[0-9]*`)},
			{KindBranchEnd, regexp.MustCompile(`^(?:` + alternation(branchEndNames) + `)`)},
			{KindString, regexp.MustCompile(`^"[^"\n]*"`)},
			{KindNumber, regexp.MustCompile(`^[+-]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)},
			// The word rule admits '.' so that malformed literals such as
			// 1.2.3 surface as one word token, not two numbers.
			{KindWord, regexp.MustCompile(`^[A-Za-z0-9_.]+`)},
		}
	})
	return ruleTable
}
