// Package asc implements the Neurolucida ASCII morphology reader. The
// parser consumes the lookahead cursor from internal/lexer and builds the
// transient section tree that the shared section builder flattens into
// canonical Properties.
package asc

import (
	"strconv"
	"strings"

	"neuromorph/internal/builder"
	"neuromorph/internal/lexer"
	"neuromorph/internal/logger"
	"neuromorph/pkg/morphtypes"
)

// Parse parses one ASC buffer into canonical Properties. The first detected
// error is fatal; no partial result is returned.
func Parse(path string, data []byte) (*morphtypes.Properties, error) {
	p := &parser{
		path: path,
		cur:  lexer.NewCursor(path, string(data)),
		tree: builder.NewTree(path, morphtypes.VersionASC1),
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	logger.ParseStep(path, "asc parse complete", "sections", len(p.tree.Sections()))
	return p.tree.Build()
}

type parser struct {
	path string
	cur  *lexer.Cursor
	tree *builder.Tree
}

// frame is one level of the explicit branch stack. sec owns the points
// accumulated before the first bifurcation and is the parent of any child
// sections the frame creates; cur is the current point target and becomes
// nil after a pipe so the next point record opens a sibling child.
type frame struct {
	sec   *builder.Section
	cur   *builder.Section
	spine bool // closed by ')>' instead of ')'
}

func (p *parser) rawErrf(format string, args ...interface{}) error {
	return morphtypes.NewError(morphtypes.KindRawData, p.path, p.cur.Line(), format, args...)
}

// run scans the top level for neurite-type introducers. Anything else is
// skipped via balanced-paren consumption and never affects section numbering.
func (p *parser) run() error {
	for {
		tok, ok := p.cur.Current()
		if !ok {
			return nil
		}
		switch tok.Kind {
		case lexer.KindLParen:
			if err := p.cur.Advance(); err != nil {
				return err
			}
			if err := p.topLevelBlock(); err != nil {
				return err
			}
		case lexer.KindIllegal:
			return p.rawErrf("unexpected character %q", tok.Lexeme)
		default:
			// stray tokens between blocks are tolerated
			if err := p.cur.Advance(); err != nil {
				return err
			}
		}
	}
}

// topLevelBlock handles one parenthesized top-level construct; the opening
// '(' has already been consumed. Blocks without a recognizable neurite type
// are discarded wholesale.
func (p *parser) topLevelBlock() error {
	typ := morphtypes.SectionUndefined
	typed := false
	soma := false

header:
	for {
		tok, ok := p.cur.Current()
		if !ok {
			return p.rawErrf("unexpected end of input inside a top-level block")
		}
		switch tok.Kind {
		case lexer.KindString:
			if isCellBodyLabel(tok.Lexeme) {
				typed, soma = true, true
			}
			if err := p.cur.Advance(); err != nil {
				return err
			}
		case lexer.KindCellBody:
			typed, soma = true, true
			if err := p.cur.Advance(); err != nil {
				return err
			}
		case lexer.KindAxon, lexer.KindApical, lexer.KindDendrite:
			typ, typed = neuriteTypeOf(tok.Kind), true
			if err := p.cur.Advance(); err != nil {
				return err
			}
		case lexer.KindComma:
			if err := p.cur.Advance(); err != nil {
				return err
			}
		case lexer.KindLParen:
			next, ok2 := p.cur.Peek()
			switch {
			case ok2 && next.IsNeuriteType():
				// "(Dendrite)" style type header
				if err := p.cur.Advance(); err != nil {
					return err
				}
				if next.Kind == lexer.KindCellBody {
					soma = true
				} else {
					typ = neuriteTypeOf(next.Kind)
				}
				typed = true
				if err := p.cur.Advance(); err != nil {
					return err
				}
				if _, err := p.cur.Consume(lexer.KindRParen, "a tree type header"); err != nil {
					return err
				}
			case ok2 && (next.Kind == lexer.KindColor || next.Kind == lexer.KindFont):
				if err := p.cur.Advance(); err != nil {
					return err
				}
				if err := p.cur.ConsumeBalancedParens(); err != nil {
					return err
				}
			default:
				break header
			}
		default:
			break header
		}
	}

	if !typed {
		return p.cur.ConsumeBalancedParens()
	}
	if soma {
		sec, err := p.tree.NewSoma()
		if err != nil {
			return err
		}
		return p.parseBranch(sec)
	}
	return p.parseBranch(p.tree.NewSection(nil, typ))
}

// parseBranch consumes a branch body up to and including its closing token,
// using an explicit frame stack so nesting depth never grows the call stack.
func (p *parser) parseBranch(root *builder.Section) error {
	stack := []*frame{{sec: root, cur: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		tok, ok := p.cur.Current()
		if !ok {
			return p.rawErrf("unexpected end of input inside a branch")
		}
		switch tok.Kind {
		case lexer.KindRParen:
			if f.spine {
				return p.rawErrf("expected ')>' to close a spine but found ')'")
			}
			if err := p.cur.Advance(); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]

		case lexer.KindSpineClose:
			if !f.spine {
				return p.rawErrf("unexpected ')>' outside a spine")
			}
			if err := p.cur.Advance(); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]

		case lexer.KindPipe:
			if f.cur == f.sec && len(f.sec.Points) == 0 {
				return morphtypes.NewError(morphtypes.KindSectionBuilder, p.path, tok.Line,
					"bifurcation after a section with no points")
			}
			f.cur = nil
			if err := p.cur.Advance(); err != nil {
				return err
			}

		case lexer.KindSpineOpen:
			parent := f.target()
			child := p.tree.NewSection(parent, childType(parent))
			if err := p.cur.Advance(); err != nil {
				return err
			}
			nf := &frame{sec: child, cur: child, spine: true}
			stack = append(stack, nf)
			// '<(' also opens the spine's first point record
			if err := p.parseInlinePoint(nf); err != nil {
				return err
			}

		case lexer.KindLParen:
			next, ok2 := p.cur.Peek()
			switch {
			case ok2 && startsNumber(next):
				if err := p.cur.Advance(); err != nil {
					return err
				}
				if err := p.parsePointGroup(f); err != nil {
					return err
				}
			case ok2 && next.Kind == lexer.KindMarker:
				if err := p.cur.Advance(); err != nil {
					return err
				}
				if err := p.parseMarkerBlock(f); err != nil {
					return err
				}
			case ok2 && (next.Kind == lexer.KindLParen || next.Kind == lexer.KindSpineOpen ||
				next.Kind == lexer.KindPipe):
				// nested sibling-children wrapper: '( child | child )'; the nil
				// cur makes the first point record open a child of sec
				parent := f.target()
				if err := p.cur.Advance(); err != nil {
					return err
				}
				stack = append(stack, &frame{sec: parent})
			default:
				// metadata or unrecognized sub-block
				if err := p.cur.Advance(); err != nil {
					return err
				}
				if err := p.cur.ConsumeBalancedParens(); err != nil {
					return err
				}
			}

		case lexer.KindNumber:
			// bare point record; tolerated for irregular nesting
			line := tok.Line
			vals, err := p.parseNumberRun()
			if err != nil {
				return err
			}
			if err := p.addPoint(f, vals, line); err != nil {
				return err
			}

		case lexer.KindMarker:
			// bare marker name without a surrounding block
			name, variant := splitMarker(tok.Lexeme)
			f.target().AddMarker(morphtypes.Marker{Name: name, Variant: variant})
			if err := p.cur.Advance(); err != nil {
				return err
			}

		case lexer.KindBranchEnd:
			// terminates the current section with no child
			if err := p.cur.Advance(); err != nil {
				return err
			}

		case lexer.KindIllegal:
			return p.rawErrf("unexpected character %q", tok.Lexeme)

		case lexer.KindWord:
			if startsNumber(tok) {
				return morphtypes.NewError(morphtypes.KindRawData, p.path, tok.Line,
					"unable to parse %q as a number", tok.Lexeme)
			}
			if err := p.cur.Advance(); err != nil {
				return err
			}

		default:
			// strings, commas, and stray keywords inside a branch are labels
			if err := p.cur.Advance(); err != nil {
				return err
			}
		}
	}
	return nil
}

// target returns the section new points and children currently belong to.
func (f *frame) target() *builder.Section {
	if f.cur != nil {
		return f.cur
	}
	return f.sec
}

// parsePointGroup reads the numbers of a point record whose '(' has been
// consumed, then its closing ')'. Inside a spine the record may instead be
// closed by ')>', which is left for the frame loop to consume.
func (p *parser) parsePointGroup(f *frame) error {
	line := p.cur.Line()
	vals, err := p.parseNumberRun()
	if err != nil {
		return err
	}
	if tok, ok := p.cur.Current(); !ok || tok.Kind != lexer.KindSpineClose || !f.spine {
		if _, err := p.cur.Consume(lexer.KindRParen, "a point record"); err != nil {
			return err
		}
	}
	return p.addPoint(f, vals, line)
}

// parseInlinePoint reads the point record opened together with '<(', when
// one is present.
func (p *parser) parseInlinePoint(nf *frame) error {
	tok, ok := p.cur.Current()
	if !ok || !startsNumber(tok) {
		return nil
	}
	line := tok.Line
	vals, err := p.parseNumberRun()
	if err != nil {
		return err
	}
	if err := p.addPoint(nf, vals, line); err != nil {
		return err
	}
	// ')' closes just the record; ')>' would close the spine as well and is
	// handled by the frame loop
	if cur, ok := p.cur.Current(); ok && cur.Kind == lexer.KindRParen {
		return p.cur.Advance()
	}
	return nil
}

// parseNumberRun consumes consecutive number tokens, tolerating commas. A
// word that starts like a number is a malformed literal and fails with a
// raw-data diagnostic naming the lexeme and line.
func (p *parser) parseNumberRun() ([]float64, error) {
	var vals []float64
	for {
		tok, ok := p.cur.Current()
		if !ok {
			return nil, p.rawErrf("unexpected end of input inside a point record")
		}
		switch {
		case tok.Kind == lexer.KindNumber:
			v, err := strconv.ParseFloat(tok.Lexeme, 64)
			if err != nil {
				return nil, morphtypes.NewError(morphtypes.KindRawData, p.path, tok.Line,
					"unable to parse %q as a number", tok.Lexeme)
			}
			vals = append(vals, v)
			if err := p.cur.Advance(); err != nil {
				return nil, err
			}
		case tok.Kind == lexer.KindWord && startsNumber(tok):
			return nil, morphtypes.NewError(morphtypes.KindRawData, p.path, tok.Line,
				"unable to parse %q as a number", tok.Lexeme)
		case tok.Kind == lexer.KindComma:
			if err := p.cur.Advance(); err != nil {
				return nil, err
			}
		default:
			return vals, nil
		}
	}
}

// addPoint validates a point record and appends it to the frame's current
// section, opening a new sibling child when a pipe reset the target.
func (p *parser) addPoint(f *frame, vals []float64, line int) error {
	if len(vals) < 4 || len(vals) > 5 {
		return morphtypes.NewError(morphtypes.KindRawData, p.path, line,
			"a point record needs 4 or 5 values, found %d", len(vals))
	}
	target := f.cur
	if target == nil {
		target = p.tree.NewSection(f.sec, childType(f.sec))
		f.cur = target
	}
	target.AddPoint(morphtypes.Vec3{vals[0], vals[1], vals[2]}, vals[3])
	if len(vals) == 5 {
		target.AddPerimeter(vals[4])
	}
	return nil
}

// parseMarkerBlock records a point annotation whose opening '(' has been
// consumed. The block may carry metadata sub-blocks and one parenthesized
// coordinate-and-radius record before its closing ')'. Markers never create
// sections.
func (p *parser) parseMarkerBlock(f *frame) error {
	tok, _ := p.cur.Current()
	name, variant := splitMarker(tok.Lexeme)
	m := morphtypes.Marker{Name: name, Variant: variant}
	if err := p.cur.Advance(); err != nil {
		return err
	}

	for {
		cur, ok := p.cur.Current()
		if !ok {
			return p.rawErrf("unexpected end of input inside a marker block")
		}
		switch {
		case cur.Kind == lexer.KindRParen:
			f.target().AddMarker(m)
			return p.cur.Advance()
		case cur.Kind == lexer.KindLParen:
			next, ok2 := p.cur.Peek()
			if ok2 && startsNumber(next) && m.Location == nil {
				if err := p.cur.Advance(); err != nil {
					return err
				}
				line := p.cur.Line()
				vals, err := p.parseNumberRun()
				if err != nil {
					return err
				}
				if _, err := p.cur.Consume(lexer.KindRParen, "a marker location"); err != nil {
					return err
				}
				if len(vals) < 3 || len(vals) > 4 {
					return morphtypes.NewError(morphtypes.KindRawData, p.path, line,
						"a marker location needs 3 or 4 values, found %d", len(vals))
				}
				loc := &morphtypes.MarkerLocation{Position: morphtypes.Vec3{vals[0], vals[1], vals[2]}}
				if len(vals) == 4 {
					loc.Radius = vals[3]
				}
				m.Location = loc
				continue
			}
			if err := p.cur.Advance(); err != nil {
				return err
			}
			if err := p.cur.ConsumeBalancedParens(); err != nil {
				return err
			}
		case cur.Kind == lexer.KindIllegal:
			return p.rawErrf("unexpected character %q", cur.Lexeme)
		default:
			if err := p.cur.Advance(); err != nil {
				return err
			}
		}
	}
}

// childType returns the neurite type a child section inherits. Sections
// sprouting from the soma contour are neurites of unknown type, never soma.
func childType(parent *builder.Section) morphtypes.SectionType {
	if parent.Type == morphtypes.SectionSoma {
		return morphtypes.SectionUndefined
	}
	return parent.Type
}

// startsNumber reports whether the token begins like a numeric literal.
func startsNumber(t lexer.Token) bool {
	if t.Kind == lexer.KindNumber {
		return true
	}
	if t.Kind != lexer.KindWord || len(t.Lexeme) == 0 {
		return false
	}
	c := t.Lexeme[0]
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}

// neuriteTypeOf maps a neurite introducer token to its section type.
func neuriteTypeOf(k lexer.Kind) morphtypes.SectionType {
	switch k {
	case lexer.KindAxon:
		return morphtypes.SectionAxon
	case lexer.KindApical:
		return morphtypes.SectionApicalDendrite
	case lexer.KindDendrite:
		return morphtypes.SectionBasalDendrite
	case lexer.KindCellBody:
		return morphtypes.SectionSoma
	default:
		return morphtypes.SectionUndefined
	}
}

// isCellBodyLabel reports whether a quoted label names the cell body,
// tolerating exactly one optional internal space.
func isCellBodyLabel(lexeme string) bool {
	s := strings.ToLower(strings.Trim(lexeme, `"`))
	return s == "cellbody" || s == "cell body"
}

// splitMarker separates a marker lexeme into its base name and numeric
// variant (0 when no digits follow the name).
func splitMarker(lexeme string) (string, int) {
	i := len(lexeme)
	for i > 0 && lexeme[i-1] >= '0' && lexeme[i-1] <= '9' {
		i--
	}
	variant := 0
	if i < len(lexeme) {
		variant, _ = strconv.Atoi(lexeme[i:])
	}
	return lexeme[:i], variant
}
