// Package builder holds the transient morphology tree produced by the
// readers and the section builder that flattens it into canonical
// Properties. The tree owns its sections from creation until Build, after
// which only the flattened representation survives.
package builder

import (
	"neuromorph/pkg/morphtypes"
)

// Section is one node of the transient morphology tree: an ordered run of
// points with a neurite type, a parent relation, and child sections in
// declaration order.
type Section struct {
	ID         int
	Type       morphtypes.SectionType
	Parent     *Section
	Children   []*Section
	Points     []morphtypes.Vec3
	Diameters  []float64
	Perimeters []float64
	Markers    []morphtypes.Marker
}

// AddPoint appends a point and its diameter to the section.
func (s *Section) AddPoint(p morphtypes.Vec3, diameter float64) {
	s.Points = append(s.Points, p)
	s.Diameters = append(s.Diameters, diameter)
}

// AddPerimeter appends a perimeter value to the section.
func (s *Section) AddPerimeter(perimeter float64) {
	s.Perimeters = append(s.Perimeters, perimeter)
}

// AddMarker records a point annotation on the section.
func (s *Section) AddMarker(m morphtypes.Marker) {
	s.Markers = append(s.Markers, m)
}

// Tree is the morphology under construction: root sections, at most one
// soma, and every created section in creation order.
type Tree struct {
	Path    string
	Family  morphtypes.CellFamily
	Version morphtypes.MorphologyVersion

	soma     *Section
	roots    []*Section
	sections []*Section
}

// NewTree returns an empty tree for the given source path and format tag.
func NewTree(path string, version morphtypes.MorphologyVersion) *Tree {
	return &Tree{Path: path, Family: morphtypes.FamilyNeuron, Version: version}
}

// NewSection allocates a section with the next creation-order ID. A nil
// parent, or the soma as parent, makes the section a root.
func (t *Tree) NewSection(parent *Section, typ morphtypes.SectionType) *Section {
	s := &Section{ID: len(t.sections), Type: typ, Parent: parent}
	t.sections = append(t.sections, s)
	if parent == nil || parent == t.soma {
		s.Parent = nil
		t.roots = append(t.roots, s)
	} else {
		parent.Children = append(parent.Children, s)
	}
	return s
}

// NewSoma allocates the soma section. A second soma fails with a soma error.
func (t *Tree) NewSoma() (*Section, error) {
	if t.soma != nil {
		return nil, morphtypes.NewError(morphtypes.KindSoma, t.Path, 0,
			"found a second cell body; a morphology holds at most one soma")
	}
	t.soma = &Section{ID: -1, Type: morphtypes.SectionSoma}
	return t.soma, nil
}

// Soma returns the soma section, or nil when none was declared.
func (t *Tree) Soma() *Section {
	return t.soma
}

// Roots returns the root sections in declaration order.
func (t *Tree) Roots() []*Section {
	return t.roots
}

// Sections returns every section in creation order.
func (t *Tree) Sections() []*Section {
	return t.sections
}
