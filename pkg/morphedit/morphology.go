// Package morphedit provides the mutable counterpart of pkg/morphology.
// An editable morphology keeps per-section point vectors that may be changed
// in place, supports appending and deleting sections, and rebuilds the
// canonical read-only representation through the shared section builder.
package morphedit

import (
	"sort"

	"neuromorph/internal/builder"
	"neuromorph/pkg/morphology"
	"neuromorph/pkg/morphtypes"
)

// Section is one mutable section. Points, Diameters, and Perimeters may be
// edited freely; structural edits go through the owning Morphology.
type Section struct {
	id         int
	Type       morphtypes.SectionType
	Points     []morphtypes.Vec3
	Diameters  []float64
	Perimeters []float64

	parent   *Section
	children []*Section
}

// ID returns the section identifier within its morphology.
func (s *Section) ID() int {
	return s.id
}

// Parent returns the parent section, or nil for roots.
func (s *Section) Parent() *Section {
	return s.parent
}

// Children returns the child sections in declaration order.
func (s *Section) Children() []*Section {
	return s.children
}

// Soma is the mutable cell body.
type Soma struct {
	Points    []morphtypes.Vec3
	Diameters []float64
}

// Morphology is a mutable neuron reconstruction.
type Morphology struct {
	nextID   int
	sections map[int]*Section
	roots    []*Section
	soma     Soma
	family   morphtypes.CellFamily
	version  morphtypes.MorphologyVersion
}

// New returns an empty editable morphology.
func New() *Morphology {
	return &Morphology{
		sections: map[int]*Section{},
		family:   morphtypes.FamilyNeuron,
		version:  morphtypes.VersionUndefined,
	}
}

// Open reads, parses, and wraps the morphology file at path for editing.
func Open(path string) (*Morphology, error) {
	src, err := morphology.Open(path)
	if err != nil {
		return nil, err
	}
	return FromImmutable(src), nil
}

// FromImmutable deep-copies an immutable morphology into an editable one.
func FromImmutable(src *morphology.Morphology) *Morphology {
	m := New()
	m.family = src.CellFamily()
	m.version = src.Version()
	m.soma.Points = append([]morphtypes.Vec3(nil), src.Soma().Points()...)
	m.soma.Diameters = append([]float64(nil), src.Soma().Diameters()...)

	for _, s := range src.Sections() {
		sec := &Section{
			id:         s.ID(),
			Type:       s.Type(),
			Points:     append([]morphtypes.Vec3(nil), s.Points()...),
			Diameters:  append([]float64(nil), s.Diameters()...),
			Perimeters: append([]float64(nil), s.Perimeters()...),
		}
		m.sections[sec.id] = sec
		if sec.id >= m.nextID {
			m.nextID = sec.id + 1
		}
	}
	for _, s := range src.Sections() {
		sec := m.sections[s.ID()]
		if parent, ok := s.Parent(); ok {
			p := m.sections[parent.ID()]
			sec.parent = p
			p.children = append(p.children, sec)
		} else {
			m.roots = append(m.roots, sec)
		}
	}
	return m
}

// Soma returns the mutable soma.
func (m *Morphology) Soma() *Soma {
	return &m.soma
}

// Section returns the section with the given ID.
func (m *Morphology) Section(id int) (*Section, error) {
	sec, ok := m.sections[id]
	if !ok {
		return nil, morphtypes.NewError(morphtypes.KindMissingParent, "", 0,
			"no section with ID %d", id)
	}
	return sec, nil
}

// Sections returns every section in ascending ID order.
func (m *Morphology) Sections() []*Section {
	sections := make([]*Section, 0, len(m.sections))
	for _, sec := range m.sections {
		sections = append(sections, sec)
	}
	sort.Slice(sections, func(i, j int) bool { return sections[i].id < sections[j].id })
	return sections
}

// RootSections returns the sections without a parent, in declaration order.
func (m *Morphology) RootSections() []*Section {
	return m.roots
}

// AppendSection adds a section holding the given point data. parentID -1
// appends a root. The new section's ID is returned.
func (m *Morphology) AppendSection(parentID int, typ morphtypes.SectionType, points morphtypes.PointLevel) (int, error) {
	if len(points.Diameters) != len(points.Points) {
		return 0, morphtypes.NewError(morphtypes.KindSectionBuilder, "", 0,
			"%d diameters for %d points", len(points.Diameters), len(points.Points))
	}
	if len(points.Perimeters) != 0 && len(points.Perimeters) != len(points.Points) {
		return 0, morphtypes.NewError(morphtypes.KindSectionBuilder, "", 0,
			"%d perimeters for %d points", len(points.Perimeters), len(points.Points))
	}

	var parent *Section
	if parentID >= 0 {
		var err error
		if parent, err = m.Section(parentID); err != nil {
			return 0, err
		}
	}

	sec := &Section{
		id:         m.nextID,
		Type:       typ,
		Points:     append([]morphtypes.Vec3(nil), points.Points...),
		Diameters:  append([]float64(nil), points.Diameters...),
		Perimeters: append([]float64(nil), points.Perimeters...),
		parent:     parent,
	}
	m.nextID++
	m.sections[sec.id] = sec
	if parent == nil {
		m.roots = append(m.roots, sec)
	} else {
		parent.children = append(parent.children, sec)
	}
	return sec.id, nil
}

// DeleteSection removes a section. With recursive set, its whole subtree is
// removed; otherwise the children are reattached to the deleted section's
// parent (or become roots).
func (m *Morphology) DeleteSection(id int, recursive bool) error {
	sec, err := m.Section(id)
	if err != nil {
		return err
	}

	if recursive {
		for _, child := range append([]*Section(nil), sec.children...) {
			if err := m.DeleteSection(child.id, true); err != nil {
				return err
			}
		}
	} else {
		for _, child := range sec.children {
			child.parent = sec.parent
			if sec.parent == nil {
				m.roots = append(m.roots, child)
			} else {
				sec.parent.children = append(sec.parent.children, child)
			}
		}
		sec.children = nil
	}

	if sec.parent == nil {
		m.roots = removeSection(m.roots, sec)
	} else {
		sec.parent.children = removeSection(sec.parent.children, sec)
	}
	delete(m.sections, id)
	return nil
}

func removeSection(list []*Section, sec *Section) []*Section {
	out := list[:0]
	for _, s := range list {
		if s != sec {
			out = append(out, s)
		}
	}
	return out
}

// BuildReadOnly flattens the editable morphology into canonical Properties,
// renumbering sections in depth-first creation order and revalidating every
// structural invariant.
func (m *Morphology) BuildReadOnly() (*morphtypes.Properties, error) {
	tree := builder.NewTree("", m.version)
	tree.Family = m.family

	if len(m.soma.Points) > 0 {
		soma, err := tree.NewSoma()
		if err != nil {
			return nil, err
		}
		soma.Points = append(soma.Points, m.soma.Points...)
		soma.Diameters = append(soma.Diameters, m.soma.Diameters...)
	}

	// copy the raw slices; Build revalidates the length invariants
	var copyTree func(src *Section, parent *builder.Section)
	copyTree = func(src *Section, parent *builder.Section) {
		dst := tree.NewSection(parent, src.Type)
		dst.Points = append(dst.Points, src.Points...)
		dst.Diameters = append(dst.Diameters, src.Diameters...)
		dst.Perimeters = append(dst.Perimeters, src.Perimeters...)
		for _, child := range src.children {
			copyTree(child, dst)
		}
	}
	for _, root := range m.roots {
		copyTree(root, nil)
	}

	return tree.Build()
}
