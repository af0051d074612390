// This file contains the read-only section view.
package morphology

import (
	"neuromorph/pkg/morphtypes"
)

// Section is a lightweight view of one section of an immutable morphology.
// Copying a Section is cheap; it holds no data of its own.
type Section struct {
	id int
	m  *Morphology
}

// ID returns the creation-order section identifier.
func (s Section) ID() int {
	return s.id
}

// Type returns the neurite type of the section.
func (s Section) Type() morphtypes.SectionType {
	return s.record().Type
}

// IsRoot reports whether the section has no parent.
func (s Section) IsRoot() bool {
	return s.record().Parent < 0
}

// Parent returns the parent section; ok is false for roots.
func (s Section) Parent() (Section, bool) {
	parent := s.record().Parent
	if parent < 0 {
		return Section{}, false
	}
	return Section{id: parent, m: s.m}, true
}

// Children returns the child sections in declaration order.
func (s Section) Children() []Section {
	ids := s.m.props.Sections.Children[s.id]
	children := make([]Section, len(ids))
	for i, id := range ids {
		children[i] = Section{id: id, m: s.m}
	}
	return children
}

// Points returns the section's positions as a zero-copy view.
func (s Section) Points() []morphtypes.Vec3 {
	return s.m.props.SectionPoints(s.id)
}

// Diameters returns the section's diameters as a zero-copy view.
func (s Section) Diameters() []float64 {
	return s.m.props.SectionDiameters(s.id)
}

// Perimeters returns the section's perimeters, or nil when the file carried
// no perimeter data.
func (s Section) Perimeters() []float64 {
	return s.m.props.SectionPerimeters(s.id)
}

func (s Section) record() morphtypes.SectionRecord {
	return s.m.props.Sections.Sections[s.id]
}
