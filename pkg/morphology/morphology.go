// Package morphology provides the read-only view of a parsed neuron
// reconstruction. A Morphology wraps canonical Properties; all accessors are
// zero-copy views into the flat arrays.
package morphology

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"neuromorph/internal/asc"
	"neuromorph/internal/swc"
	"neuromorph/pkg/morphtypes"
)

// Morphology is an immutable neuron reconstruction.
type Morphology struct {
	props *morphtypes.Properties
}

// Open reads and parses the morphology file at path, dispatching on the
// file extension. Unsupported extensions fail with an unknown format error.
func Open(path string) (*Morphology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading morphology %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asc":
		return ParseASC(path, data)
	case ".swc":
		return ParseSWC(path, data)
	default:
		return nil, morphtypes.NewError(morphtypes.KindUnknownFormat, path, 0,
			"no reader recognizes %q", filepath.Ext(path))
	}
}

// ParseASC parses a Neurolucida ASC buffer. name is carried into
// diagnostics.
func ParseASC(name string, data []byte) (*Morphology, error) {
	props, err := asc.Parse(name, data)
	if err != nil {
		return nil, err
	}
	return FromProperties(props), nil
}

// ParseSWC parses an SWC buffer. name is carried into diagnostics.
func ParseSWC(name string, data []byte) (*Morphology, error) {
	props, err := swc.Parse(name, data)
	if err != nil {
		return nil, err
	}
	return FromProperties(props), nil
}

// FromProperties wraps an already-built Properties value. The value is
// shared, not copied; callers must treat it as immutable afterwards.
func FromProperties(props *morphtypes.Properties) *Morphology {
	return &Morphology{props: props}
}

// Properties exposes the underlying canonical representation.
func (m *Morphology) Properties() *morphtypes.Properties {
	return m.props
}

// Points returns the flat point array of every non-soma section.
func (m *Morphology) Points() []morphtypes.Vec3 {
	return m.props.Points.Points
}

// Diameters returns the flat diameter array.
func (m *Morphology) Diameters() []float64 {
	return m.props.Points.Diameters
}

// Perimeters returns the flat perimeter array, empty when the source file
// carried no perimeter data.
func (m *Morphology) Perimeters() []float64 {
	return m.props.Points.Perimeters
}

// SectionTypes returns the neurite type of each section, indexed by ID.
func (m *Morphology) SectionTypes() []morphtypes.SectionType {
	types := make([]morphtypes.SectionType, len(m.props.Sections.Sections))
	for i, rec := range m.props.Sections.Sections {
		types[i] = rec.Type
	}
	return types
}

// Section returns the section with the given ID.
func (m *Morphology) Section(id int) (Section, error) {
	if id < 0 || id >= len(m.props.Sections.Sections) {
		return Section{}, morphtypes.NewError(morphtypes.KindSectionBuilder, "", 0,
			"no section with ID %d", id)
	}
	return Section{id: id, m: m}, nil
}

// Sections returns every section in ID order.
func (m *Morphology) Sections() []Section {
	sections := make([]Section, len(m.props.Sections.Sections))
	for i := range sections {
		sections[i] = Section{id: i, m: m}
	}
	return sections
}

// RootSections returns the sections without a parent, in declaration order.
func (m *Morphology) RootSections() []Section {
	var roots []Section
	for _, id := range m.props.RootSections() {
		roots = append(roots, Section{id: id, m: m})
	}
	return roots
}

// Soma returns the soma view.
func (m *Morphology) Soma() Soma {
	return Soma{m: m}
}

// Markers returns the point annotations recorded while parsing.
func (m *Morphology) Markers() []morphtypes.Marker {
	return m.props.Markers
}

// CellFamily returns the cell family of the morphology.
func (m *Morphology) CellFamily() morphtypes.CellFamily {
	return m.props.Cell.Family
}

// SomaType returns the detected soma type.
func (m *Morphology) SomaType() morphtypes.SomaType {
	return m.props.Cell.SomaType
}

// Version returns the detected source format tag.
func (m *Morphology) Version() morphtypes.MorphologyVersion {
	return m.props.Cell.Version
}
