// This file contains the canonical flattened representation shared by all
// readers. Properties is the sole handoff artifact between the parsing core
// and its consumers; it holds no reference to the transient parse tree or the
// input buffer.
package morphtypes

// Vec3 is a point position in reconstruction space.
type Vec3 [3]float64

// MarkerLocation is the optional coordinate and radius attached to a marker.
type MarkerLocation struct {
	Position Vec3
	Radius   float64
}

// Marker is a point annotation recorded during parsing. Markers never become
// tree nodes; they are attached to the section that was current when the
// marker token appeared.
type Marker struct {
	Name      string
	Variant   int
	SectionID int
	Location  *MarkerLocation
}

// PointLevel holds the flat, ordered point data of a morphology. Perimeters
// is either empty or has the same length as Points; its presence is a
// per-file property, not a per-point one.
type PointLevel struct {
	Points     []Vec3
	Diameters  []float64
	Perimeters []float64
}

// SectionRecord describes one section of the flattened morphology: its
// half-open range [Start, End) into the PointLevel arrays, its neurite type,
// and the ID of its parent (-1 for root sections).
type SectionRecord struct {
	Start  int
	End    int
	Type   SectionType
	Parent int
}

// SectionLevel holds the per-section layer of the flattened morphology.
// Children maps a section ID to the IDs of its children in declaration order.
type SectionLevel struct {
	Sections []SectionRecord
	Children map[int][]int
}

// CellLevel holds the whole-cell layer of the flattened morphology.
type CellLevel struct {
	Family   CellFamily
	SomaType SomaType
	Version  MorphologyVersion
}

// Properties is the canonical, format-agnostic morphology representation
// produced by the section builder and consumed identically by every reader
// and writer.
type Properties struct {
	Points   PointLevel
	Soma     PointLevel
	Sections SectionLevel
	Cell     CellLevel
	Markers  []Marker
}

// SectionCount returns the number of non-soma sections.
func (p *Properties) SectionCount() int {
	return len(p.Sections.Sections)
}

// SectionPoints returns the position slice of section id. The returned slice
// aliases the flat array; callers must not grow it.
func (p *Properties) SectionPoints(id int) []Vec3 {
	rec := p.Sections.Sections[id]
	return p.Points.Points[rec.Start:rec.End]
}

// SectionDiameters returns the diameter slice of section id.
func (p *Properties) SectionDiameters(id int) []float64 {
	rec := p.Sections.Sections[id]
	return p.Points.Diameters[rec.Start:rec.End]
}

// SectionPerimeters returns the perimeter slice of section id, or nil when
// the file carries no perimeter data.
func (p *Properties) SectionPerimeters(id int) []float64 {
	if len(p.Points.Perimeters) == 0 {
		return nil
	}
	rec := p.Sections.Sections[id]
	return p.Points.Perimeters[rec.Start:rec.End]
}

// RootSections returns the IDs of all sections without a parent, in
// declaration order.
func (p *Properties) RootSections() []int {
	var roots []int
	for i, rec := range p.Sections.Sections {
		if rec.Parent < 0 {
			roots = append(roots, i)
		}
	}
	return roots
}
