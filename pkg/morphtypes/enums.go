// Package morphtypes defines the shared types of the neuromorph library.
// This file contains the cell-level enumerations used across readers, the
// section builder, and the public morphology views.
package morphtypes

// SectionType identifies the neurite class of a section.
type SectionType int

const (
	// SectionUndefined marks a section with no recognized neurite type.
	SectionUndefined SectionType = iota
	// SectionSoma marks the cell body.
	SectionSoma
	// SectionAxon marks an axonal section.
	SectionAxon
	// SectionBasalDendrite marks a basal dendrite section.
	SectionBasalDendrite
	// SectionApicalDendrite marks an apical dendrite section.
	SectionApicalDendrite
)

// String returns the lowercase name of the section type.
func (t SectionType) String() string {
	switch t {
	case SectionUndefined:
		return "undefined"
	case SectionSoma:
		return "soma"
	case SectionAxon:
		return "axon"
	case SectionBasalDendrite:
		return "basal_dendrite"
	case SectionApicalDendrite:
		return "apical_dendrite"
	default:
		return "unknown"
	}
}

// SomaType describes how the soma of a cell is represented.
type SomaType int

const (
	// SomaUndefined means no soma was present or its shape is unknown.
	SomaUndefined SomaType = iota
	// SomaSinglePoint is a soma described by a single point and diameter.
	SomaSinglePoint
	// SomaThreePointCylinders is the NeuroMorpho three-point cylinder stack.
	SomaThreePointCylinders
	// SomaCylinders is a soma described by a run of stacked cylinders.
	SomaCylinders
	// SomaSimpleContour is a planar contour outline, the ASC convention.
	SomaSimpleContour
)

// String returns the lowercase name of the soma type.
func (t SomaType) String() string {
	switch t {
	case SomaUndefined:
		return "undefined"
	case SomaSinglePoint:
		return "single_point"
	case SomaThreePointCylinders:
		return "three_point_cylinders"
	case SomaCylinders:
		return "cylinders"
	case SomaSimpleContour:
		return "simple_contour"
	default:
		return "unknown"
	}
}

// CellFamily identifies the broad cell class of a morphology.
type CellFamily int

const (
	// FamilyNeuron is the default cell family for all supported formats.
	FamilyNeuron CellFamily = iota
	// FamilyGlia is reserved for glial reconstructions.
	FamilyGlia
)

// String returns the lowercase name of the cell family.
func (f CellFamily) String() string {
	if f == FamilyGlia {
		return "glia"
	}
	return "neuron"
}

// MorphologyVersion tags the detected source format of a morphology.
type MorphologyVersion int

const (
	// VersionUndefined means the source format could not be determined.
	VersionUndefined MorphologyVersion = iota
	// VersionASC1 is the Neurolucida ASCII format.
	VersionASC1
	// VersionSWC1 is the SWC numeric format.
	VersionSWC1
)

// String returns the format tag of the version.
func (v MorphologyVersion) String() string {
	switch v {
	case VersionASC1:
		return "asc-1"
	case VersionSWC1:
		return "swc-1"
	default:
		return "undefined"
	}
}
