// This file contains the flattening and validation pass that turns a
// transient tree into canonical Properties.
package builder

import (
	"neuromorph/internal/logger"
	"neuromorph/pkg/morphtypes"
)

// Build flattens the tree into canonical Properties after validating the
// structural invariants. The first violation is returned as a typed error
// and no Properties value is produced.
func (t *Tree) Build() (*morphtypes.Properties, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	props := &morphtypes.Properties{
		Sections: morphtypes.SectionLevel{Children: map[int][]int{}},
		Cell: morphtypes.CellLevel{
			Family:  t.Family,
			Version: t.Version,
		},
	}

	hasPerimeters := t.hasPerimeters()
	for _, s := range t.sections {
		start := len(props.Points.Points)
		props.Points.Points = append(props.Points.Points, s.Points...)
		props.Points.Diameters = append(props.Points.Diameters, s.Diameters...)
		if hasPerimeters {
			props.Points.Perimeters = append(props.Points.Perimeters, s.Perimeters...)
		}

		parent := -1
		if s.Parent != nil {
			parent = s.Parent.ID
			props.Sections.Children[parent] = append(props.Sections.Children[parent], s.ID)
		}
		props.Sections.Sections = append(props.Sections.Sections, morphtypes.SectionRecord{
			Start:  start,
			End:    len(props.Points.Points),
			Type:   s.Type,
			Parent: parent,
		})

		for _, m := range s.Markers {
			m.SectionID = s.ID
			props.Markers = append(props.Markers, m)
		}
	}

	if t.soma != nil {
		props.Soma.Points = append(props.Soma.Points, t.soma.Points...)
		props.Soma.Diameters = append(props.Soma.Diameters, t.soma.Diameters...)
		somaType, err := t.detectSomaType()
		if err != nil {
			return nil, err
		}
		props.Cell.SomaType = somaType
		for _, m := range t.soma.Markers {
			m.SectionID = -1
			props.Markers = append(props.Markers, m)
		}
	}

	logger.Debug("built canonical properties",
		"path", t.Path,
		"sections", len(props.Sections.Sections),
		"points", len(props.Points.Points),
		"somaPoints", len(props.Soma.Points))
	return props, nil
}

// hasPerimeters reports whether any section carries perimeter data.
func (t *Tree) hasPerimeters() bool {
	for _, s := range t.sections {
		if len(s.Perimeters) > 0 {
			return true
		}
	}
	return false
}

// validate checks the structural invariants of the tree.
func (t *Tree) validate() error {
	fail := func(kind morphtypes.ErrorKind, format string, args ...interface{}) error {
		return morphtypes.NewError(kind, t.Path, 0, format, args...)
	}

	// perimeter presence is a per-file property: one section carrying
	// perimeters obliges every section to carry them
	hasPerimeters := t.hasPerimeters()

	for i, s := range t.sections {
		if s.ID != i {
			return fail(morphtypes.KindSectionBuilder,
				"section IDs must be contiguous from zero: found %d at position %d", s.ID, i)
		}
		if s.Parent != nil {
			if s.Parent.ID < 0 || s.Parent.ID >= len(t.sections) || t.sections[s.Parent.ID] != s.Parent {
				return fail(morphtypes.KindMissingParent,
					"section %d references an unknown parent", s.ID)
			}
			if s.Parent.ID >= s.ID {
				return fail(morphtypes.KindSectionBuilder,
					"section %d precedes its parent %d; the tree must be acyclic", s.ID, s.Parent.ID)
			}
		}
		if len(s.Points) == 0 {
			return fail(morphtypes.KindSectionBuilder, "section %d has no points", s.ID)
		}
		if len(s.Diameters) != len(s.Points) {
			return fail(morphtypes.KindSectionBuilder,
				"section %d has %d diameters for %d points", s.ID, len(s.Diameters), len(s.Points))
		}
		if len(s.Perimeters) != 0 && len(s.Perimeters) != len(s.Points) {
			return fail(morphtypes.KindSectionBuilder,
				"section %d has %d perimeters for %d points", s.ID, len(s.Perimeters), len(s.Points))
		}
		if hasPerimeters && len(s.Perimeters) == 0 {
			return fail(morphtypes.KindSectionBuilder,
				"section %d carries no perimeter data while other sections do", s.ID)
		}
	}

	if t.soma != nil && len(t.soma.Diameters) != len(t.soma.Points) {
		return fail(morphtypes.KindSoma,
			"soma has %d diameters for %d points", len(t.soma.Diameters), len(t.soma.Points))
	}
	return nil
}

// detectSomaType derives the soma type from the declared format and the
// number of soma points.
func (t *Tree) detectSomaType() (morphtypes.SomaType, error) {
	n := len(t.soma.Points)
	switch t.Version {
	case morphtypes.VersionASC1:
		// ASC somata are contours; one point degenerates to a sphere, two
		// points cannot describe a contour.
		switch {
		case n == 0:
			return morphtypes.SomaUndefined, nil
		case n == 1:
			return morphtypes.SomaSinglePoint, nil
		case n == 2:
			return morphtypes.SomaUndefined, morphtypes.NewError(morphtypes.KindSoma, t.Path, 0,
				"a soma contour needs at least three points, found 2")
		default:
			return morphtypes.SomaSimpleContour, nil
		}
	case morphtypes.VersionSWC1:
		switch n {
		case 0:
			return morphtypes.SomaUndefined, nil
		case 1:
			return morphtypes.SomaSinglePoint, nil
		case 3:
			return morphtypes.SomaThreePointCylinders, nil
		default:
			return morphtypes.SomaCylinders, nil
		}
	default:
		return morphtypes.SomaUndefined, nil
	}
}
