// This file contains the read-only soma view.
package morphology

import (
	"neuromorph/pkg/morphtypes"
)

// Soma is a view of the cell body of an immutable morphology.
type Soma struct {
	m *Morphology
}

// Points returns the soma positions.
func (s Soma) Points() []morphtypes.Vec3 {
	return s.m.props.Soma.Points
}

// Diameters returns the soma diameters.
func (s Soma) Diameters() []float64 {
	return s.m.props.Soma.Diameters
}

// Center returns the mean of the soma points, or the zero vector for an
// empty soma.
func (s Soma) Center() morphtypes.Vec3 {
	points := s.m.props.Soma.Points
	if len(points) == 0 {
		return morphtypes.Vec3{}
	}
	var c morphtypes.Vec3
	for _, p := range points {
		for i := 0; i < 3; i++ {
			c[i] += p[i]
		}
	}
	for i := 0; i < 3; i++ {
		c[i] /= float64(len(points))
	}
	return c
}
