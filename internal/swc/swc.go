// Package swc implements the SWC numeric morphology reader. It needs no
// custom tokenizer: each sample is one whitespace-separated line of
// "id type x y z radius parent". The reader reuses the shared section
// builder, so the flattened output obeys the same invariants as ASC.
package swc

import (
	"strconv"
	"strings"

	"neuromorph/internal/builder"
	"neuromorph/internal/logger"
	"neuromorph/pkg/morphtypes"
)

// sample is one parsed SWC line.
type sample struct {
	id      int
	swcType int
	point   morphtypes.Vec3
	radius  float64
	parent  int
	line    int
}

// Parse parses one SWC buffer into canonical Properties.
func Parse(path string, data []byte) (*morphtypes.Properties, error) {
	samples, err := readSamples(path, string(data))
	if err != nil {
		return nil, err
	}
	tree, err := buildTree(path, samples)
	if err != nil {
		return nil, err
	}
	logger.ParseStep(path, "swc parse complete", "samples", len(samples))
	return tree.Build()
}

// readSamples parses and validates the raw sample table. Caller-supplied IDs
// must be unique and contiguous from 1, and every parent must precede its
// children.
func readSamples(path, src string) ([]sample, error) {
	var samples []sample
	for i, raw := range strings.Split(src, "\n") {
		line := i + 1
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 7 {
			return nil, morphtypes.NewError(morphtypes.KindRawData, path, line,
				"expected 7 fields per sample, found %d", len(fields))
		}

		var s sample
		s.line = line
		ints := []struct {
			dst  *int
			text string
		}{{&s.id, fields[0]}, {&s.swcType, fields[1]}, {&s.parent, fields[6]}}
		for _, f := range ints {
			v, err := strconv.Atoi(f.text)
			if err != nil {
				return nil, morphtypes.NewError(morphtypes.KindRawData, path, line,
					"unable to parse %q as an integer", f.text)
			}
			*f.dst = v
		}
		for j, text := range fields[2:6] {
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, morphtypes.NewError(morphtypes.KindRawData, path, line,
					"unable to parse %q as a number", text)
			}
			if j < 3 {
				s.point[j] = v
			} else {
				s.radius = v
			}
		}

		if s.id != len(samples)+1 {
			return nil, morphtypes.NewError(morphtypes.KindIDSequence, path, line,
				"sample IDs must be contiguous from 1: expected %d, found %d", len(samples)+1, s.id)
		}
		if s.parent != -1 && (s.parent < 1 || s.parent >= s.id) {
			return nil, morphtypes.NewError(morphtypes.KindMissingParent, path, line,
				"sample %d references parent %d, which is not an earlier sample", s.id, s.parent)
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// buildTree groups samples into sections. A sample starts a new section when
// its parent is a root, a branch point, the soma, or a sample of another
// type.
func buildTree(path string, samples []sample) (*builder.Tree, error) {
	tree := builder.NewTree(path, morphtypes.VersionSWC1)

	childCount := make(map[int]int, len(samples))
	for _, s := range samples {
		if s.parent != -1 {
			childCount[s.parent]++
		}
	}

	var soma *builder.Section
	roots := 0
	somaRoots := 0
	for _, s := range samples {
		if s.parent == -1 {
			roots++
			if s.swcType == 1 {
				somaRoots++
			}
		}
	}
	if somaRoots > 1 {
		return nil, morphtypes.NewError(morphtypes.KindSoma, path, 0,
			"found %d disconnected somata; a morphology holds at most one soma", somaRoots)
	}
	if somaRoots == 0 && roots > 1 {
		return nil, morphtypes.NewError(morphtypes.KindMultipleTrees, path, 0,
			"found %d disconnected trees and no soma; a single tree is required", roots)
	}

	// bySample maps a sample ID to the section holding it.
	bySample := make(map[int]*builder.Section, len(samples))
	for _, s := range samples {
		if s.swcType == 1 {
			if soma == nil {
				var err error
				soma, err = tree.NewSoma()
				if err != nil {
					return nil, err
				}
			}
			soma.AddPoint(s.point, 2*s.radius)
			continue
		}

		var parentSec *builder.Section
		newSection := s.parent == -1
		if !newSection {
			parent := samples[s.parent-1]
			switch {
			case parent.swcType == 1:
				// neurite attached to the soma starts a root section
				newSection = true
			case childCount[parent.id] > 1, parent.swcType != s.swcType:
				newSection = true
				parentSec = bySample[parent.id]
			default:
				bySample[s.id] = bySample[parent.id]
			}
		}

		if newSection {
			sec := tree.NewSection(parentSec, sectionTypeOf(s.swcType))
			// a child section shares its first point with its parent's last
			if parentSec != nil && len(parentSec.Points) > 0 {
				last := len(parentSec.Points) - 1
				sec.AddPoint(parentSec.Points[last], parentSec.Diameters[last])
			}
			sec.AddPoint(s.point, 2*s.radius)
			bySample[s.id] = sec
		} else {
			bySample[s.id].AddPoint(s.point, 2*s.radius)
		}
	}

	return tree, nil
}

// sectionTypeOf maps the SWC numeric type column to a section type.
func sectionTypeOf(t int) morphtypes.SectionType {
	switch t {
	case 2:
		return morphtypes.SectionAxon
	case 3:
		return morphtypes.SectionBasalDendrite
	case 4:
		return morphtypes.SectionApicalDendrite
	default:
		return morphtypes.SectionUndefined
	}
}
