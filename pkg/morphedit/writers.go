// This file contains the ASC and SWC re-serializers. Output written here
// parses back through the corresponding reader into an equivalent tree.
package morphedit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"neuromorph/pkg/morphtypes"
)

// Write serializes the morphology to path, dispatching on the extension.
func (m *Morphology) Write(path string) error {
	var write func(io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".asc":
		write = m.WriteASC
	case ".swc":
		write = m.WriteSWC
	default:
		return morphtypes.NewError(morphtypes.KindUnknownFormat, path, 0,
			"no writer recognizes %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing morphology %s: %w", path, err)
	}
	defer f.Close()
	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteASC serializes the morphology in Neurolucida ASC form. Children are
// written as pipe-separated sibling groups inside a nested parenthesis.
func (m *Morphology) WriteASC(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if len(m.soma.Points) > 0 {
		fmt.Fprintf(bw, "(\"CellBody\"\n")
		writeASCPoints(bw, &Section{Points: m.soma.Points, Diameters: m.soma.Diameters}, "  ")
		fmt.Fprintf(bw, ")\n")
	}

	for _, root := range m.roots {
		fmt.Fprintf(bw, "((%s)\n", ascTypeName(root.Type))
		writeASCSection(bw, root, "  ")
		fmt.Fprintf(bw, ")\n")
	}
	return bw.Flush()
}

func writeASCPoints(bw *bufio.Writer, sec *Section, indent string) {
	for i, p := range sec.Points {
		d := 0.0
		if i < len(sec.Diameters) {
			d = sec.Diameters[i]
		}
		if len(sec.Perimeters) > i {
			fmt.Fprintf(bw, "%s(%s %s %s %s %s)\n", indent,
				fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]), fmtFloat(d), fmtFloat(sec.Perimeters[i]))
		} else {
			fmt.Fprintf(bw, "%s(%s %s %s %s)\n", indent,
				fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]), fmtFloat(d))
		}
	}
}

func writeASCSection(bw *bufio.Writer, sec *Section, indent string) {
	writeASCPoints(bw, sec, indent)
	if len(sec.children) == 0 {
		return
	}
	fmt.Fprintf(bw, "%s(\n", indent)
	for i, child := range sec.children {
		if i > 0 {
			fmt.Fprintf(bw, "%s|\n", indent)
		}
		writeASCSection(bw, child, indent+"  ")
	}
	fmt.Fprintf(bw, "%s)\n", indent)
}

// ascTypeName maps a section type to its ASC introducer word.
func ascTypeName(t morphtypes.SectionType) string {
	switch t {
	case morphtypes.SectionAxon:
		return "Axon"
	case morphtypes.SectionApicalDendrite:
		return "Apical"
	default:
		return "Dendrite"
	}
}

// WriteSWC serializes the morphology as SWC samples. A child section whose
// first point repeats its parent's last point does not re-emit that point.
func (m *Morphology) WriteSWC(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# index type X Y Z radius parent\n")

	nextSample := 1
	emit := func(swcType int, p morphtypes.Vec3, diameter float64, parent int) int {
		fmt.Fprintf(bw, "%d %d %s %s %s %s %d\n", nextSample, swcType,
			fmtFloat(p[0]), fmtFloat(p[1]), fmtFloat(p[2]), fmtFloat(diameter/2), parent)
		nextSample++
		return nextSample - 1
	}

	somaLast := -1
	for i, p := range m.soma.Points {
		d := 0.0
		if i < len(m.soma.Diameters) {
			d = m.soma.Diameters[i]
		}
		somaLast = emit(1, p, d, somaLast)
	}

	lastSample := map[*Section]int{}
	var writeTree func(sec *Section)
	writeTree = func(sec *Section) {
		parent := somaLast
		start := 0
		if sec.parent != nil {
			parent = lastSample[sec.parent]
			if len(sec.Points) > 0 && len(sec.parent.Points) > 0 &&
				sec.Points[0] == sec.parent.Points[len(sec.parent.Points)-1] {
				start = 1
			}
		}
		last := parent
		for i := start; i < len(sec.Points); i++ {
			d := 0.0
			if i < len(sec.Diameters) {
				d = sec.Diameters[i]
			}
			last = emit(swcTypeOf(sec.Type), sec.Points[i], d, last)
		}
		lastSample[sec] = last
		for _, child := range sec.children {
			writeTree(child)
		}
	}
	for _, root := range m.roots {
		writeTree(root)
	}
	return bw.Flush()
}

// swcTypeOf maps a section type to the SWC numeric type column.
func swcTypeOf(t morphtypes.SectionType) int {
	switch t {
	case morphtypes.SectionSoma:
		return 1
	case morphtypes.SectionAxon:
		return 2
	case morphtypes.SectionBasalDendrite:
		return 3
	case morphtypes.SectionApicalDendrite:
		return 4
	default:
		return 0
	}
}
