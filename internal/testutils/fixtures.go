// Package testutils provides shared fixtures and helpers for neuromorph
// tests: canned morphology files in both formats and temp-file plumbing.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SimpleASC is a minimal well-formed reconstruction: a one-point soma and a
// dendrite that carries a spine and one bifurcation.
const SimpleASC = `("CellBody"
 (0 0 0 2)
 )

((Dendrite)
 (3 -4 0 2)
 (3 -6 0 2)
 (3 -8 0 2)
 (3 -10 0 2)
 (
  (0 -10 0 2)
  (-3 -10 0 2)
  |
  (6 -10 0 2)
  (9 -10 0 2)
  )
 )
`

// SpineASC carries an inline spine record in the middle of a dendrite.
const SpineASC = `("CellBody"
 (0 0 0 2)
 )

((Dendrite)
 (3 -4 0 2)
 (3 -6 0 2)
 <(3 -7 0 1)(3 -7.5 0 1)>
 (3 -8 0 2)
 )
`

// NestedASC has two bifurcation levels, giving traversal orders that tell
// depth-first and breadth-first apart.
const NestedASC = `((Dendrite)
 (0 0 0 2)
 (
  (1 0 0 2)
  (
   (2 0 0 2)
   |
   (3 0 0 2)
   )
  |
  (4 0 0 2)
  )
 )
`

// MarkerASC carries a marker block with a location inside a dendrite.
const MarkerASC = `((Dendrite)
 (3 -4 0 2)
 (3 -6 0 2)
 (Dot
  (3 -6 0 1)
  )
 (3 -8 0 2)
 )
`

// PerimeterASC carries five-value point records.
const PerimeterASC = `((Axon)
 (0 0 0 2 3)
 (0 -2 0 2 3.5)
 (0 -4 0 2 4)
 )
`

// SimpleSWC mirrors SimpleASC as SWC samples: a one-point soma, a dendrite
// stem, and two child branches.
const SimpleSWC = `# index type X Y Z radius parent
1 1 0 0 0 1 -1
2 3 3 -4 0 1 1
3 3 3 -6 0 1 2
4 3 3 -8 0 1 3
5 3 0 -10 0 1 4
6 3 -3 -10 0 1 5
7 3 6 -10 0 1 4
8 3 9 -10 0 1 7
`

// ThreePointSomaSWC has the classic three-sample cylinder soma.
const ThreePointSomaSWC = `1 1 0 0 0 3 -1
2 1 0 -3 0 3 1
3 1 0 3 0 3 1
4 2 0 6 0 1 3
5 2 0 8 0 1 4
`

// WriteTempFile writes content under a test temp dir with the given name
// and returns the full path.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
