package morphology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuromorph/internal/testutils"
	"neuromorph/pkg/morphtypes"
)

func TestOpenDispatchesOnExtension(t *testing.T) {
	t.Run("asc", func(t *testing.T) {
		path := testutils.WriteTempFile(t, "cell.asc", testutils.SimpleASC)
		m, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, morphtypes.VersionASC1, m.Version())
		assert.Len(t, m.Sections(), 3)
	})

	t.Run("swc", func(t *testing.T) {
		path := testutils.WriteTempFile(t, "cell.swc", testutils.SimpleSWC)
		m, err := Open(path)
		require.NoError(t, err)
		assert.Equal(t, morphtypes.VersionSWC1, m.Version())
		assert.Len(t, m.Sections(), 3)
	})

	t.Run("uppercase extension", func(t *testing.T) {
		path := testutils.WriteTempFile(t, "cell.ASC", testutils.SimpleASC)
		_, err := Open(path)
		require.NoError(t, err)
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := testutils.WriteTempFile(t, "cell.txt", testutils.SimpleASC)
		_, err := Open(path)
		require.Error(t, err)
		assert.True(t, morphtypes.IsUnknownFormat(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open("does/not/exist.asc")
		require.Error(t, err)
	})
}

func TestSectionViews(t *testing.T) {
	m, err := ParseASC("cell.asc", []byte(testutils.SimpleASC))
	require.NoError(t, err)

	root := m.RootSections()
	require.Len(t, root, 1)
	assert.True(t, root[0].IsRoot())
	assert.Equal(t, morphtypes.SectionBasalDendrite, root[0].Type())
	assert.Len(t, root[0].Points(), 4)
	assert.Len(t, root[0].Diameters(), 4)
	assert.Nil(t, root[0].Perimeters())

	children := root[0].Children()
	require.Len(t, children, 2)
	parent, ok := children[0].Parent()
	require.True(t, ok)
	assert.Equal(t, root[0].ID(), parent.ID())

	_, ok = root[0].Parent()
	assert.False(t, ok)

	_, err = m.Section(99)
	require.Error(t, err)

	assert.Equal(t, []morphtypes.SectionType{
		morphtypes.SectionBasalDendrite,
		morphtypes.SectionBasalDendrite,
		morphtypes.SectionBasalDendrite,
	}, m.SectionTypes())
}

func TestSomaView(t *testing.T) {
	m, err := ParseSWC("cell.swc", []byte(testutils.ThreePointSomaSWC))
	require.NoError(t, err)

	soma := m.Soma()
	assert.Len(t, soma.Points(), 3)
	assert.Equal(t, morphtypes.Vec3{0, 0, 0}, soma.Center())
	assert.Equal(t, morphtypes.SomaThreePointCylinders, m.SomaType())
}

func TestEmptySomaCenter(t *testing.T) {
	m, err := ParseASC("cell.asc", []byte(testutils.MarkerASC))
	require.NoError(t, err)
	assert.Equal(t, morphtypes.Vec3{}, m.Soma().Center())
}

func ids(it Iterator) []int {
	var out []int
	for {
		s, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, s.ID())
	}
}

func TestIterators(t *testing.T) {
	m, err := ParseASC("cell.asc", []byte(testutils.NestedASC))
	require.NoError(t, err)
	root := m.RootSections()[0]

	t.Run("depth first preorder", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 2, 3, 4}, ids(root.Depth()))
	})

	t.Run("breadth first", func(t *testing.T) {
		assert.Equal(t, []int{0, 1, 4, 2, 3}, ids(root.Breadth()))
	})

	t.Run("upstream reaches the root", func(t *testing.T) {
		leaf, err := m.Section(3)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 1, 0}, ids(leaf.Upstream()))
	})

	t.Run("iterators restart fresh", func(t *testing.T) {
		first := ids(root.Depth())
		second := ids(root.Depth())
		assert.Equal(t, first, second)
	})

	t.Run("exhausted iterator stays exhausted", func(t *testing.T) {
		it := root.Upstream()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
		_, ok := it.Next()
		assert.False(t, ok)
	})
}

func TestFlatAccessors(t *testing.T) {
	m, err := ParseASC("cell.asc", []byte(testutils.PerimeterASC))
	require.NoError(t, err)

	assert.Len(t, m.Points(), 3)
	assert.Len(t, m.Diameters(), 3)
	assert.Equal(t, []float64{3, 3.5, 4}, m.Perimeters())
	assert.Equal(t, morphtypes.FamilyNeuron, m.CellFamily())
	assert.NotNil(t, m.Properties())
}
