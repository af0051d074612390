package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuromorph/pkg/morphtypes"
)

func TestBuildFlattensCreationOrder(t *testing.T) {
	tree := NewTree("cell.asc", morphtypes.VersionASC1)
	root := tree.NewSection(nil, morphtypes.SectionBasalDendrite)
	root.AddPoint(morphtypes.Vec3{0, 0, 0}, 2)
	root.AddPoint(morphtypes.Vec3{0, -2, 0}, 2)
	childA := tree.NewSection(root, root.Type)
	childA.AddPoint(morphtypes.Vec3{1, -2, 0}, 1)
	childB := tree.NewSection(root, root.Type)
	childB.AddPoint(morphtypes.Vec3{-1, -2, 0}, 1)
	childA.AddMarker(morphtypes.Marker{Name: "Dot"})

	props, err := tree.Build()
	require.NoError(t, err)

	require.Equal(t, 3, props.SectionCount())
	assert.Equal(t, morphtypes.SectionRecord{Start: 0, End: 2, Type: morphtypes.SectionBasalDendrite, Parent: -1},
		props.Sections.Sections[0])
	assert.Equal(t, morphtypes.SectionRecord{Start: 2, End: 3, Type: morphtypes.SectionBasalDendrite, Parent: 0},
		props.Sections.Sections[1])
	assert.Equal(t, morphtypes.SectionRecord{Start: 3, End: 4, Type: morphtypes.SectionBasalDendrite, Parent: 0},
		props.Sections.Sections[2])
	assert.Equal(t, []int{1, 2}, props.Sections.Children[0])

	require.Len(t, props.Markers, 1)
	assert.Equal(t, 1, props.Markers[0].SectionID)

	assert.Empty(t, props.Points.Perimeters)
}

func TestBuildSomaGoesToSomaLevel(t *testing.T) {
	tree := NewTree("cell.asc", morphtypes.VersionASC1)
	soma, err := tree.NewSoma()
	require.NoError(t, err)
	soma.AddPoint(morphtypes.Vec3{0, 0, 0}, 4)

	props, err := tree.Build()
	require.NoError(t, err)

	assert.Equal(t, []morphtypes.Vec3{{0, 0, 0}}, props.Soma.Points)
	assert.Empty(t, props.Points.Points)
	assert.Equal(t, 0, props.SectionCount())
	assert.Equal(t, morphtypes.SomaSinglePoint, props.Cell.SomaType)
}

func TestNewSomaRejectsSecond(t *testing.T) {
	tree := NewTree("cell.asc", morphtypes.VersionASC1)
	_, err := tree.NewSoma()
	require.NoError(t, err)
	_, err = tree.NewSoma()
	require.Error(t, err)
	assert.True(t, morphtypes.IsSoma(err))
}

func TestSectionAttachedToSomaIsRoot(t *testing.T) {
	tree := NewTree("cell.asc", morphtypes.VersionASC1)
	soma, err := tree.NewSoma()
	require.NoError(t, err)
	soma.AddPoint(morphtypes.Vec3{0, 0, 0}, 4)
	sec := tree.NewSection(soma, morphtypes.SectionAxon)
	sec.AddPoint(morphtypes.Vec3{0, -2, 0}, 1)

	props, err := tree.Build()
	require.NoError(t, err)
	assert.Equal(t, -1, props.Sections.Sections[0].Parent)
	assert.Equal(t, []int{0}, props.RootSections())
}

func TestBuildValidation(t *testing.T) {
	t.Run("section with no points", func(t *testing.T) {
		tree := NewTree("cell.asc", morphtypes.VersionASC1)
		tree.NewSection(nil, morphtypes.SectionAxon)
		_, err := tree.Build()
		require.Error(t, err)
		assert.True(t, morphtypes.IsSectionBuilder(err))
		assert.Contains(t, err.Error(), "no points")
	})

	t.Run("perimeter count mismatch", func(t *testing.T) {
		tree := NewTree("cell.asc", morphtypes.VersionASC1)
		sec := tree.NewSection(nil, morphtypes.SectionAxon)
		sec.AddPoint(morphtypes.Vec3{0, 0, 0}, 1)
		sec.AddPoint(morphtypes.Vec3{0, -1, 0}, 1)
		sec.AddPerimeter(3)
		_, err := tree.Build()
		require.Error(t, err)
		assert.True(t, morphtypes.IsSectionBuilder(err))
		assert.Contains(t, err.Error(), "perimeters")
	})

	t.Run("perimeters on some sections only", func(t *testing.T) {
		tree := NewTree("cell.asc", morphtypes.VersionASC1)
		withPer := tree.NewSection(nil, morphtypes.SectionAxon)
		withPer.AddPoint(morphtypes.Vec3{0, 0, 0}, 2)
		withPer.AddPerimeter(3)
		without := tree.NewSection(nil, morphtypes.SectionBasalDendrite)
		without.AddPoint(morphtypes.Vec3{1, 0, 0}, 2)
		without.AddPoint(morphtypes.Vec3{2, 0, 0}, 2)

		_, err := tree.Build()
		require.Error(t, err)
		assert.True(t, morphtypes.IsSectionBuilder(err))
		assert.Contains(t, err.Error(), "no perimeter data")
	})

	t.Run("diameter count mismatch", func(t *testing.T) {
		tree := NewTree("cell.asc", morphtypes.VersionASC1)
		sec := tree.NewSection(nil, morphtypes.SectionAxon)
		sec.Points = append(sec.Points, morphtypes.Vec3{0, 0, 0})
		_, err := tree.Build()
		require.Error(t, err)
		assert.True(t, morphtypes.IsSectionBuilder(err))
	})

	t.Run("soma diameter count mismatch", func(t *testing.T) {
		tree := NewTree("cell.asc", morphtypes.VersionASC1)
		soma, err := tree.NewSoma()
		require.NoError(t, err)
		soma.Points = append(soma.Points, morphtypes.Vec3{0, 0, 0})
		_, err = tree.Build()
		require.Error(t, err)
		assert.True(t, morphtypes.IsSoma(err))
	})
}

func TestDetectSomaType(t *testing.T) {
	build := func(version morphtypes.MorphologyVersion, points int) (*morphtypes.Properties, error) {
		tree := NewTree("cell", version)
		soma, err := tree.NewSoma()
		require.NoError(t, err)
		for i := 0; i < points; i++ {
			soma.AddPoint(morphtypes.Vec3{float64(i), 0, 0}, 2)
		}
		return tree.Build()
	}

	t.Run("asc contour", func(t *testing.T) {
		props, err := build(morphtypes.VersionASC1, 3)
		require.NoError(t, err)
		assert.Equal(t, morphtypes.SomaSimpleContour, props.Cell.SomaType)
	})
	t.Run("asc two points fail", func(t *testing.T) {
		_, err := build(morphtypes.VersionASC1, 2)
		require.Error(t, err)
		assert.True(t, morphtypes.IsSoma(err))
	})
	t.Run("swc single point", func(t *testing.T) {
		props, err := build(morphtypes.VersionSWC1, 1)
		require.NoError(t, err)
		assert.Equal(t, morphtypes.SomaSinglePoint, props.Cell.SomaType)
	})
	t.Run("swc three point cylinders", func(t *testing.T) {
		props, err := build(morphtypes.VersionSWC1, 3)
		require.NoError(t, err)
		assert.Equal(t, morphtypes.SomaThreePointCylinders, props.Cell.SomaType)
	})
	t.Run("swc cylinder stack", func(t *testing.T) {
		props, err := build(morphtypes.VersionSWC1, 5)
		require.NoError(t, err)
		assert.Equal(t, morphtypes.SomaCylinders, props.Cell.SomaType)
	})
}
