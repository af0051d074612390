package morphedit

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neuromorph/internal/testutils"
	"neuromorph/pkg/morphology"
	"neuromorph/pkg/morphtypes"
)

func TestWriteASCRoundTrip(t *testing.T) {
	src, err := morphology.ParseASC("cell.asc", []byte(testutils.SimpleASC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FromImmutable(src).WriteASC(&buf))

	back, err := morphology.ParseASC("cell.asc", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src.Properties(), back.Properties())
}

func TestWriteASCPerimeters(t *testing.T) {
	src, err := morphology.ParseASC("cell.asc", []byte(testutils.PerimeterASC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FromImmutable(src).WriteASC(&buf))

	back, err := morphology.ParseASC("cell.asc", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 3.5, 4}, back.Perimeters())
}

func TestWriteSWCRoundTrip(t *testing.T) {
	src, err := morphology.ParseSWC("cell.swc", []byte(testutils.SimpleSWC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FromImmutable(src).WriteSWC(&buf))

	back, err := morphology.ParseSWC("cell.swc", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, src.Properties(), back.Properties())
}

func TestWriteSWCThreePointSoma(t *testing.T) {
	src, err := morphology.ParseSWC("cell.swc", []byte(testutils.ThreePointSomaSWC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FromImmutable(src).WriteSWC(&buf))

	back, err := morphology.ParseSWC("cell.swc", buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, morphtypes.SomaThreePointCylinders, back.SomaType())
	assert.Equal(t, src.Properties().Soma, back.Properties().Soma)
}

func TestWriteASCOutputIsStable(t *testing.T) {
	src, err := morphology.ParseASC("cell.asc", []byte(testutils.SimpleASC))
	require.NoError(t, err)
	m := FromImmutable(src)

	var first, second bytes.Buffer
	require.NoError(t, m.WriteASC(&first))
	require.NoError(t, m.WriteASC(&second))
	testutils.RequireTextEqual(t, first.String(), second.String())
}

func TestCrossFormatConversion(t *testing.T) {
	src, err := morphology.ParseASC("cell.asc", []byte(testutils.SimpleASC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FromImmutable(src).WriteSWC(&buf))

	back, err := morphology.ParseSWC("cell.swc", buf.Bytes())
	require.NoError(t, err)

	// same topology even though SWC children repeat the branch point
	require.Len(t, back.Sections(), 3)
	assert.Equal(t, []int{1, 2}, back.Properties().Sections.Children[0])
	assert.Equal(t, src.Soma().Points(), back.Soma().Points())
}

func TestWriteDispatch(t *testing.T) {
	m := openSimple(t)
	dir := t.TempDir()

	t.Run("asc", func(t *testing.T) {
		path := filepath.Join(dir, "out.asc")
		require.NoError(t, m.Write(path))
		_, err := morphology.Open(path)
		require.NoError(t, err)
	})

	t.Run("swc", func(t *testing.T) {
		path := filepath.Join(dir, "out.swc")
		require.NoError(t, m.Write(path))
		_, err := morphology.Open(path)
		require.NoError(t, err)
	})

	t.Run("unknown extension", func(t *testing.T) {
		err := m.Write(filepath.Join(dir, "out.xyz"))
		require.Error(t, err)
		assert.True(t, morphtypes.IsUnknownFormat(err))
		_, statErr := os.Stat(filepath.Join(dir, "out.xyz"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
