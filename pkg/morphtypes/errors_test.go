package morphtypes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorRendering(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"path and line",
			NewError(KindRawData, "cell.asc", 7, "expected %s", "')'"),
			"raw data error: cell.asc:7: expected ')'",
		},
		{
			"path only",
			NewError(KindSoma, "cell.asc", 0, "no soma"),
			"soma error: cell.asc: no soma",
		},
		{
			"line only",
			NewError(KindIDSequence, "", 3, "gap"),
			"ID sequence error: line 3: gap",
		},
		{
			"bare",
			NewError(KindUnknownFormat, "", 0, "what is this"),
			"unknown format error: what is this",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsRawData(NewError(KindRawData, "", 0, "x")))
	assert.True(t, IsIDSequence(NewError(KindIDSequence, "", 0, "x")))
	assert.True(t, IsMultipleTrees(NewError(KindMultipleTrees, "", 0, "x")))
	assert.True(t, IsMissingParent(NewError(KindMissingParent, "", 0, "x")))
	assert.True(t, IsSectionBuilder(NewError(KindSectionBuilder, "", 0, "x")))
	assert.True(t, IsSoma(NewError(KindSoma, "", 0, "x")))
	assert.True(t, IsUnknownFormat(NewError(KindUnknownFormat, "", 0, "x")))

	assert.False(t, IsSoma(NewError(KindRawData, "", 0, "x")))
	assert.False(t, IsRawData(NewError(KindSoma, "", 0, "x")))
	assert.False(t, IsRawData(fmt.Errorf("plain")))
	assert.False(t, IsRawData(nil))
}

func TestRawDataCoversSubKinds(t *testing.T) {
	for _, kind := range []ErrorKind{KindIDSequence, KindMultipleTrees, KindMissingParent, KindSectionBuilder} {
		assert.True(t, IsRawData(NewError(kind, "", 0, "x")), kind.String())
	}
	assert.False(t, IsRawData(NewError(KindSoma, "", 0, "x")))
	assert.False(t, IsRawData(NewError(KindUnknownFormat, "", 0, "x")))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("opening reconstruction: %w", NewError(KindMissingParent, "cell.swc", 4, "x"))
	assert.True(t, IsMissingParent(err))
	assert.True(t, IsRawData(err))
	assert.False(t, IsSoma(err))
}
