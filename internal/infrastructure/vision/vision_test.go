package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"rescue-planner/internal/domain/entity"
)

func TestContourCentroid_Square(t *testing.T) {
	square := []image.Point{{10, 10}, {30, 10}, {30, 30}, {10, 30}}
	c, ok := contourCentroid(square)
	require.True(t, ok)
	require.Equal(t, entity.Point{X: 20, Y: 20}, c)
}

func TestContourCentroid_Orientation(t *testing.T) {
	cw := []image.Point{{0, 0}, {0, 9}, {9, 9}, {9, 0}}
	ccw := []image.Point{{0, 0}, {9, 0}, {9, 9}, {0, 9}}

	a, ok := contourCentroid(cw)
	require.True(t, ok)
	b, ok := contourCentroid(ccw)
	require.True(t, ok)
	require.Equal(t, a, b)
	require.Equal(t, entity.Point{X: 4, Y: 4}, a)
}

func TestContourCentroid_Degenerate(t *testing.T) {
	_, ok := contourCentroid([]image.Point{{0, 0}, {5, 5}, {10, 10}})
	require.False(t, ok)

	_, ok = contourCentroid([]image.Point{{1, 1}})
	require.False(t, ok)
}

func TestInBounds(t *testing.T) {
	require.True(t, inBounds(entity.Point{X: 0, Y: 0}, 10, 10))
	require.False(t, inBounds(entity.Point{X: 10, Y: 0}, 10, 10))
	require.False(t, inBounds(entity.Point{X: -1, Y: 3}, 10, 10))
}
