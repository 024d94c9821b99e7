//go:build gocv
// +build gocv

package vision

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"rescue-planner/internal/domain/entity"
)

func encodePNG(t *testing.T, mat gocv.Mat) []byte {
	t.Helper()
	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	require.NoError(t, err)
	defer buf.Close()
	data := make([]byte, buf.Len())
	copy(data, buf.GetBytes())
	return data
}

func TestGoCVExtractor_Square(t *testing.T) {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 200, 200, gocv.MatTypeCV8UC3)
	defer img.Close()
	gocv.Rectangle(&img, image.Rect(50, 50, 110, 110), color.RGBA{R: 220, G: 220, B: 220, A: 255}, -1)

	markers, err := NewGoCVExtractor(0, zerolog.Nop()).Extract(context.Background(), encodePNG(t, img))
	require.NoError(t, err)
	require.NotEmpty(t, markers)

	m := markers[0]
	require.Equal(t, 4, m.CornerCount)
	require.False(t, m.Degenerate)
	require.InDelta(t, 80, m.Centroid.X, 2)
	require.InDelta(t, 80, m.Centroid.Y, 2)
	require.Equal(t, entity.HSV{H: 0, S: 0, V: 220}, m.Color)
}

func TestGoCVExtractor_SkipsSmallContours(t *testing.T) {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 100, 100, gocv.MatTypeCV8UC3)
	defer img.Close()
	gocv.Rectangle(&img, image.Rect(10, 10, 15, 15), color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)

	markers, err := NewGoCVExtractor(0, zerolog.Nop()).Extract(context.Background(), encodePNG(t, img))
	require.NoError(t, err)
	require.Empty(t, markers)
}

func TestGoCVExtractor_BadImage(t *testing.T) {
	_, err := NewGoCVExtractor(0, zerolog.Nop()).Extract(context.Background(), []byte("not an image"))
	require.Error(t, err)
}

func TestGoCVRenderer_Render(t *testing.T) {
	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 120, 120, gocv.MatTypeCV8UC3)
	defer img.Close()

	result := &entity.ImageResult{
		Casualties: []entity.Casualty{{Position: entity.Point{X: 10, Y: 10}, TotalScore: 9, AssignedPad: 0}},
		Pads:       []entity.RescuePad{{Position: entity.Point{X: 100, Y: 100}, Capacity: 4, AssignedCount: 1}},
	}
	out, err := NewGoCVRenderer().Render(encodePNG(t, img), result)
	require.NoError(t, err)
	require.NotEmpty(t, out.Scored)
	require.NotEmpty(t, out.Assigned)
}
