//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"rescue-planner/internal/domain/entity"
)

type GoCVExtractor struct {
	BinaryThreshold float32
	MinArea         float64
	ApproxEpsilon   float64
	log             zerolog.Logger
}

// NewGoCVExtractor создаёт экстрактор с минимальной площадью контура.
func NewGoCVExtractor(minArea float64, log zerolog.Logger) *GoCVExtractor {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}
	return &GoCVExtractor{
		BinaryThreshold: DefaultBinaryThreshold,
		MinArea:         minArea,
		ApproxEpsilon:   DefaultApproxEpsilon,
		log:             log.With().Str("component", "extractor").Logger(),
	}
}

// Extract выделяет контуры маркеров и возвращает их в порядке обхода.
func (e *GoCVExtractor) Extract(ctx context.Context, imageData []byte) ([]entity.RawMarker, error) {
	_ = ctx
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	hsv := gocv.NewMat()
	defer hsv.Close()
	gocv.CvtColor(mat, &hsv, gocv.ColorBGRToHSV)

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(gray, &thresh, e.BinaryThreshold, 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(thresh, gocv.RetrievalTree, gocv.ChainApproxNone)
	defer contours.Close()

	markers := make([]entity.RawMarker, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		c := contours.At(i)
		area := gocv.ContourArea(c)
		if area < e.MinArea {
			continue
		}

		perimeter := gocv.ArcLength(c, true)
		approx := gocv.ApproxPolyDP(c, e.ApproxEpsilon*perimeter, true)
		corners := approx.Size()
		approx.Close()

		marker := entity.RawMarker{
			Area:        area,
			Perimeter:   perimeter,
			CornerCount: corners,
		}

		centroid, ok := contourCentroid(c.ToPoints())
		if ok && inBounds(centroid, hsv.Cols(), hsv.Rows()) {
			px := hsv.GetVecbAt(centroid.Y, centroid.X)
			marker.Centroid = centroid
			marker.Color = entity.HSV{H: px[0], S: px[1], V: px[2]}
		} else {
			marker.Degenerate = true
		}

		markers = append(markers, marker)
	}

	e.log.Debug().
		Int("contours", contours.Size()).
		Int("markers", len(markers)).
		Msg("contours extracted")
	return markers, nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}
