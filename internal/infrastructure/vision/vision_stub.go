//go:build !gocv
// +build !gocv

package vision

import (
	"context"

	"github.com/rs/zerolog"

	"rescue-planner/internal/domain/entity"
)

type GoCVExtractor struct {
	BinaryThreshold float32
	MinArea         float64
	ApproxEpsilon   float64
	log             zerolog.Logger
}

// NewGoCVExtractor создаёт экстрактор-заглушку (без OpenCV).
func NewGoCVExtractor(minArea float64, log zerolog.Logger) *GoCVExtractor {
	if minArea <= 0 {
		minArea = DefaultMinArea
	}
	return &GoCVExtractor{
		BinaryThreshold: DefaultBinaryThreshold,
		MinArea:         minArea,
		ApproxEpsilon:   DefaultApproxEpsilon,
		log:             log,
	}
}

// Extract возвращает ошибку, если сборка без тега gocv.
func (e *GoCVExtractor) Extract(ctx context.Context, imageData []byte) ([]entity.RawMarker, error) {
	_ = ctx
	_ = imageData
	return nil, ErrVisionDisabled
}

type GoCVRenderer struct {
	Quality int
}

// NewGoCVRenderer создаёт отрисовщик-заглушку.
func NewGoCVRenderer() *GoCVRenderer {
	return &GoCVRenderer{Quality: 90}
}

// Render возвращает ошибку, если сборка без тега gocv.
func (r *GoCVRenderer) Render(imageData []byte, result *entity.ImageResult) (*entity.RenderedImages, error) {
	_ = imageData
	_ = result
	return nil, ErrVisionDisabled
}
