package port

import (
	"context"

	"rescue-planner/internal/domain/entity"
)

// MarkerExtractor интерфейс извлечения контуров со снимка
type MarkerExtractor interface {
	// Extract возвращает контуры в порядке обхода изображения
	Extract(ctx context.Context, imageData []byte) ([]entity.RawMarker, error)
}
