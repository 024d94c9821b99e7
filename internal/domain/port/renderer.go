package port

import "rescue-planner/internal/domain/entity"

// SurveyRenderer интерфейс отрисовки результатов на снимке
type SurveyRenderer interface {
	// Render рисует оценки пострадавших и линии назначений
	Render(imageData []byte, result *entity.ImageResult) (*entity.RenderedImages, error)
}
