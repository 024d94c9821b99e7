package rescue

import "rescue-planner/internal/domain/entity"

// Analyze выполняет классификацию, назначение и расчёт коэффициента для одного снимка
func Analyze(imageID string, raws []entity.RawMarker, tables *Tables) *entity.ImageResult {
	casualties, pads := NewClassifier(tables).ClassifyAll(raws)
	total := Solve(casualties, pads)
	return &entity.ImageResult{
		ImageID:     imageID,
		Casualties:  casualties,
		Pads:        pads,
		TotalScore:  total,
		RescueRatio: RescueRatio(casualties, total),
	}
}
