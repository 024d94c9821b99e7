package rescue

import "rescue-planner/internal/domain/entity"

// Classifier превращает сырые контуры в пострадавших и площадки.
// Ошибок не возвращает: всё нераспознанное получает значения по умолчанию.
type Classifier struct {
	tables *Tables
	scorer *Scorer
}

// NewClassifier создаёт классификатор поверх таблиц
func NewClassifier(tables *Tables) *Classifier {
	return &Classifier{tables: tables, scorer: NewScorer(tables)}
}

// Classify определяет тип маркера по одному контуру
func (c *Classifier) Classify(raw entity.RawMarker) entity.Marker {
	shape := entity.ShapeFromCorners(raw.CornerCount)

	position := raw.Centroid
	color := entity.ColorUnknown
	if raw.IsDegenerate() {
		position = entity.Point{}
	} else {
		color = c.ColorOf(raw.Color)
	}

	if shape == entity.ShapeCircle {
		return entity.Marker{Pad: &entity.RescuePad{
			Position: position,
			Color:    color,
			Capacity: c.scorer.CapacityOf(color),
		}}
	}

	return entity.Marker{Casualty: &entity.Casualty{
		Position:      position,
		Shape:         shape,
		Color:         color,
		ShapePriority: c.scorer.ShapePriority(shape),
		ColorPriority: c.scorer.ColorPriority(color),
		TotalScore:    c.scorer.ScoreCasualty(shape, color),
		AssignedPad:   entity.NoPad,
	}}
}

// ColorOf ищет первый диапазон, содержащий цвет
func (c *Classifier) ColorOf(hsv entity.HSV) entity.ColorTag {
	for _, r := range c.tables.ColorRanges {
		if r.Contains(hsv) {
			return r.Color
		}
	}
	return entity.ColorUnknown
}

// ClassifyAll раскладывает контуры на пострадавших и площадки, сохраняя порядок обхода
func (c *Classifier) ClassifyAll(raws []entity.RawMarker) ([]entity.Casualty, []entity.RescuePad) {
	casualties := make([]entity.Casualty, 0, len(raws))
	pads := make([]entity.RescuePad, 0)
	for _, raw := range raws {
		m := c.Classify(raw)
		if m.Kind() == entity.KindPad {
			pads = append(pads, *m.Pad)
			continue
		}
		casualties = append(casualties, *m.Casualty)
	}
	return casualties, pads
}
