package rescue

import "rescue-planner/internal/domain/entity"

// Scorer считает приоритеты и вместимость по таблицам
type Scorer struct {
	tables *Tables
}

func NewScorer(tables *Tables) *Scorer {
	return &Scorer{tables: tables}
}

// ShapePriority приоритет формы, 0 для форм вне таблицы
func (s *Scorer) ShapePriority(shape entity.ShapeKind) int {
	return s.tables.ShapePriority[shape]
}

// ColorPriority приоритет цвета, 0 для цветов вне таблицы
func (s *Scorer) ColorPriority(color entity.ColorTag) int {
	return s.tables.ColorPriority[color]
}

// ScoreCasualty итоговая оценка пострадавшего.
// Произведение, а не сумма: ноль в любом множителе обнуляет оценку.
func (s *Scorer) ScoreCasualty(shape entity.ShapeKind, color entity.ColorTag) int {
	return s.ShapePriority(shape) * s.ColorPriority(color)
}

// CapacityOf вместимость площадки данного цвета
func (s *Scorer) CapacityOf(color entity.ColorTag) int {
	return s.tables.PadCapacity[color]
}
