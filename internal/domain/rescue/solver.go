package rescue

import "rescue-planner/internal/domain/entity"

// Solve жадно назначает пострадавших на площадки и возвращает сумму выбранных оценок.
//
// Пострадавшие обрабатываются в порядке обхода контуров, без сортировки по приоритету.
// Для каждого выбирается площадка со свободным местом и максимальной оценкой
// shapePriority / (distance + 1). При равенстве остаётся первая площадка.
// Назначения не пересматриваются: ранний пострадавший может занять место,
// которое лучше подошло бы следующему.
func Solve(casualties []entity.Casualty, pads []entity.RescuePad) float64 {
	total := 0.0
	for ci := range casualties {
		c := &casualties[ci]

		bestScore := -1.0
		bestPad := entity.NoPad
		for pi := range pads {
			p := &pads[pi]
			if !p.HasRoom() {
				continue
			}
			score := float64(c.ShapePriority) / (c.Position.DistanceTo(p.Position) + 1)
			if score > bestScore {
				bestScore = score
				bestPad = pi
			}
		}

		if bestPad == entity.NoPad {
			c.AssignedPad = entity.NoPad
			continue
		}
		c.AssignedPad = bestPad
		pads[bestPad].AssignedCount++
		total += bestScore
	}
	return total
}
