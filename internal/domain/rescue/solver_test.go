package rescue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rescue-planner/internal/domain/entity"
)

func starRed(x, y int) entity.Casualty {
	return entity.Casualty{
		Position:      entity.Point{X: x, Y: y},
		Shape:         entity.ShapeStar,
		Color:         entity.ColorRed,
		ShapePriority: 3,
		ColorPriority: 3,
		TotalScore:    9,
		AssignedPad:   entity.NoPad,
	}
}

func TestSolve_SinglePad(t *testing.T) {
	casualties := []entity.Casualty{starRed(0, 0)}
	pads := []entity.RescuePad{{Position: entity.Point{X: 3, Y: 4}, Color: entity.ColorBlue, Capacity: 1}}

	total := Solve(casualties, pads)
	require.InDelta(t, 0.5, total, 1e-9)
	require.Equal(t, 0, casualties[0].AssignedPad)
	require.Equal(t, 1, pads[0].AssignedCount)
	require.InDelta(t, 0.5, RescueRatio(casualties, total), 1e-9)
}

func TestSolve_CapacityExhaustion(t *testing.T) {
	casualties := []entity.Casualty{starRed(10, 10), starRed(10, 10)}
	pads := []entity.RescuePad{{Position: entity.Point{X: 10, Y: 10}, Color: entity.ColorBlue, Capacity: 1}}

	total := Solve(casualties, pads)
	require.InDelta(t, 3.0, total, 1e-9)
	require.Equal(t, 0, casualties[0].AssignedPad)
	require.False(t, casualties[1].IsAssigned())
	require.InDelta(t, 1.5, RescueRatio(casualties, total), 1e-9)
}

func TestSolve_TieKeepsFirstPad(t *testing.T) {
	casualties := []entity.Casualty{starRed(0, 0)}
	pads := []entity.RescuePad{
		{Position: entity.Point{X: 0, Y: 5}, Capacity: 2},
		{Position: entity.Point{X: 5, Y: 0}, Capacity: 2},
		{Position: entity.Point{X: -3, Y: -4}, Capacity: 2},
	}

	Solve(casualties, pads)
	require.Equal(t, 0, casualties[0].AssignedPad)
	require.Equal(t, 1, pads[0].AssignedCount)
	require.Zero(t, pads[1].AssignedCount)
}

func TestSolve_SkipsFullAndZeroCapacityPads(t *testing.T) {
	casualties := []entity.Casualty{starRed(0, 0)}
	pads := []entity.RescuePad{
		{Position: entity.Point{X: 0, Y: 0}, Capacity: 0},
		{Position: entity.Point{X: 1, Y: 0}, Capacity: 2, AssignedCount: 2},
		{Position: entity.Point{X: 30, Y: 40}, Capacity: 2},
	}

	total := Solve(casualties, pads)
	require.Equal(t, 2, casualties[0].AssignedPad)
	require.InDelta(t, 3.0/51.0, total, 1e-9)
}

func TestSolve_GreedyIsNotOptimal(t *testing.T) {
	// Первый (низкий приоритет) занимает единственное место рядом со вторым.
	low := entity.Casualty{Position: entity.Point{X: 10, Y: 0}, ShapePriority: 1, AssignedPad: entity.NoPad}
	high := starRed(0, 0)
	casualties := []entity.Casualty{low, high}
	pads := []entity.RescuePad{
		{Position: entity.Point{X: 0, Y: 0}, Capacity: 1},
		{Position: entity.Point{X: 100, Y: 0}, Capacity: 1},
	}

	total := Solve(casualties, pads)
	require.Equal(t, 0, casualties[0].AssignedPad)
	require.Equal(t, 1, casualties[1].AssignedPad)
	require.InDelta(t, 1.0/11.0+3.0/101.0, total, 1e-9)
}

func TestSolve_ZeroPriorityStillAssigned(t *testing.T) {
	casualties := []entity.Casualty{{Position: entity.Point{X: 0, Y: 0}, AssignedPad: entity.NoPad}}
	pads := []entity.RescuePad{{Position: entity.Point{X: 3, Y: 4}, Capacity: 1}}

	total := Solve(casualties, pads)
	require.Zero(t, total)
	require.Equal(t, 0, casualties[0].AssignedPad)
}

func TestSolve_NoPads(t *testing.T) {
	casualties := []entity.Casualty{starRed(0, 0), starRed(5, 5)}

	total := Solve(casualties, nil)
	require.Zero(t, total)
	for _, c := range casualties {
		require.False(t, c.IsAssigned())
	}
	require.Zero(t, RescueRatio(casualties, total))
}

func TestSolve_NoCasualties(t *testing.T) {
	pads := []entity.RescuePad{{Capacity: 4}}
	total := Solve(nil, pads)
	require.Zero(t, total)
	require.Zero(t, RescueRatio(nil, total))
	require.Zero(t, pads[0].AssignedCount)
}

func TestSolve_NeverExceedsCapacity(t *testing.T) {
	casualties := make([]entity.Casualty, 0, 20)
	for i := 0; i < 20; i++ {
		casualties = append(casualties, starRed(i*7%50, i*13%50))
	}
	pads := []entity.RescuePad{
		{Position: entity.Point{X: 10, Y: 10}, Capacity: 4},
		{Position: entity.Point{X: 40, Y: 20}, Capacity: 3},
		{Position: entity.Point{X: 25, Y: 45}, Capacity: 2},
	}

	Solve(casualties, pads)

	counts := make([]int, len(pads))
	assigned := 0
	for _, c := range casualties {
		if c.IsAssigned() {
			counts[c.AssignedPad]++
			assigned++
		}
	}
	for i, p := range pads {
		require.LessOrEqual(t, p.AssignedCount, p.Capacity)
		require.Equal(t, counts[i], p.AssignedCount)
	}
	require.Equal(t, 9, assigned)
}
