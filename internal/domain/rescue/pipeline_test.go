package rescue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rescue-planner/internal/domain/entity"
)

func TestAnalyze(t *testing.T) {
	raws := []entity.RawMarker{
		{Area: 400, CornerCount: 10, Centroid: entity.Point{X: 0, Y: 0}, Color: hsvRed},
		{Area: 900, CornerCount: 8, Centroid: entity.Point{X: 3, Y: 4}, Color: hsvGray},
		{Area: 400, CornerCount: 3, Centroid: entity.Point{X: 3, Y: 4}, Color: hsvRed},
		{Area: 400, CornerCount: 4, Centroid: entity.Point{X: 3, Y: 4}, Color: hsvRed},
	}

	result := Analyze("img_01.png", raws, DefaultTables())
	require.Equal(t, "img_01.png", result.ImageID)
	require.Len(t, result.Casualties, 3)
	require.Len(t, result.Pads, 1)
	require.Equal(t, 2, result.Pads[0].Capacity)

	// star 3/6, triangle 2/1, square без места
	require.Equal(t, 0, result.Casualties[0].AssignedPad)
	require.Equal(t, 0, result.Casualties[1].AssignedPad)
	require.False(t, result.Casualties[2].IsAssigned())
	require.InDelta(t, 2.5, result.TotalScore, 1e-9)
	require.InDelta(t, 2.5/3, result.RescueRatio, 1e-9)
	require.Equal(t, 9, result.Casualties[0].TotalScore)
}

func TestAnalyze_Deterministic(t *testing.T) {
	raws := []entity.RawMarker{
		{Area: 400, CornerCount: 3, Centroid: entity.Point{X: 10, Y: 20}, Color: hsvRed},
		{Area: 400, CornerCount: 7, Centroid: entity.Point{X: 30, Y: 20}, Color: hsvPink},
		{Area: 400, CornerCount: 11, Centroid: entity.Point{X: 50, Y: 50}, Color: hsvRed},
		{Area: 400, CornerCount: 6, Centroid: entity.Point{X: 0, Y: 90}, Color: hsvBlue},
	}

	first := Analyze("x", raws, DefaultTables())
	second := Analyze("x", raws, DefaultTables())
	require.Equal(t, first, second)
}

func TestAnalyze_Empty(t *testing.T) {
	result := Analyze("empty", nil, DefaultTables())
	require.Empty(t, result.Casualties)
	require.Empty(t, result.Pads)
	require.Zero(t, result.RescueRatio)
}
