package rescue

import (
	"testing"

	"github.com/stretchr/testify/require"

	"rescue-planner/internal/domain/entity"
)

func TestRanking_SortedDescendingStable(t *testing.T) {
	r := NewRanking()
	r.Add("img_a", 0.5)
	r.Add("img_b", 2.0)
	r.Add("img_c", 0.5)

	require.Equal(t, []entity.RatioEntry{
		{ImageID: "img_b", Ratio: 2.0},
		{ImageID: "img_a", Ratio: 0.5},
		{ImageID: "img_c", Ratio: 0.5},
	}, r.Sorted())
	require.Equal(t, 3, r.Len())
}

func TestRanking_SortedReturnsCopy(t *testing.T) {
	r := NewRanking()
	r.Add("a", 1)
	sorted := r.Sorted()
	sorted[0].Ratio = 99

	require.Equal(t, 1.0, r.Sorted()[0].Ratio)
}

func TestRescueRatio(t *testing.T) {
	require.Zero(t, RescueRatio(nil, 10))
	require.InDelta(t, 2.5, RescueRatio(make([]entity.Casualty, 4), 10), 1e-9)
}
