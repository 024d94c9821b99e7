package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRescuePadRoom(t *testing.T) {
	p := RescuePad{Capacity: 2}
	require.True(t, p.HasRoom())
	require.Equal(t, 2, p.Remaining())

	p.AssignedCount = 2
	require.False(t, p.HasRoom())
	require.Equal(t, 0, p.Remaining())

	require.False(t, RescuePad{Capacity: 0}.HasRoom())
}

func TestMarkerKind(t *testing.T) {
	require.Equal(t, KindPad, Marker{Pad: &RescuePad{}}.Kind())
	require.Equal(t, KindCasualty, Marker{Casualty: &Casualty{AssignedPad: NoPad}}.Kind())
}

func TestImageResultAssignedCount(t *testing.T) {
	r := ImageResult{Casualties: []Casualty{{AssignedPad: 0}, {AssignedPad: NoPad}, {AssignedPad: 1}}}
	require.Equal(t, 2, r.AssignedCount())
}
