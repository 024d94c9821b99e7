package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"rescue-planner/internal/domain/entity"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &entity.BatchReport{Entries: []entity.RatioEntry{
		{ImageID: "img_b.png", Ratio: 2.0},
		{ImageID: "img_a.png", Ratio: 0.5},
		{ImageID: "img_c.png", Ratio: 0.5},
	}})

	require.Equal(t, "Images sorted by rescue ratio (desc):\nimg_b.png: 2.000\nimg_a.png: 0.500\nimg_c.png: 0.500\n", buf.String())
}

func TestPrintReport_NamesOfDifferentLength(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &entity.BatchReport{Entries: []entity.RatioEntry{
		{ImageID: "a.png", Ratio: 2.0},
		{ImageID: "very_long_name.png", Ratio: 0.5},
	}})

	require.Equal(t, "Images sorted by rescue ratio (desc):\na.png: 2.000\nvery_long_name.png: 0.500\n", buf.String())
}
