// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

// Package chart renders the watch-statistics bar chart. The core
// statistics are plain integers computed by the store; this package
// only turns the two counts into a PNG for embedding.
package chart

import (
	"bytes"
	"fmt"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// RenderWatchCounts renders a two-bar chart (movies and shows watched)
// as PNG bytes. The y-axis uses integer tick spacing; the step grows
// past one only when needed to keep the axis readable.
func RenderWatchCounts(movieCount, showCount int) ([]byte, error) {
	maxCount := movieCount
	if showCount > maxCount {
		maxCount = showCount
	}
	// An all-zero chart still needs a visible axis.
	if maxCount < 1 {
		maxCount = 1
	}

	step := 1
	for maxCount/step > 20 {
		step++
	}
	ticks := []gochart.Tick{}
	for v := 0; v <= maxCount+step; v += step {
		ticks = append(ticks, gochart.Tick{Value: float64(v), Label: strconv.Itoa(v)})
	}

	graph := gochart.BarChart{
		Title:    "Tus estadísticas de visionado",
		Width:    640,
		Height:   360,
		BarWidth: 80,
		Bars: []gochart.Value{
			{Value: float64(movieCount), Label: "Películas"},
			{Value: float64(showCount), Label: "Series"},
		},
		YAxis: gochart.YAxis{
			Ticks: ticks,
			Range: &gochart.ContinuousRange{
				Min: 0,
				Max: float64(maxCount + step),
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render watch chart: %w", err)
	}
	return buf.Bytes(), nil
}
