// Proyecto Final - Media Catalog and Watch Statistics
// Copyright 2026 Kenneth Romero Lopez (KennethRomeroLopez)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/KennethRomeroLopez/proyecto-final

package chart

import (
	"bytes"
	"testing"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestRenderWatchCountsProducesPNG(t *testing.T) {
	cases := []struct {
		name   string
		movies int
		shows  int
	}{
		{"both zero", 0, 0},
		{"small counts", 3, 1},
		{"large counts", 250, 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			png, err := RenderWatchCounts(tc.movies, tc.shows)
			if err != nil {
				t.Fatalf("RenderWatchCounts failed: %v", err)
			}
			if !bytes.HasPrefix(png, pngMagic) {
				t.Error("Output does not start with the PNG signature")
			}
		})
	}
}

func TestRenderWatchCountsDeterministicSize(t *testing.T) {
	a, err := RenderWatchCounts(5, 2)
	if err != nil {
		t.Fatalf("RenderWatchCounts failed: %v", err)
	}
	b, err := RenderWatchCounts(5, 2)
	if err != nil {
		t.Fatalf("RenderWatchCounts failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Same counts rendered different images")
	}
}
