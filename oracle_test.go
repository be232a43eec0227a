// seehuhn.de/go/edgeflag - anti-aliased scanline polygon filling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package edgeflag_test

import (
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/geom/vec"
)

// Exact area model:
//
// For each pixel of a row, two values are tracked:
//
//	cover: signed vertical extent of the edges crossing the pixel column
//	area:  cover weighted by the distance of the crossing from the
//	       right side of the pixel
//
// The signed area of the path inside pixel i is then
//
//	coverage[i] = sum(cover[0:i]) + area[i]
//
// which is folded into [0, 1] according to the winding rule.

// exactCoverage computes the exact area coverage of all pixels of a w×h
// canvas, as alpha values in row-major order.
func exactCoverage(lines []edgeflag.Line, w, h int, rule edgeflag.WindingRule) []byte {
	out := make([]byte, w*h)
	cover := make([]float64, w)
	area := make([]float64, w)
	var crossings []float64

	for y := range h {
		clear(cover)
		clear(area)
		touched := false
		for _, l := range lines {
			if accumulateLine(l, y, cover, area, &crossings) {
				touched = true
			}
		}
		if !touched {
			continue
		}

		row := out[y*w : (y+1)*w]
		var accum float64
		for i := range row {
			raw := accum + area[i]
			accum += cover[i]

			var c float64
			if rule == edgeflag.EvenOdd {
				c = math.Mod(math.Abs(raw), 2)
				c = 1 - math.Abs(1-c)
			} else {
				c = min(math.Abs(raw), 1)
			}
			row[i] = uint8(math.Round(c * 255))
		}
	}
	return out
}

// accumulateLine adds the contribution of l within pixel row y.
// Contributions left of the canvas are attributed to pixel 0, those right
// of the canvas are dropped.  The return value tells whether l intersects
// the row.
func accumulateLine(l edgeflag.Line, y int, cover, area []float64, crossings *[]float64) bool {
	a, b := l.A, l.B
	if a.Y == b.Y {
		return false
	}
	sign := 1.0
	if b.Y < a.Y {
		sign = -1
	}

	yTop := max(float64(y), min(a.Y, b.Y))
	yBot := min(float64(y+1), max(a.Y, b.Y))
	if yBot <= yTop {
		return false
	}

	xAt := func(yy float64) float64 {
		return a.X + (b.X-a.X)*(yy-a.Y)/(b.Y-a.Y)
	}

	// split the piece of the line inside the row at pixel boundaries
	ys := append((*crossings)[:0], yTop, yBot)
	if a.X != b.X {
		x0, x1 := xAt(yTop), xAt(yBot)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := int(math.Floor(x0)) + 1; x <= int(math.Floor(x1)); x++ {
			yy := a.Y + (float64(x)-a.X)*(b.Y-a.Y)/(b.X-a.X)
			if yy > yTop && yy < yBot {
				ys = append(ys, yy)
			}
		}
		slices.Sort(ys)
	}
	*crossings = ys

	w := len(cover)
	for i := range len(ys) - 1 {
		dy := ys[i+1] - ys[i]
		if dy <= 0 {
			continue
		}
		c := sign * dy
		xm := xAt((ys[i] + ys[i+1]) / 2)
		pix := int(math.Floor(xm))
		switch {
		case pix < 0:
			cover[0] += c
			area[0] += c
		case pix < w:
			cover[pix] += c
			area[pix] += c * (1 - (xm - float64(pix)))
		}
	}
	return true
}

// TestExactCoverageTriangle checks the oracle itself: the triangle
// (0,0)→(10,0)→(10,1) has coverage (2x+1)/20 in pixel x.
func TestExactCoverageTriangle(t *testing.T) {
	lines := []edgeflag.Line{
		{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 10, Y: 0}},
		{A: vec.Vec2{X: 10, Y: 0}, B: vec.Vec2{X: 10, Y: 1}},
		{A: vec.Vec2{X: 10, Y: 1}, B: vec.Vec2{X: 0, Y: 0}},
	}
	got := exactCoverage(lines, 10, 1, edgeflag.NonZero)
	for x := range 10 {
		want := math.Round(float64(2*x+1) / 20 * 255)
		if d := math.Abs(float64(got[x]) - want); d > 1 {
			t.Errorf("pixel %d: expected %.0f, got %d", x, want, got[x])
		}
	}
}
