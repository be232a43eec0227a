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

package testcases

import (
	"math"

	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/geom/path"
)

var fillCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "triangle_evenodd",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.EvenOdd,
	},
	{
		Name:   "star_nonzero",
		Path:   FivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "star_evenodd",
		Path:   FivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.EvenOdd,
	},
	{
		Name:   "rectangle",
		Path:   Rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "figure_eight_nonzero",
		Path:   figureEight(32, 32, 24),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "figure_eight_evenodd",
		Path:   figureEight(32, 32, 24),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.EvenOdd,
	},
	{
		Name:   "thin_wedge",
		Path:   triangle(4, 30, 60, 28, 60, 34),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// FivePointStar builds a five-pointed star (self-intersecting).
// The central pentagon has winding number 2.
func FivePointStar(cx, cy, r float64) *path.Data {
	var pts [5]struct{ x, y float64 }
	for i := range pts {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i].x = cx + r*math.Cos(angle)
		pts[i].y = cy + r*math.Sin(angle)
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	order := []int{0, 2, 4, 1, 3}
	p := (&path.Data{}).MoveTo(pt(pts[order[0]].x, pts[order[0]].y))
	for _, i := range order[1:] {
		p = p.LineTo(pt(pts[i].x, pts[i].y))
	}
	return p.Close()
}

// Rectangle builds a rectangular path.
func Rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// figureEight builds a path which loops twice around a square in the same
// direction, with the second loop shifted down and to the right.  The
// overlap of the two loops has winding number 2.
func figureEight(cx, cy, size float64) *path.Data {
	h := size / 2
	q := size / 4
	return (&path.Data{}).
		MoveTo(pt(cx-h-q, cy-h-q)).
		LineTo(pt(cx+h-q, cy-h-q)).
		LineTo(pt(cx+h-q, cy+h-q)).
		LineTo(pt(cx-h-q, cy+h-q)).
		LineTo(pt(cx-h-q, cy-h-q)).
		LineTo(pt(cx-h+q, cy-h+q)).
		LineTo(pt(cx+h+q, cy-h+q)).
		LineTo(pt(cx+h+q, cy+h+q)).
		LineTo(pt(cx-h+q, cy+h+q)).
		LineTo(pt(cx-h+q, cy-h+q)).
		Close()
}
