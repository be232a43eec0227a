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
	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/geom/path"
)

var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(20, 20, 24, 24, 0.0),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(20, 20, 24, 24, 0.25),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(20, 20, 24, 24, 0.5),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(20, 20, 24, 24, 0.75),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "large_offset",
		Path:   largeOffsetRectangle(1e6, 1e6, 20),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
	{
		Name:   "float64_precision",
		Path:   float64PrecisionShape(),
		Width:  64,
		Height: 64,
		Rule:   edgeflag.NonZero,
	},
}

// offsetRectangle builds a rectangle with a subpixel offset applied to all
// coordinates.
func offsetRectangle(x1, y1, w, h, offset float64) *path.Data {
	return Rectangle(x1+offset, y1+offset, x1+w+offset, y1+h+offset)
}

// largeOffsetRectangle builds a rectangle centred at large coordinates,
// translated back to the canvas centre.
func largeOffsetRectangle(cx, cy, size float64) *path.Data {
	dx := 32 - cx
	dy := 32 - cy
	return Rectangle(cx-size/2+dx, cy-size/2+dy, cx+size/2+dx, cy+size/2+dy)
}

// float64PrecisionShape builds a square using coordinates which need the
// full float64 precision.
func float64PrecisionShape() *path.Data {
	base := 32.0
	delta1 := 0.123456789012345
	delta2 := 0.123456789012346
	return Rectangle(base-10+delta1, base-10+delta1, base+10+delta2, base+10+delta2)
}
