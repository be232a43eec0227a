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

package edgeflag

import "image/color"

// WindingRule decides which points are inside a possibly
// self-intersecting path.
type WindingRule int

const (
	// NonZero treats a point as inside if the signed number of path
	// crossings on a ray from the point is non-zero.
	NonZero WindingRule = iota

	// EvenOdd treats a point as inside if the number of path crossings
	// on a ray from the point is odd.
	EvenOdd
)

func (r WindingRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "WindingRule(?)"
	}
}

// Paint is the source of colour for a fill.
// It is either a [Solid] colour or a [PaintFunc].
type Paint interface {
	isPaint()
}

// Solid paints every pixel with the same colour.
type Solid struct {
	Color color.NRGBA
}

func (Solid) isPaint() {}

// PaintFunc returns the colour for the pixel at (x, y).
// Gradients and patterns are implemented as paint functions.
type PaintFunc func(x, y int) color.NRGBA

func (PaintFunc) isPaint() {}

// withOpacity returns a paint function which scales the alpha of fn.
func withOpacity(fn PaintFunc, opacity float64) PaintFunc {
	scale := uint32(opacity*255 + 0.5)
	return func(x, y int) color.NRGBA {
		c := fn(x, y)
		c.A = uint8(uint32(c.A) * scale / 255)
		return c
	}
}
