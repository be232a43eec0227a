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

// Package gradient implements procedural paints for the edgeflag
// rasterizer.
//
// The ColorAt methods of all types in this package can be passed to
// [seehuhn.de/go/edgeflag.Rasterizer.FillPaint]:
//
//	g := &gradient.Linear{Start: a, End: b, Stops: stops}
//	r.FillPaint(dst, lines, g.ColorAt, 1, edgeflag.NonZero)
//
// Colours are interpolated component-wise, on non-premultiplied values.
package gradient

import (
	"image/color"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Extend determines the colour of points outside the range [0, 1] of a
// gradient.
type Extend int

const (
	// Pad uses the colour of the nearest end of the gradient.
	Pad Extend = iota
	// Repeat repeats the gradient.
	Repeat
	// Reflect repeats the gradient, mirroring every other copy.
	Reflect
)

// Stop is a colour at a given position along a gradient.
type Stop struct {
	Offset float64 // position in [0, 1]
	Color  color.NRGBA
}

// Linear is a gradient along the line from Start to End.
// The colour is constant on lines orthogonal to this.
type Linear struct {
	Start, End vec.Vec2
	Stops      []Stop
	Extend     Extend
}

// ColorAt returns the colour at the centre of pixel (x, y).
func (g *Linear) ColorAt(x, y int) color.NRGBA {
	d := g.End.Sub(g.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return colorAt(g.Stops, 0, g.Extend)
	}

	p := pixelCentre(x, y).Sub(g.Start)
	t := (p.X*d.X + p.Y*d.Y) / lenSq
	return colorAt(g.Stops, t, g.Extend)
}

// Radial is a gradient which varies with the distance from Center.
// Offset 0 is at the centre, offset 1 at distance Radius.
type Radial struct {
	Center vec.Vec2
	Radius float64
	Stops  []Stop
	Extend Extend
}

// ColorAt returns the colour at the centre of pixel (x, y).
func (g *Radial) ColorAt(x, y int) color.NRGBA {
	if g.Radius <= 0 {
		return colorAt(g.Stops, 1, g.Extend)
	}
	t := pixelCentre(x, y).Sub(g.Center).Length() / g.Radius
	return colorAt(g.Stops, t, g.Extend)
}

// Checker is a checkerboard pattern of Size×Size pixel squares.
// The square containing pixel (0, 0) has colour A.
type Checker struct {
	Size int
	A, B color.NRGBA
}

// ColorAt returns the colour of pixel (x, y).
func (c *Checker) ColorAt(x, y int) color.NRGBA {
	size := max(c.Size, 1)
	i := floorDiv(x, size) + floorDiv(y, size)
	if i&1 == 0 {
		return c.A
	}
	return c.B
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func pixelCentre(x, y int) vec.Vec2 {
	return vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// colorAt returns the colour at position t along a gradient.
// The stops need not be sorted.
func colorAt(stops []Stop, t float64, mode Extend) color.NRGBA {
	switch len(stops) {
	case 0:
		return color.NRGBA{}
	case 1:
		return stops[0].Color
	}

	if !slices.IsSortedFunc(stops, cmpStops) {
		stops = slices.SortedStableFunc(slices.Values(stops), cmpStops)
	}

	t = applyExtend(t, mode)

	idx, _ := slices.BinarySearchFunc(stops, t, func(s Stop, t float64) int {
		switch {
		case s.Offset < t:
			return -1
		case s.Offset > t:
			return 1
		default:
			return 0
		}
	})
	if idx == 0 {
		return stops[0].Color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].Color
	}

	s0, s1 := stops[idx-1], stops[idx]
	if s1.Offset == s0.Offset {
		return s0.Color
	}
	return lerp(s0.Color, s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
}

func cmpStops(a, b Stop) int {
	switch {
	case a.Offset < b.Offset:
		return -1
	case a.Offset > b.Offset:
		return 1
	default:
		return 0
	}
}

// applyExtend maps t into [0, 1] according to the extend mode.
func applyExtend(t float64, mode Extend) float64 {
	switch mode {
	case Repeat:
		t -= math.Floor(t)
	case Reflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = min(max(t, 0), 1)
	}
	return t
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
