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

// Package flatten converts paths into the line segments consumed by the
// edgeflag rasterizer.
package flatten

import (
	"math"

	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// DefaultFlatness is the default curve approximation tolerance, in device
// pixels.  0.25 is below the threshold of visual perception.
const DefaultFlatness = 0.25

// Flattener approximates paths by line segments in device space.
type Flattener struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its approximating polygon.  Must be positive.
	Flatness float64
}

// New returns a Flattener with the identity transformation and the
// default flatness.
func New() *Flattener {
	return &Flattener{
		CTM:      matrix.Identity,
		Flatness: DefaultFlatness,
	}
}

// Lines appends the device-space line segments approximating p to dst and
// returns the extended slice.
//
// Every subpath is closed, as required for filling: if a subpath does not
// end at its start point, a closing segment is added.
func (f *Flattener) Lines(dst []edgeflag.Line, p *path.Data) []edgeflag.Line {
	var current vec.Vec2 // current point (user space)
	var subpath vec.Vec2 // subpath start (user space)
	open := false

	emit := func(from, to vec.Vec2) {
		dst = append(dst, edgeflag.Line{A: f.apply(from), B: f.apply(to)})
	}
	closeSubpath := func() {
		if open && current != subpath {
			emit(current, subpath)
		}
		current = subpath
		open = false
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			closeSubpath()
			current = p.Coords[coordIdx]
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			emit(current, p.Coords[coordIdx])
			current = p.Coords[coordIdx]
			open = true
			coordIdx++

		case path.CmdQuadTo:
			f.flattenQuadratic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], emit)
			current = p.Coords[coordIdx+1]
			open = true
			coordIdx += 2

		case path.CmdCubeTo:
			f.flattenCubic(current, p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2], emit)
			current = p.Coords[coordIdx+2]
			open = true
			coordIdx += 3

		case path.CmdClose:
			closeSubpath()
		}
	}
	closeSubpath()

	return dst
}

// apply maps a point from user space to device space.
func (f *Flattener) apply(p vec.Vec2) vec.Vec2 {
	m := f.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// applyLinear applies only the 2×2 linear part of the CTM to a vector.
// Used for tolerance checks, where translation is irrelevant.
func (f *Flattener) applyLinear(v vec.Vec2) vec.Vec2 {
	m := f.CTM
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2
// (user space) and calls emit for each segment.
func (f *Flattener) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// The distance between the curve and its chord is at most |e|,
	// where e = (P0 - 2*P1 + P2) / 4.  Splitting into n pieces divides
	// this by n².
	e := f.applyLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if dev := e.Length(); dev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / f.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, p1, p2, p3
// (user space) and calls emit for each segment.
func (f *Flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := f.applyLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := f.applyLinear(p1.Sub(p2.Mul(2)).Add(p3))

	// Wang's formula: n = ceil(sqrt(3 * max|d| / (4 * flatness)))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * f.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}
