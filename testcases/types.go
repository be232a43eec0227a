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

// Package testcases contains named fill geometries, shared by the tests,
// the benchmarks and the reference image tools.
package testcases

import (
	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/edgeflag/flatten"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single fill test.
type TestCase struct {
	Name   string               // lowercase a-z, 0-9 and _ only
	Path   *path.Data           // the geometry to fill
	Width  int                  // canvas width in pixels
	Height int                  // canvas height in pixels
	Rule   edgeflag.WindingRule // the winding rule
	CTM    matrix.Matrix        // transformation matrix (zero-value means no transform)
}

// Transform returns the CTM of the test case, with the zero value
// replaced by the identity.
func (tc *TestCase) Transform() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Lines flattens the path of the test case into device space.
func (tc *TestCase) Lines() []edgeflag.Line {
	f := flatten.New()
	f.CTM = tc.Transform()
	return f.Lines(nil, tc.Path)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936
