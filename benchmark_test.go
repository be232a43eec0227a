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
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/edgeflag/flatten"
	"seehuhn.de/go/edgeflag/testcases"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// BenchmarkEdgeFlagO benchmarks the rasterizer drawing an "O" shape,
// including the flattening of the path.
func BenchmarkEdgeFlagO(b *testing.B) {
	b.Run("spp=8", func(b *testing.B) { benchmarkO(b, edgeflag.NewRasterizer[uint8]()) })
	b.Run("spp=16", func(b *testing.B) { benchmarkO(b, edgeflag.NewRasterizer[uint16]()) })
	b.Run("spp=32", func(b *testing.B) { benchmarkO(b, edgeflag.NewRasterizer[uint32]()) })
}

func benchmarkO[S edgeflag.Sample](b *testing.B, r *edgeflag.Rasterizer[S]) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			dst := edgeflag.NewImagePainter(image.NewAlpha(image.Rect(0, 0, size, size)))

			center := float64(size) / 2
			oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)
			f := flatten.New()
			var lines []edgeflag.Line

			b.ReportAllocs()
			for b.Loop() {
				lines = f.Lines(lines[:0], oPath)
				r.FillColor(dst, lines, color.White, edgeflag.EvenOdd)
			}
		})
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkFillAll measures steady-state performance by reusing a single
// Rasterizer across all test cases.  This exercises buffer reuse with
// varying path sizes and winding rules.
func BenchmarkFillAll(b *testing.B) {
	type prepared struct {
		lines []edgeflag.Line
		dst   edgeflag.Painter
		rule  edgeflag.WindingRule
	}
	var cases []prepared
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			img := image.NewAlpha(image.Rect(0, 0, tc.Width, tc.Height))
			cases = append(cases, prepared{
				lines: tc.Lines(),
				dst:   edgeflag.NewImagePainter(img),
				rule:  tc.Rule,
			})
		}
	}

	r := edgeflag.NewRasterizer[uint32]()
	paint := edgeflag.Solid{Color: color.NRGBA{R: 255, G: 255, B: 255, A: 255}}

	b.ReportAllocs()
	for b.Loop() {
		for _, c := range cases {
			r.Fill(c.dst, c.lines, paint, c.rule)
		}
	}
}

// makeOPath creates an "O" shape: the outer circle is counter-clockwise,
// the inner circle clockwise.
func makeOPath(cx, cy, outerR, innerR float64) *path.Data {
	p := &path.Data{}
	p = addCircleToPath(p, cx, cy, outerR, false)
	return addCircleToPath(p, cx, cy, innerR, true)
}

// addCircleToPath adds a circle made of four cubic Bézier curves to p.
func addCircleToPath(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	const k = 0.5522847498
	kr := k * r

	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

	p = p.MoveTo(pt(cx, cy-r))
	if clockwise {
		p = p.
			CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	} else {
		p = p.
			CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	}
	return p.Close()
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier
// curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	if clockwise {
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}
