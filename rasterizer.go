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

// Package edgeflag fills polygonal paths with anti-aliasing, using
// edge-flag scanline rasterization.
//
// Every pixel row is sampled at 8, 16 or 32 sub-pixel rows.  Each path
// edge flips one bit per sub-pixel row in a per-pixel mask; a left-to-right
// sweep over the masks then yields the covered sub-pixel rows of every
// pixel.  Coverage is the fraction of rows covered.  The horizontal sample
// positions of the rows follow an N-rooks pattern.
//
// The algorithm is described in
// https://mlab.taik.fi/~kkallio/antialiasing/EdgeFlagAA.pdf .
package edgeflag

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// Rasterizer fills paths into a [Painter].
// The type parameter selects the number of samples per pixel, see [Sample].
//
// Create one instance and reuse it for multiple paths.  Internal buffers
// grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer[S Sample] struct {
	// Offset translates the path before it is rasterized.
	Offset vec.Vec2

	spp        int       // samples per pixel
	alphaShift int       // log2(256/spp)
	nrooks     []float64 // horizontal sample offset per sub-pixel row

	// Internal buffers (reused across calls)
	edges      []edge    // edge arena for the current fill
	table      edgeTable // edges by start scanline
	scanline   []S       // edge flags per pixel; reused for the coverage masks
	windings   []int16   // spp winding counters per pixel, nonzero rule only
	sumWinding []int32   // running winding sum per sub-pixel row

	// State of the current fill
	blitOrigin image.Point     // device position of the fill origin
	clip       image.Rectangle // device-space output rectangle
	pathOrigin image.Point     // path-space position of the fill origin

	dropped int // number of samples outside the scanline buffer
}

// NewRasterizer returns a new Rasterizer.
func NewRasterizer[S Sample]() *Rasterizer[S] {
	spp := samplesPerPixel[S]()
	return &Rasterizer[S]{
		spp:        spp,
		alphaShift: bits.Len(uint(256/spp)) - 1,
		nrooks:     nrooksOffsets(spp),
	}
}

// SamplesPerPixel returns the number of vertical samples taken per pixel.
func (r *Rasterizer[S]) SamplesPerPixel() int {
	return r.spp
}

// DroppedSamples returns the number of samples which were discarded
// because floating point error placed them outside the scanline buffer.
// The count accumulates over all fills.
func (r *Rasterizer[S]) DroppedSamples() int {
	return r.dropped
}

// FillColor fills the area enclosed by lines with the colour c.
func (r *Rasterizer[S]) FillColor(dst Painter, lines []Line, c color.Color, rule WindingRule) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	r.Fill(dst, lines, Solid{Color: nc}, rule)
}

// FillPaint fills the area enclosed by lines using the paint function fn.
// The alpha of every colour returned by fn is scaled by opacity, which
// must be in the range [0, 1].
func (r *Rasterizer[S]) FillPaint(dst Painter, lines []Line, fn PaintFunc, opacity float64, rule WindingRule) {
	if opacity <= 0 {
		return
	}
	if opacity < 1 {
		fn = withOpacity(fn, opacity)
	}
	r.Fill(dst, lines, fn, rule)
}

// Fill fills the area enclosed by lines.
//
// The lines need not form closed polygons, but for sensible results every
// point should be the end point of as many lines as it is a start point of.
// Horizontal lines are ignored.
//
// Fill panics if the scale of dst is not 1.
func (r *Rasterizer[S]) Fill(dst Painter, lines []Line, paint Paint, rule WindingRule) {
	if s := dst.Scale(); s != 1 {
		panic(fmt.Sprintf("edgeflag: unsupported painter scale %g", s))
	}

	bbox := linesBounds(lines, r.Offset)
	destRect := bbox.Add(dst.Translation())
	r.blitOrigin = destRect.Min
	r.pathOrigin = bbox.Min
	r.clip = destRect.Intersect(dst.ClipRect())
	if r.clip.Empty() {
		return
	}

	origin := vec.Vec2{
		X: float64(bbox.Min.X) - r.Offset.X,
		Y: float64(bbox.Min.Y) - r.Offset.Y,
	}
	topScanline := r.clip.Min.Y - r.blitOrigin.Y
	bottomScanline := r.clip.Max.Y - r.blitOrigin.Y - 1

	var minEdgeY, maxEdgeY int
	r.edges, minEdgeY, maxEdgeY = prepareEdges(r.edges, lines, r.spp, origin, topScanline, bottomScanline)
	if len(r.edges) == 0 {
		return
	}

	// The samples of an edge can reach x = width, so one extra pixel
	// is needed at the right.
	width := bbox.Dx() + 1
	r.scanline = growZeroed(r.scanline, width)
	if rule == NonZero {
		r.windings = growZeroed(r.windings, width*r.spp)
		r.sumWinding = growZeroed(r.sumWinding, r.spp)
	}

	minScanline := minEdgeY / r.spp
	maxScanline := maxEdgeY / r.spp
	r.table.setScanlineRange(minScanline, maxScanline)
	for i := range r.edges {
		r.table.push(r.edges, int32(i), r.spp)
	}

	var plot plotFunc
	if rule == EvenOdd {
		plot = r.plotEvenOdd
	} else {
		plot = r.plotNonZero
	}

	active := noEdge
	for scanline := minScanline; scanline <= maxScanline; scanline++ {
		ext := edgeExtent{minX: width - 1, maxX: 0}
		active = r.table.plotEdgesForScanline(r.edges, scanline, r.spp, plot, &ext, active)
		if ext.minX > ext.maxX {
			continue
		}
		if rule == EvenOdd {
			r.accumulateEvenOdd(ext)
		} else {
			r.accumulateNonZero(ext)
		}
		r.writeScanline(dst, scanline, ext, paint)
	}
}

// forEachSample calls fn for the samples of e in the sub-pixel rows
// [startRow, endRow) of the current scanline.
func (r *Rasterizer[S]) forEachSample(e *edge, startRow, endRow int, ext *edgeExtent, fn func(xi, row int)) {
	for row := startRow; row < endRow; row++ {
		xi := int(e.x + r.nrooks[row])
		if xi < 0 || xi >= len(r.scanline) {
			// For edges which are nearly horizontal, floating point error
			// can move the sample outside the scanline.  The remaining
			// samples of the edge on this scanline are skipped.
			r.dropped++
			Logger().Debug("edgeflag: sample out of bounds",
				"x", xi, "width", len(r.scanline))
			return
		}
		fn(xi, row)
		e.x += e.dxdy
		ext.minX = min(ext.minX, xi)
		ext.maxX = max(ext.maxX, xi)
	}
}

func (r *Rasterizer[S]) plotEvenOdd(e *edge, startRow, endRow int, ext *edgeExtent) {
	r.forEachSample(e, startRow, endRow, ext, func(xi, row int) {
		r.scanline[xi] ^= S(1) << row
	})
}

func (r *Rasterizer[S]) plotNonZero(e *edge, startRow, endRow int, ext *edgeExtent) {
	r.forEachSample(e, startRow, endRow, ext, func(xi, row int) {
		r.scanline[xi] |= S(1) << row
		r.windings[xi*r.spp+row] += int16(e.winding)
	})
}

// growZeroed returns a slice of length n which shares the backing array
// of buf if possible.  The existing elements of buf must be zero.
func growZeroed[T any](buf []T, n int) []T {
	if n <= cap(buf) {
		return buf[:n]
	}
	return slices.Grow(buf[:0], n)[:n]
}
