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

// Coverage accumulation model:
//
// After all edges have been plotted for a scanline, bit k of scanline[x]
// is set if an odd number of edges (even-odd rule), or at least one edge
// (nonzero rule), crossed sub-pixel row k inside pixel x.  Sweeping from
// left to right and toggling the "inside" state of every row at each
// crossing gives the set of covered rows for each pixel:
//
//	even-odd: sample ^= scanline[x]
//	nonzero:  sum[k] += windings[x][k], toggle bit k when sum[k]
//	          changes between zero and non-zero
//
// Both functions overwrite scanline[ext.minX:ext.maxX+1] with the
// resulting masks; the winding counters are zeroed as they are consumed.

// accumulateEvenOdd converts edge flags to coverage masks using the
// even-odd rule.
func (r *Rasterizer[S]) accumulateEvenOdd(ext edgeExtent) {
	var sample S
	row := r.scanline[ext.minX : ext.maxX+1]
	for x, flags := range row {
		sample ^= flags
		row[x] = sample
	}
}

// accumulateNonZero converts edge flags to coverage masks using the
// nonzero winding rule.
func (r *Rasterizer[S]) accumulateNonZero(ext edgeExtent) {
	spp := r.spp
	sum := r.sumWinding[:spp]
	clear(sum)

	var sample S
	for x := ext.minX; x <= ext.maxX; x++ {
		if flags := r.scanline[x]; flags != 0 {
			w := r.windings[x*spp : (x+1)*spp]
			for k := range spp {
				bit := S(1) << k
				if flags&bit == 0 {
					continue
				}
				prev := sum[k]
				sum[k] += int32(w[k])
				w[k] = 0
				if (prev != 0) != (sum[k] != 0) {
					sample ^= bit
				}
			}
		}
		r.scanline[x] = sample
	}
}

// writeScanline sends the coverage masks of one scanline to dst and clears
// them.  Opaque solid colours are written using span fills wherever the
// coverage is complete.
func (r *Rasterizer[S]) writeScanline(dst Painter, scanline int, ext edgeExtent, paint Paint) {
	if p, ok := paint.(Solid); ok && p.Color.A == 255 {
		r.writeScanlineFast(dst, scanline, ext, p.Color)
		return
	}

	for x := ext.minX; x <= ext.maxX; x++ {
		if sample := r.scanline[x]; sample != 0 {
			r.writePixel(dst, scanline, x, sample, paint)
			r.scanline[x] = 0
		}
	}
}

// writeScanlineFast is writeScanline for opaque solid colours.
func (r *Rasterizer[S]) writeScanlineFast(dst Painter, scanline int, ext edgeExtent, c color.NRGBA) {
	full := ^S(0)
	paint := Solid{Color: c}

	run := 0 // number of fully covered pixels to the left of x
	for x := ext.minX; x <= ext.maxX; x++ {
		sample := r.scanline[x]
		if sample == full {
			run++
			r.scanline[x] = 0
			continue
		}
		if run > 0 {
			r.fillSpan(dst, scanline, x-run, x, c)
			run = 0
		}
		if sample != 0 {
			r.writePixel(dst, scanline, x, sample, paint)
			r.scanline[x] = 0
		}
	}
	if run > 0 {
		r.fillSpan(dst, scanline, ext.maxX+1-run, ext.maxX+1, c)
	}
}

// writePixel blends a single pixel.  The coordinates are relative to the
// fill origin.
func (r *Rasterizer[S]) writePixel(dst Painter, scanline, x int, sample S, paint Paint) {
	devX := x + r.blitOrigin.X
	devY := scanline + r.blitOrigin.Y
	if devX < r.clip.Min.X || devX >= r.clip.Max.X {
		return
	}

	var c color.NRGBA
	switch p := paint.(type) {
	case Solid:
		c = p.Color
	case PaintFunc:
		c = p(x+r.pathOrigin.X, scanline+r.pathOrigin.Y)
	}

	alpha := coverageToAlpha(coverage(sample), r.alphaShift)
	c.A = uint8(uint32(c.A) * uint32(alpha) / 255)
	dst.BlendPixel(devX, devY, c)
}

// fillSpan fills the pixels [start, end) of a scanline, relative to the
// fill origin, after clipping them horizontally.
func (r *Rasterizer[S]) fillSpan(dst Painter, scanline, start, end int, c color.NRGBA) {
	devY := scanline + r.blitOrigin.Y
	x0 := max(r.clip.Min.X, start+r.blitOrigin.X)
	x1 := min(r.clip.Max.X, end+r.blitOrigin.X)
	if x0 >= x1 {
		return
	}
	dst.FillSpan(devY, x0, x1, c)
}
