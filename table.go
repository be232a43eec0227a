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

import "slices"

// edgeTable holds, for every scanline in a range, the head of a linked list
// of the edges which start on that scanline.  The links are indices into
// the edge slice of the current fill.
type edgeTable struct {
	minScanline int
	heads       []int32
}

// setScanlineRange prepares the table for scanlines in [lo, hi].
// All buckets are empty afterwards.
func (t *edgeTable) setScanlineRange(lo, hi int) {
	n := hi - lo + 1
	t.minScanline = lo
	t.heads = slices.Grow(t.heads[:0], n)[:n]
	for i := range t.heads {
		t.heads[i] = noEdge
	}
}

// push prepends edge idx to the bucket of its start scanline.
func (t *edgeTable) push(edges []edge, idx int32, spp int) {
	e := &edges[idx]
	i := e.minY/spp - t.minScanline
	e.next = t.heads[i]
	t.heads[i] = idx
}

// edgeExtent is the range of pixels touched by samples on one scanline.
type edgeExtent struct {
	minX, maxX int
}

// plotFunc records the samples of an edge for the sub-pixel rows
// [startRow, endRow) of the current scanline, advancing e.x as it goes.
type plotFunc func(e *edge, startRow, endRow int, ext *edgeExtent)

// plotEdgesForScanline plots all edges which intersect the given scanline
// and returns the new head of the active edge list.
//
// Edges already in the active list are plotted first; those which end on
// this scanline are unlinked.  Then the edges starting on this scanline are
// plotted, and those which continue below are appended to the active list.
// The table bucket for the scanline is emptied.
func (t *edgeTable) plotEdgesForScanline(edges []edge, scanline, spp int, plot plotFunc, ext *edgeExtent, active int32) int32 {
	subRow := func(y int) int {
		return y & (spp - 1)
	}

	cur := active
	prev := noEdge
	for cur != noEdge {
		e := &edges[cur]
		if e.maxY/spp == scanline {
			plot(e, 0, subRow(e.maxY), ext)
			cur = e.next
			if prev != noEdge {
				edges[prev].next = cur
			} else {
				active = cur
			}
		} else {
			plot(e, 0, spp, ext)
			prev = cur
			cur = e.next
		}
	}

	bucket := scanline - t.minScanline
	cur = t.heads[bucket]
	for cur != noEdge {
		e := &edges[cur]
		next := e.next
		if e.maxY/spp == scanline {
			// The edge ends on the scanline it starts on.
			plot(e, subRow(e.minY), subRow(e.maxY), ext)
		} else {
			plot(e, subRow(e.minY), spp, ext)
			if prev != noEdge {
				edges[prev].next = cur
			} else {
				active = cur
			}
			prev = cur
		}
		cur = next
	}
	if prev != noEdge {
		edges[prev].next = noEdge
	}

	t.heads[bucket] = noEdge
	return active
}
