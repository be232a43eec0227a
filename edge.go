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

import (
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Line is a directed line segment of a flattened path.
type Line struct {
	A, B vec.Vec2
}

// noEdge terminates the linked lists of edges.
const noEdge int32 = -1

// edge is a path segment in sample space: x is in pixels relative to the
// fill origin, y counts sub-pixel sample rows.
type edge struct {
	x       float64 // x at the centre of the next sample row to be plotted
	minY    int     // first sample row covered by the edge
	maxY    int     // first sample row after the edge (exclusive)
	dxdy    float64 // change of x per sample row
	winding int8    // +1 for downward edges, -1 for upward edges
	next    int32   // next edge in the bucket or active list, or noEdge
}

// prepareEdges converts lines into edges in sample space.
//
// The lines are translated by -origin and their y coordinates are scaled by
// spp. Only sample rows in the scanline range [topScanline, bottomScanline]
// are kept. The returned range [minEdgeY, maxEdgeY] spans the sample rows
// actually used by the edges. If no edge survives, edges is empty and the
// range must be ignored.
func prepareEdges(dst []edge, lines []Line, spp int, origin vec.Vec2, topScanline, bottomScanline int) (edges []edge, minEdgeY, maxEdgeY int) {
	edges = dst[:0]

	// the first visible sample row
	topClip := topScanline * spp
	// the first sample row below the visible area
	bottomClip := (bottomScanline + 1) * spp

	minEdgeY = bottomClip
	maxEdgeY = topClip

	scale := float64(spp)
	for _, l := range lines {
		p0 := l.A.Sub(origin)
		p1 := l.B.Sub(origin)
		p0.Y *= scale
		p1.Y *= scale

		var winding int8 = 1
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
			winding = -1
		}
		if p0.Y == p1.Y {
			continue
		}

		// Sample row i is located at y = i + 0.5.
		minY := int(math.Ceil(p0.Y - 0.5))
		maxY := int(math.Ceil(p1.Y - 0.5))
		if minY >= maxY {
			continue // no sample row crosses this edge
		}

		if minY >= bottomClip || maxY <= topClip {
			continue
		}

		dxdy := (p1.X - p0.X) / (p1.Y - p0.Y)
		x := p0.X + dxdy*(float64(minY)+0.5-p0.Y)

		if minY < topClip {
			x += dxdy * float64(topClip-minY)
			minY = topClip
		}
		if maxY > bottomClip {
			maxY = bottomClip
		}

		minEdgeY = min(minEdgeY, minY)
		maxEdgeY = max(maxEdgeY, maxY)

		edges = append(edges, edge{
			x:       x,
			minY:    minY,
			maxY:    maxY,
			dxdy:    dxdy,
			winding: winding,
			next:    noEdge,
		})
	}
	return edges, minEdgeY, maxEdgeY
}

// linesBounds returns the smallest integer rectangle enclosing all line
// endpoints, after translation by offset.
func linesBounds(lines []Line, offset vec.Vec2) image.Rectangle {
	if len(lines) == 0 {
		return image.Rectangle{}
	}

	xMin, yMin := math.Inf(1), math.Inf(1)
	xMax, yMax := math.Inf(-1), math.Inf(-1)
	for _, l := range lines {
		xMin = min(xMin, l.A.X, l.B.X)
		xMax = max(xMax, l.A.X, l.B.X)
		yMin = min(yMin, l.A.Y, l.B.Y)
		yMax = max(yMax, l.A.Y, l.B.Y)
	}

	return image.Rectangle{
		Min: image.Point{
			X: int(math.Floor(xMin + offset.X)),
			Y: int(math.Floor(yMin + offset.Y)),
		},
		Max: image.Point{
			X: int(math.Ceil(xMax + offset.X)),
			Y: int(math.Ceil(yMax + offset.Y)),
		},
	}
}
