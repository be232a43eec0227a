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
	"fmt"
	"math/bits"
)

// Sample is the bit mask type holding one bit per sub-pixel row.
// The width of the type selects the vertical sampling density:
// uint8 gives 8, uint16 gives 16, and uint32 gives 32 samples per pixel.
type Sample interface {
	uint8 | uint16 | uint32
}

// samplesPerPixel returns the number of bits in S.
func samplesPerPixel[S Sample]() int {
	return bits.OnesCount64(uint64(^S(0)))
}

// coverage returns the number of covered sub-pixel rows in a mask.
func coverage[S Sample](sample S) int {
	return bits.OnesCount32(uint32(sample))
}

// coverageToAlpha maps a sample count in [0, spp] to an alpha value.
// Zero coverage gives 0 and full coverage gives 255.
func coverageToAlpha(count int, alphaShift int) uint8 {
	if count == 0 {
		return 0
	}
	return uint8((count << alphaShift) - 1)
}

// nrooksOffsets returns the horizontal sub-pixel offset of every sample row.
// Each table is a permutation of k/spp, so that every row and every
// column of the spp×spp sub-pixel grid holds exactly one sample.
func nrooksOffsets(spp int) []float64 {
	var perm []int
	switch spp {
	case 8:
		perm = []int{5, 0, 3, 6, 1, 4, 7, 2}
	case 16:
		perm = []int{1, 8, 4, 15, 11, 2, 6, 14, 10, 3, 7, 12, 0, 9, 5, 13}
	case 32:
		perm = []int{
			28, 13, 6, 23, 0, 17, 10, 27, 4, 21, 14, 31, 8, 25, 18, 3,
			12, 29, 22, 7, 16, 1, 26, 11, 20, 5, 30, 15, 24, 9, 2, 19,
		}
	default:
		panic(fmt.Sprintf("edgeflag: unsupported sampling density %d", spp))
	}

	offsets := make([]float64, spp)
	for i, k := range perm {
		offsets[i] = float64(k) / float64(spp)
	}
	return offsets
}
