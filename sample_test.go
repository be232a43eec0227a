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
	"slices"
	"testing"
)

func TestSamplesPerPixel(t *testing.T) {
	if n := samplesPerPixel[uint8](); n != 8 {
		t.Errorf("uint8: expected 8, got %d", n)
	}
	if n := samplesPerPixel[uint16](); n != 16 {
		t.Errorf("uint16: expected 16, got %d", n)
	}
	if n := samplesPerPixel[uint32](); n != 32 {
		t.Errorf("uint32: expected 32, got %d", n)
	}

	if s := NewRasterizer[uint8]().alphaShift; s != 5 {
		t.Errorf("alpha shift for 8 samples: expected 5, got %d", s)
	}
	if s := NewRasterizer[uint32]().alphaShift; s != 3 {
		t.Errorf("alpha shift for 32 samples: expected 3, got %d", s)
	}
}

func TestCoverageToAlpha(t *testing.T) {
	cases := []struct {
		count, shift int
		want         uint8
	}{
		{0, 5, 0},
		{1, 5, 31},
		{4, 5, 127},
		{8, 5, 255},
		{16, 4, 255},
		{32, 3, 255},
		{0, 3, 0},
		{1, 3, 7},
	}
	for _, c := range cases {
		if got := coverageToAlpha(c.count, c.shift); got != c.want {
			t.Errorf("coverageToAlpha(%d, %d) = %d, want %d", c.count, c.shift, got, c.want)
		}
	}

	if n := coverage(uint32(0xffffffff)); n != 32 {
		t.Errorf("full uint32 mask: expected 32, got %d", n)
	}
	if n := coverage(uint8(0b10100101)); n != 4 {
		t.Errorf("uint8 mask: expected 4, got %d", n)
	}
}

// TestNRooks checks that every column of the sub-pixel grid holds exactly
// one sample.
func TestNRooks(t *testing.T) {
	for _, spp := range []int{8, 16, 32} {
		offsets := nrooksOffsets(spp)
		if len(offsets) != spp {
			t.Errorf("%d: expected %d offsets, got %d", spp, spp, len(offsets))
			continue
		}
		cols := make([]int, spp)
		for i, o := range offsets {
			cols[i] = int(o * float64(spp))
		}
		slices.Sort(cols)
		for i, c := range cols {
			if c != i {
				t.Errorf("%d: offsets are not a permutation of the columns", spp)
				break
			}
		}
	}
}

func TestNRooksUnsupported(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	nrooksOffsets(4)
}
