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
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/edgeflag/testcases"
)

// TestAgainstExactArea compares the rasterizer output for all test cases
// to the exact area coverage.
func TestAgainstExactArea(t *testing.T) {
	r := edgeflag.NewRasterizer[uint32]()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				lines := tc.Lines()
				expected := exactCoverage(lines, tc.Width, tc.Height, tc.Rule)
				actual := renderCoverage(r, lines, tc.Width, tc.Height, tc.Rule)
				if err := compareImages(name, expected, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestAgainstReference compares the rasterizer output to the Ghostscript
// renderings written by testcases/genpdf.  Cases without a reference image
// are skipped.
func TestAgainstReference(t *testing.T) {
	r := edgeflag.NewRasterizer[uint32]()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image, run testcases/genpdf")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				actual := renderCoverage(r, tc.Lines(), tc.Width, tc.Height, tc.Rule)
				if err := compareImages(name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// renderCoverage fills lines in opaque white into a new alpha image and
// returns the pixels in row-major order.
func renderCoverage[S edgeflag.Sample](r *edgeflag.Rasterizer[S], lines []edgeflag.Line, w, h int, rule edgeflag.WindingRule) []byte {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	r.FillColor(edgeflag.NewImagePainter(img), lines, color.White, rule)
	return img.Pix
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)
	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages checks that at least 80% of the pixels are identical, 95%
// differ by less than 64, and 99% by less than 128.  On failure, a diff
// image is written to the debug/ directory.
func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	if len(expected) != total || len(actual) != total {
		return fmt.Errorf("image size mismatch: %d and %d bytes for %dx%d",
			len(expected), len(actual), w, h)
	}

	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		diffs[i] = max(d, -d)
	}
	slices.Sort(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return errors.New(strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a three-panel image: the actual output on the left,
// the difference in the middle (green where actual is too light, red where
// it is too dark), and the expected output on the right.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			var dc color.RGBA
			switch d := int(expected[i]) - int(actual[i]); {
			case d > 0:
				dc = color.RGBA{G: uint8(d), A: 255}
			case d < 0:
				dc = color.RGBA{R: uint8(-d), A: 255}
			default:
				dc = color.RGBA{A: 255}
			}
			img.Set(x+w, y, dc)

			e := expected[i]
			img.Set(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
