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


// Command genpng renders all test cases with the edge-flag rasterizer and
// writes the results as PNG files.  With the default colours, the output
// can be compared directly to the reference images written by genpdf.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"seehuhn.de/go/edgeflag"
	"seehuhn.de/go/edgeflag/testcases"
)

func main() {
	outDir := flag.String("d", "testdata/edgeflag", "output directory")
	spp := flag.Int("spp", 32, "samples per pixel (8, 16 or 32)")
	fg := flag.String("fg", "white", "fill colour (SVG colour name)")
	bg := flag.String("bg", "black", "background colour (SVG colour name)")
	flag.Parse()

	if err := run(*outDir, *spp, *fg, *bg); err != nil {
		fmt.Fprintln(os.Stderr, "genpng:", err)
		os.Exit(1)
	}
}

func run(outDir string, spp int, fgName, bgName string) error {
	fg, ok := colornames.Map[fgName]
	if !ok {
		return fmt.Errorf("unknown colour %q", fgName)
	}
	bg, ok := colornames.Map[bgName]
	if !ok {
		return fmt.Errorf("unknown colour %q", bgName)
	}

	var fill func(p edgeflag.Painter, lines []edgeflag.Line, rule edgeflag.WindingRule)
	switch spp {
	case 8:
		fill = filler(edgeflag.NewRasterizer[uint8](), fg)
	case 16:
		fill = filler(edgeflag.NewRasterizer[uint16](), fg)
	case 32:
		fill = filler(edgeflag.NewRasterizer[uint32](), fg)
	default:
		return fmt.Errorf("unsupported sampling density %d", spp)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			img := image.NewRGBA(image.Rect(0, 0, tc.Width, tc.Height))
			draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
			fill(edgeflag.NewImagePainter(img), tc.Lines(), tc.Rule)

			if err := writePNG(filepath.Join(outDir, name+".png"), img); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
		}
	}
	return nil
}

// filler binds a rasterizer of any sampling density to a fill colour.
func filler[S edgeflag.Sample](r *edgeflag.Rasterizer[S], c color.Color) func(edgeflag.Painter, []edgeflag.Line, edgeflag.WindingRule) {
	return func(p edgeflag.Painter, lines []edgeflag.Line, rule edgeflag.WindingRule) {
		r.FillColor(p, lines, c, rule)
	}
}

func writePNG(fname string, img image.Image) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}
