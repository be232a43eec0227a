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
	"image/color"

	"golang.org/x/image/draw"
)

// Painter is the destination of a fill.
//
// All coordinates passed to BlendPixel and FillSpan are in device space,
// and lie inside ClipRect.
type Painter interface {
	// ClipRect returns the writable region in device space.
	ClipRect() image.Rectangle

	// Translation returns the offset from path space to device space.
	Translation() image.Point

	// Scale returns the scale factor from path space to device space.
	// The rasterizer only supports a scale of 1.
	Scale() float64

	// BlendPixel composites c over the pixel at (x, y).
	BlendPixel(x, y int, c color.NRGBA)

	// FillSpan sets the pixels (x0, y), ..., (x1-1, y) to the opaque
	// colour c, without blending.
	FillSpan(y, x0, x1 int, c color.NRGBA)
}

// ImagePainter is a Painter which draws into an image.
type ImagePainter struct {
	// Clip restricts drawing to this rectangle.  It is intersected with the
	// image bounds by NewImagePainter.
	Clip image.Rectangle

	// Origin is the device-space position of the path-space origin.
	Origin image.Point

	dst draw.Image
}

// NewImagePainter returns a painter for dst, with the clip rectangle set to
// the image bounds and no translation.
func NewImagePainter(dst draw.Image) *ImagePainter {
	return &ImagePainter{
		Clip: dst.Bounds(),
		dst:  dst,
	}
}

// ClipRect implements the [Painter] interface.
func (p *ImagePainter) ClipRect() image.Rectangle {
	return p.Clip.Intersect(p.dst.Bounds())
}

// Translation implements the [Painter] interface.
func (p *ImagePainter) Translation() image.Point {
	return p.Origin
}

// Scale implements the [Painter] interface.
func (p *ImagePainter) Scale() float64 {
	return 1
}

// BlendPixel implements the [Painter] interface, using Porter-Duff
// source-over compositing.
func (p *ImagePainter) BlendPixel(x, y int, c color.NRGBA) {
	if c.A == 0 {
		return
	}

	if img, ok := p.dst.(*image.RGBA); ok {
		i := img.PixOffset(x, y)
		pix := img.Pix[i : i+4 : i+4]
		a := uint32(c.A)
		ia := 255 - a
		pix[0] = uint8((uint32(c.R)*a + uint32(pix[0])*ia + 127) / 255)
		pix[1] = uint8((uint32(c.G)*a + uint32(pix[1])*ia + 127) / 255)
		pix[2] = uint8((uint32(c.B)*a + uint32(pix[2])*ia + 127) / 255)
		pix[3] = uint8((a*255 + uint32(pix[3])*ia + 127) / 255)
		return
	}

	sr, sg, sb, sa := c.RGBA()
	dr, dg, db, da := p.dst.At(x, y).RGBA()
	ia := 0xffff - sa
	p.dst.Set(x, y, color.RGBA64{
		R: uint16(sr + dr*ia/0xffff),
		G: uint16(sg + dg*ia/0xffff),
		B: uint16(sb + db*ia/0xffff),
		A: uint16(sa + da*ia/0xffff),
	})
}

// FillSpan implements the [Painter] interface.
func (p *ImagePainter) FillSpan(y, x0, x1 int, c color.NRGBA) {
	r := image.Rect(x0, y, x1, y+1)
	draw.Draw(p.dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
