// seehuhn.de/go/silhouette - vector silhouettes from raster logos
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

// Package bitmap holds the RGBA raster buffers passed between pipeline steps,
// together with the pixel level operations on them: resizing, binarisation,
// bounding boxes and cropping.
package bitmap

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Image is a non-premultiplied RGBA raster stored in row-major order, four
// bytes per pixel.  The stride is always 4*Width.
//
// Images returned by the pipeline steps are never modified afterwards, so a
// single Image may be shared between several cached pipeline runs.
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// Colours of the two levels of a binarised image.
var (
	Foreground = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// New allocates a fully transparent image.
func New(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 4*width*height),
	}
}

// NewFilled allocates an image where every pixel has colour c.
func NewFilled(width, height int, c color.NRGBA) *Image {
	img := New(width, height)
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// FromImage copies an arbitrary decoded image into a new Image.
// The result always starts at the origin.
func FromImage(src image.Image) *Image {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return &Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    dst.Pix,
	}
}

// NRGBA returns a view of img as an *image.NRGBA.  The pixel buffer is
// shared, the caller must not modify it.
func (img *Image) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    img.Pix,
		Stride: 4 * img.Width,
		Rect:   image.Rect(0, 0, img.Width, img.Height),
	}
}

// Clone returns a deep copy of img.
func (img *Image) Clone() *Image {
	pix := make([]byte, len(img.Pix))
	copy(pix, img.Pix)
	return &Image{Width: img.Width, Height: img.Height, Pix: pix}
}

// At returns the colour of the pixel at (x, y).
func (img *Image) At(x, y int) color.NRGBA {
	i := 4 * (y*img.Width + x)
	p := img.Pix[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// IsForeground reports whether the pixel at (x, y) of a two-level image is a
// foreground pixel.  Only the red channel is inspected.
func (img *Image) IsForeground(x, y int) bool {
	return img.Pix[4*(y*img.Width+x)] == 0
}

// SetLevel paints the pixel at (x, y) in the foreground or background colour.
// It must only be used on images which have not been handed out yet.
func (img *Image) SetLevel(x, y int, foreground bool) {
	img.setLevelAt(y*img.Width+x, foreground)
}

func (img *Image) setLevelAt(idx int, foreground bool) {
	v := byte(255)
	if foreground {
		v = 0
	}
	p := img.Pix[4*idx : 4*idx+4 : 4*idx+4]
	p[0], p[1], p[2], p[3] = v, v, v, 255
}

// Mask returns one bool per pixel, true for foreground, in row-major order.
func (img *Image) Mask() []bool {
	n := img.Width * img.Height
	mask := make([]bool, n)
	for i := range n {
		mask[i] = img.Pix[4*i] == 0
	}
	return mask
}

// FromMask builds a two-level image from a row-major foreground mask.
func FromMask(width, height int, mask []bool) *Image {
	img := New(width, height)
	for i, fg := range mask[:width*height] {
		img.setLevelAt(i, fg)
	}
	return img
}
