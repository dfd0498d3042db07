// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// PixmapTarget is a CPU-backed render buffer using *image.RGBA.
//
// Pixels are alpha-premultiplied, the layout of image.RGBA. Every layer,
// scene and composer buffer is a PixmapTarget.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	target.Clear(color.Black)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed buffer. Dimensions below 1 are
// raised to 1.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1))),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a buffer.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the buffer width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the buffer height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Size returns the buffer dimensions.
func (t *PixmapTarget) Size() (width, height int) {
	return t.Width(), t.Height()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire buffer with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba == (color.RGBA{}) {
		clear(t.img.Pix)
		return
	}

	bounds := t.img.Bounds()
	row := t.img.Pix[:bounds.Dx()*4]
	for i := 0; i < len(row); i += 4 {
		row[i], row[i+1], row[i+2], row[i+3] = rgba.R, rgba.G, rgba.B, rgba.A
	}
	for y := 1; y < bounds.Dy(); y++ {
		copy(t.img.Pix[y*t.img.Stride:], row)
	}
}

// SetPixel sets a single pixel at the given coordinates.
func (t *PixmapTarget) SetPixel(x, y int, c color.Color) {
	t.img.Set(x, y, c)
}

// GetPixel returns the color at the given coordinates.
func (t *PixmapTarget) GetPixel(x, y int) color.RGBA {
	return t.img.RGBAAt(x, y)
}

// Resize replaces the buffer with a cleared one of the given dimensions.
// The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	if t.Width() == width && t.Height() == height {
		return
	}
	t.img = image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))
}

// CopyFrom replaces the buffer contents with src, clipped to the smaller
// of the two sizes. Pixels outside src become transparent.
func (t *PixmapTarget) CopyFrom(src *PixmapTarget) {
	if src == t {
		return
	}
	clear(t.img.Pix)
	w := min(t.Width(), src.Width()) * 4
	h := min(t.Height(), src.Height())
	for y := range h {
		copy(t.img.Pix[y*t.img.Stride:y*t.img.Stride+w], src.img.Pix[y*src.img.Stride:])
	}
}

// swapImage installs img and returns the previous image.
func (t *PixmapTarget) swapImage(img *image.RGBA) *image.RGBA {
	old := t.img
	t.img = img
	return old
}
