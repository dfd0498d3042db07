// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "golang.org/x/image/draw"

// TexturePass draws a source buffer over the composer's read buffer in
// place. Sources of a different size are scaled bilinearly to fit.
type TexturePass struct {
	passState

	source *PixmapTarget
}

// NewTexturePass creates an enabled in-place pass drawing source.
func NewTexturePass(source *PixmapTarget) *TexturePass {
	return &TexturePass{
		passState: passState{enabled: true},
		source:    source,
	}
}

// Source returns the drawn buffer.
func (p *TexturePass) Source() *PixmapTarget { return p.source }

// SetSource replaces the drawn buffer.
func (p *TexturePass) SetSource(source *PixmapTarget) { p.source = source }

// Process draws the source over read.
func (p *TexturePass) Process(_ DeviceHandle, _, read *PixmapTarget) error {
	if p.source == nil {
		return nil
	}
	dst, src := read.img, p.source.img
	if dst.Bounds().Size() == src.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
		return nil
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return nil
}

var _ Pass = (*TexturePass)(nil)
