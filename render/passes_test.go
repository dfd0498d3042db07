// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/layerfx/blend"
)

func solid(w, h int, c color.RGBA) *PixmapTarget {
	t := NewPixmapTarget(w, h)
	t.Clear(c)
	return t
}

func TestBlendPassOperands(t *testing.T) {
	tests := []struct {
		name    string
		primary bool
		want    color.RGBA
	}{
		{"captured is base", true, blue},
		{"read is base", false, red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultBlendOptions()
			opts.BaseBufferIsPrimary = tt.primary
			p := NewBlendPass(solid(4, 4, red), blend.DefaultRegistry(), opts)

			write := NewPixmapTarget(4, 4)
			if err := p.Process(NullDeviceHandle{}, write, solid(4, 4, blue)); err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if got := write.GetPixel(1, 1); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendPassForwardsUniforms(t *testing.T) {
	var got blend.Uniforms
	reg := blend.NewRegistry(blend.Entry{
		Mode: "Recorder",
		Func: func(base, _ color.RGBA, u blend.Uniforms) color.RGBA {
			got = u
			return base
		},
	})
	p := NewBlendPass(solid(2, 2, red), reg, BlendOptions{Opacity: 0.25, Mode: "Recorder", Alpha: 0.75, BaseBufferIsPrimary: true})

	if err := p.Process(NullDeviceHandle{}, NewPixmapTarget(2, 2), solid(2, 2, blue)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got.Opacity != 0.25 || got.Alpha != 0.75 {
		t.Errorf("uniforms = %+v, want {0.25 0.75}", got)
	}
}

func TestBlendPassUnknownModeFallsBack(t *testing.T) {
	opts := DefaultBlendOptions()
	opts.Mode = "Sparkle"
	p := NewBlendPass(solid(2, 2, red), nil, opts)

	write := NewPixmapTarget(2, 2)
	if err := p.Process(NullDeviceHandle{}, write, solid(2, 2, blue)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := write.GetPixel(0, 0); got != blue {
		t.Errorf("pixel = %v, want Normal result %v", got, blue)
	}
	if p.warned != "Sparkle" {
		t.Errorf("warned = %q, want Sparkle", p.warned)
	}
}

func TestBlendPassSmallerBuffer(t *testing.T) {
	p := NewBlendPass(solid(2, 2, red), nil, DefaultBlendOptions())
	p.SetOptions(BlendOptions{Opacity: 0, Mode: blend.Normal, Alpha: 1, BaseBufferIsPrimary: true})

	write := NewPixmapTarget(4, 4)
	if err := p.Process(NullDeviceHandle{}, write, solid(4, 4, blue)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := write.GetPixel(0, 0); got != red {
		t.Errorf("inside base = %v, want %v", got, red)
	}
	if got := write.GetPixel(3, 3); got != (color.RGBA{}) {
		t.Errorf("outside base = %v, want transparent", got)
	}
}

func TestBlendPassNilBuffer(t *testing.T) {
	p := NewBlendPass(nil, nil, DefaultBlendOptions())
	write := NewPixmapTarget(2, 2)
	if err := p.Process(NullDeviceHandle{}, write, solid(2, 2, green)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := write.GetPixel(1, 0); got != green {
		t.Errorf("pixel = %v, want %v", got, green)
	}
	p.Release()
}

func TestTexturePassDrawsInPlace(t *testing.T) {
	src := NewPixmapTarget(4, 4)
	src.SetPixel(1, 1, red)
	p := NewTexturePass(src)

	if p.NeedsSwap() {
		t.Error("NeedsSwap() = true, want false")
	}

	read := solid(4, 4, blue)
	if err := p.Process(NullDeviceHandle{}, nil, read); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := read.GetPixel(1, 1); got != red {
		t.Errorf("covered pixel = %v, want %v", got, red)
	}
	if got := read.GetPixel(0, 0); got != blue {
		t.Errorf("uncovered pixel = %v, want %v", got, blue)
	}
}

func TestTexturePassScales(t *testing.T) {
	p := NewTexturePass(solid(2, 2, red))
	read := NewPixmapTarget(8, 8)
	if err := p.Process(NullDeviceHandle{}, nil, read); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := read.GetPixel(4, 4); got.R < 250 || got.A < 250 || got.B != 0 {
		t.Errorf("scaled pixel = %v, want red", got)
	}

	p.SetSource(nil)
	if err := p.Process(NullDeviceHandle{}, nil, read); err != nil {
		t.Errorf("Process() with nil source error = %v", err)
	}
}

func TestFilterPass(t *testing.T) {
	invert := func(dst, src *image.RGBA) {
		for i := 0; i < len(src.Pix); i += 4 {
			a := src.Pix[i+3]
			dst.Pix[i] = a - src.Pix[i]
			dst.Pix[i+1] = a - src.Pix[i+1]
			dst.Pix[i+2] = a - src.Pix[i+2]
			dst.Pix[i+3] = a
		}
	}
	p := NewFilterPass("invert", invert)
	if !p.NeedsSwap() || !p.Enabled() {
		t.Fatal("FilterPass should be enabled and swapping")
	}

	write := NewPixmapTarget(2, 2)
	if err := p.Process(NullDeviceHandle{}, write, solid(2, 2, red)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := write.GetPixel(0, 0); got != (color.RGBA{G: 255, B: 255, A: 255}) {
		t.Errorf("inverted = %v, want cyan", got)
	}

	p.SetFilter(nil)
	if err := p.Process(NullDeviceHandle{}, write, solid(2, 2, green)); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := write.GetPixel(1, 1); got != green {
		t.Errorf("copied = %v, want %v", got, green)
	}
	p.Release()
}
