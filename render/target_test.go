// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNewPixmapTarget(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"small", 100, 100, 100, 100},
		{"medium", 800, 600, 800, 600},
		{"wide", 1000, 100, 1000, 100},
		{"zero", 0, 0, 1, 1},
		{"negative", -5, 3, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewPixmapTarget(tt.width, tt.height)

			if target.Width() != tt.wantW {
				t.Errorf("Width() = %d, want %d", target.Width(), tt.wantW)
			}
			if target.Height() != tt.wantH {
				t.Errorf("Height() = %d, want %d", target.Height(), tt.wantH)
			}
			if target.Format() != gputypes.TextureFormatRGBA8Unorm {
				t.Errorf("Format() = %v, want RGBA8Unorm", target.Format())
			}
			if target.Stride() != tt.wantW*4 {
				t.Errorf("Stride() = %d, want %d", target.Stride(), tt.wantW*4)
			}
		})
	}
}

func TestPixmapTargetFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 150))
	img.SetRGBA(50, 50, color.RGBA{255, 0, 0, 255})

	target := NewPixmapTargetFromImage(img)

	if w, h := target.Size(); w != 200 || h != 150 {
		t.Errorf("Size() = (%d, %d), want (200, 150)", w, h)
	}
	if got := target.GetPixel(50, 50); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("GetPixel(50, 50) = %v, want red", got)
	}
	if target.Image() != img {
		t.Error("Image() should return the wrapped image")
	}
}

func TestPixmapTargetClear(t *testing.T) {
	target := NewPixmapTarget(10, 7)

	target.Clear(color.RGBA{0, 0, 255, 255})
	for y := range 7 {
		for x := range 10 {
			if got := target.GetPixel(x, y); got != (color.RGBA{0, 0, 255, 255}) {
				t.Fatalf("GetPixel(%d, %d) = %v, want blue", x, y, got)
			}
		}
	}

	target.Clear(color.Transparent)
	for i, b := range target.Pixels() {
		if b != 0 {
			t.Fatalf("Pixels()[%d] = %d after transparent clear, want 0", i, b)
		}
	}
}

func TestPixmapTargetSetGetPixel(t *testing.T) {
	target := NewPixmapTarget(100, 100)

	tests := []struct {
		x, y int
		c    color.RGBA
	}{
		{0, 0, color.RGBA{255, 0, 0, 255}},
		{99, 99, color.RGBA{0, 255, 0, 255}},
		{50, 50, color.RGBA{0, 0, 128, 128}},
	}

	for _, tt := range tests {
		target.SetPixel(tt.x, tt.y, tt.c)
		if got := target.GetPixel(tt.x, tt.y); got != tt.c {
			t.Errorf("GetPixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.c)
		}
	}
}

func TestPixmapTargetResize(t *testing.T) {
	target := NewPixmapTarget(100, 100)
	target.SetPixel(50, 50, color.RGBA{255, 0, 0, 255})

	img := target.Image()
	target.Resize(100, 100)
	if target.Image() != img {
		t.Error("Resize() to the same size should keep the image")
	}

	target.Resize(200, 150)
	if w, h := target.Size(); w != 200 || h != 150 {
		t.Errorf("Size() = (%d, %d), want (200, 150)", w, h)
	}
	if got := target.GetPixel(50, 50); got.A != 0 {
		t.Errorf("pixel after resize = %v, want transparent", got)
	}
}

func TestPixmapTargetCopyFrom(t *testing.T) {
	src := NewPixmapTarget(4, 4)
	src.Clear(color.RGBA{10, 20, 30, 255})

	dst := NewPixmapTarget(6, 2)
	dst.Clear(color.White)
	dst.CopyFrom(src)

	if got := dst.GetPixel(3, 1); got != (color.RGBA{10, 20, 30, 255}) {
		t.Errorf("GetPixel(3, 1) = %v, want copied color", got)
	}
	if got := dst.GetPixel(5, 0); got != (color.RGBA{}) {
		t.Errorf("GetPixel(5, 0) = %v, want transparent outside source", got)
	}
}
