package effect

import (
	"image"

	"github.com/gogpu/layerfx"
	"github.com/gogpu/layerfx/render"
)

// PixelateDefaults are the options a Pixelate starts with.
func PixelateDefaults() layerfx.Options {
	return layerfx.Options{"size": 10}
}

// Pixelate replaces every size×size cell with the cell's average color.
type Pixelate struct {
	*layerfx.Node

	size int
	pass *render.FilterPass
}

// NewPixelate creates a pixelate effect.
func NewPixelate(opts layerfx.Options) *Pixelate {
	e := &Pixelate{}
	e.Node = layerfx.NewNode(layerfx.KindEffect, "PixelateEffect", merge(PixelateDefaults(), opts), layerfx.Hooks{
		RenderToScene: e.renderToScene,
	})
	e.size = e.OptInt("size", 10)
	e.pass = render.NewFilterPass("pixelate", e.filter)
	e.SetPass(e.pass)
	return e
}

// Size returns the cell size used by the last frame.
func (e *Pixelate) Size() int { return e.size }

func (e *Pixelate) renderToScene(*layerfx.Scene, layerfx.FrameData) error {
	e.size = max(e.OptInt("size", 10), 1)
	return nil
}

func (e *Pixelate) filter(dst, src *image.RGBA) {
	b := src.Bounds()
	n := e.size
	if n <= 1 {
		copy(dst.Pix, src.Pix)
		return
	}

	for cy := b.Min.Y; cy < b.Max.Y; cy += n {
		for cx := b.Min.X; cx < b.Max.X; cx += n {
			cell := image.Rect(cx, cy, cx+n, cy+n).Intersect(b)

			var r, g, bl, a, count uint32
			for y := cell.Min.Y; y < cell.Max.Y; y++ {
				i := src.PixOffset(cell.Min.X, y)
				for x := cell.Min.X; x < cell.Max.X; x++ {
					s := src.Pix[i : i+4 : i+4]
					r += uint32(s[0])
					g += uint32(s[1])
					bl += uint32(s[2])
					a += uint32(s[3])
					count++
					i += 4
				}
			}
			avg := [4]uint8{
				uint8((r + count/2) / count),
				uint8((g + count/2) / count),
				uint8((bl + count/2) / count),
				uint8((a + count/2) / count),
			}

			for y := cell.Min.Y; y < cell.Max.Y; y++ {
				i := dst.PixOffset(cell.Min.X, y)
				for x := cell.Min.X; x < cell.Max.X; x++ {
					copy(dst.Pix[i:i+4], avg[:])
					i += 4
				}
			}
		}
	}
}

func merge(defaults, opts layerfx.Options) layerfx.Options {
	defaults.Merge(opts)
	return defaults
}
