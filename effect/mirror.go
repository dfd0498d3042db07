package effect

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/layerfx"
	"github.com/gogpu/layerfx/render"
)

// ErrInvalidSide is returned when a Mirror's side option is not one of
// the four Side values.
var ErrInvalidSide = errors.New("effect: invalid mirror side")

// Side names the half of the frame a Mirror keeps.
type Side string

// Mirror sides.
const (
	Left   Side = "left"
	Right  Side = "right"
	Top    Side = "top"
	Bottom Side = "bottom"
)

// MirrorDefaults are the options a Mirror starts with.
func MirrorDefaults() layerfx.Options {
	return layerfx.Options{"side": string(Left)}
}

// Mirror keeps one half of the frame and reflects it onto the other half.
type Mirror struct {
	*layerfx.Node

	side Side
	pass *render.FilterPass
}

// NewMirror creates a mirror effect.
func NewMirror(opts layerfx.Options) *Mirror {
	e := &Mirror{side: Left}
	e.Node = layerfx.NewNode(layerfx.KindEffect, "MirrorEffect", merge(MirrorDefaults(), opts), layerfx.Hooks{
		RenderToScene: e.renderToScene,
	})
	e.pass = render.NewFilterPass("mirror", e.filter)
	e.SetPass(e.pass)
	return e
}

// Side returns the side used by the last frame.
func (e *Mirror) Side() Side { return e.side }

func (e *Mirror) renderToScene(*layerfx.Scene, layerfx.FrameData) error {
	switch s := Side(e.OptString("side", string(Left))); s {
	case Left, Right, Top, Bottom:
		e.side = s
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}

func (e *Mirror) filter(dst, src *image.RGBA) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	for y := range h {
		for x := range w {
			sx, sy := x, y
			switch e.side {
			case Left:
				if x >= w/2 {
					sx = w - 1 - x
				}
			case Right:
				if x < w/2 {
					sx = w - 1 - x
				}
			case Top:
				if y >= h/2 {
					sy = h - 1 - y
				}
			case Bottom:
				if y < h/2 {
					sy = h - 1 - y
				}
			}
			si := src.PixOffset(b.Min.X+sx, b.Min.Y+sy)
			di := dst.PixOffset(b.Min.X+x, b.Min.Y+y)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
}
