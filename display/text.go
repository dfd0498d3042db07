package display

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/layerfx"
)

// TextDefaults are the options a Text starts with.
func TextDefaults() layerfx.Options {
	return layerfx.Options{
		"text":  "",
		"x":     0.0,
		"y":     0.0,
		"color": "#ffffff",
	}
}

// Text draws one line of text, centered in the frame and offset by the x
// and y options, into the scene's shared 2D buffer. It has no pass of its
// own.
type Text struct {
	*layerfx.Node

	face font.Face
}

// NewText creates a text display using the fixed 7x13 face.
func NewText(opts layerfx.Options) *Text {
	d := &Text{face: basicfont.Face7x13}
	d.Node = layerfx.NewNode(layerfx.KindDisplay, "TextDisplay", merge(TextDefaults(), opts), layerfx.Hooks{
		RenderToScene: d.renderToScene,
	})
	return d
}

func (d *Text) renderToScene(s *layerfx.Scene, _ layerfx.FrameData) error {
	str := norm.NFC.String(d.OptString("text", ""))
	if str == "" {
		return nil
	}
	c, err := ParseColor(d.OptString("color", "#ffffff"))
	if err != nil {
		return err
	}

	dst := s.Context2D()
	w, h := dst.Size()
	dr := &font.Drawer{
		Dst:  dst.Image(),
		Src:  image.NewUniform(c),
		Face: d.face,
	}

	m := d.face.Metrics()
	advance := dr.MeasureString(str)
	x := fixed.I(w/2+int(d.OptFloat("x", 0))) - advance/2
	y := fixed.I(h/2+int(d.OptFloat("y", 0))) + (m.Ascent-m.Descent)/2
	dr.Dot = fixed.Point26_6{X: x, Y: y}
	dr.DrawString(str)
	return nil
}
