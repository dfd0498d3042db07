package display

import (
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/layerfx"
	"github.com/gogpu/layerfx/blend"
	"github.com/gogpu/layerfx/render"
)

// ImageDefaults are the options an Image starts with.
func ImageDefaults() layerfx.Options {
	return layerfx.Options{
		"x":                  0.0,
		"y":                  0.0,
		"zoom":               1.0,
		layerfx.OptOpacity:   1.0,
		layerfx.OptBlendMode: string(blend.Normal),
	}
}

// Image draws a picture centered in the frame, offset by the x and y
// options and scaled by zoom. It keeps its own buffer and composites it
// over the chain with a BlendPass.
type Image struct {
	*layerfx.Node

	src    image.Image
	gen    uint64
	buffer *render.PixmapTarget
	pass   *render.BlendPass
	drawn  imageLayout
}

// imageLayout is the state the buffer was last drawn with.
type imageLayout struct {
	gen           uint64
	x, y, zoom    float32
	width, height int
}

// NewImage creates an image display. A nil registry uses
// blend.DefaultRegistry.
func NewImage(src image.Image, registry *blend.Registry, opts layerfx.Options) *Image {
	d := &Image{
		src:    src,
		gen:    1,
		buffer: render.NewPixmapTarget(1, 1),
	}
	d.Node = layerfx.NewNode(layerfx.KindDisplay, "ImageDisplay", merge(ImageDefaults(), opts), layerfx.Hooks{
		SetSize:       d.setSize,
		RenderToScene: d.renderToScene,
	})
	d.pass = render.NewBlendPass(d.buffer, registry, d.blendOptions())
	d.SetPass(d.pass)
	return d
}

// SetImage replaces the picture. It is redrawn on the next frame.
func (d *Image) SetImage(src image.Image) {
	d.src = src
	d.gen++
	d.MarkChanged()
}

// Buffer returns the display's own buffer.
func (d *Image) Buffer() *render.PixmapTarget { return d.buffer }

func (d *Image) blendOptions() render.BlendOptions {
	return render.BlendOptions{
		Opacity: d.OptFloat(layerfx.OptOpacity, 1),
		Mode:    blend.Mode(d.OptString(layerfx.OptBlendMode, string(blend.Normal))),
		Alpha:   1,
	}
}

func (d *Image) setSize(width, height int) {
	d.buffer.Resize(width, height)
}

func (d *Image) layout() imageLayout {
	w, h := d.buffer.Size()
	return imageLayout{
		gen:    d.gen,
		x:      d.OptFloat("x", 0),
		y:      d.OptFloat("y", 0),
		zoom:   d.OptFloat("zoom", 1),
		width:  w,
		height: h,
	}
}

func (d *Image) renderToScene(_ *layerfx.Scene, _ layerfx.FrameData) error {
	d.pass.SetOptions(d.blendOptions())

	l := d.layout()
	if l == d.drawn {
		return nil
	}
	d.drawn = l

	dst := d.buffer.Image()
	clear(dst.Pix)
	if d.src == nil || l.zoom <= 0 {
		return nil
	}

	sb := d.src.Bounds()
	w := int(math.Round(float64(float32(sb.Dx()) * l.zoom)))
	h := int(math.Round(float64(float32(sb.Dy()) * l.zoom)))
	x0 := (l.width-w)/2 + int(l.x)
	y0 := (l.height-h)/2 + int(l.y)
	r := image.Rect(x0, y0, x0+w, y0+h)

	if w == sb.Dx() && h == sb.Dy() {
		draw.Draw(dst, r, d.src, sb.Min, draw.Over)
		return nil
	}
	draw.CatmullRom.Scale(dst, r, d.src, sb, draw.Over, nil)
	return nil
}

// merge returns defaults overlaid by opts.
func merge(defaults, opts layerfx.Options) layerfx.Options {
	defaults.Merge(opts)
	return defaults
}
