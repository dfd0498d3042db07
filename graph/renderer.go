package graph

import (
	"errors"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/layerfx/internal/linear"
)

// ErrNoCamera is returned when a graph is rendered without a camera.
var ErrNoCamera = errors.New("graph: no camera")

// Renderer draws a graph as seen by a camera into dst.
type Renderer interface {
	Render(g *Graph, cam *Camera, dst *image.RGBA) error
}

// PointRenderer is a CPU Renderer that draws every mesh vertex as a lit,
// depth-tested square point.
type PointRenderer struct {
	// Ambient is the light level applied regardless of point lights.
	Ambient float32

	depth []float32
}

// NewPointRenderer returns a renderer with a small ambient term.
func NewPointRenderer() *PointRenderer {
	return &PointRenderer{Ambient: 0.2}
}

// Render implements Renderer.
func (r *PointRenderer) Render(g *Graph, cam *Camera, dst *image.RGBA) error {
	if cam == nil {
		return ErrNoCamera
	}
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()

	if n := w * h; cap(r.depth) < n {
		r.depth = make([]float32, n)
	} else {
		r.depth = r.depth[:n]
	}
	for i := range r.depth {
		r.depth[i] = math.MaxFloat32
	}

	lights := g.Lights()
	for _, m := range g.Meshes() {
		if m.Hidden {
			continue
		}
		model := m.Transform()
		center := model.MulV4(linear.V4{0, 0, 0, 1})
		size := max(m.PointSize, 1)

		for _, v := range m.Vertices {
			wp := model.MulV4(linear.V4{v[0], v[1], v[2], 1})
			world := linear.V3{wp[0], wp[1], wp[2]}

			x, y, z, ok := cam.Project(world, w, h)
			if !ok {
				continue
			}
			normal := linear.NormV3(linear.SubV3(world, linear.V3{center[0], center[1], center[2]}))
			level := r.Ambient
			for _, l := range lights {
				level += l.Contribution(world, normal)
			}
			c := shade(m.Color, level)

			x0, y0 := int(x)-size/2, int(y)-size/2
			for py := y0; py < y0+size; py++ {
				for px := x0; px < x0+size; px++ {
					if px < 0 || py < 0 || px >= w || py >= h {
						continue
					}
					i := py*w + px
					if z >= r.depth[i] {
						continue
					}
					r.depth[i] = z
					dst.SetRGBA(b.Min.X+px, b.Min.Y+py, c)
				}
			}
		}
	}
	return nil
}

// shade scales a premultiplied color's RGB by level, clamped to [0, 1].
func shade(c color.RGBA, level float32) color.RGBA {
	level = min(max(level, 0), 1)
	return color.RGBA{
		R: uint8(float32(c.R) * level),
		G: uint8(float32(c.G) * level),
		B: uint8(float32(c.B) * level),
		A: c.A,
	}
}

var _ Renderer = (*PointRenderer)(nil)
