package graph

import (
	"image/color"

	"github.com/gogpu/layerfx/internal/linear"
)

// Mesh is a point-sampled shape: a set of model-space vertices drawn as
// square points of PointSize pixels.
type Mesh struct {
	Vertices  []linear.V3
	Color     color.RGBA
	PointSize int

	Position linear.V3
	RotX     float32 // radians
	RotY     float32 // radians

	// Hidden meshes stay in the graph but are not drawn.
	Hidden bool
}

func (*Mesh) object() {}

// Transform returns the model matrix: translation ⋅ rotY ⋅ rotX.
func (m *Mesh) Transform() linear.M4 {
	var t, rx, ry, out linear.M4
	t.Translate(m.Position)
	rx.RotateX(m.RotX)
	ry.RotateY(m.RotY)
	out.Mul(&t, &ry)
	out.Mul(&out, &rx)
	return out
}

// Box samples the 12 edges of an axis-aligned box centered at the origin,
// one vertex every step units.
func Box(width, height, depth, step float32) []linear.V3 {
	if step <= 0 {
		step = max(width, height, depth)
	}
	hw, hh, hd := width/2, height/2, depth/2

	var out []linear.V3
	edge := func(a, b linear.V3) {
		d := linear.SubV3(b, a)
		n := max(1, int(linear.LenV3(d)/step))
		for i := 0; i < n; i++ {
			out = append(out, linear.AddV3(a, linear.ScaleV3(float32(i)/float32(n), d)))
		}
	}

	c := [8]linear.V3{
		{-hw, -hh, -hd}, {hw, -hh, -hd}, {hw, hh, -hd}, {-hw, hh, -hd},
		{-hw, -hh, hd}, {hw, -hh, hd}, {hw, hh, hd}, {-hw, hh, hd},
	}
	for i := range 4 {
		edge(c[i], c[(i+1)%4])
		edge(c[i+4], c[(i+1)%4+4])
		edge(c[i], c[i+4])
	}
	return out
}
