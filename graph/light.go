package graph

import "github.com/gogpu/layerfx/internal/linear"

// PointLight is an omnidirectional, positional light.
// Distance limits the area affected by the light; 0 means unlimited.
type PointLight struct {
	Position  linear.V3
	Intensity float32
	Distance  float32
	R, G, B   float32
}

// NewPointLight creates a white point light.
func NewPointLight(intensity, distance float32) *PointLight {
	return &PointLight{Intensity: intensity, Distance: distance, R: 1, G: 1, B: 1}
}

func (*PointLight) object() {}

// SetPosition moves the light.
func (l *PointLight) SetPosition(x, y, z float32) {
	l.Position = linear.V3{x, y, z}
}

// Contribution returns the light's intensity reaching point p with surface
// normal n, using Lambert's cosine law and a linear distance falloff.
func (l *PointLight) Contribution(p, n linear.V3) float32 {
	d := linear.SubV3(l.Position, p)
	dist := linear.LenV3(d)
	if l.Distance > 0 && dist >= l.Distance {
		return 0
	}
	lambert := linear.DotV3(n, linear.NormV3(d))
	if lambert <= 0 {
		return 0
	}
	falloff := float32(1)
	if l.Distance > 0 {
		falloff = 1 - dist/l.Distance
	}
	return l.Intensity * lambert * falloff
}
