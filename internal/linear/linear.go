// Package linear implements the vector and matrix math used by the
// 3D graph and its camera.
package linear

import "github.com/chewxy/math32"

// V3 is a 3-component vector of float32.
type V3 [3]float32

// V4 is a 4-component vector of float32.
type V4 [4]float32

// M4 is a column-major 4x4 matrix of float32.
type M4 [4]V4

// AddV3 returns v + w.
func AddV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] + w[i]
	}
	return
}

// SubV3 returns v - w.
func SubV3(v, w V3) (u V3) {
	for i := range u {
		u[i] = v[i] - w[i]
	}
	return
}

// ScaleV3 returns s ⋅ v.
func ScaleV3(s float32, v V3) (u V3) {
	for i := range u {
		u[i] = s * v[i]
	}
	return
}

// DotV3 returns v ⋅ w.
func DotV3(v, w V3) (d float32) {
	for i := range v {
		d += v[i] * w[i]
	}
	return
}

// LenV3 returns the length of v.
func LenV3(v V3) float32 {
	return math32.Sqrt(DotV3(v, v))
}

// NormV3 returns v normalized.
// The zero vector is returned unchanged.
func NormV3(v V3) V3 {
	l := LenV3(v)
	if l == 0 {
		return v
	}
	return ScaleV3(1/l, v)
}

// I makes m an identity matrix.
func (m *M4) I() { *m = M4{{1}, {0, 1}, {0, 0, 1}, {0, 0, 0, 1}} }

// Mul sets m to contain l ⋅ r.
func (m *M4) Mul(l, r *M4) {
	var p M4
	for i := range p {
		for j := range p {
			for k := range p {
				p[i][j] += l[k][j] * r[i][k]
			}
		}
	}
	*m = p
}

// Translate sets m to a translation by v.
func (m *M4) Translate(v V3) {
	m.I()
	m[3] = V4{v[0], v[1], v[2], 1}
}

// RotateY sets m to a rotation of angle radians around the Y axis.
func (m *M4) RotateY(angle float32) {
	s, c := math32.Sin(angle), math32.Cos(angle)
	*m = M4{{c, 0, -s}, {0, 1}, {s, 0, c}, {0, 0, 0, 1}}
}

// RotateX sets m to a rotation of angle radians around the X axis.
func (m *M4) RotateX(angle float32) {
	s, c := math32.Sin(angle), math32.Cos(angle)
	*m = M4{{1}, {0, c, s}, {0, -s, c}, {0, 0, 0, 1}}
}

// Perspective sets m to a right-handed perspective projection.
// yfov is the vertical field of view in radians; depth maps to [-1, 1].
func (m *M4) Perspective(yfov, aspect, near, far float32) {
	f := 1 / math32.Tan(yfov/2)
	*m = M4{
		{f / aspect},
		{0, f},
		{0, 0, (far + near) / (near - far), -1},
		{0, 0, 2 * far * near / (near - far)},
	}
}

// MulV4 returns m ⋅ v.
func (m *M4) MulV4(v V4) (u V4) {
	for i := range m {
		for j := range u {
			u[j] += m[i][j] * v[i]
		}
	}
	return
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}
