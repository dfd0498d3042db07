package graph

import "github.com/gogpu/layerfx/internal/linear"

// Camera is a perspective camera looking down -Z from Position.
type Camera struct {
	FOV    float32 // vertical field of view in degrees
	Aspect float32 // width / height
	Near   float32
	Far    float32

	Position linear.V3

	projection linear.M4
}

// NewPerspectiveCamera creates a camera at the origin and computes its
// projection matrix.
func NewPerspectiveCamera(fov, aspect, near, far float32) *Camera {
	c := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjectionMatrix()
	return c
}

func (*Camera) object() {}

// SetPosition moves the camera.
func (c *Camera) SetPosition(x, y, z float32) {
	c.Position = linear.V3{x, y, z}
}

// UpdateProjectionMatrix recomputes the projection after FOV, Aspect,
// Near or Far change.
func (c *Camera) UpdateProjectionMatrix() {
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	c.projection.Perspective(linear.Radians(c.FOV), aspect, c.Near, c.Far)
}

// Projection returns the projection matrix.
func (c *Camera) Projection() linear.M4 {
	return c.projection
}

// View returns the view matrix.
func (c *Camera) View() linear.M4 {
	var v linear.M4
	v.Translate(linear.ScaleV3(-1, c.Position))
	return v
}

// Project maps a world-space point to pixel coordinates in a width×height
// viewport. depth is the normalized device depth in [-1, 1]; ok is false
// when the point is behind the camera or outside the depth range.
func (c *Camera) Project(p linear.V3, width, height int) (x, y, depth float32, ok bool) {
	view := c.View()
	var vp linear.M4
	vp.Mul(&c.projection, &view)

	clip := vp.MulV4(linear.V4{p[0], p[1], p[2], 1})
	if clip[3] <= 0 {
		return 0, 0, 0, false
	}
	nx, ny, nz := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]
	if nz < -1 || nz > 1 {
		return 0, 0, 0, false
	}
	x = (nx + 1) / 2 * float32(width)
	y = (1 - ny) / 2 * float32(height)
	return x, y, nz, true
}
