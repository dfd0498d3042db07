package display

import (
	"github.com/gogpu/layerfx"
	"github.com/gogpu/layerfx/graph"
)

// GeometryDefaults are the options a Geometry starts with.
func GeometryDefaults() layerfx.Options {
	return layerfx.Options{
		"width":     100.0,
		"height":    100.0,
		"depth":     100.0,
		"step":      10.0,
		"color":     "#ffffff",
		"pointSize": 2,
		"speedX":    0.0,
		"speedY":    0.5,
		"bounce":    0.0,
	}
}

// Geometry adds a point-sampled box to the scene's 3D graph and spins it
// by speedX and speedY radians per second. bounce lifts the box by that
// many units at full audio volume.
type Geometry struct {
	*layerfx.Node

	mesh  *graph.Mesh
	shape [4]float32
}

// NewGeometry creates a geometry display.
func NewGeometry(opts layerfx.Options) *Geometry {
	d := &Geometry{mesh: &graph.Mesh{}}
	d.Node = layerfx.NewNode(layerfx.KindDisplay, "GeometryDisplay", merge(GeometryDefaults(), opts), layerfx.Hooks{
		AddToScene:      d.addToScene,
		RemoveFromScene: d.removeFromScene,
		RenderToScene:   d.renderToScene,
		SetEnabled:      d.setEnabled,
	})
	d.SetHasGeometry(true)
	d.setEnabled(d.Enabled())
	d.rebuild()
	return d
}

// Mesh returns the mesh added to the scene graph.
func (d *Geometry) Mesh() *graph.Mesh { return d.mesh }

func (d *Geometry) addToScene(s *layerfx.Scene) {
	s.Graph().Add(d.mesh)
}

func (d *Geometry) removeFromScene(s *layerfx.Scene) {
	if g := s.Graph(); g != nil {
		g.Remove(d.mesh)
	}
}

func (d *Geometry) setEnabled(enabled bool) {
	d.mesh.Hidden = !enabled
}

// rebuild regenerates the vertices when the box dimensions changed.
func (d *Geometry) rebuild() {
	shape := [4]float32{
		d.OptFloat("width", 100),
		d.OptFloat("height", 100),
		d.OptFloat("depth", 100),
		d.OptFloat("step", 10),
	}
	if shape == d.shape && d.mesh.Vertices != nil {
		return
	}
	d.shape = shape
	d.mesh.Vertices = graph.Box(shape[0], shape[1], shape[2], shape[3])
}

func (d *Geometry) renderToScene(_ *layerfx.Scene, frame layerfx.FrameData) error {
	d.rebuild()

	c, err := ParseColor(d.OptString("color", "#ffffff"))
	if err != nil {
		return err
	}
	d.mesh.Color = c
	d.mesh.PointSize = d.OptInt("pointSize", 2)

	dt := float32(frame.Delta.Seconds())
	d.mesh.RotX += d.OptFloat("speedX", 0) * dt
	d.mesh.RotY += d.OptFloat("speedY", 0) * dt
	d.mesh.Position[1] = d.OptFloat("bounce", 0) * frame.Volume
	return nil
}
