// Package graph implements the 3D scene graph a scene renders through its
// camera when at least one display contributes geometry.
package graph

import "slices"

// Object is anything that can live in a Graph.
// It is implemented by *Camera, *PointLight and *Mesh.
type Object interface {
	object()
}

// Graph is an ordered collection of cameras, lights and meshes.
// Insertion order is the draw order of meshes.
//
// Graph is not safe for concurrent use.
type Graph struct {
	objects []Object
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{}
}

// Add appends obj to the graph. Adding an object already present is a no-op.
func (g *Graph) Add(obj Object) {
	if obj == nil || slices.Contains(g.objects, obj) {
		return
	}
	g.objects = append(g.objects, obj)
}

// Remove removes obj from the graph and reports whether it was present.
func (g *Graph) Remove(obj Object) bool {
	i := slices.Index(g.objects, obj)
	if i < 0 {
		return false
	}
	g.objects = slices.Delete(g.objects, i, i+1)
	return true
}

// Contains reports whether obj is in the graph.
func (g *Graph) Contains(obj Object) bool {
	return slices.Contains(g.objects, obj)
}

// Len returns the number of objects in the graph.
func (g *Graph) Len() int {
	return len(g.objects)
}

// Objects returns the objects in insertion order.
// The returned slice must not be modified.
func (g *Graph) Objects() []Object {
	return g.objects
}

// Cameras returns the cameras in insertion order.
func (g *Graph) Cameras() []*Camera {
	return collect[*Camera](g.objects)
}

// Lights returns the point lights in insertion order.
func (g *Graph) Lights() []*PointLight {
	return collect[*PointLight](g.objects)
}

// Meshes returns the meshes in insertion order.
func (g *Graph) Meshes() []*Mesh {
	return collect[*Mesh](g.objects)
}

func collect[T Object](objects []Object) []T {
	var out []T
	for _, o := range objects {
		if t, ok := o.(T); ok {
			out = append(out, t)
		}
	}
	return out
}
