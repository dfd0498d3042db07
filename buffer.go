package layerfx

import (
	"image/color"

	"github.com/gogpu/layerfx/graph"
	"github.com/gogpu/layerfx/render"
)

// Buffer is a stage-owned drawing surface shared by the stage's scenes.
type Buffer interface {
	// Pass returns the pass that brings the buffer into a scene's chain.
	Pass() render.Pass

	// Target returns the drawing surface.
	Target() *render.PixmapTarget

	// Clear resets the surface to transparent.
	Clear()
}

// GraphBuffer is a Buffer that 3D graphs are rendered into.
type GraphBuffer interface {
	Buffer

	// RenderGraph renders g as seen by cam into the buffer.
	RenderGraph(g *graph.Graph, cam *graph.Camera) error
}

// canvasBuffer is a 2D surface drawn into a scene chain in place.
type canvasBuffer struct {
	target *render.PixmapTarget
	pass   *render.TexturePass
}

func newCanvasBuffer(width, height int) *canvasBuffer {
	target := render.NewPixmapTarget(width, height)
	return &canvasBuffer{
		target: target,
		pass:   render.NewTexturePass(target),
	}
}

func (b *canvasBuffer) Pass() render.Pass            { return b.pass }
func (b *canvasBuffer) Target() *render.PixmapTarget { return b.target }
func (b *canvasBuffer) Clear()                       { b.target.Clear(color.Transparent) }
func (b *canvasBuffer) resize(width, height int)     { b.target.Resize(width, height) }

// graphBuffer renders 3D graphs with a graph.Renderer.
type graphBuffer struct {
	canvasBuffer
	renderer graph.Renderer
}

func newGraphBuffer(width, height int, r graph.Renderer) *graphBuffer {
	return &graphBuffer{canvasBuffer: *newCanvasBuffer(width, height), renderer: r}
}

func (b *graphBuffer) RenderGraph(g *graph.Graph, cam *graph.Camera) error {
	return b.renderer.Render(g, cam, b.target.Image())
}

var (
	_ Buffer      = (*canvasBuffer)(nil)
	_ GraphBuffer = (*graphBuffer)(nil)
)
