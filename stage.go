package layerfx

import (
	"encoding/json"
	"fmt"
	"image/color"

	"github.com/gogpu/layerfx/blend"
	"github.com/gogpu/layerfx/graph"
	"github.com/gogpu/layerfx/render"
)

// StageOption configures a PixmapStage during creation.
//
// Example:
//
//	stage := layerfx.NewStage(1920, 1080,
//	    layerfx.WithDevice(host.DeviceHandle()),
//	    layerfx.WithBackground(color.Black),
//	)
type StageOption func(*stageOptions)

type stageOptions struct {
	device     render.DeviceHandle
	renderer   graph.Renderer
	registry   *blend.Registry
	background color.RGBA
}

// WithDevice sets the device every composer on the stage runs against.
// The default is render.NullDeviceHandle.
func WithDevice(dev render.DeviceHandle) StageOption {
	return func(o *stageOptions) {
		o.device = dev
	}
}

// WithGraphRenderer sets the renderer for the shared 3D buffer.
// The default is graph.NewPointRenderer.
func WithGraphRenderer(r graph.Renderer) StageOption {
	return func(o *stageOptions) {
		o.renderer = r
	}
}

// WithRegistry sets the blend registry used to composite scenes.
// The default is blend.DefaultRegistry.
func WithRegistry(r *blend.Registry) StageOption {
	return func(o *stageOptions) {
		o.registry = r
	}
}

// WithBackground sets the color scenes are composited over.
// The default is transparent.
func WithBackground(c color.Color) StageOption {
	return func(o *stageOptions) {
		o.background = color.RGBAModel.Convert(c).(color.RGBA)
	}
}

// PixmapStage is a CPU Stage. It owns the shared 2D and 3D buffers and
// composites the outputs of its scenes, in order, with each scene's
// blendMode and opacity options.
//
// PixmapStage is not safe for concurrent use.
type PixmapStage struct {
	width, height int

	device     render.DeviceHandle
	registry   *blend.Registry
	background color.RGBA

	buffer2D *canvasBuffer
	buffer3D *graphBuffer

	scenes   NodeSet[*Scene]
	passes   map[*Scene]*render.BlendPass
	composer *render.Composer
}

// NewStage creates a stage of the given resolution.
func NewStage(width, height int, opts ...StageOption) *PixmapStage {
	o := stageOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.device == nil {
		o.device = render.NullDeviceHandle{}
	}
	if o.renderer == nil {
		o.renderer = graph.NewPointRenderer()
	}
	if o.registry == nil {
		o.registry = blend.DefaultRegistry()
	}
	width, height = max(width, 1), max(height, 1)

	return &PixmapStage{
		width:      width,
		height:     height,
		device:     o.device,
		registry:   o.registry,
		background: o.background,
		buffer2D:   newCanvasBuffer(width, height),
		buffer3D:   newGraphBuffer(width, height, o.renderer),
		passes:     make(map[*Scene]*render.BlendPass),
		composer:   render.NewComposer(o.device, width, height),
	}
}

// Size returns the output resolution.
func (st *PixmapStage) Size() (width, height int) { return st.width, st.height }

// Buffer2D returns the shared 2D buffer.
func (st *PixmapStage) Buffer2D() Buffer { return st.buffer2D }

// Buffer3D returns the shared 3D buffer.
func (st *PixmapStage) Buffer3D() GraphBuffer { return st.buffer3D }

// Device returns the stage device.
func (st *PixmapStage) Device() render.DeviceHandle { return st.device }

// Registry returns the blend registry used for scenes.
func (st *PixmapStage) Registry() *blend.Registry { return st.registry }

// Scenes returns the attached scenes in composition order.
// The returned slice must not be modified.
func (st *PixmapStage) Scenes() []*Scene {
	st.prune()
	return st.scenes.Nodes()
}

// AddScene appends sc and attaches it.
func (st *PixmapStage) AddScene(sc *Scene) error {
	return st.addScene(sc, func() error { return st.scenes.Add(sc) })
}

// InsertScene inserts sc before position i and attaches it.
func (st *PixmapStage) InsertScene(i int, sc *Scene) error {
	return st.addScene(sc, func() error { return st.scenes.Insert(i, sc) })
}

func (st *PixmapStage) addScene(sc *Scene, insert func() error) error {
	st.prune()
	if st.scenes.Contains(sc) {
		return fmt.Errorf("add scene %q: %w", sc.name, ErrDuplicateNode)
	}
	if sc.Attached() {
		return fmt.Errorf("add scene %q: %w", sc.name, ErrNodeInUse)
	}
	if err := insert(); err != nil {
		return err
	}
	return sc.AddToStage(st)
}

// RemoveScene detaches sc and reports whether it was on the stage.
func (st *PixmapStage) RemoveScene(sc *Scene) bool {
	if !st.scenes.Remove(sc) {
		return false
	}
	sc.RemoveFromStage()
	if p, ok := st.passes[sc]; ok {
		p.Release()
		delete(st.passes, sc)
	}
	return true
}

// prune drops scenes that were detached from the stage directly through
// Scene.RemoveFromStage.
func (st *PixmapStage) prune() {
	for _, sc := range append([]*Scene{}, st.scenes.Nodes()...) {
		if sc.Owner() == Stage(st) {
			continue
		}
		st.scenes.Remove(sc)
		if p, ok := st.passes[sc]; ok {
			p.Release()
			delete(st.passes, sc)
		}
		Logger().Debug("layerfx: dropped detached scene", "scene", sc.name)
	}
}

// ShiftScene moves sc by delta positions and reports whether the order
// changed.
func (st *PixmapStage) ShiftScene(sc *Scene, delta int) bool {
	st.prune()
	i := st.scenes.IndexOf(sc)
	return i != NotFound && st.scenes.Swap(i, i+delta)
}

// SetSize resizes the shared buffers, the stage composer and every scene.
func (st *PixmapStage) SetSize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if width == st.width && height == st.height {
		return
	}
	st.width, st.height = width, height
	st.buffer2D.resize(width, height)
	st.buffer3D.resize(width, height)
	st.composer.SetSize(width, height)
	for _, sc := range st.scenes.Nodes() {
		sc.SetSize(width, height)
	}
	Logger().Debug("layerfx: stage resized", "width", width, "height", height)
}

// scenePass returns the blend pass compositing sc, configured from the
// scene's current options.
func (st *PixmapStage) scenePass(sc *Scene, out *render.PixmapTarget) *render.BlendPass {
	opts := render.BlendOptions{
		Opacity: sc.options.Float(OptOpacity, 1),
		Mode:    blend.Mode(sc.options.String(OptBlendMode, string(blend.Normal))),
		Alpha:   1,
	}
	p, ok := st.passes[sc]
	if !ok {
		p = render.NewBlendPass(out, st.registry, opts)
		st.passes[sc] = p
	}
	p.SetBuffer(out)
	p.SetOptions(opts)
	return p
}

// Render renders every enabled scene and composites the results over the
// background. The returned buffer is owned by the stage and is valid until
// the next Render, SetSize or Dispose.
func (st *PixmapStage) Render(frame FrameData) (*render.PixmapTarget, error) {
	st.prune()
	st.composer.ClearPasses()
	for _, sc := range st.scenes.Nodes() {
		if !sc.Enabled() {
			continue
		}
		out, err := sc.Render(frame)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", sc.name, err)
		}
		st.composer.AddPass(st.scenePass(sc, out))
	}

	st.composer.ClearBuffer()
	if st.background.A != 0 {
		st.composer.ReadBuffer().Clear(st.background)
	}
	if err := st.composer.Render(); err != nil {
		return nil, err
	}
	return st.composer.ReadBuffer(), nil
}

// HasChanges reports whether any scene has changes.
func (st *PixmapStage) HasChanges() bool {
	for _, sc := range st.scenes.Nodes() {
		if sc.HasChanges() {
			return true
		}
	}
	return false
}

// ResetChanges resets every scene's changes.
func (st *PixmapStage) ResetChanges() {
	for _, sc := range st.scenes.Nodes() {
		sc.ResetChanges()
	}
}

// Dispose detaches every scene and releases the stage composer.
func (st *PixmapStage) Dispose() {
	for _, sc := range append([]*Scene{}, st.scenes.Nodes()...) {
		st.RemoveScene(sc)
	}
	st.composer.Dispose()
}

type stageJSON struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Scenes []*Scene `json:"scenes"`
}

// MarshalJSON encodes the stage as {"width", "height", "scenes"}.
func (st *PixmapStage) MarshalJSON() ([]byte, error) {
	st.prune()
	return json.Marshal(stageJSON{
		Width:  st.width,
		Height: st.height,
		Scenes: append([]*Scene{}, st.scenes.Nodes()...),
	})
}

var _ Stage = (*PixmapStage)(nil)
