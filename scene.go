package layerfx

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/layerfx/graph"
	"github.com/gogpu/layerfx/render"
)

// Camera frustum of every scene.
const (
	cameraFOV  = 45
	cameraNear = 1
	cameraFar  = 10000
)

// Stage hosts scenes and supplies their shared buffers and device.
type Stage interface {
	// Size returns the output resolution.
	Size() (width, height int)

	// Buffer2D returns the shared 2D drawing buffer.
	Buffer2D() Buffer

	// Buffer3D returns the shared buffer 3D graphs render into.
	Buffer3D() GraphBuffer

	// Device returns the device composers run against.
	Device() render.DeviceHandle
}

var lastSceneID atomic.Uint64

// Scene orchestrates a stack of displays and effects on a stage.
//
// A scene is created detached. AddToStage allocates its composer, 3D
// graph, camera and lights; RemoveFromStage releases them again. Every
// structural mutation rebuilds the pass chain before returning.
//
// Scene is not safe for concurrent use.
type Scene struct {
	id      SceneID
	name    string
	options Options
	owner   Stage
	changed bool

	displays NodeSet[*Node]
	effects  NodeSet[*Node]

	composer *render.Composer
	buffer2D Buffer
	buffer3D GraphBuffer

	graph  *graph.Graph
	camera *graph.Camera
	lights [3]*graph.PointLight
}

// NewScene creates a detached scene with SceneDefaults options.
func NewScene(opts ...SceneOption) *Scene {
	o := sceneOptions{name: "Scene", options: SceneDefaults()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Scene{
		id:      SceneID(lastSceneID.Add(1)),
		name:    o.name,
		options: o.options,
	}
}

// ID returns the identifier nodes record as their owner.
func (s *Scene) ID() SceneID { return s.id }

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// Options returns a copy of the scene options.
func (s *Scene) Options() Options { return s.options.Clone() }

// Enabled reports whether the stage renders the scene.
func (s *Scene) Enabled() bool { return s.options.Bool(OptEnabled, true) }

// Owner returns the hosting stage, or nil when detached.
func (s *Scene) Owner() Stage { return s.owner }

// Attached reports whether the scene is on a stage.
func (s *Scene) Attached() bool { return s.owner != nil }

// Update merges opts into the scene options and reports whether anything
// changed. Lights and camera follow their options immediately.
func (s *Scene) Update(opts Options) bool {
	if !s.options.Merge(opts) {
		return false
	}
	s.changed = true

	if s.owner != nil {
		s.UpdatePasses()
	}
	if s.lights[0] != nil && (opts.Has(OptLightDistance) || opts.Has(OptLightIntensity)) {
		s.UpdateLights()
	}
	if s.camera != nil && opts.Has(OptCameraZoom) {
		p := s.camera.Position
		s.camera.SetPosition(p[0], p[1], s.options.Float(OptCameraZoom, 250))
	}
	return true
}

// AddToStage attaches the scene to stage. It fails with ErrNodeInUse if
// the scene is already attached.
func (s *Scene) AddToStage(stage Stage) error {
	if s.owner != nil {
		return ErrNodeInUse
	}
	width, height := stage.Size()

	s.owner = stage
	s.buffer2D = stage.Buffer2D()
	s.buffer3D = stage.Buffer3D()
	s.composer = render.NewComposer(stage.Device(), width, height)

	s.graph = graph.New()
	s.camera = graph.NewPerspectiveCamera(cameraFOV, float32(width)/float32(max(height, 1)), cameraNear, cameraFar)
	s.camera.SetPosition(0, 0, s.options.Float(OptCameraZoom, 250))
	s.graph.Add(s.camera)
	for i := range s.lights {
		s.lights[i] = graph.NewPointLight(1, 0)
		s.graph.Add(s.lights[i])
	}

	s.UpdatePasses()
	s.UpdateLights()

	Logger().Debug("layerfx: scene attached", "scene", s.name, "width", width, "height", height)
	return nil
}

// RemoveFromStage detaches the scene. Both node sets are emptied without
// running RemoveFromScene hooks and the composer is disposed. Calling it on
// a detached scene does nothing.
func (s *Scene) RemoveFromStage() {
	if s.owner == nil {
		return
	}
	s.owner = nil

	for _, set := range []*NodeSet[*Node]{&s.displays, &s.effects} {
		for _, n := range set.Nodes() {
			n.owner = 0
		}
		set.Clear()
	}

	s.composer.Dispose()
	s.composer = nil
	s.buffer2D = nil
	s.buffer3D = nil

	Logger().Debug("layerfx: scene detached", "scene", s.name)
}

// Size returns the composer resolution, or (0, 0) when detached.
func (s *Scene) Size() (width, height int) {
	if s.composer == nil {
		return 0, 0
	}
	return s.composer.Size()
}

// SetSize resizes every node that supports it, the camera and the
// composer. It does nothing when detached.
func (s *Scene) SetSize(width, height int) {
	if s.owner == nil {
		return
	}
	for _, n := range s.displays.Nodes() {
		n.setSize(width, height)
	}
	for _, n := range s.effects.Nodes() {
		n.setSize(width, height)
	}
	s.camera.Aspect = float32(width) / float32(max(height, 1))
	s.camera.UpdateProjectionMatrix()
	s.composer.SetSize(width, height)
}

// nodes returns the set a node of kind belongs in.
func (s *Scene) nodes(n *Node) (*NodeSet[*Node], error) {
	if n == nil {
		return nil, ErrInvalidNodeType
	}
	switch n.kind {
	case KindDisplay:
		return &s.displays, nil
	case KindEffect:
		return &s.effects, nil
	default:
		return nil, ErrInvalidNodeType
	}
}

// AddElement appends n to its kind's set.
func (s *Scene) AddElement(n *Node) error {
	return s.addElement(n, func(set *NodeSet[*Node]) error { return set.Add(n) })
}

// InsertElement inserts n before position i of its kind's set; i is
// clamped to the set bounds.
func (s *Scene) InsertElement(i int, n *Node) error {
	return s.addElement(n, func(set *NodeSet[*Node]) error { return set.Insert(i, n) })
}

func (s *Scene) addElement(n *Node, insert func(*NodeSet[*Node]) error) error {
	set, err := s.nodes(n)
	if err != nil {
		return err
	}
	if s.owner == nil {
		return ErrDetached
	}
	if n.owner != 0 && n.owner != s.id {
		return fmt.Errorf("add %s %q: %w", n.kind, n.Name, ErrNodeInUse)
	}
	if err := insert(set); err != nil {
		return fmt.Errorf("add %s %q: %w", n.kind, n.Name, err)
	}

	n.owner = s.id
	n.addToScene(s)
	n.setSize(s.Size())

	s.UpdatePasses()
	s.changed = true
	return nil
}

// RemoveElement removes n from its kind's set and releases the device
// resources of its pass. Removing an absent node does nothing.
func (s *Scene) RemoveElement(n *Node) error {
	set, err := s.nodes(n)
	if err != nil {
		return err
	}
	if !set.Remove(n) {
		return nil
	}

	n.owner = 0
	n.removeFromScene(s)
	if r, ok := n.pass.(render.Releaser); ok {
		r.Release()
	}

	s.UpdatePasses()
	s.changed = true
	return nil
}

// ShiftElement moves n by delta positions within its set by swapping it
// with the node at the target index. It reports whether the order changed;
// out-of-range targets and absent nodes leave it unchanged.
func (s *Scene) ShiftElement(n *Node, delta int) (bool, error) {
	set, err := s.nodes(n)
	if err != nil {
		return false, err
	}
	i := set.IndexOf(n)
	if i == NotFound || !set.Swap(i, i+delta) {
		return false, nil
	}

	s.UpdatePasses()
	s.changed = true
	return true, nil
}

// Displays returns the displays in composition order.
// The returned slice must not be modified.
func (s *Scene) Displays() []*Node { return s.displays.Nodes() }

// Effects returns the effects in composition order.
// The returned slice must not be modified.
func (s *Scene) Effects() []*Node { return s.effects.Nodes() }

// UpdatePasses rebuilds the composer chain as
// [2D base, 3D base] ++ display passes ++ effect passes, skipping nodes
// without a pass. It does nothing when detached.
func (s *Scene) UpdatePasses() {
	if s.composer == nil {
		return
	}
	c := s.composer
	c.ClearPasses()
	c.AddPass(s.buffer2D.Pass())
	c.AddPass(s.buffer3D.Pass())
	for _, n := range s.displays.Nodes() {
		c.AddPass(n.Pass())
	}
	for _, n := range s.effects.Nodes() {
		c.AddPass(n.Pass())
	}
	Logger().Debug("layerfx: passes rebuilt", "scene", s.name, "passes", len(c.Passes()))
}

// UpdateLights places the three lights symmetrically at lightDistance d:
// (0, 2d, 0), (d, 2d, d) and (-d, -2d, -d), all at lightIntensity.
func (s *Scene) UpdateLights() {
	if s.lights[0] == nil {
		return
	}
	d := s.options.Float(OptLightDistance, 500)
	intensity := s.options.Float(OptLightIntensity, 1)

	for _, l := range s.lights {
		l.Intensity = intensity
	}
	s.lights[0].SetPosition(0, d*2, 0)
	s.lights[1].SetPosition(d, d*2, d)
	s.lights[2].SetPosition(-d, -d*2, -d)
}

// Context2D returns the shared 2D drawing surface, or nil when detached.
func (s *Scene) Context2D() *render.PixmapTarget {
	if s.buffer2D == nil {
		return nil
	}
	return s.buffer2D.Target()
}

// GraphBuffer returns the shared 3D buffer, or nil when detached.
func (s *Scene) GraphBuffer() GraphBuffer { return s.buffer3D }

// Graph returns the scene's 3D graph, or nil before the first attach.
func (s *Scene) Graph() *graph.Graph { return s.graph }

// Camera returns the scene camera, or nil before the first attach.
func (s *Scene) Camera() *graph.Camera { return s.camera }

// Lights returns the three point lights, or nil before the first attach.
func (s *Scene) Lights() []*graph.PointLight {
	if s.lights[0] == nil {
		return nil
	}
	return s.lights[:]
}

// Composer returns the scene composer, or nil when detached.
func (s *Scene) Composer() *render.Composer { return s.composer }

func (s *Scene) clear() {
	s.buffer2D.Clear()
	s.buffer3D.Clear()
	s.composer.ClearBuffer()
}

// Render produces one frame and returns the composer's read buffer.
//
// Enabled displays render first, in order. The 3D graph is rendered only if
// at least one of them reports HasGeometry. Enabled effects follow, then
// the pass chain runs. A scene with no nodes returns the cleared buffer
// without running the chain.
func (s *Scene) Render(frame FrameData) (*render.PixmapTarget, error) {
	if s.owner == nil {
		return nil, ErrDetached
	}
	s.clear()

	if s.displays.Len() == 0 && s.effects.Len() == 0 {
		return s.composer.ReadBuffer(), nil
	}

	hasGeometry := false
	for _, n := range s.displays.Nodes() {
		if !n.Enabled() {
			continue
		}
		if err := n.renderToScene(s, frame); err != nil {
			return nil, fmt.Errorf("render display %q: %w", n.Name, err)
		}
		hasGeometry = hasGeometry || n.hasGeometry
	}

	if hasGeometry {
		if err := s.buffer3D.RenderGraph(s.graph, s.camera); err != nil {
			return nil, fmt.Errorf("render graph: %w", err)
		}
	}

	for _, n := range s.effects.Nodes() {
		if !n.Enabled() {
			continue
		}
		if err := n.renderToScene(s, frame); err != nil {
			return nil, fmt.Errorf("render effect %q: %w", n.Name, err)
		}
	}

	if err := s.composer.Render(); err != nil {
		return nil, err
	}
	return s.composer.ReadBuffer(), nil
}

// HasChanges reports whether the scene or any display changed since the
// last ResetChanges. Effects are not considered.
func (s *Scene) HasChanges() bool {
	if s.changed {
		return true
	}
	for _, n := range s.displays.Nodes() {
		if n.changed {
			return true
		}
	}
	return false
}

// ResetChanges clears the changed flag of the scene and its displays.
func (s *Scene) ResetChanges() {
	s.changed = false
	for _, n := range s.displays.Nodes() {
		n.changed = false
	}
}

type sceneJSON struct {
	Name     string  `json:"name"`
	Options  Options `json:"options"`
	Displays []*Node `json:"displays"`
	Effects  []*Node `json:"effects"`
}

// MarshalJSON encodes the scene as {"name", "options", "displays",
// "effects"}, nodes in composition order.
func (s *Scene) MarshalJSON() ([]byte, error) {
	return json.Marshal(sceneJSON{
		Name:     s.name,
		Options:  s.options,
		Displays: append([]*Node{}, s.displays.Nodes()...),
		Effects:  append([]*Node{}, s.effects.Nodes()...),
	})
}
