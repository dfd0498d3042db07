package layerfx

import (
	"encoding/json"

	"github.com/gogpu/layerfx/render"
)

// Kind tags a node as a display or an effect. The zero value is invalid.
type Kind uint8

const (
	// KindInvalid is the zero Kind. Scenes reject such nodes.
	KindInvalid Kind = iota

	// KindDisplay marks primary visual content.
	KindDisplay

	// KindEffect marks a post-process filter, applied after every display.
	KindEffect
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindDisplay:
		return "display"
	case KindEffect:
		return "effect"
	default:
		return "invalid"
	}
}

// SceneID identifies a scene. Zero means no scene.
type SceneID uint64

// Hooks are the optional capabilities a node exposes to its scene.
// Nil hooks are skipped.
type Hooks struct {
	// SetSize is called with the scene size on add, attach and resize.
	SetSize func(width, height int)

	// AddToScene is called after the node joins a scene.
	AddToScene func(s *Scene)

	// RemoveFromScene is called after the node leaves a scene through
	// RemoveElement. Detaching the scene does not call it.
	RemoveFromScene func(s *Scene)

	// RenderToScene draws the node's frame contribution.
	RenderToScene func(s *Scene, frame FrameData) error

	// SetEnabled is called with the new state whenever the "enabled"
	// option is updated.
	SetEnabled func(enabled bool)
}

// Node is a display or effect layer hosted by a Scene.
//
// A node belongs to at most one scene at a time. Its owner is recorded as
// a SceneID, never as a pointer.
type Node struct {
	// Name labels the node in serialization and logs.
	Name string

	kind        Kind
	typ         string
	options     Options
	hooks       Hooks
	pass        render.Pass
	owner       SceneID
	changed     bool
	hasGeometry bool
}

// NewNode creates a node of the given kind. typ names the concrete layer
// (e.g. "ImageDisplay") and doubles as the initial Name. opts override
// NodeDefaults.
func NewNode(kind Kind, typ string, opts Options, hooks Hooks) *Node {
	return &Node{
		Name:    typ,
		kind:    kind,
		typ:     typ,
		options: withDefaults(NodeDefaults(), opts),
		hooks:   hooks,
	}
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// Type returns the concrete layer name.
func (n *Node) Type() string { return n.typ }

// Options returns a copy of the node's options.
func (n *Node) Options() Options { return n.options.Clone() }

// Option returns the raw option value at key.
func (n *Node) Option(key string) any { return n.options[key] }

// OptFloat returns a numeric option, or def.
func (n *Node) OptFloat(key string, def float32) float32 { return n.options.Float(key, def) }

// OptInt returns a numeric option truncated to int, or def.
func (n *Node) OptInt(key string, def int) int { return n.options.Int(key, def) }

// OptString returns a string option, or def.
func (n *Node) OptString(key, def string) string { return n.options.String(key, def) }

// OptBool returns a boolean option, or def.
func (n *Node) OptBool(key string, def bool) bool { return n.options.Bool(key, def) }

// Update merges opts into the node's options. It marks the node changed
// and reports true if any value differed. The "enabled" option is mirrored
// onto the node's pass.
func (n *Node) Update(opts Options) bool {
	if !n.options.Merge(opts) {
		return false
	}
	n.changed = true
	if _, ok := opts[OptEnabled]; ok {
		n.syncPassEnabled()
		if n.hooks.SetEnabled != nil {
			n.hooks.SetEnabled(n.Enabled())
		}
	}
	return true
}

// Enabled reports whether the scene renders the node.
func (n *Node) Enabled() bool {
	return n.options.Bool(OptEnabled, true)
}

// SetEnabled toggles the node and its pass.
func (n *Node) SetEnabled(enabled bool) {
	n.Update(Options{OptEnabled: enabled})
}

// Pass returns the node's render pass, or nil.
func (n *Node) Pass() render.Pass { return n.pass }

// SetPass sets the node's render pass. The pass is picked up by the
// scene's next pass-chain rebuild.
func (n *Node) SetPass(p render.Pass) {
	n.pass = p
	n.syncPassEnabled()
}

// HasGeometry reports whether the node draws into the scene's 3D graph.
func (n *Node) HasGeometry() bool { return n.hasGeometry }

// SetHasGeometry records whether the node draws into the 3D graph.
func (n *Node) SetHasGeometry(v bool) { n.hasGeometry = v }

// Owner returns the ID of the hosting scene, or 0.
func (n *Node) Owner() SceneID { return n.owner }

// Changed reports whether the node changed since the last reset.
func (n *Node) Changed() bool { return n.changed }

// MarkChanged flags the node as changed.
func (n *Node) MarkChanged() { n.changed = true }

func (n *Node) syncPassEnabled() {
	type enabler interface{ SetEnabled(bool) }
	if e, ok := n.pass.(enabler); ok {
		e.SetEnabled(n.Enabled())
	}
}

func (n *Node) setSize(width, height int) {
	if n.hooks.SetSize != nil {
		n.hooks.SetSize(width, height)
	}
}

func (n *Node) addToScene(s *Scene) {
	if n.hooks.AddToScene != nil {
		n.hooks.AddToScene(s)
	}
}

func (n *Node) removeFromScene(s *Scene) {
	if n.hooks.RemoveFromScene != nil {
		n.hooks.RemoveFromScene(s)
	}
}

func (n *Node) renderToScene(s *Scene, frame FrameData) error {
	if n.hooks.RenderToScene == nil {
		return nil
	}
	return n.hooks.RenderToScene(s, frame)
}

type nodeJSON struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Options Options `json:"options"`
}

// MarshalJSON encodes the node as {"name", "type", "options"}.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{Name: n.Name, Type: n.typ, Options: n.options})
}
