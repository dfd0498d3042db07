package layerfx

import "errors"

var (
	// ErrInvalidNodeType is returned when a node is neither a display nor
	// an effect.
	ErrInvalidNodeType = errors.New("layerfx: node is neither a display nor an effect")

	// ErrDuplicateNode is returned when a node is already in the target set.
	ErrDuplicateNode = errors.New("layerfx: node already in set")

	// ErrNodeInUse is returned when a node is owned by another scene.
	ErrNodeInUse = errors.New("layerfx: node belongs to another scene")

	// ErrDetached is returned by scene operations that need a stage.
	ErrDetached = errors.New("layerfx: scene is not attached to a stage")
)
