// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Pass is one compositing stage of a [Composer] chain.
//
// Process reads read and writes write. Passes that report NeedsSwap produce
// their output in write, after which the composer swaps the two buffers;
// passes that do not need a swap modify read in place.
type Pass interface {
	// Enabled reports whether the composer should run the pass.
	Enabled() bool

	// NeedsSwap reports whether the pass writes to the write buffer.
	NeedsSwap() bool

	// Process runs the pass. Device failures are returned to the caller.
	Process(dev DeviceHandle, write, read *PixmapTarget) error
}

// Releaser is implemented by passes that hold device resources.
// The composer calls Release once from Dispose.
type Releaser interface {
	Release()
}

// passState carries the flags shared by the passes in this package.
type passState struct {
	enabled   bool
	needsSwap bool
}

// Enabled reports whether the pass runs.
func (s *passState) Enabled() bool { return s.enabled }

// SetEnabled toggles the pass.
func (s *passState) SetEnabled(enabled bool) { s.enabled = enabled }

// NeedsSwap reports whether the pass writes to the write buffer.
func (s *passState) NeedsSwap() bool { return s.needsSwap }
