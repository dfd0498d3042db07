// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gogpu/layerfx/internal/bufpool"
)

// ErrComposerDisposed is returned by Render after Dispose.
var ErrComposerDisposed = errors.New("render: composer disposed")

// Composer runs an ordered chain of passes over a ping-pong buffer pair.
//
// After Render, ReadBuffer holds the output of the last pass that wrote
// anything: passes with NeedsSwap write the write buffer and the two
// buffers are swapped; in-place passes modify the read buffer directly.
//
// Thread safety: Composer is NOT thread-safe.
type Composer struct {
	device DeviceHandle
	pool   *bufpool.Pool
	passes []Pass

	write *PixmapTarget
	read  *PixmapTarget

	width    int
	height   int
	frames   uint64
	disposed bool
}

// NewComposer creates a composer with two cleared width×height buffers.
// A nil device is replaced by NullDeviceHandle.
func NewComposer(dev DeviceHandle, width, height int) *Composer {
	width, height = max(width, 1), max(height, 1)
	pool := bufpool.Default()
	return &Composer{
		device: orNull(dev),
		pool:   pool,
		write:  NewPixmapTargetFromImage(pool.Get(width, height)),
		read:   NewPixmapTargetFromImage(pool.Get(width, height)),
		width:  width,
		height: height,
	}
}

// Device returns the device handle passes run against.
func (c *Composer) Device() DeviceHandle { return c.device }

// ClearPasses empties the pass chain. Slices returned by earlier Passes
// calls keep the old chain.
func (c *Composer) ClearPasses() {
	c.passes = nil
}

// AddPass appends p to the chain. Nil passes are ignored.
func (c *Composer) AddPass(p Pass) {
	if p == nil {
		return
	}
	c.passes = append(c.passes, p)
}

// Passes returns the chain in execution order. Callers must not modify
// the slice.
func (c *Composer) Passes() []Pass {
	return c.passes
}

// Render runs every enabled pass in order. A failing pass aborts the frame.
func (c *Composer) Render() error {
	if c.disposed {
		return ErrComposerDisposed
	}
	for i, p := range c.passes {
		if !p.Enabled() {
			continue
		}
		if err := p.Process(c.device, c.write, c.read); err != nil {
			return fmt.Errorf("render: pass %d: %w", i, err)
		}
		if p.NeedsSwap() {
			c.write, c.read = c.read, c.write
		}
	}
	c.frames++
	return nil
}

// Frames returns the number of completed Render calls.
func (c *Composer) Frames() uint64 { return c.frames }

// ReadBuffer returns the buffer holding the latest composite.
func (c *Composer) ReadBuffer() *PixmapTarget { return c.read }

// WriteBuffer returns the buffer the next swapping pass writes.
func (c *Composer) WriteBuffer() *PixmapTarget { return c.write }

// ClearBuffer clears both buffers to transparent black.
func (c *Composer) ClearBuffer() {
	if c.disposed {
		return
	}
	c.write.Clear(color.Transparent)
	c.read.Clear(color.Transparent)
}

// Size returns the buffer dimensions.
func (c *Composer) Size() (width, height int) {
	return c.width, c.height
}

// SetSize resizes both buffers. Contents are discarded.
func (c *Composer) SetSize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if c.disposed || (width == c.width && height == c.height) {
		return
	}
	c.pool.Put(c.write.swapImage(c.pool.Get(width, height)))
	c.pool.Put(c.read.swapImage(c.pool.Get(width, height)))
	c.width, c.height = width, height
	slogger().Debug("render: composer resized", "width", width, "height", height)
}

// Dispose releases pass device resources and returns the buffers to the
// pool. Calls after the first are ignored.
func (c *Composer) Dispose() {
	if c.disposed {
		slogger().Warn("render: composer disposed twice")
		return
	}
	c.disposed = true
	for _, p := range c.passes {
		if r, ok := p.(Releaser); ok {
			r.Release()
		}
	}
	c.passes = nil
	c.pool.Put(c.write.img)
	c.pool.Put(c.read.img)
	slogger().Debug("render: composer disposed", "frames", c.frames)
}

// Disposed reports whether Dispose has been called.
func (c *Composer) Disposed() bool { return c.disposed }
