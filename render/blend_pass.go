// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/layerfx/blend"
	"github.com/gogpu/layerfx/internal/shader"
)

// BlendOptions configures a BlendPass.
type BlendOptions struct {
	// Opacity scales the overlay's coverage, forwarded to the blend function.
	Opacity float32

	// Mode names the blend function. Unknown names fall back to Normal.
	Mode blend.Mode

	// Alpha is the mix weight between backdrop and blended result.
	Alpha float32

	// BaseBufferIsPrimary selects the operands: when true the captured
	// buffer is the backdrop and the chain's read buffer is the overlay;
	// when false the roles are reversed.
	BaseBufferIsPrimary bool
}

// DefaultBlendOptions returns Normal mode at full opacity and alpha with
// the captured buffer as the backdrop.
func DefaultBlendOptions() BlendOptions {
	return BlendOptions{
		Opacity:             1,
		Mode:                blend.Normal,
		Alpha:               1,
		BaseBufferIsPrimary: true,
	}
}

// emptyTarget stands in for a missing operand; every pixel reads as
// transparent.
var emptyTarget = NewPixmapTargetFromImage(new(image.RGBA))

// BlendPass composites a captured buffer with the composer's read buffer
// and writes the result into the write buffer.
type BlendPass struct {
	passState

	buffer   *PixmapTarget
	registry *blend.Registry
	opts     BlendOptions
	warned   blend.Mode
	program  *shader.Program
}

// NewBlendPass creates an enabled pass over buffer. A nil registry uses
// blend.DefaultRegistry.
func NewBlendPass(buffer *PixmapTarget, registry *blend.Registry, opts BlendOptions) *BlendPass {
	if registry == nil {
		registry = blend.DefaultRegistry()
	}
	return &BlendPass{
		passState: passState{enabled: true, needsSwap: true},
		buffer:    buffer,
		registry:  registry,
		opts:      opts,
		program:   shader.NewProgram("blend-pass", shader.BlendWGSL, nil),
	}
}

// Buffer returns the captured buffer.
func (p *BlendPass) Buffer() *PixmapTarget { return p.buffer }

// SetBuffer replaces the captured buffer.
func (p *BlendPass) SetBuffer(buffer *PixmapTarget) { p.buffer = buffer }

// Options returns the current configuration.
func (p *BlendPass) Options() BlendOptions { return p.opts }

// SetOptions replaces the configuration.
func (p *BlendPass) SetOptions(opts BlendOptions) { p.opts = opts }

// Process writes blend(base, overlay) into write.
func (p *BlendPass) Process(dev DeviceHandle, write, read *PixmapTarget) error {
	if err := p.program.Prepare(dev); err != nil {
		return err
	}

	base, overlay := p.buffer, read
	if !p.opts.BaseBufferIsPrimary {
		base, overlay = read, p.buffer
	}
	if base == nil {
		base = emptyTarget
	}
	if overlay == nil {
		overlay = emptyTarget
	}

	fn := p.resolve()
	u := blend.Uniforms{Opacity: p.opts.Opacity, Alpha: p.opts.Alpha}

	dst := write.img
	bi, oi := base.img, overlay.img
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := dst.Pix[(y-b.Min.Y)*dst.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := fn(bi.RGBAAt(x, y), oi.RGBAAt(x, y), u)
			i := (x - b.Min.X) * 4
			row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
		}
	}
	return nil
}

// resolve looks up the configured mode, falling back to Normal.
func (p *BlendPass) resolve() blend.Func {
	if fn, ok := p.registry.Lookup(p.opts.Mode); ok {
		return fn
	}
	if p.warned != p.opts.Mode {
		p.warned = p.opts.Mode
		slogger().Warn("render: unknown blend mode, using Normal", "mode", string(p.opts.Mode))
	}
	if fn, ok := p.registry.Lookup(blend.Normal); ok {
		return fn
	}
	return func(base, _ color.RGBA, _ blend.Uniforms) color.RGBA { return base }
}

// Release destroys the pass's shader module, if one was created.
func (p *BlendPass) Release() {
	p.program.Release()
}

var (
	_ Pass     = (*BlendPass)(nil)
	_ Releaser = (*BlendPass)(nil)
)
