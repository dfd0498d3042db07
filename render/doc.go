// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the buffer chain that layered scenes are
// composited through.
//
// A [Composer] owns two equally sized [PixmapTarget] buffers and runs an
// ordered list of [Pass] values over them. A pass reads the read buffer and
// writes the write buffer; after each enabled pass that reports NeedsSwap
// the buffers trade roles, so the read buffer always holds the latest
// output.
//
// # Key Principle
//
// The composer RECEIVES a device from the host application, it does NOT
// create one. With a [NullDeviceHandle] every pass runs on the CPU. When the
// device exposes a HAL device, passes also build their WGSL programs into
// shader modules and release them on [Composer.Dispose].
//
// # Pass Implementations
//
//   - BlendPass: composites a captured buffer with the chain by blend mode
//   - TexturePass: draws a source buffer over the chain in place
//   - FilterPass: applies a per-pixel filter from read to write
//
// # Usage
//
//	c := render.NewComposer(render.NullDeviceHandle{}, 800, 600)
//	c.AddPass(render.NewTexturePass(background))
//	c.AddPass(render.NewBlendPass(layer, blend.DefaultRegistry(), render.DefaultBlendOptions()))
//	if err := c.Render(); err != nil {
//	    return err
//	}
//	img := c.ReadBuffer().Image()
//
// # Thread Safety
//
// Composers and passes are NOT thread-safe. Each composer should be used
// from a single goroutine, or external synchronization must be used.
package render
