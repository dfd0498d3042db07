// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/layerfx/internal/shader"
)

// FilterFunc writes a filtered copy of src into dst. Both images have the
// same bounds.
type FilterFunc func(dst, src *image.RGBA)

// FilterPass runs a FilterFunc from the read buffer into the write buffer.
type FilterPass struct {
	passState

	filter  FilterFunc
	program *shader.Program
}

// NewFilterPass creates an enabled pass. A nil filter copies its input.
func NewFilterPass(label string, filter FilterFunc) *FilterPass {
	return &FilterPass{
		passState: passState{enabled: true, needsSwap: true},
		filter:    filter,
		program:   shader.NewProgram(label, shader.FilterWGSL, nil),
	}
}

// SetFilter replaces the filter function.
func (p *FilterPass) SetFilter(filter FilterFunc) { p.filter = filter }

// Process applies the filter.
func (p *FilterPass) Process(dev DeviceHandle, write, read *PixmapTarget) error {
	if err := p.program.Prepare(dev); err != nil {
		return err
	}
	if p.filter == nil {
		write.CopyFrom(read)
		return nil
	}
	p.filter(write.img, read.img)
	return nil
}

// Release destroys the pass's shader module, if one was created.
func (p *FilterPass) Release() {
	p.program.Release()
}

var (
	_ Pass     = (*FilterPass)(nil)
	_ Releaser = (*FilterPass)(nil)
)
