// Package shader compiles the WGSL programs behind render passes and
// creates their device shader modules on HAL-capable devices.
package shader

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// CompileFunc translates WGSL source to SPIR-V bytes.
type CompileFunc func(source string) ([]byte, error)

// Cache memoizes WGSL → SPIR-V compilation by source text.
//
// Thread safety: All methods are safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	compile CompileFunc
	words   map[string][]uint32
}

// NewCache returns a cache that compiles with fn. A nil fn uses naga.
func NewCache(fn CompileFunc) *Cache {
	if fn == nil {
		fn = naga.Compile
	}
	return &Cache{compile: fn, words: make(map[string][]uint32)}
}

var defaultCache = NewCache(nil)

// Default returns the process-wide cache.
func Default() *Cache {
	return defaultCache
}

// SPIRV returns the SPIR-V words for source, compiling at most once per
// distinct source.
func (c *Cache) SPIRV(source string) ([]uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if code, ok := c.words[source]; ok {
		return code, nil
	}

	raw, err := c.compile(source)
	if err != nil {
		return nil, fmt.Errorf("shader: compile: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("shader: compile: SPIR-V length %d is not a multiple of 4", len(raw))
	}

	// SPIR-V is little-endian 32-bit words
	code := make([]uint32, len(raw)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(raw[i*4:])
	}
	c.words[source] = code
	return code, nil
}

// Len returns the number of cached programs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.words)
}

// HALDevice extracts a hal.Device from a device provider that exposes one
// through a HalDevice() any method.
func HALDevice(provider any) (hal.Device, bool) {
	type halProvider interface {
		HalDevice() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, false
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, false
	}
	return device, true
}

// Program is a WGSL program that lazily becomes a shader module on the
// first HAL-capable device it is prepared for.
type Program struct {
	Label  string
	Source string

	cache  *Cache
	device hal.Device
	module hal.ShaderModule
}

// NewProgram returns a program compiled through cache (Default if nil).
func NewProgram(label, source string, cache *Cache) *Program {
	if cache == nil {
		cache = Default()
	}
	return &Program{Label: label, Source: source, cache: cache}
}

// Prepare creates the shader module on provider's device if it exposes
// one and the module does not exist yet. Providers without a HAL device
// are a no-op: the pass runs on the CPU.
func (p *Program) Prepare(provider any) error {
	if p == nil || p.module != nil {
		return nil
	}
	device, ok := HALDevice(provider)
	if !ok {
		return nil
	}

	code, err := p.cache.SPIRV(p.Source)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Label, err)
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: p.Label,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
	if err != nil {
		return fmt.Errorf("%s: create shader module: %w", p.Label, err)
	}
	p.device = device
	p.module = module
	return nil
}

// Ready reports whether the program has a live shader module.
func (p *Program) Ready() bool {
	return p != nil && p.module != nil
}

// Release destroys the shader module, if any. The program can be prepared
// again afterwards.
func (p *Program) Release() {
	if p == nil || p.module == nil {
		return
	}
	p.device.DestroyShaderModule(p.module)
	p.device = nil
	p.module = nil
}
