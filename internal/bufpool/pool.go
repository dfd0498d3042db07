// Package bufpool recycles RGBA frame buffers between passes and scenes.
package bufpool

import (
	"image"
	"sync"
)

// Pool is a thread-safe pool for reusing *image.RGBA frame buffers.
//
// Pool groups buffers by their dimensions so that a composer resizing back
// and forth, or several scenes of the same size, share allocations.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*image.RGBA
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
}

// New creates a pool retaining at most maxPerBucket buffers per size.
// A maxPerBucket of 0 or less means unlimited.
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*image.RGBA),
		maxSize: maxPerBucket,
	}
}

// Get returns a cleared buffer of the given size, reusing one if available.
// Non-positive dimensions are treated as 1.
func (p *Pool) Get(width, height int) *image.RGBA {
	width, height = max(width, 1), max(height, 1)
	key := poolKey{width: width, height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		img := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return img
	}
	p.mu.Unlock()

	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Put clears img and returns it to the pool.
// If img is nil or its bucket is full, it is discarded.
func (p *Pool) Put(img *image.RGBA) {
	if img == nil {
		return
	}
	clear(img.Pix)

	b := img.Bounds()
	key := poolKey{width: b.Dx(), height: b.Dy()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, img)
}

// Len returns the number of pooled buffers of the given size.
func (p *Pool) Len(width, height int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[poolKey{width: width, height: height}])
}

var defaultPool = New(8)

// Default returns the process-wide pool.
func Default() *Pool {
	return defaultPool
}
