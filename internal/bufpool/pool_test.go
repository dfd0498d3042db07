package bufpool

import (
	"image/color"
	"sync"
	"testing"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		name         string
		maxPerBucket int
	}{
		{"zero means unlimited", 0},
		{"positive limit", 5},
		{"negative means unlimited", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := New(tt.maxPerBucket)
			if pool.maxSize != tt.maxPerBucket {
				t.Errorf("maxSize = %d, want %d", pool.maxSize, tt.maxPerBucket)
			}
			if pool.buckets == nil {
				t.Error("buckets map is nil")
			}
		})
	}
}

func TestPoolGetPut(t *testing.T) {
	pool := New(4)

	img := pool.Get(100, 50)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("Get dimensions = %dx%d, want 100x50", b.Dx(), b.Dy())
	}

	img.SetRGBA(0, 0, color.RGBA{R: 255, G: 128, B: 64, A: 200})
	pool.Put(img)
	if pool.Len(100, 50) != 1 {
		t.Fatalf("Len = %d, want 1", pool.Len(100, 50))
	}

	again := pool.Get(100, 50)
	if again != img {
		t.Error("Get should reuse the pooled buffer")
	}
	if got := again.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("reused buffer not cleared: %v", got)
	}
	if pool.Len(100, 50) != 0 {
		t.Errorf("Len after Get = %d, want 0", pool.Len(100, 50))
	}
}

func TestPoolSizeBuckets(t *testing.T) {
	pool := New(4)
	pool.Put(pool.Get(10, 10))

	other := pool.Get(20, 10)
	if b := other.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("Get(20, 10) dimensions = %dx%d", b.Dx(), b.Dy())
	}
	if pool.Len(10, 10) != 1 {
		t.Errorf("10x10 bucket = %d, want 1", pool.Len(10, 10))
	}
}

func TestPoolMaxSize(t *testing.T) {
	pool := New(2)
	for range 5 {
		pool.Put(pool.Get(8, 8))
	}
	a, b, c := pool.Get(8, 8), pool.Get(8, 8), pool.Get(8, 8)
	pool.Put(a)
	pool.Put(b)
	pool.Put(c)
	if got := pool.Len(8, 8); got != 2 {
		t.Errorf("Len = %d, want 2", got)
	}
}

func TestPoolNilAndDegenerate(t *testing.T) {
	pool := New(0)
	pool.Put(nil)

	img := pool.Get(0, -3)
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("degenerate Get = %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}

func TestPoolConcurrent(t *testing.T) {
	pool := New(8)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				pool.Put(pool.Get(16, 16))
			}
		}()
	}
	wg.Wait()

	if got := pool.Len(16, 16); got > 8 {
		t.Errorf("Len = %d, want <= 8", got)
	}
}
