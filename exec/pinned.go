package exec

import "sync"

// PinnedBufferCapacity is the fixed size of every pinned buffer in the
// pool (spec §4.5.2: "capacity compile-time, typically 64 KiB-1 MiB").
const PinnedBufferCapacity = 256 << 10 // 256 KiB

// pinnedBuffer is a node in the pool's intrusive free list. Go has no
// page-locked host memory primitive without cgo, so under the cpu
// backend this is a plain byte slice; exec/backend/gpu would instead
// back it with cudaMallocHost via a build-tag-specific allocator, but
// the pool's acquire/release protocol is identical either way.
type pinnedBuffer struct {
	data []byte
	size int
}

func (b *pinnedBuffer) reset() { b.size = 0 }

func (b *pinnedBuffer) full() bool { return b.size == len(b.data) }

// fillFromHost copies as much of src as fits in the remaining capacity
// and returns the unconsumed remainder.
func (b *pinnedBuffer) fillFromHost(src []byte) []byte {
	room := len(b.data) - b.size
	n := len(src)
	if n > room {
		n = room
	}
	copy(b.data[b.size:b.size+n], src[:n])
	b.size += n
	return src[n:]
}

// PinnedPool is a fixed-size pinned host buffer pool. Spec §4.5.2 asks
// for a thread-local intrusive singly-linked free list; Go's
// cooperative-goroutine model has no thread-local storage primitive,
// so sync.Pool fills the equivalent role (a per-P cache with the same
// acquire-or-allocate, release-to-head behavior), documented in
// DESIGN.md.
type PinnedPool struct {
	pool sync.Pool
}

// NewPinnedPool constructs a pool whose buffers are sized cap bytes; a
// cap of 0 uses PinnedBufferCapacity.
func NewPinnedPool(cap int) *PinnedPool {
	if cap == 0 {
		cap = PinnedBufferCapacity
	}
	p := &PinnedPool{}
	p.pool.New = func() any {
		return &pinnedBuffer{data: make([]byte, cap)}
	}
	return p
}

// Acquire unlinks a buffer from the free list, allocating a new one if
// the pool is empty.
func (p *PinnedPool) Acquire() *pinnedBuffer {
	return p.pool.Get().(*pinnedBuffer)
}

// Release returns a buffer to the pool. Callers must ensure any
// backing copy against this buffer has completed first (spec §4.5.2).
func (p *PinnedPool) Release(b *pinnedBuffer) {
	b.reset()
	p.pool.Put(b)
}
