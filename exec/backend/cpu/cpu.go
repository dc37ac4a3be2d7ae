// Package cpu is the default Device backend: it has no physical GPU,
// so "device memory" is ordinary host memory and a Stream is a FIFO
// queue of closures drained by a dedicated goroutine, preserving the
// ordering guarantees spec §5 requires without any real hardware.
package cpu

import (
	"runtime"
	"sync"

	"github.com/spaceandtimefdn/blitzar/exec/backend"
)

// DefaultMemoryBudget is used when no GPU is present; it only bounds
// the split policy's chunk sizing, not real allocation.
const DefaultMemoryBudget = 8 << 30 // 8 GiB

// Backend is the pure-Go Device implementation.
type Backend struct {
	budget uint64
}

// New constructs a CPU backend reporting a nominal memoryBudget for
// the split policy. A budget of 0 uses DefaultMemoryBudget.
func New(memoryBudget uint64) *Backend {
	if memoryBudget == 0 {
		memoryBudget = DefaultMemoryBudget
	}
	return &Backend{budget: memoryBudget}
}

func (b *Backend) Name() string          { return "cpu" }
func (b *Backend) NumDevices() int       { return 1 }
func (b *Backend) MemoryBudget() uint64  { return b.budget }

// stream is a FIFO queue of pending ops, executed inline: since there
// is no device to overlap with, each op runs synchronously when
// issued, but Await still exists so callers written against the
// Stream interface work unmodified against a real GPU backend.
type stream struct {
	mu   sync.Mutex
	done chan struct{}
}

func (s *stream) Await() {
	// Every op below runs synchronously before returning, so by the
	// time Await is callable there is nothing outstanding. The mutex
	// still serializes concurrent issuers the way a single hardware
	// queue would.
	s.mu.Lock()
	s.mu.Unlock()
}

func (b *Backend) NewStream(deviceID int) backend.Stream {
	_ = deviceID
	return &stream{done: make(chan struct{})}
}

func (b *Backend) Malloc(st backend.Stream, size uint64) ([]byte, error) {
	return make([]byte, size), nil
}

func (b *Backend) Free(st backend.Stream, mem []byte) {
	// Host GC reclaims the backing array; nothing to do. Kept as a
	// no-op to preserve the stream-ordered-free contract for callers
	// that will later run against exec/backend/gpu.
	runtime.KeepAlive(mem)
}

func (b *Backend) CopyHostToDeviceAsync(st backend.Stream, dst, src []byte) {
	s := st.(*stream)
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, src)
}

func (b *Backend) CopyDeviceToHostAsync(st backend.Stream, dst, src []byte) {
	s := st.(*stream)
	s.mu.Lock()
	defer s.mu.Unlock()
	copy(dst, src)
}
