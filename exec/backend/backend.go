// Package backend defines the Device abstraction that exec, pippenger,
// and ptable drive: a memory budget, a stream-ordered allocator, and
// host<->device copy primitives. exec/backend/cpu is the default pure
// Go implementation (device memory is just host memory, "streams" are
// goroutine-ordered). exec/backend/gpu is the cgo/ICICLE-style driver,
// gated behind the "icicle" build tag, adapted from the teacher's
// cuda_runtime package.
package backend

// Stream is an opaque handle to an ordered queue of device operations.
// Operations issued on the same Stream execute FIFO; operations on
// different Streams have no ordering unless explicitly awaited
// (spec §4.5.1).
type Stream interface {
	// Await blocks until every previously issued operation on this
	// stream has completed.
	Await()
}

// Device is the capability set the execution fabric needs from a
// compute backend.
type Device interface {
	// Name identifies the backend ("cpu" or "gpu").
	Name() string

	// NumDevices reports how many physical devices are usable; the
	// split policy's default split factor is this value.
	NumDevices() int

	// MemoryBudget reports total addressable device memory in bytes,
	// used by the split policy's occupancy targets.
	MemoryBudget() uint64

	// NewStream creates a stream bound to device index id.
	NewStream(deviceID int) Stream

	// Malloc allocates size bytes of device memory on the stream. The
	// allocation is released when the stream's outstanding work
	// completes and Free is called.
	Malloc(stream Stream, size uint64) ([]byte, error)

	// Free issues a stream-ordered free of a Malloc'd allocation.
	Free(stream Stream, mem []byte)

	// CopyHostToDeviceAsync copies src into dst on stream without
	// blocking the caller.
	CopyHostToDeviceAsync(stream Stream, dst []byte, src []byte)

	// CopyDeviceToHostAsync copies src into dst on stream without
	// blocking the caller.
	CopyDeviceToHostAsync(stream Stream, dst []byte, src []byte)
}
