package exec

import "github.com/spaceandtimefdn/blitzar/exec/backend"

// AsyncDeviceResource is an allocator scoped to a single stream: every
// allocation made against it is released, stream-ordered, when the
// resource is closed. Spec §4.5.3: "Users scope a resource to a single
// task."
type AsyncDeviceResource struct {
	dev    backend.Device
	stream backend.Stream
	live   [][]byte
}

// NewAsyncDeviceResource binds a resource to stream.
func NewAsyncDeviceResource(dev backend.Device, stream backend.Stream) *AsyncDeviceResource {
	return &AsyncDeviceResource{dev: dev, stream: stream}
}

// Allocate returns size bytes of device memory on the bound stream.
func (r *AsyncDeviceResource) Allocate(size uint64) ([]byte, error) {
	mem, err := r.dev.Malloc(r.stream, size)
	if err != nil {
		return nil, err
	}
	r.live = append(r.live, mem)
	return mem, nil
}

// Deallocate issues a stream-ordered free for an allocation made
// against this resource.
func (r *AsyncDeviceResource) Deallocate(mem []byte) {
	r.dev.Free(r.stream, mem)
	for i, m := range r.live {
		if &m[0] == &mem[0] {
			r.live = append(r.live[:i], r.live[i+1:]...)
			break
		}
	}
}

// Close releases every allocation still outstanding against this
// resource, mirroring "all allocations made against a resource are
// released when the stream completes its outstanding work."
func (r *AsyncDeviceResource) Close() {
	r.stream.Await()
	for _, mem := range r.live {
		r.dev.Free(r.stream, mem)
	}
	r.live = nil
}
