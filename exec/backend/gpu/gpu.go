//go:build icicle

// Package gpu is the cgo/CUDA Device backend, adapted wholesale from
// the teacher's cuda_runtime package (wrappers/golang/cuda_runtime).
// It is gated behind the "icicle" build tag the way
// other_examples/celer-network-gnark__icicle.go gates its GPU path:
// the default `go build ./...` never touches cgo or requires a CUDA
// toolchain, and only `go build -tags icicle` links against libicicle.
package gpu

// #cgo LDFLAGS: -lingo_runtime
// #include <cuda_runtime_api.h>
// #include <stdlib.h>
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/spaceandtimefdn/blitzar/exec/backend"
)

// Backend drives an ICICLE-backed CUDA device the way
// wrappers/golang/cuda_runtime drove it for the bn254 MSM kernel.
type Backend struct {
	numDevices int
	budget     uint64
}

// New queries the CUDA runtime for device count and free memory on
// device 0, mirroring cudaGetDeviceCount / cudaMemGetInfo.
func New() (*Backend, error) {
	var count C.int
	if rc := C.cudaGetDeviceCount(&count); rc != C.cudaSuccess {
		return nil, fmt.Errorf("cudaGetDeviceCount: %d", int(rc))
	}
	var free, total C.size_t
	if rc := C.cudaMemGetInfo(&free, &total); rc != C.cudaSuccess {
		return nil, fmt.Errorf("cudaMemGetInfo: %d", int(rc))
	}
	return &Backend{numDevices: int(count), budget: uint64(total)}, nil
}

func (b *Backend) Name() string         { return "gpu" }
func (b *Backend) NumDevices() int      { return b.numDevices }
func (b *Backend) MemoryBudget() uint64 { return b.budget }

type stream struct {
	handle C.cudaStream_t
}

func (s *stream) Await() {
	C.cudaStreamSynchronize(s.handle)
}

func (b *Backend) NewStream(deviceID int) backend.Stream {
	if rc := C.cudaSetDevice(C.int(deviceID)); rc != C.cudaSuccess {
		panic(fmt.Sprintf("cudaSetDevice(%d): %d", deviceID, int(rc)))
	}
	var h C.cudaStream_t
	if rc := C.cudaStreamCreate(&h); rc != C.cudaSuccess {
		panic(fmt.Sprintf("cudaStreamCreate: %d", int(rc)))
	}
	return &stream{handle: h}
}

// Malloc allocates stream-ordered device memory; the returned slice's
// backing pointer is device memory and must never be dereferenced from
// Go — it exists only to be passed back into Copy*Async / Free.
func (b *Backend) Malloc(st backend.Stream, size uint64) ([]byte, error) {
	s := st.(*stream)
	var dp unsafe.Pointer
	if rc := C.cudaMallocAsync(&dp, C.size_t(size), s.handle); rc != C.cudaSuccess {
		return nil, fmt.Errorf("cudaMallocAsync: %d", int(rc))
	}
	return unsafe.Slice((*byte)(dp), size), nil
}

func (b *Backend) Free(st backend.Stream, mem []byte) {
	if len(mem) == 0 {
		return
	}
	s := st.(*stream)
	C.cudaFreeAsync(unsafe.Pointer(&mem[0]), s.handle)
}

func (b *Backend) CopyHostToDeviceAsync(st backend.Stream, dst, src []byte) {
	if len(src) == 0 {
		return
	}
	s := st.(*stream)
	C.cudaMemcpyAsync(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), C.size_t(len(src)),
		C.cudaMemcpyHostToDevice, s.handle)
}

func (b *Backend) CopyDeviceToHostAsync(st backend.Stream, dst, src []byte) {
	if len(src) == 0 {
		return
	}
	s := st.(*stream)
	C.cudaMemcpyAsync(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), C.size_t(len(src)),
		C.cudaMemcpyDeviceToHost, s.handle)
}
