package exec

import "github.com/spaceandtimefdn/blitzar/exec/backend"

// ToDeviceCopier copies an arbitrarily sized host byte span into a
// device destination on a stream using two pinned buffers in
// rotation, translated from sxt/execution/device/to_device_copier.cc.
//
// Invariant: at most one async copy per stream is in flight against
// the buffers this copier owns, and source bytes are never reordered
// (spec §4.5.4).
type ToDeviceCopier struct {
	dev    backend.Device
	stream backend.Stream
	dst    []byte
	pool   *PinnedPool
	active *pinnedBuffer
	alt    *pinnedBuffer
}

// NewToDeviceCopier targets dst on stream, drawing staging buffers
// from pool.
func NewToDeviceCopier(dev backend.Device, stream backend.Stream, dst []byte, pool *PinnedPool) *ToDeviceCopier {
	return &ToDeviceCopier{
		dev:    dev,
		stream: stream,
		dst:    dst,
		pool:   pool,
		active: pool.Acquire(),
		alt:    pool.Acquire(),
	}
}

// Copy appends src to the destination, issuing async device copies as
// the active staging buffer fills. Repeated calls accumulate into dst
// in order; the sum of all src lengths passed across the copier's
// lifetime must not exceed len(dst) (spec §8 "To-device copier").
func (c *ToDeviceCopier) Copy(src []byte) {
	if len(c.dst) == 0 {
		return
	}
	for len(src) != 0 {
		src = c.active.fillFromHost(src)
		if c.active.size == len(c.dst) {
			break
		}
		if !c.active.full() {
			break
		}
		if !c.alt.empty() {
			c.stream.Await()
			c.alt.reset()
		}
		c.dev.CopyHostToDeviceAsync(c.stream, c.dst, c.active.data[:c.active.size])
		c.dst = c.dst[c.active.size:]
		c.active, c.alt = c.alt, c.active
	}
}

func (b *pinnedBuffer) empty() bool { return b.size == 0 }

// Finalize flushes any remaining bytes in the active buffer, awaits
// the stream, and returns both staging buffers to the pool.
func (c *ToDeviceCopier) Finalize() {
	if c.active.size > 0 {
		c.dev.CopyHostToDeviceAsync(c.stream, c.dst, c.active.data[:c.active.size])
	}
	c.stream.Await()
	c.pool.Release(c.active)
	c.pool.Release(c.alt)
	c.active, c.alt = nil, nil
	c.dst = nil
}
