// Package ptable is the partition-table store (PTS): precomputed
// subset sums of every 16-generator window, persisted as a dense
// binary blob and served as byte-range reads into host memory or
// async copies into device memory.
//
// Grounded on
// _examples/original_source/sxt/multiexp/pippenger2/
// in_memory_partition_table_accessor.h (file format, open/validate)
// and partition_table_accessor.h's accessor contract
// (async_copy_to_device, host_view) referenced from
// variable_length_multiexponentiation.h.
package ptable

import (
	"bufio"
	"fmt"
	"math/bits"
	"os"

	"github.com/spaceandtimefdn/blitzar/exec/backend"
	"github.com/spaceandtimefdn/blitzar/internal/curve"
	"github.com/spaceandtimefdn/blitzar/internal/xlog"
)

// WindowSize is the number of consecutive generators per partition
// window (spec §3: "A contiguous block of 16 generators").
const WindowSize = 16

// WindowEntries is the number of subset-sum entries per window: 2^16.
const WindowEntries = 1 << WindowSize

// Elem is the capability set a partition-table element must provide:
// group arithmetic plus a fixed-size compact storage form.
type Elem[T any] interface {
	curve.Element[T]
	CompactSize() int
}

// Table is the in-memory partition table: numWindows * WindowEntries
// entries, table[w*WindowEntries+m] = sum of generators in window w
// whose bit in mask m is set.
type Table[T Elem[T]] struct {
	entries    []T
	numWindows int
}

// NumWindows reports ceil(n/16) for the generator set this table was
// built over.
func (t *Table[T]) NumWindows() int { return t.numWindows }

// Entries exposes the backing array for callers (ptable, pippenger)
// that need direct index access; callers must not mutate it.
func (t *Table[T]) Entries() []T { return t.entries }

// Build constructs the partition table for generators gens, one
// window per 16 consecutive generators, zero-padding the final window
// if len(gens) is not a multiple of 16 (spec §4.2 invariant).
//
// Each window's 2^16 entries are filled using the recurrence
// table[m] = table[m with its lowest set bit cleared] + G[lowest bit
// index], which is the table-construction analogue of a Gray-code
// walk: every entry after table[0] costs exactly one group add.
func Build[T Elem[T]](gens []T) *Table[T] {
	n := len(gens)
	numWindows := (n + WindowSize - 1) / WindowSize
	entries := make([]T, numWindows*WindowEntries)
	log := xlog.Logger("ptable")
	log.Info().Int("generators", n).Int("windows", numWindows).Msg("building partition table")

	var zero T
	identity := zero.Identity()
	for w := 0; w < numWindows; w++ {
		base := w * WindowEntries
		entries[base] = identity
		for m := 1; m < WindowEntries; m++ {
			k := bits.TrailingZeros32(uint32(m))
			prev := m &^ (1 << k)
			gi := w*WindowSize + k
			if gi < n {
				entries[base+m] = entries[base+prev].Add(gens[gi])
			} else {
				// padded window: no generator at this bit position,
				// so the subset sum is unaffected.
				entries[base+m] = entries[base+prev]
			}
		}
	}
	return &Table[T]{entries: entries, numWindows: numWindows}
}

// elementSize returns the on-disk record size: the compact form's
// byte length.
func elementSize[T Elem[T]]() int {
	var zero T
	return zero.CompactSize()
}

// Open validates and loads a partition-table blob written by Write.
// File size not a multiple of the compact element size is a
// configuration error, reported as described in spec §6.
func Open[T Elem[T]](path string) (*Table[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ptable: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("ptable: stat %s: %w", path, err)
	}
	size := info.Size()
	elemSize := int64(elementSize[T]())
	if size%elemSize != 0 {
		return nil, fmt.Errorf("ptable: %s size %d is not a multiple of element size %d", path, size, elemSize)
	}
	numEntries := size / elemSize
	if numEntries%WindowEntries != 0 {
		return nil, fmt.Errorf("ptable: %s has %d entries, not a multiple of %d", path, numEntries, WindowEntries)
	}

	entries := make([]T, numEntries)
	buf := make([]byte, elemSize)
	r := bufio.NewReaderSize(f, 1<<20)
	for i := range entries {
		if _, err := readFull(r, buf); err != nil {
			return nil, fmt.Errorf("ptable: read entry %d: %w", i, err)
		}
		var zero T
		entries[i] = zero.FromCompact(buf)
	}
	return &Table[T]{entries: entries, numWindows: int(numEntries / WindowEntries)}, nil
}

func readFull(r *bufio.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := r.Read(buf[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Write serializes the table to path as a dense, header-less sequence
// of compact elements (spec §6).
func (t *Table[T]) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ptable: create %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriterSize(f, 1<<20)
	for _, e := range t.entries {
		if _, err := w.Write(e.Compact()); err != nil {
			return fmt.Errorf("ptable: write: %w", err)
		}
	}
	return w.Flush()
}

// Window returns a view covering numWindows windows starting at
// firstWindow, sharing the same backing array (spec §3: "Device table
// slice: allocated per call, covers only the generator chunk in
// flight"). Index 0 of the returned table corresponds to firstWindow.
func (t *Table[T]) Window(firstWindow, numWindows int) *Table[T] {
	start := firstWindow * WindowEntries
	end := start + numWindows*WindowEntries
	return &Table[T]{entries: t.entries[start:end], numWindows: numWindows}
}

// HostView returns a host-visible slice of count entries starting at
// entry index firstEntry (spec's "first_byte_offset" expressed in
// entries rather than bytes, since this port keeps the table as typed
// Go values rather than a raw byte arena).
func (t *Table[T]) HostView(firstEntry, count int) []T {
	return t.entries[firstEntry : firstEntry+count]
}

// AsyncCopyToDevice copies dst.len()/WindowEntries consecutive windows
// starting at firstWindow into device memory on stream, matching the
// accessor contract in variable_length_multiexponentiation.h. dst must
// already be a device-resident buffer of the right byte length; Table
// handles the host-side encoding.
func (t *Table[T]) AsyncCopyToDevice(dev backend.Device, stream backend.Stream, dst []byte, firstWindow int) {
	elemSize := elementSize[T]()
	numEntries := len(dst) / elemSize
	src := make([]byte, len(dst))
	firstEntry := firstWindow * WindowEntries
	for i := 0; i < numEntries; i++ {
		copy(src[i*elemSize:(i+1)*elemSize], t.entries[firstEntry+i].Compact())
	}
	dev.CopyHostToDeviceAsync(stream, dst, src)
}
