package exec

// IndexRange is a half-open range [A, B) over an axis being split
// (generator index, output index, ...), mirroring
// sxt/base/iterator/index_range.cc.
type IndexRange struct {
	A, B int
}

func (r IndexRange) Size() int { return r.B - r.A }

// SplitOptions configures the chunk split policy (spec §4.5.5).
type SplitOptions struct {
	// MinChunkSize is the smallest chunk produced; default 64.
	MinChunkSize int

	// MaxChunkSize caps a single chunk; default 1024.
	MaxChunkSize int

	// SplitFactor multiplies the number of ceil(N/MaxChunkSize)
	// pieces; 0 means 1 (msm.DefaultSplitOptions sets it to the active
	// backend's device count).
	SplitFactor int

	// Alignment snaps chunk boundaries to a multiple of this value;
	// use 16 for generator-axis splits to respect partition windows.
	// 0 means no alignment (1).
	Alignment int
}

func (o SplitOptions) normalized() SplitOptions {
	if o.MinChunkSize <= 0 {
		o.MinChunkSize = 64
	}
	if o.MaxChunkSize <= 0 {
		o.MaxChunkSize = 1024
	}
	if o.SplitFactor <= 0 {
		o.SplitFactor = 1
	}
	if o.Alignment <= 0 {
		o.Alignment = 1
	}
	return o
}

func ceilDiv(a, b int) int {
	if a == 0 {
		return 0
	}
	return (a + b - 1) / b
}

// PlanSplit computes SplitOptions from a byte budget the way
// sxt/base/device/split.h's plan_split_impl does: max chunk size is
// bounded both by a hard cap and by the fraction of device memory
// alphaHi permits per element.
func PlanSplit(perElementFootprint uint64, totalDeviceMemory uint64, alphaHi float64, splitFactor int) SplitOptions {
	maxByMemory := int(float64(totalDeviceMemory) * alphaHi / float64(perElementFootprint))
	maxChunk := 1024
	if maxByMemory < maxChunk {
		maxChunk = maxByMemory
	}
	return SplitOptions{
		MinChunkSize: 64,
		MaxChunkSize: maxChunk,
		SplitFactor:  splitFactor,
	}.normalized()
}

// Split partitions rng into contiguous, equally sized chunks whose
// size is >= MinChunkSize, snapped to Alignment, following spec
// §4.5.5's "actual split" rule: approximately
// SplitFactor*ceil(N/MaxChunkSize) pieces. The chunk size is capped at
// N, and the last chunk holds whatever remains, so it may be shorter.
func Split(rng IndexRange, opts SplitOptions) []IndexRange {
	opts = opts.normalized()
	n := rng.Size()
	if n <= 0 {
		return nil
	}

	numPieces := opts.SplitFactor * ceilDiv(n, opts.MaxChunkSize)
	if numPieces < 1 {
		numPieces = 1
	}
	chunkSize := ceilDiv(n, numPieces)

	// snap up to alignment
	if rem := chunkSize % opts.Alignment; rem != 0 {
		chunkSize += opts.Alignment - rem
	}
	if chunkSize < opts.MinChunkSize {
		chunkSize = opts.MinChunkSize
	}
	if chunkSize > n {
		chunkSize = n
	}

	var out []IndexRange
	for a := rng.A; a < rng.B; a += chunkSize {
		b := a + chunkSize
		if b > rng.B {
			b = rng.B
		}
		out = append(out, IndexRange{A: a, B: b})
	}
	return out
}

// ChunkMultiple re-expresses rng's boundaries on a multiple of m
// (spec §4.4.3: chunks aligned to the window boundary), used when
// splitting the generator axis before calling Split.
func ChunkMultiple(rng IndexRange, m int) IndexRange {
	a := (rng.A / m) * m
	b := ((rng.B + m - 1) / m) * m
	return IndexRange{A: a, B: b}
}
