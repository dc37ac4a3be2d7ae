// Package transpose is the scalar transpose layer (STL): it reshapes
// scalars supplied output-major, element-major, byte-major into the
// packed byte stream the Pippenger kernels require, where the
// "product index" (one per output-bit pair) is the fastest axis and
// generator index is the slowest (spec §4.3, wire layout in §6).
package transpose

// BitOffsets returns, for a bit-table of per-output scalar widths, the
// bit offset of each output's field within a generator's packed
// record: offset(o) = sum_{k<o} Bk. Outputs are packed tightly at the
// bit level with no per-output byte padding, since that is what the
// product addressing in package pippenger assumes: product p (global
// bit index across the whole bit table) lives at byte p/8, bit p%8 of
// a generator's record.
func BitOffsets(bitTable []int) []int {
	offsets := make([]int, len(bitTable))
	acc := 0
	for i, b := range bitTable {
		offsets[i] = acc
		acc += b
	}
	return offsets
}

// Stride returns the number of packed bytes per generator: ceil(sum
// Bi / 8), the same quantity pippenger.Multiexponentiate derives from
// NumProducts(bitTable).
func Stride(bitTable []int) int {
	total := 0
	for _, b := range bitTable {
		total += b
	}
	return (total + 7) / 8
}

func getBit(buf []byte, bit int) bool {
	return buf[bit/8]&(1<<uint(bit%8)) != 0
}

func setBit(buf []byte, bit int, v bool) {
	if v {
		buf[bit/8] |= 1 << uint(bit%8)
	}
}

// Transpose converts perOutput[o] (n scalars of ceil(bitTable[o]/8)
// bytes each, element-major then byte-major, low bitTable[o] bits
// significant) into the packed stream where generator index is the
// slowest axis: bit (BitOffsets(bitTable)[o] + j) of output o's j-th
// bit for generator g lives at bit g*stride*8 + BitOffsets(bitTable)[o] + j
// of out, tightly packed with no gaps between outputs.
func Transpose(perOutput [][]byte, bitTable []int, n int) []byte {
	stride := Stride(bitTable)
	offsets := BitOffsets(bitTable)
	out := make([]byte, stride*n)
	for o, width := range bitTable {
		elemBytes := (width + 7) / 8
		src := perOutput[o]
		base := offsets[o]
		for g := 0; g < n; g++ {
			recordBit := g * stride * 8
			elem := src[g*elemBytes : (g+1)*elemBytes]
			for j := 0; j < width; j++ {
				if getBit(elem, j) {
					setBit(out, recordBit+base+j, true)
				}
			}
		}
	}
	return out
}

// Detranspose is Transpose's inverse: given the packed stream, recover
// the per-output element-major byte arrays. Round-trip property (spec
// §8): Detranspose(Transpose(x)) == x, for x whose values fit within
// their declared bit widths.
func Detranspose(packed []byte, bitTable []int, n int) [][]byte {
	stride := Stride(bitTable)
	offsets := BitOffsets(bitTable)
	out := make([][]byte, len(bitTable))
	for o, width := range bitTable {
		elemBytes := (width + 7) / 8
		dst := make([]byte, n*elemBytes)
		base := offsets[o]
		for g := 0; g < n; g++ {
			recordBit := g * stride * 8
			elem := dst[g*elemBytes : (g+1)*elemBytes]
			for j := 0; j < width; j++ {
				if getBit(packed, recordBit+base+j) {
					setBit(elem, j, true)
				}
			}
		}
		out[o] = dst
	}
	return out
}

// DefaultLengths implements the transpose fast path's degenerate
// convention when n <= numOutputs (spec §9 open question): per-output
// length is {1,2,...,numOutputs} truncated at n, i.e. output i
// participates in min(i+1, n) generators.
func DefaultLengths(n, numOutputs int) []int {
	lengths := make([]int, numOutputs)
	for i := range lengths {
		l := i + 1
		if l > n {
			l = n
		}
		lengths[i] = l
	}
	return lengths
}
