package mem

import (
	"unsafe"
)

// Alignment is the byte alignment and padding unit for bitmap buffers
// (64 bytes, one cache line / AVX-512 register).
const Alignment = 64

// PaddedLength rounds size up to the next multiple of Alignment.
// PaddedLength(n) >= n for all n >= 0, and the result is always a
// multiple of Alignment.
func PaddedLength(size int) int {
	if size <= 0 {
		return 0
	}
	return (size + Alignment - 1) &^ (Alignment - 1)
}

// AllocAligned allocates a zeroed byte slice of the given size with 64-byte
// alignment. The returned slice is guaranteed to start at a memory address
// divisible by 64.
//
// Note: This function allocates slightly more memory than requested to ensure
// alignment. The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset.
	// We need enough space to shift the start pointer up to Alignment-1 bytes.
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	// Calculate the offset to the first aligned byte
	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Return the slice starting at the aligned offset
	return buf[offset : offset+uintptr(size)]
}

// Zero writes zero to every byte of buf.
func Zero(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
