package bitutil

import (
	"math/bits"
)

// BytesForBits returns the number of bytes required to store n bits.
func BytesForBits(n int) int {
	return (n + 7) / 8
}

// BitIsSet returns true if the bit at index i in buf is set (LSB-first).
func BitIsSet(buf []byte, i int) bool {
	return buf[i/8]&(1<<(i%8)) != 0
}

// SetBit sets the bit at index i in buf (LSB-first).
func SetBit(buf []byte, i int) {
	buf[i/8] |= 1 << (i % 8)
}

// CountSetBits returns the number of set bits among the first n bits of buf.
// Bits at positions >= n (trailing padding) are masked out.
func CountSetBits(buf []byte, n int) int {
	if n <= 0 {
		return 0
	}

	count := 0
	for _, b := range buf[:n/8] {
		count += bits.OnesCount8(b)
	}
	if rem := n % 8; rem != 0 {
		count += bits.OnesCount8(buf[n/8] & (1<<rem - 1))
	}
	return count
}
