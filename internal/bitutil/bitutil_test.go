package bitutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesForBits(t *testing.T) {
	tests := []struct {
		bits     int
		expected int
	}{
		{0, 0},
		{1, 1},
		{7, 1},
		{8, 1},
		{9, 2},
		{63, 8},
		{64, 8},
		{65, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BytesForBits(tt.bits), "BytesForBits(%d)", tt.bits)
	}
}

func TestSetBitAndBitIsSet(t *testing.T) {
	buf := make([]byte, 2)

	SetBit(buf, 0)
	SetBit(buf, 3)
	SetBit(buf, 8)
	SetBit(buf, 15)

	assert.Equal(t, byte(0b00001001), buf[0])
	assert.Equal(t, byte(0b10000001), buf[1])

	for i := 0; i < 16; i++ {
		want := i == 0 || i == 3 || i == 8 || i == 15
		assert.Equal(t, want, BitIsSet(buf, i), "bit %d", i)
	}
}

func TestCountSetBits(t *testing.T) {
	buf := []byte{0xFF, 0xFF}

	tests := []struct {
		n        int
		expected int
	}{
		{0, 0},
		{1, 1},
		{7, 7},
		{8, 8},
		{9, 9},
		{16, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, CountSetBits(buf, tt.n), "CountSetBits(n=%d)", tt.n)
	}
}

func TestCountSetBits_IgnoresPaddingBits(t *testing.T) {
	// Bits 5..7 are set but lie beyond the logical length of 5.
	buf := []byte{0b11110001}
	assert.Equal(t, 2, CountSetBits(buf, 5))
}
