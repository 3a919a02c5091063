package validity

import (
	"strconv"
	"strings"

	"github.com/hupe1980/validity/internal/bitutil"
	"github.com/hupe1980/validity/internal/mem"
)

// Bitmap is a bit-packed validity buffer in the Arrow columnar layout.
// Bit j records whether element j is valid (non-null): it lives at byte j/8,
// bit position j%8, least significant bit first.
//
// A Bitmap exclusively owns its buffer. Clone produces an independent deep
// copy; Take transfers ownership and empties the source; Release drops the
// buffer. Length and capacity are fixed at construction.
//
// A Bitmap is not safe for concurrent use.
type Bitmap struct {
	buf    []byte
	length int
}

// New creates a Bitmap that can hold length validity bits, all initially
// false. The buffer capacity is rounded up to the alignment unit and zeroed.
//
// New panics if length is negative. Allocation failure aborts the process
// (Go's allocator has no recovery path); no partially constructed Bitmap is
// ever observable.
func New(length int) *Bitmap {
	if length < 0 {
		panic("validity: negative bitmap length " + strconv.Itoa(length))
	}

	return &Bitmap{
		buf:    mem.AllocAligned(mem.PaddedLength(bitutil.BytesForBits(length))),
		length: length,
	}
}

// FromBools creates a Bitmap of len(values) bits where bit i equals
// values[i].
func FromBools(values []bool) *Bitmap {
	b := New(len(values))
	for i, v := range values {
		b.UnsafeSet(i, v)
	}
	return b
}

// Len returns the logical number of bits in the bitmap.
func (b *Bitmap) Len() int {
	return b.length
}

// Cap returns the allocated buffer capacity in bytes. It is always a
// multiple of the alignment unit and at least Len()/8 rounded up.
func (b *Bitmap) Cap() int {
	return len(b.buf)
}

// Bytes returns the raw padded buffer. The Bitmap retains ownership; the
// slice is only valid until Release or Take.
func (b *Bitmap) Bytes() []byte {
	return b.buf
}

// UnsafeSet sets the bit at index i to v without bounds checking. The caller
// must guarantee 0 <= i < Cap()*8.
//
// The write is a bitwise OR: it can only drive a bit from 0 to 1. Setting
// v=false on an already-set bit leaves it set. Bitmaps are written once over
// a zeroed buffer, so the public constructors never hit that case.
func (b *Bitmap) UnsafeSet(i int, v bool) {
	if v {
		bitutil.SetBit(b.buf, i)
	}
}

// UnsafeGet returns the bit at index i without bounds checking. The caller
// must guarantee 0 <= i < Cap()*8.
func (b *Bitmap) UnsafeGet(i int) bool {
	return bitutil.BitIsSet(b.buf, i)
}

// Get returns the bit at index i. It fails with *ErrIndexOutOfRange when i
// is outside [0, Len()).
func (b *Bitmap) Get(i int) (bool, error) {
	if i < 0 || i >= b.length {
		return false, &ErrIndexOutOfRange{Index: i, Length: b.length}
	}
	return b.UnsafeGet(i), nil
}

// SetCount returns the number of valid (set) bits. Padding bits beyond
// Len() are never counted.
func (b *Bitmap) SetCount() int {
	return bitutil.CountSetBits(b.buf, b.length)
}

// NullCount returns the number of invalid (unset) bits.
func (b *Bitmap) NullCount() int {
	return b.length - b.SetCount()
}

// Clone returns a deep copy with its own buffer. Mutating the copy never
// affects the source and vice versa.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{length: b.length}
	if b.buf != nil {
		c.buf = mem.AllocAligned(len(b.buf))
		copy(c.buf, b.buf)
	}
	return c
}

// Take transfers buffer ownership to a new Bitmap and empties the source.
// The source holds no buffer afterward: further Release calls on it are
// no-ops and checked access fails, so a moved-from Bitmap can never cause
// a double free.
func (b *Bitmap) Take() *Bitmap {
	moved := &Bitmap{buf: b.buf, length: b.length}
	b.buf = nil
	b.length = 0
	return moved
}

// Release drops the owned buffer and empties the bitmap. It is idempotent;
// releasing an already-released or moved-from Bitmap is a no-op.
func (b *Bitmap) Release() {
	b.buf = nil
	b.length = 0
}

// Bools returns the bitmap as a boolean slice in index order.
func (b *Bitmap) Bools() []bool {
	out := make([]bool, b.length)
	for i := range out {
		out[i] = b.UnsafeGet(i)
	}
	return out
}

// String renders the bitmap as "[true, false, ...]" with lowercase boolean
// tokens in index order.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < b.length; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatBool(b.UnsafeGet(i)))
	}
	sb.WriteByte(']')
	return sb.String()
}
