package validity

// Reader is a sequential cursor over the bits of a Bitmap. It caches the
// current byte so scanning costs one byte load per eight bits instead of
// one per bit.
//
// The Reader borrows the Bitmap's buffer; it must not outlive a Release or
// Take on the source.
type Reader struct {
	buf     []byte
	current byte
	pos     int
	length  int

	byteOffset int
	bitOffset  int
}

// NewReader returns a Reader positioned at bit 0 of b.
func NewReader(b *Bitmap) *Reader {
	r := &Reader{
		buf:    b.buf,
		length: b.length,
	}
	if r.length > 0 && r.buf != nil {
		r.current = r.buf[0]
	}
	return r
}

// IsSet returns true if the current bit is set.
func (r *Reader) IsSet() bool {
	return r.current&(1<<r.bitOffset) != 0
}

// IsNotSet returns true if the current bit is not set.
func (r *Reader) IsNotSet() bool {
	return r.current&(1<<r.bitOffset) == 0
}

// Next advances the reader to the next bit.
func (r *Reader) Next() {
	r.bitOffset++
	r.pos++
	if r.bitOffset == 8 {
		r.bitOffset = 0
		r.byteOffset++
		if r.pos < r.length {
			r.current = r.buf[r.byteOffset]
		}
	}
}

// Pos returns the bit position the reader is looking at.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total number of bits the reader covers.
func (r *Reader) Len() int {
	return r.length
}
