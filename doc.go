// Package validity provides a bit-packed validity bitmap compatible with the
// Apache Arrow columnar format's null-tracking convention.
//
// A validity bitmap records, for each logical element position j of a column,
// whether that position holds a valid (non-null) value, using one bit per
// position: bit j lives at byte j/8, bit position j%8, least significant bit
// first. Buffers are zeroed at allocation and padded to a 64-byte alignment
// unit, so they can be handed to Arrow-format consumers as-is.
//
// # Quick Start
//
//	b := validity.FromBools([]bool{true, true, false, true, false, true})
//	b.Len()        // 6
//	b.Bytes()[0]   // 43 (0b00101011)
//	b.String()     // "[true, true, false, true, false, true]"
//
// # Ownership
//
// Every Bitmap exclusively owns its buffer. Clone deep-copies; Take moves
// ownership and leaves the source empty; Release drops the buffer and is
// idempotent. A moved-from or released Bitmap is inert: releasing it again
// is a no-op and checked access fails with *ErrIndexOutOfRange.
//
// # Write-Once Bits
//
// UnsafeSet is a bitwise-OR write: bits only transition from 0 to 1. Build
// bitmaps by setting the valid positions once over the zeroed buffer; there
// is no fast path to clear a bit back to invalid.
//
// Bitmaps are not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
package validity
