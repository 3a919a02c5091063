package validity

import (
	"fmt"
)

// ErrIndexOutOfRange indicates a checked access outside [0, Len()).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (length %d)", e.Index, e.Length)
}
