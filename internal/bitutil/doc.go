// Package bitutil provides LSB-first bit addressing helpers for byte-packed
// bitmaps in the Arrow layout: bit j lives at byte j/8, position j%8.
package bitutil
