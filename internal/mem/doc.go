// Package mem provides memory allocation utilities for bitmap buffers.
//
// # Aligned Allocation
//
// Provides 64-byte aligned, zeroed allocation so that buffers handed to
// Arrow-format consumers meet SIMD and cache-line alignment expectations.
//
// # Padding Policy
//
// PaddedLength rounds byte counts up to the Alignment unit; every buffer
// capacity in this module is a multiple of it.
package mem
