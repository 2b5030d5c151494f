package bitarr

import "math/bits"

// Uint is the type set of builtin fixed-width unsigned integers covered by
// the generic accessors. The 128-bit width has no builtin type and is served
// by the width-suffixed functions in this package instead.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the bit width W of T. For uint and uintptr this is the
// platform word size (bits.UintSize), not a fixed constant.
func Width[T Uint]() int {
	return bits.Len64(uint64(^T(0)))
}

// Bit reports whether the bit at position index (LSB = position 0) is set.
//
// The index must satisfy 0 <= index < Width[T](); this is not checked
// (caller's responsibility). An index >= the width reads as false, a
// negative index panics.
func Bit[T Uint](v T, index int) bool {
	return v&(T(1)<<index) != 0
}

// SetBit returns v with the bit at position index forced to bit; all other
// bits are preserved. The update is branchless: the target bit is cleared,
// then OR'd with a fill mask that wraps to all-ones when bit is true.
//
// Same unchecked index contract as Bit. SetBit does not modify v; the caller
// stores the returned value.
func SetBit[T Uint](v T, index int, bit bool) T {
	mask := T(1) << index

	var b T
	if bit {
		b = 1
	}
	fill := -b // 0xFF..F when bit is true, 0 otherwise

	return v&^mask | mask&fill
}

// FlipBit returns v with the bit at position index inverted; all other bits
// are preserved. Same unchecked index contract as Bit.
func FlipBit[T Uint](v T, index int) T {
	return v ^ T(1)<<index
}
