// Package bitarr provides bit-level accessors over fixed-width unsigned integers.
//
// A bit array in this package is not a container type: it is the unsigned
// integer value itself, interpreted as an ordered sequence of W bits indexed
// 0 (least-significant) through W-1 (most-significant). Values live on the
// stack, copy by value, and never touch the heap. The point of the package
// is to replace dynamic bit vectors where the required width is known at
// compile time.
//
// # Quick Start
//
//	var flags uint8
//	flags = bitarr.SetBit(flags, 2, true)  // 00000100
//	flags = bitarr.SetBit(flags, 0, true)  // 00000101
//	on := bitarr.Bit(flags, 2)             // true
//	s := bitarr.BString(flags)             // "00000101"
//
// # Widths
//
// One generic implementation covers every builtin unsigned width (8, 16, 32,
// 64 bits plus the platform-native uint/uintptr); the compiler specializes it
// per concrete type, so there is no boxing and no dispatch. The 128-bit width
// has no builtin Go type and is served by the width-suffixed variants
// (Bit128, SetBit128, ...) over lukechampine.com/uint128.
//
// Prefer an explicitly sized type: the width of uint and uintptr is
// platform-dependent (query it with Width, never assume 32 or 64).
//
// # Unchecked Indexes
//
// Bit indexes are the caller's responsibility. No accessor checks that
// 0 <= index < W; an out-of-range index is not an error condition and is
// never reported. With Go's shift semantics an index >= W produces a zero
// mask (reads return false, writes are no-ops) and a negative index panics
// at runtime. This is a deliberate speed/safety tradeoff, not an invitation
// to pass unvalidated input.
//
// # Binary Strings
//
// BString renders a value as exactly W characters of '0' and '1', most
// significant bit first, zero-padded to the full width. ParseBString is its
// strict inverse and is the only surface of the package that returns errors.
//
// # Scope
//
// The package deliberately omits what the standard library already provides:
// population counts, leading/trailing zeros and rotations live in math/bits,
// byte-order conversion in encoding/binary. Dynamic-length bit vectors and
// bounds-checked accessors are out of scope.
package bitarr
