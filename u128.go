package bitarr

import (
	"fmt"

	"lukechampine.com/uint128"
)

// Width128 is the bit width served by the 128-bit accessor variants.
const Width128 = 128

// Bit128 reports whether the bit at position index (LSB = position 0) of v
// is set. Semantics match Bit at W = 128.
//
// The index must satisfy 0 <= index < 128; this is not checked (caller's
// responsibility). Out-of-range indexes produce a zero mask, so reads come
// back false.
func Bit128(v uint128.Uint128, index int) bool {
	return !v.And(uint128.From64(1).Lsh(uint(index))).IsZero()
}

// SetBit128 returns v with the bit at position index forced to bit; all
// other bits are preserved. Semantics match SetBit at W = 128, including the
// branchless fill construction and the unchecked index contract.
func SetBit128(v uint128.Uint128, index int, bit bool) uint128.Uint128 {
	mask := uint128.From64(1).Lsh(uint(index))

	var b uint64
	if bit {
		b = 1
	}
	fill := uint128.New(-b, -b)

	return v.And(mask.Xor(uint128.Max)).Or(mask.And(fill))
}

// FlipBit128 returns v with the bit at position index inverted; all other
// bits are preserved. Same unchecked index contract as Bit128.
func FlipBit128(v uint128.Uint128, index int) uint128.Uint128 {
	return v.Xor(uint128.From64(1).Lsh(uint(index)))
}

// BString128 returns the binary representation of v as a string of exactly
// 128 characters, each '0' or '1', most significant bit first.
func BString128(v uint128.Uint128) string {
	return string(AppendBString128(make([]byte, 0, Width128), v))
}

// AppendBString128 appends the 128-character binary representation of v to
// dst and returns the extended buffer.
func AppendBString128(dst []byte, v uint128.Uint128) []byte {
	dst = AppendBString(dst, v.Hi)
	return AppendBString(dst, v.Lo)
}

// ParseBString128 is the strict inverse of BString128. It accepts exactly
// 128 characters, each '0' or '1', most significant bit first.
//
// Errors follow ParseBString: *ErrLengthMismatch for a wrong-length input,
// ErrSyntax (wrapped) for any other character.
func ParseBString128(s string) (uint128.Uint128, error) {
	if len(s) != Width128 {
		return uint128.Zero, &ErrLengthMismatch{Want: Width128, Got: len(s)}
	}

	hi, err := ParseBString[uint64](s[:64])
	if err != nil {
		return uint128.Zero, fmt.Errorf("high word: %w", err)
	}
	lo, err := ParseBString[uint64](s[64:])
	if err != nil {
		return uint128.Zero, fmt.Errorf("low word: %w", err)
	}

	return uint128.New(lo, hi), nil
}
