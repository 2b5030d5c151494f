package bitarr

import "fmt"

// BString returns the binary representation of v as a string of exactly
// Width[T]() characters, each '0' or '1', most significant bit first,
// zero-padded to the full width.
func BString[T Uint](v T) string {
	return string(AppendBString(make([]byte, 0, Width[T]()), v))
}

// AppendBString appends the binary representation of v to dst and returns
// the extended buffer, in the manner of strconv.AppendUint. Exactly
// Width[T]() bytes are appended.
func AppendBString[T Uint](dst []byte, v T) []byte {
	for i := Width[T]() - 1; i >= 0; i-- {
		dst = append(dst, '0'+byte(v>>i&1))
	}
	return dst
}

// ParseBString is the strict inverse of BString. It accepts exactly
// Width[T]() characters, each '0' or '1', most significant bit first.
//
// A wrong-length input returns an *ErrLengthMismatch; any character other
// than '0' or '1' returns an error wrapping ErrSyntax.
func ParseBString[T Uint](s string) (T, error) {
	w := Width[T]()
	if len(s) != w {
		return 0, &ErrLengthMismatch{Want: w, Got: len(s)}
	}

	var v T
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '0' && c != '1' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrSyntax, c, i)
		}
		v = v<<1 | T(c-'0')
	}

	return v, nil
}
