package bitarr

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// FuzzSetBit checks the write contract for arbitrary values and in-range
// indexes: the target bit reads back, at most the target bit changed, and
// repeating the write is a no-op.
func FuzzSetBit(f *testing.F) {
	f.Add(uint64(0), uint(2), true)
	f.Add(uint64(6), uint(1), false)
	f.Add(uint64(math.MaxUint64), uint(63), false)
	f.Add(uint64(4711), uint(0), true)

	f.Fuzz(func(t *testing.T, v uint64, index uint, bit bool) {
		i := int(index % 64)

		got := SetBit(v, i, bit)
		if Bit(got, i) != bit {
			t.Fatalf("bit %d reads %t after writing %t", i, Bit(got, i), bit)
		}
		if diff := got ^ v; diff != 0 && diff != 1<<i {
			t.Fatalf("write at %d perturbed other bits: %064b", i, diff)
		}
		if SetBit(got, i, bit) != got {
			t.Fatalf("repeated write at %d is not a no-op", i)
		}
		if FlipBit(FlipBit(got, i), i) != got {
			t.Fatalf("double flip at %d does not restore the value", i)
		}
	})
}

// FuzzBStringRoundTrip checks that ParseBString inverts BString for every
// builtin width derived from the same word.
func FuzzBStringRoundTrip(f *testing.F) {
	f.Add(uint64(69))
	f.Add(uint64(10740))
	f.Add(uint64(0))
	f.Add(uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, v uint64) {
		roundTrip(t, uint8(v))
		roundTrip(t, uint16(v))
		roundTrip(t, uint32(v))
		roundTrip(t, v)
		roundTrip(t, uint(v))
	})
}

func roundTrip[T Uint](t *testing.T, v T) {
	t.Helper()

	s := BString(v)
	if len(s) != Width[T]() {
		t.Fatalf("BString length %d, want %d", len(s), Width[T]())
	}

	got, err := ParseBString[T](s)
	if err != nil {
		t.Fatalf("ParseBString(%q) failed: %v", s, err)
	}
	if got != v {
		t.Fatalf("round trip of %q: got %v, want %v", s, got, v)
	}
}

// FuzzParseBString128 feeds arbitrary strings to the strict parser: every
// accepted input must render back to itself, every rejection must be one of
// the two documented error classes.
func FuzzParseBString128(f *testing.F) {
	f.Add(strings.Repeat("0", 128))
	f.Add(strings.Repeat("1", 128))
	f.Add(strings.Repeat("01", 64))
	f.Add("")
	f.Add("xyz")

	f.Fuzz(func(t *testing.T, s string) {
		v, err := ParseBString128(s)
		if err != nil {
			var lm *ErrLengthMismatch
			if !errors.Is(err, ErrSyntax) && !errors.As(err, &lm) {
				t.Fatalf("unexpected error class: %v", err)
			}
			return
		}
		if got := BString128(v); got != s {
			t.Fatalf("accepted %q but renders %q", s, got)
		}
	})
}
