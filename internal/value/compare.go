package value

import (
	"cmp"
	"unicode/utf16"
)

// IsNull reports whether v is a null (or a nil Value, which stands for an
// absent field).
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Compare orders two values, returning -1, 0 or +1.
//
// Policy:
//   - null vs null is 0; null orders before every non-null value
//   - Bool: false < true
//   - Number: numeric, regardless of how the literal is written
//   - String: UTF-16 code unit order
//   - Array, Object: 0, there is no natural order
//   - different non-null kinds: 0, values are unordered across kinds
//
// Because cross-kind pairs compare equal, Compare is not a strict weak
// order over mixed-kind input. Stable sorts still produce a deterministic
// result for a given input order.
func Compare(a, b Value) int {
	aNull, bNull := IsNull(a), IsNull(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	switch x := a.(type) {
	case Bool:
		y, ok := b.(Bool)
		if !ok {
			return 0
		}
		return compareBools(bool(x), bool(y))
	case Number:
		y, ok := b.(Number)
		if !ok {
			return 0
		}
		return compareNumbers(x, y)
	case String:
		y, ok := b.(String)
		if !ok {
			return 0
		}
		return compareUTF16(string(x), string(y))
	case Array, Object:
		return 0
	default:
		return 0
	}
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareNumbers compares integers exactly and falls back to 256-bit
// floats for decimals and out-of-range integers.
func compareNumbers(a, b Number) int {
	if x, ok := a.Int64(); ok {
		if y, ok := b.Int64(); ok {
			return cmp.Compare(x, y)
		}
	}
	return a.bigFloat().Cmp(b.bigFloat())
}

// compareUTF16 compares strings by UTF-16 code units.
// Go's native string comparison uses UTF-8 bytes, which orders characters
// outside the BMP differently.
func compareUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	return cmp.Compare(len(a16), len(b16))
}
