// SPDX-License-Identifier: MIT
// Package: quiver/selector
//
// spec.go — construction of a Selector from a caller-supplied specifier.
//
// Contract (construction layer):
//   - nil                      ⇒ All.
//   - integer-like i, 0 ≤ i <n ⇒ Single(i); out of range ⇒ ErrIndexOutOfRange.
//   - []int / []any of
//     integer-likes, each in
//     [0, n)                   ⇒ Explicit(copy); any bad element fails the
//     whole construction (no partial selector).
//   - anything else            ⇒ ErrBadSpecifier.
//
// No slice/range shorthand is constructed here; Range selectors arise
// internally (closed-form results) and through the seqview layer's Span,
// never from a raw specifier.

package selector

import "fmt"

// AsIndex reports whether v is integer-like and, if so, its int value.
//
// Integer-like covers the signed and unsigned Go integer types. This is the
// single coercion point shared by FromSpec and the seqview select/find
// boundary, so "what counts as an integer" cannot drift between layers.
func AsIndex(v any) (int, bool) {
	switch i := v.(type) {
	case int:
		return i, true
	case int8:
		return int(i), true
	case int16:
		return int(i), true
	case int32:
		return int(i), true
	case int64:
		return int(i), true
	case uint:
		return int(i), true
	case uint8:
		return int(i), true
	case uint16:
		return int(i), true
	case uint32:
		return int(i), true
	case uint64:
		return int(i), true
	default:
		return 0, false
	}
}

// FromSpec translates a caller-supplied specifier into a concrete Selector,
// validating every index against the live element count n.
//
// Failure modes:
//   - ErrIndexOutOfRange for a single integer outside [0, n);
//   - ErrBadIndexValue for an out-of-range or non-integer element inside an
//     iterable (the construction is all-or-nothing);
//   - ErrBadSpecifier for a specifier of unsupported type.
//
// Complexity: O(1) for nil/integer, O(k) for a k-element iterable.
func FromSpec(spec any, n int) (Selector, error) {
	if spec == nil {
		return All(), nil
	}

	if idx, ok := AsIndex(spec); ok {
		if idx < 0 || idx >= n {
			return Selector{}, fmt.Errorf("FromSpec(%d): n=%d: %w", idx, n, ErrIndexOutOfRange)
		}

		return Single(idx), nil
	}

	switch list := spec.(type) {
	case []int:
		for pos, idx := range list {
			if idx < 0 || idx >= n {
				return Selector{}, fmt.Errorf("FromSpec: element %d (index %d) out of [0,%d): %w",
					pos, idx, n, ErrBadIndexValue)
			}
		}

		return Explicit(list), nil

	case []any:
		owned := make([]int, 0, len(list))
		for pos, v := range list {
			idx, ok := AsIndex(v)
			if !ok {
				return Selector{}, fmt.Errorf("FromSpec: element %d (%T) is not integer-like: %w",
					pos, v, ErrBadIndexValue)
			}
			if idx < 0 || idx >= n {
				return Selector{}, fmt.Errorf("FromSpec: element %d (index %d) out of [0,%d): %w",
					pos, idx, n, ErrBadIndexValue)
			}
			owned = append(owned, idx)
		}

		return Selector{kind: KindExplicit, list: owned}, nil

	default:
		return Selector{}, fmt.Errorf("FromSpec(%T): %w", spec, ErrBadSpecifier)
	}
}
