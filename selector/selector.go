// SPDX-License-Identifier: MIT
// Package: quiver/selector
//
// selector.go — the Selector value type: variants, constructors, and the
// three closed-form query operations (Size, At, Resolve).
//
// Contract:
//   - Size is O(1) for every variant; it never traverses.
//   - At maps a view-relative position to an underlying graph index,
//     honoring standard negative-index semantics (pos += size).
//   - Resolve materializes the equivalent explicit index list and is
//     infallible for any selector produced by this package.
//   - size(Resolve(s, n)) == Size(s, n) for all variants at all times.
//
// Determinism:
//   - All operations are pure; Explicit preserves insertion order exactly
//     (duplicates and arbitrary order permitted by design).

package selector

// Kind discriminates the closed set of selector variants.
//
// The set is deliberately closed: every consumer must dispatch exhaustively
// and route an unknown Kind to ErrUnsupportedKind. A default arm that
// silently "does something" is a bug, not a convenience.
type Kind uint8

const (
	// KindAll designates every element of the bound graph. Size tracks the
	// live element count at query time; nothing is cached.
	KindAll Kind = iota

	// KindNone designates the empty set.
	KindNone

	// KindSingle designates exactly one element by fixed underlying index.
	KindSingle

	// KindRange designates the contiguous half-open interval [start, end).
	KindRange

	// KindExplicit designates an owned, ordered list of underlying indices.
	// Duplicates and arbitrary order are permitted: this is how filter
	// results and user-supplied lists are represented.
	KindExplicit
)

// String returns the variant name, mainly for error context and tests.
func (k Kind) String() string {
	switch k {
	case KindAll:
		return "All"
	case KindNone:
		return "None"
	case KindSingle:
		return "Single"
	case KindRange:
		return "Range"
	case KindExplicit:
		return "Explicit"
	default:
		return "Unknown"
	}
}

// Selector is a compact description of a designated vertex/edge subset.
//
// The zero value is the All selector, so an unconfigured view naturally
// designates the whole graph. Selector is a value type: pass and store it
// by value, and use Clone when the Explicit backing list must not be shared.
type Selector struct {
	kind   Kind
	single int   // KindSingle payload
	start  int   // KindRange payload (inclusive)
	end    int   // KindRange payload (exclusive)
	list   []int // KindExplicit payload, owned by this value
}

// All returns the selector designating every element.
func All() Selector { return Selector{kind: KindAll} }

// None returns the selector designating the empty set.
func None() Selector { return Selector{kind: KindNone} }

// Single returns the selector designating exactly the element i.
// Bounds are validated where the element count is known (FromSpec or the
// consuming view), not here: Single is a plain value constructor.
func Single(i int) Selector { return Selector{kind: KindSingle, single: i} }

// Range returns the selector designating the half-open interval [start, end).
// An empty or inverted interval is normalized to end == start (size 0).
func Range(start, end int) Selector {
	if end < start {
		end = start
	}

	return Selector{kind: KindRange, start: start, end: end}
}

// Explicit returns the selector owning a copy of the given index list.
// The copy guarantees the ownership rule: the backing list's lifetime is
// exactly the lifetime of this selector value, and the caller's slice is
// never aliased.
func Explicit(indices []int) Selector {
	owned := make([]int, len(indices))
	copy(owned, indices)

	return Selector{kind: KindExplicit, list: owned}
}

// Kind reports the variant tag.
func (s Selector) Kind() Kind { return s.kind }

// Clone returns an independent copy of the selector. The Explicit backing
// list is deep-copied so that two sequence views never alias mutable
// storage; every other variant is already immutable.
//
// Complexity: O(1) for closed-form variants, O(k) for Explicit of length k.
func (s Selector) Clone() Selector {
	if s.kind != KindExplicit {
		return s
	}

	return Explicit(s.list)
}

// Size reports how many elements the selector designates against a graph
// that currently holds n elements.
//
// Dispatch:
//   - All      → n (reflects the live count, never cached)
//   - None     → 0
//   - Single   → 1
//   - Range    → end - start
//   - Explicit → len(list)
//
// Complexity: O(1) for every variant — the entire reason the variant
// distinction exists instead of always materializing a list.
func (s Selector) Size(n int) int {
	switch s.kind {
	case KindAll:
		return n
	case KindNone:
		return 0
	case KindSingle:
		return 1
	case KindRange:
		return s.end - s.start
	case KindExplicit:
		return len(s.list)
	default:
		// Unreachable for selectors built by this package; kept so that a
		// future variant cannot silently report a bogus size.
		return 0
	}
}

// At maps a view-relative position to the underlying graph index it
// designates, against a graph that currently holds n elements.
//
// Negative positions count from the end of the selection (pos += size).
// A position outside [0, size) after normalization fails with
// ErrIndexOutOfRange. An unknown variant fails with ErrUnsupportedKind.
//
// Complexity: O(1).
func (s Selector) At(pos, n int) (int, error) {
	size := s.Size(n)
	if pos < 0 {
		pos += size
	}
	if pos < 0 || pos >= size {
		return 0, ErrIndexOutOfRange
	}

	switch s.kind {
	case KindAll:
		return pos, nil
	case KindSingle:
		// size == 1 guarantees pos == 0 here.
		return s.single, nil
	case KindRange:
		return s.start + pos, nil
	case KindExplicit:
		return s.list[pos], nil
	case KindNone:
		// size == 0 already rejected every pos above; unreachable.
		return 0, ErrIndexOutOfRange
	default:
		return 0, ErrUnsupportedKind
	}
}

// Resolve materializes the selector into an explicit, ordered index list
// against a graph that currently holds n elements.
//
// Contract: always succeeds for selectors built by this package — validity
// of the designated indices is established at construction/refinement time,
// and the returned slice is freshly allocated (never aliases Explicit's
// backing list).
//
// Complexity: O(size).
func (s Selector) Resolve(n int) []int {
	size := s.Size(n)
	out := make([]int, size)

	switch s.kind {
	case KindAll:
		for i := 0; i < size; i++ {
			out[i] = i
		}
	case KindNone:
		// Empty by definition.
	case KindSingle:
		out[0] = s.single
	case KindRange:
		for i := 0; i < size; i++ {
			out[i] = s.start + i
		}
	case KindExplicit:
		copy(out, s.list)
	}

	return out
}

// MaxIndex reports the largest underlying index the selector can designate
// against a graph of n elements, or -1 for an empty selection. Consumers use
// it to re-validate a selector against a graph that may have shrunk since
// the selector was built.
//
// Complexity: O(1) for closed-form variants, O(k) for Explicit.
func (s Selector) MaxIndex(n int) int {
	switch s.kind {
	case KindAll:
		return n - 1
	case KindNone:
		return -1
	case KindSingle:
		return s.single
	case KindRange:
		if s.end == s.start {
			return -1
		}

		return s.end - 1
	case KindExplicit:
		max := -1
		for _, idx := range s.list {
			if idx > max {
				max = idx
			}
		}

		return max
	default:
		return -1
	}
}
