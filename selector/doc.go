// Package selector defines the tagged-variant value describing which
// vertices (or edges) of a graph are designated, without necessarily
// storing the designated set explicitly.
//
// A Selector is one of five closed variants:
//
//	All            — every element of the bound graph (size tracks the graph)
//	None           — the empty set
//	Single(i)      — exactly one element, by fixed index
//	Range(lo, hi)  — the contiguous half-open interval [lo, hi)
//	Explicit(list) — an owned, ordered index list (duplicates permitted)
//
// The variant distinction exists purely so that closed-form subsets
// ("all", "one", "a range") never pay for materialization:
//
//	Size    — O(1) for every variant, parameterized by the live element count
//	At      — O(1) positional → underlying index mapping with negative-index
//	          normalization
//	Resolve — the only operation that builds an explicit list, and it is
//	          infallible by contract (validity is established at construction)
//
// Every consumption site dispatches exhaustively over Kind; an unknown kind
// reaches ErrUnsupportedKind, never a silent default. Adding a variant means
// updating every switch, and the guard makes forgetting that a hard error.
//
// Construction from caller-supplied specifiers goes through FromSpec, which
// classifies nil / integer-like / integer slices and validates every index
// against the live element count, all-or-nothing.
//
// Selectors are value types. Clone deep-copies the Explicit backing list so
// two holders never alias mutable storage; the other variants are immutable
// by construction.
//
// Errors (sentinel):
//
//	– ErrIndexOutOfRange  if a position or index falls outside the valid range.
//	– ErrBadSpecifier     if a specifier is of an unsupported type.
//	– ErrBadIndexValue    if an element inside an otherwise-valid iterable is out of range.
//	– ErrUnsupportedKind  if a consumer receives a Kind it does not handle (internal guard).
package selector
