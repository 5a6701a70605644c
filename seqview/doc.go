// Package seqview exposes the list-like sequence views over a graph's
// vertices and edges: VertexSeq and EdgeSeq.
//
// A view binds one selector (see quiver/selector) to one core.Graph. The
// graph is shared — many views may reference it — while the selector is
// owned, and refinement never mutates the receiver: Select always returns a
// new view over the same graph.
//
// Operations answer from the selector's closed form whenever one exists
// (Len and At never materialize anything) and fall back to materialization
// only where iteration is unavoidable (predicate filtering, subset
// attribute assignment).
//
// Attribute mapping:
//
//	Values(name) returns the attribute values for exactly the designated
//	elements, in the view's own order. For an All view this is the live
//	backing column (the store's documented no-copy policy); for any other
//	view it is a fresh list, so scrambled or duplicated Explicit selections
//	yield scrambled or duplicated values.
//
//	SetValues(name, v) writes through the store with broadcast/cycling
//	semantics: a scalar is a 1-element sequence, and a sequence shorter than
//	the selection wraps around to fill it. Creating an attribute through a
//	strict subset nil-fills the non-selected positions. These two policies
//	are deliberate and load-bearing, not accidents to be "fixed".
//
// Refinement and lookup:
//
//	Select composes positional specifiers left to right: nil short-circuits
//	to the empty view, predicates drop non-matching elements, a bare integer
//	opens a strict all-integers enumeration phase, and Span/[]int/[]any
//	enumerate view-relative positions ([]any silently skips elements that
//	are not integer-like). Find returns exactly one element by predicate,
//	view-relative index, or — for vertices — registered name.
//
// Reentrancy:
//
//	Select snapshots the current selection before invoking any predicate and
//	re-validates the survivors against the live graph afterwards; a predicate
//	that mutates the bound graph therefore surfaces
//	selector.ErrIndexOutOfRange instead of committing a stale view.
//	Predicates must not mutate the bound graph.
//
// Errors (sentinel):
//
//	– ErrNoSuchElement   if Find's predicate matches nothing.
//	– ErrBadSpecifier    if Select/Find receives an unsupported specifier type.
//	– ErrMixedSpecifiers if a non-integer follows a bare integer in Select.
//	– ErrSubsetDelete    if DeleteAttr is called on a non-All view.
//	– ErrEmptyValues     if SetValues receives an empty sequence for a non-empty view.
//	– ErrNotInSelection  if Find-by-name resolves outside the view's subset.
//	– ErrBadSpan         if a Span carries a non-positive step.
//
// Attribute-name misses surface as core.ErrAttrNotFound; index failures as
// selector.ErrIndexOutOfRange or core.ErrIndexOutOfRange, all wrapped with
// operation context and matchable via errors.Is.
package seqview
