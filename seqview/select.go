// SPDX-License-Identifier: MIT
// Package: quiver/seqview
//
// select.go — the shared refinement engine behind VertexSeq.Select and
// EdgeSeq.Select, plus the Span positional-range specifier.
//
// Contract (per positional specifier, applied left to right against the
// selection as narrowed so far):
//   - nil            → result becomes None immediately; remaining specifiers
//                      are ignored (deliberate "select nothing" escape hatch).
//   - predicate      → elements failing the predicate are dropped; if every
//                      element survives the selector is left untouched
//                      (no-op refinement keeps the closed form).
//   - bare integer   → opens the enumeration phase: this and EVERY remaining
//                      specifier must be an integer; each is normalized
//                      against the phase-start selection and mapped to its
//                      underlying index. Order = specifier order, duplicates
//                      allowed. A non-integer → ErrMixedSpecifiers; an
//                      out-of-range integer → selector.ErrBadIndexValue.
//   - Span           → view-relative positions with Python-style clamping.
//   - []int          → view-relative positions, strictly validated.
//   - []any          → view-relative positions; elements that are not
//                      integer-like are SILENTLY SKIPPED (deliberate policy,
//                      distinct from the strict enumeration phase); the
//                      integer-like ones are strictly validated.
//
// Failure atomicity: the engine works on a cloned selector and returns an
// error without a selector; callers surface either a complete new view or
// the error, never both.

package seqview

import (
	"fmt"
	"math"

	"github.com/quivergraph/quiver/selector"
)

// EndMax marks "to the end of the selection" in a Span; clamping reduces it
// to the live selection size.
const EndMax = math.MaxInt

// Span designates a view-relative position range [Start, End) with the
// given stride, the slice analog for Select. Negative Start/End count from
// the end of the selection; both are then clamped to [0, size], so a Span
// can never fail on range grounds. A zero Step means 1; a negative Step is
// rejected with ErrBadSpan.
type Span struct {
	Start int
	End   int
	Step  int
}

// positions expands the span against a selection of the given size.
func (sp Span) positions(size int) ([]int, error) {
	step := sp.Step
	if step == 0 {
		step = 1
	}
	if step < 0 {
		return nil, fmt.Errorf("Span{%d,%d,%d}: %w", sp.Start, sp.End, sp.Step, ErrBadSpan)
	}

	start, end := sp.Start, sp.End
	if start < 0 {
		start += size
	}
	if start < 0 {
		start = 0
	}
	if start > size {
		start = size
	}
	if end < 0 {
		end += size
	}
	if end < 0 {
		end = 0
	}
	if end > size {
		end = size
	}
	// Inverted after clamping means an empty selection, as for slices.
	if end < start {
		end = start
	}

	out := make([]int, 0, (end-start+step-1)/step)
	for pos := start; pos < end; pos += step {
		out = append(out, pos)
	}

	return out, nil
}

// indexPredicate evaluates a caller predicate against one underlying index.
type indexPredicate func(idx int) bool

// predicateClassifier recognizes the caller-facing predicate type of the
// concrete view (func(Vertex) bool or func(Edge) bool) and adapts it to an
// indexPredicate. It reports false for any other specifier.
type predicateClassifier func(spec any) (indexPredicate, bool)

// refine applies the positional specifiers to a clone of start and returns
// the narrowed selector. count reports the live element count of the bound
// namespace and is re-read around predicate invocations to detect graph
// mutation by caller code (see package doc, Reentrancy).
func refine(count func() int, start selector.Selector, specs []any, classify predicateClassifier) (selector.Selector, error) {
	sel := start.Clone()

	for si := 0; si < len(specs); si++ {
		spec := specs[si]

		// nil literal: short-circuit to the empty selection; everything that
		// follows is ignored by contract, never evaluated.
		if spec == nil {
			return selector.None(), nil
		}

		// Predicate: snapshot, filter, re-validate.
		if pred, ok := classify(spec); ok {
			next, err := filterByPredicate(count, sel, pred)
			if err != nil {
				return selector.Selector{}, err
			}
			sel = next

			continue
		}

		// Bare integer: enumeration phase consumes the rest of the call.
		if _, ok := selector.AsIndex(spec); ok {
			return enumeratePhase(count(), sel, specs[si:])
		}

		// Positional iterables.
		switch it := spec.(type) {
		case Span:
			n := count()
			poss, err := it.positions(sel.Size(n))
			if err != nil {
				return selector.Selector{}, err
			}
			picked := make([]int, 0, len(poss))
			for _, pos := range poss {
				idx, atErr := sel.At(pos, n)
				if atErr != nil {
					// Clamping guarantees validity; reaching here means the
					// selector itself misbehaved.
					return selector.Selector{}, fmt.Errorf("Select: span position %d: %w", pos, atErr)
				}
				picked = append(picked, idx)
			}
			sel = selector.Explicit(picked)

		case []int:
			n := count()
			size := sel.Size(n)
			picked := make([]int, 0, len(it))
			for i, pos := range it {
				idx, err := positionToIndex(sel, pos, size, n)
				if err != nil {
					return selector.Selector{}, fmt.Errorf("Select: element %d (position %d): %w", i, pos, err)
				}
				picked = append(picked, idx)
			}
			sel = selector.Explicit(picked)

		case []any:
			n := count()
			size := sel.Size(n)
			picked := make([]int, 0, len(it))
			for i, raw := range it {
				pos, isInt := selector.AsIndex(raw)
				if !isInt {
					continue // ignore what we don't understand, by policy
				}
				idx, err := positionToIndex(sel, pos, size, n)
				if err != nil {
					return selector.Selector{}, fmt.Errorf("Select: element %d (position %d): %w", i, pos, err)
				}
				picked = append(picked, idx)
			}
			sel = selector.Explicit(picked)

		default:
			return selector.Selector{}, fmt.Errorf("Select: specifier %d (%T): %w", si, spec, ErrBadSpecifier)
		}
	}

	return sel, nil
}

// filterByPredicate runs one predicate pass over the current selection.
//
// The selection is materialized BEFORE any caller code runs, and the
// surviving indices are re-checked against the live count afterwards: a
// predicate that shrank the graph mid-iteration fails the whole Select with
// selector.ErrIndexOutOfRange rather than committing stale indices.
func filterByPredicate(count func() int, sel selector.Selector, pred indexPredicate) (selector.Selector, error) {
	n := count()
	snapshot := sel.Resolve(n)

	keep := make([]int, 0, len(snapshot))
	dropped := false
	for _, idx := range snapshot {
		if pred(idx) {
			keep = append(keep, idx)
		} else {
			dropped = true
		}
	}

	live := count()
	for _, idx := range keep {
		if idx >= live {
			return selector.Selector{}, fmt.Errorf("Select: graph shrank during predicate (index %d, live count %d): %w",
				idx, live, selector.ErrIndexOutOfRange)
		}
	}

	// No-op refinement: every element survived, keep the closed form.
	if !dropped {
		return sel, nil
	}

	return selector.Explicit(keep), nil
}

// enumeratePhase handles the homogeneous-integer tail of a Select call:
// every remaining specifier must be integer-like, and each is mapped
// through the phase-start selection.
func enumeratePhase(n int, sel selector.Selector, rest []any) (selector.Selector, error) {
	size := sel.Size(n)
	picked := make([]int, 0, len(rest))

	for i, spec := range rest {
		pos, ok := selector.AsIndex(spec)
		if !ok {
			return selector.Selector{}, fmt.Errorf("Select: specifier %d (%T): %w", i, spec, ErrMixedSpecifiers)
		}
		idx, err := positionToIndex(sel, pos, size, n)
		if err != nil {
			return selector.Selector{}, fmt.Errorf("Select: specifier %d (position %d): %w", i, pos, err)
		}
		picked = append(picked, idx)
	}

	return selector.Explicit(picked), nil
}

// positionToIndex normalizes a view-relative position (negative counts from
// the end) and maps it to the underlying index, reporting an out-of-range
// position as selector.ErrBadIndexValue (a semantically invalid value
// inside an otherwise well-typed specifier).
func positionToIndex(sel selector.Selector, pos, size, n int) (int, error) {
	if pos < 0 {
		pos += size
	}
	if pos < 0 || pos >= size {
		return 0, fmt.Errorf("size %d: %w", size, selector.ErrBadIndexValue)
	}

	return sel.At(pos, n)
}
