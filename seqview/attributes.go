// SPDX-License-Identifier: MIT
// Package: quiver/seqview
//
// attributes.go — attribute retrieval/assignment mapped over a selection,
// shared by VertexSeq and EdgeSeq through a small namespace adapter.
//
// Contract (retrieval):
//   - Missing attribute name → core.ErrAttrNotFound (wrapped).
//   - All selection → the LIVE backing column, verbatim (documented no-copy
//     quirk of the store, preserved deliberately).
//   - Any other selection → a fresh list indexed in the selector's own
//     order, so scrambled/duplicated Explicit selections produce
//     scrambled/duplicated values.
//
// Contract (assignment):
//   - A scalar is a 1-element sequence; a sequence shorter than the
//     selection CYCLES to fill it (broadcast/tiling policy).
//   - Creating an attribute through a strict subset nil-fills every
//     non-selected position.
//   - Empty sequence + non-empty selection → ErrEmptyValues; empty + empty
//     selection → no-op.
//   - All validation happens before the first write, so a failed call
//     leaves the store untouched.

package seqview

import (
	"fmt"

	"github.com/quivergraph/quiver/selector"
)

// attrOps adapts one attribute namespace (vertex or edge) of the bound
// graph for the shared selection-mapped operations.
type attrOps struct {
	count   func() int                    // live element count of the namespace
	get     func(string) ([]any, error)   // live column lookup
	ensure  func(string) []any            // live column, created nil-filled if absent
	deleteA func(string) error            // whole-column removal
	touched func(string)                  // post-write hook (name index invalidation); may be nil
}

// asValues classifies an assignment payload: the common sequence types are
// spread element-wise, anything else is a scalar broadcast as a 1-element
// sequence. The set of recognized sequence types is deliberately narrow
// (no reflection): an exotic slice type broadcasts as one opaque value.
func asValues(value any) []any {
	switch seq := value.(type) {
	case []any:
		return seq
	case []string:
		out := make([]any, len(seq))
		for i, v := range seq {
			out[i] = v
		}

		return out
	case []int:
		out := make([]any, len(seq))
		for i, v := range seq {
			out[i] = v
		}

		return out
	case []int64:
		out := make([]any, len(seq))
		for i, v := range seq {
			out[i] = v
		}

		return out
	case []float64:
		out := make([]any, len(seq))
		for i, v := range seq {
			out[i] = v
		}

		return out
	case []bool:
		out := make([]any, len(seq))
		for i, v := range seq {
			out[i] = v
		}

		return out
	default:
		return []any{value}
	}
}

// valuesOver implements selection-ordered attribute retrieval.
func valuesOver(sel selector.Selector, ops attrOps, name string) ([]any, error) {
	col, err := ops.get(name)
	if err != nil {
		return nil, fmt.Errorf("Values(%q): %w", name, err)
	}

	// All: hand back the live column itself (no-copy policy).
	if sel.Kind() == selector.KindAll {
		return col, nil
	}

	n := ops.count()
	if sel.MaxIndex(n) >= n {
		return nil, fmt.Errorf("Values(%q): selection is stale (count %d): %w",
			name, n, selector.ErrIndexOutOfRange)
	}

	idxs := sel.Resolve(n)
	out := make([]any, len(idxs))
	for i, idx := range idxs {
		out[i] = col[idx]
	}

	return out, nil
}

// setValuesOver implements cycled selection-ordered attribute assignment.
func setValuesOver(sel selector.Selector, ops attrOps, name string, value any) error {
	vals := asValues(value)
	n := ops.count()
	size := sel.Size(n)

	// Validate everything up front; nothing below this block can fail.
	if len(vals) == 0 {
		if size == 0 {
			return nil
		}

		return fmt.Errorf("SetValues(%q): %w", name, ErrEmptyValues)
	}
	if sel.MaxIndex(n) >= n {
		return fmt.Errorf("SetValues(%q): selection is stale (count %d): %w",
			name, n, selector.ErrIndexOutOfRange)
	}

	col := ops.ensure(name)
	if sel.Kind() == selector.KindAll {
		// Whole-namespace fill: overwrite every slot, cycling the payload.
		for i := 0; i < n; i++ {
			col[i] = vals[i%len(vals)]
		}
	} else {
		// Strict subset: only designated positions receive values; slots a
		// fresh column gained from ensure stay at the nil sentinel.
		for i, idx := range sel.Resolve(n) {
			col[idx] = vals[i%len(vals)]
		}
	}

	if ops.touched != nil {
		ops.touched(name)
	}

	return nil
}

// deleteAttrOver implements whole-graph-only attribute deletion.
func deleteAttrOver(sel selector.Selector, ops attrOps, name string) error {
	if sel.Kind() != selector.KindAll {
		return fmt.Errorf("DeleteAttr(%q): %w", name, ErrSubsetDelete)
	}
	if err := ops.deleteA(name); err != nil {
		return fmt.Errorf("DeleteAttr(%q): %w", name, err)
	}
	if ops.touched != nil {
		ops.touched(name)
	}

	return nil
}
