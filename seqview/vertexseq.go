// SPDX-License-Identifier: MIT
// Package: quiver/seqview
//
// vertexseq.go — VertexSeq: the list-like view over a graph's vertices.
//
// Determinism:
//   - Element order is the selector's own order: natural ascending for
//     All/Range, insertion order for Explicit.
//
// Concurrency:
//   - A view carries no locks of its own; it defers to the bound graph's
//     synchronization per operation. Views themselves are immutable —
//     Select returns a new view, never mutates the receiver.

package seqview

import (
	"fmt"

	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/selector"
)

// VertexSeq binds a selector to the vertex namespace of one graph.
type VertexSeq struct {
	g   *core.Graph
	sel selector.Selector
}

// NewVertexSeq constructs a vertex view from a caller-supplied specifier:
// nil ⇒ all vertices, an integer ⇒ that single vertex, []int / []any of
// integer-likes ⇒ that explicit list. Every index is validated against the
// live vertex count (see selector.FromSpec for the failure modes).
//
// Errors:
//   - core.ErrNilGraph for a nil graph.
//   - selector.ErrIndexOutOfRange / ErrBadIndexValue / ErrBadSpecifier from
//     specifier translation.
func NewVertexSeq(g *core.Graph, spec any) (*VertexSeq, error) {
	if g == nil {
		return nil, fmt.Errorf("NewVertexSeq: %w", core.ErrNilGraph)
	}

	sel, err := selector.FromSpec(spec, g.VCount())
	if err != nil {
		return nil, fmt.Errorf("NewVertexSeq: %w", err)
	}

	return &VertexSeq{g: g, sel: sel}, nil
}

// newVertexSeq wraps an already-validated selector without re-checking it.
func newVertexSeq(g *core.Graph, sel selector.Selector) *VertexSeq {
	return &VertexSeq{g: g, sel: sel}
}

// Graph returns the bound graph (shared, not owned).
func (s *VertexSeq) Graph() *core.Graph { return s.g }

// SelectorKind reports the variant currently backing this view.
func (s *VertexSeq) SelectorKind() selector.Kind { return s.sel.Kind() }

// Len reports how many vertices the view currently designates. For an All
// view this tracks the live vertex count.
//
// Complexity: O(1) for every selector variant.
func (s *VertexSeq) Len() int { return s.sel.Size(s.g.VCount()) }

// At returns the vertex at view-relative position pos. Negative positions
// count from the end of the view.
//
// Errors:
//   - selector.ErrIndexOutOfRange if pos is outside [-Len(), Len()), or if
//     the selection went stale against a shrunken graph.
func (s *VertexSeq) At(pos int) (Vertex, error) {
	n := s.g.VCount()
	idx, err := s.sel.At(pos, n)
	if err != nil {
		return Vertex{}, fmt.Errorf("VertexSeq.At(%d): %w", pos, err)
	}
	if idx >= n {
		return Vertex{}, fmt.Errorf("VertexSeq.At(%d): selection is stale (vertex %d, V=%d): %w",
			pos, idx, n, selector.ErrIndexOutOfRange)
	}

	return NewVertex(s.g, idx), nil
}

// Indices materializes the designated underlying indices in view order.
// The slice is freshly allocated on every call.
func (s *VertexSeq) Indices() []int { return s.sel.Resolve(s.g.VCount()) }

// Vertices materializes the designated vertices as handles, in view order.
func (s *VertexSeq) Vertices() []Vertex {
	idxs := s.Indices()
	out := make([]Vertex, len(idxs))
	for i, idx := range idxs {
		out[i] = NewVertex(s.g, idx)
	}

	return out
}

// Clone returns an independent view over the same graph; the selector is
// deep-copied per the ownership rule (Explicit backing lists never alias).
func (s *VertexSeq) Clone() *VertexSeq {
	return newVertexSeq(s.g, s.sel.Clone())
}

// vertexAttrOps adapts the vertex attribute namespace for the shared
// selection-mapped operations.
func (s *VertexSeq) vertexAttrOps() attrOps {
	return attrOps{
		count:   s.g.VCount,
		get:     s.g.VertexAttr,
		ensure:  s.g.EnsureVertexAttr,
		deleteA: s.g.DeleteVertexAttr,
		touched: func(name string) {
			if name == core.NameAttr {
				s.g.InvalidateNameIndex()
			}
		},
	}
}

// Values returns the named attribute's values for exactly the designated
// vertices, in view order. For an All view this is the live backing column
// (the store's no-copy policy); every other view gets a fresh list.
//
// Errors:
//   - core.ErrAttrNotFound if the attribute does not exist.
//   - selector.ErrIndexOutOfRange if the selection went stale.
func (s *VertexSeq) Values(name string) ([]any, error) {
	return valuesOver(s.sel, s.vertexAttrOps(), name)
}

// Names returns the designated vertices' names in view order; unnamed
// slots yield "".
//
// Errors:
//   - core.ErrAttrNotFound if the graph has no name attribute.
func (s *VertexSeq) Names() ([]string, error) {
	raw, err := s.Values(core.NameAttr)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		str, _ := v.(string)
		out[i] = str
	}

	return out, nil
}

// SetValues assigns the named attribute over the designated vertices.
// A scalar broadcasts to every designated vertex; a sequence shorter than
// the selection cycles. Creating an attribute through a strict subset
// nil-fills the non-selected positions. Assigning the name attribute
// invalidates the graph's name index.
//
// Errors:
//   - ErrEmptyValues for an empty sequence against a non-empty selection.
//   - selector.ErrIndexOutOfRange if the selection went stale.
func (s *VertexSeq) SetValues(name string, value any) error {
	return setValuesOver(s.sel, s.vertexAttrOps(), name, value)
}

// DeleteAttr removes the named vertex attribute for the whole graph.
// Only an All view may delete; any strict subset is rejected.
//
// Errors:
//   - ErrSubsetDelete for a non-All view.
//   - core.ErrAttrNotFound if the attribute does not exist.
func (s *VertexSeq) DeleteAttr(name string) error {
	return deleteAttrOver(s.sel, s.vertexAttrOps(), name)
}

// Select returns a new view over the same graph, narrowed by the positional
// specifiers applied left to right (see select.go for the per-specifier
// contract). The receiver is never mutated; on failure no view is returned.
//
// Predicates receive each designated vertex as a handle and must not mutate
// the bound graph (see package doc, Reentrancy).
func (s *VertexSeq) Select(specs ...any) (*VertexSeq, error) {
	sel, err := refine(s.g.VCount, s.sel, specs, s.classifyPredicate)
	if err != nil {
		return nil, err
	}

	return newVertexSeq(s.g, sel), nil
}

// classifyPredicate recognizes func(Vertex) bool specifiers. A typed-nil
// function is not a usable predicate and is left unclaimed, so refine
// rejects it as an unsupported specifier instead of calling it.
func (s *VertexSeq) classifyPredicate(spec any) (indexPredicate, bool) {
	pred, ok := spec.(func(Vertex) bool)
	if !ok || pred == nil {
		return nil, false
	}

	return func(idx int) bool { return pred(NewVertex(s.g, idx)) }, true
}

// Find returns exactly one vertex of the view:
//
//   - func(Vertex) bool — the first designated vertex satisfying the
//     predicate, in view order; ErrNoSuchElement if none does.
//   - integer — the vertex at that view-relative position (At semantics,
//     negative positions included).
//   - string — the vertex with that registered name. On an All view the
//     resolved index is returned directly; otherwise the view is scanned
//     and a name resolving outside the subset fails with ErrNotInSelection.
//
// Errors:
//   - ErrBadSpecifier for any other specifier type.
//   - core.ErrAttrNotFound / core.ErrNameNotFound from name resolution.
func (s *VertexSeq) Find(spec any) (Vertex, error) {
	switch sp := spec.(type) {
	case func(Vertex) bool:
		n := s.g.VCount()
		size := s.sel.Size(n)
		for pos := 0; pos < size; pos++ {
			idx, err := s.sel.At(pos, n)
			if err != nil {
				return Vertex{}, fmt.Errorf("VertexSeq.Find: position %d: %w", pos, err)
			}
			if sp(NewVertex(s.g, idx)) {
				return NewVertex(s.g, idx), nil
			}
		}

		return Vertex{}, fmt.Errorf("VertexSeq.Find: %w", ErrNoSuchElement)

	case string:
		idx, err := s.g.VertexByName(sp)
		if err != nil {
			return Vertex{}, fmt.Errorf("VertexSeq.Find(%q): %w", sp, err)
		}
		if s.sel.Kind() == selector.KindAll {
			return NewVertex(s.g, idx), nil
		}
		n := s.g.VCount()
		size := s.sel.Size(n)
		for pos := 0; pos < size; pos++ {
			under, atErr := s.sel.At(pos, n)
			if atErr != nil {
				return Vertex{}, fmt.Errorf("VertexSeq.Find(%q): position %d: %w", sp, pos, atErr)
			}
			if under == idx {
				return NewVertex(s.g, idx), nil
			}
		}

		return Vertex{}, fmt.Errorf("VertexSeq.Find(%q): vertex %d: %w", sp, idx, ErrNotInSelection)

	default:
		if pos, ok := selector.AsIndex(spec); ok {
			return s.At(pos)
		}

		return Vertex{}, fmt.Errorf("VertexSeq.Find(%T): %w", spec, ErrBadSpecifier)
	}
}
