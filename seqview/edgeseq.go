// SPDX-License-Identifier: MIT
// Package: quiver/seqview
//
// edgeseq.go — EdgeSeq: the list-like view over a graph's edges.
//
// EdgeSeq mirrors VertexSeq over the edge namespace. The one asymmetry is
// Find: name-based lookup is a vertex concern (the name index derives from
// the vertex name attribute), so EdgeSeq.Find accepts predicates and
// positions only.

package seqview

import (
	"fmt"

	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/selector"
)

// EdgeSeq binds a selector to the edge namespace of one graph.
type EdgeSeq struct {
	g   *core.Graph
	sel selector.Selector
}

// NewEdgeSeq constructs an edge view from a caller-supplied specifier:
// nil ⇒ all edges, an integer ⇒ that single edge, []int / []any of
// integer-likes ⇒ that explicit list, each validated against the live
// edge count.
//
// Errors: as NewVertexSeq.
func NewEdgeSeq(g *core.Graph, spec any) (*EdgeSeq, error) {
	if g == nil {
		return nil, fmt.Errorf("NewEdgeSeq: %w", core.ErrNilGraph)
	}

	sel, err := selector.FromSpec(spec, g.ECount())
	if err != nil {
		return nil, fmt.Errorf("NewEdgeSeq: %w", err)
	}

	return &EdgeSeq{g: g, sel: sel}, nil
}

func newEdgeSeq(g *core.Graph, sel selector.Selector) *EdgeSeq {
	return &EdgeSeq{g: g, sel: sel}
}

// Graph returns the bound graph (shared, not owned).
func (s *EdgeSeq) Graph() *core.Graph { return s.g }

// SelectorKind reports the variant currently backing this view.
func (s *EdgeSeq) SelectorKind() selector.Kind { return s.sel.Kind() }

// Len reports how many edges the view currently designates.
//
// Complexity: O(1) for every selector variant.
func (s *EdgeSeq) Len() int { return s.sel.Size(s.g.ECount()) }

// At returns the edge at view-relative position pos (negative positions
// count from the end).
//
// Errors:
//   - selector.ErrIndexOutOfRange if pos is out of range or the selection
//     went stale against a shrunken graph.
func (s *EdgeSeq) At(pos int) (Edge, error) {
	n := s.g.ECount()
	idx, err := s.sel.At(pos, n)
	if err != nil {
		return Edge{}, fmt.Errorf("EdgeSeq.At(%d): %w", pos, err)
	}
	if idx >= n {
		return Edge{}, fmt.Errorf("EdgeSeq.At(%d): selection is stale (edge %d, E=%d): %w",
			pos, idx, n, selector.ErrIndexOutOfRange)
	}

	return NewEdge(s.g, idx), nil
}

// Indices materializes the designated underlying indices in view order.
func (s *EdgeSeq) Indices() []int { return s.sel.Resolve(s.g.ECount()) }

// Edges materializes the designated edges as handles, in view order.
func (s *EdgeSeq) Edges() []Edge {
	idxs := s.Indices()
	out := make([]Edge, len(idxs))
	for i, idx := range idxs {
		out[i] = NewEdge(s.g, idx)
	}

	return out
}

// Clone returns an independent view over the same graph with a deep-copied
// selector.
func (s *EdgeSeq) Clone() *EdgeSeq {
	return newEdgeSeq(s.g, s.sel.Clone())
}

func (s *EdgeSeq) edgeAttrOps() attrOps {
	return attrOps{
		count:   s.g.ECount,
		get:     s.g.EdgeAttr,
		ensure:  s.g.EnsureEdgeAttr,
		deleteA: s.g.DeleteEdgeAttr,
	}
}

// Values returns the named attribute's values for exactly the designated
// edges, in view order; an All view gets the live backing column.
//
// Errors: as VertexSeq.Values.
func (s *EdgeSeq) Values(name string) ([]any, error) {
	return valuesOver(s.sel, s.edgeAttrOps(), name)
}

// SetValues assigns the named attribute over the designated edges with the
// same broadcast/cycling policy as VertexSeq.SetValues.
func (s *EdgeSeq) SetValues(name string, value any) error {
	return setValuesOver(s.sel, s.edgeAttrOps(), name, value)
}

// DeleteAttr removes the named edge attribute for the whole graph; only an
// All view may delete.
func (s *EdgeSeq) DeleteAttr(name string) error {
	return deleteAttrOver(s.sel, s.edgeAttrOps(), name)
}

// Select returns a new view over the same graph, narrowed by the positional
// specifiers applied left to right (see select.go). Predicates receive each
// designated edge as a handle and must not mutate the bound graph.
func (s *EdgeSeq) Select(specs ...any) (*EdgeSeq, error) {
	sel, err := refine(s.g.ECount, s.sel, specs, s.classifyPredicate)
	if err != nil {
		return nil, err
	}

	return newEdgeSeq(s.g, sel), nil
}

// classifyPredicate recognizes func(Edge) bool specifiers. A typed-nil
// function is left unclaimed and rejected by refine, as on the vertex side.
func (s *EdgeSeq) classifyPredicate(spec any) (indexPredicate, bool) {
	pred, ok := spec.(func(Edge) bool)
	if !ok || pred == nil {
		return nil, false
	}

	return func(idx int) bool { return pred(NewEdge(s.g, idx)) }, true
}

// Find returns exactly one edge of the view, by predicate (first match in
// view order) or by view-relative position.
//
// Errors:
//   - ErrNoSuchElement if the predicate matches nothing.
//   - ErrBadSpecifier for specifier types other than func(Edge) bool and
//     integers (names are a vertex concern).
func (s *EdgeSeq) Find(spec any) (Edge, error) {
	switch sp := spec.(type) {
	case func(Edge) bool:
		n := s.g.ECount()
		size := s.sel.Size(n)
		for pos := 0; pos < size; pos++ {
			idx, err := s.sel.At(pos, n)
			if err != nil {
				return Edge{}, fmt.Errorf("EdgeSeq.Find: position %d: %w", pos, err)
			}
			if sp(NewEdge(s.g, idx)) {
				return NewEdge(s.g, idx), nil
			}
		}

		return Edge{}, fmt.Errorf("EdgeSeq.Find: %w", ErrNoSuchElement)

	default:
		if pos, ok := selector.AsIndex(spec); ok {
			return s.At(pos)
		}

		return Edge{}, fmt.Errorf("EdgeSeq.Find(%T): %w", spec, ErrBadSpecifier)
	}
}
