// SPDX-License-Identifier: MIT
// Package: quiver/seqview
//
// handles.go — the first-class Vertex and Edge values handed to callers.
//
// A handle is a (graph, underlying index) pair and nothing more. It does not
// pin the element: if the graph shrinks after the handle was built, every
// accessor fails cleanly with an out-of-range sentinel instead of reading
// stale storage.

package seqview

import (
	"fmt"

	"github.com/quivergraph/quiver/core"
)

// Vertex is a first-class reference to one vertex of a bound graph.
type Vertex struct {
	g   *core.Graph
	idx int
}

// NewVertex builds a handle for vertex idx of g. The index is validated
// lazily by the accessors, not here, so handles for not-yet-validated
// positions stay cheap to construct.
func NewVertex(g *core.Graph, idx int) Vertex { return Vertex{g: g, idx: idx} }

// Graph returns the bound graph.
func (v Vertex) Graph() *core.Graph { return v.g }

// Index returns the underlying index in the graph's 0..V-1 numbering.
func (v Vertex) Index() int { return v.idx }

// Attr returns this vertex's value for the named attribute.
//
// Errors:
//   - core.ErrAttrNotFound if the attribute does not exist.
//   - core.ErrIndexOutOfRange if the handle is stale (vertex deleted).
func (v Vertex) Attr(name string) (any, error) {
	col, err := v.g.VertexAttr(name)
	if err != nil {
		return nil, err
	}
	if v.idx < 0 || v.idx >= len(col) {
		return nil, fmt.Errorf("Vertex(%d).Attr(%q): %w", v.idx, name, core.ErrIndexOutOfRange)
	}

	return col[v.idx], nil
}

// SetAttr assigns this vertex's value for the named attribute, creating the
// attribute column on first write. Writing the name attribute invalidates
// the graph's name index.
//
// Errors:
//   - core.ErrIndexOutOfRange if the handle is stale.
func (v Vertex) SetAttr(name string, value any) error {
	col := v.g.EnsureVertexAttr(name)
	if v.idx < 0 || v.idx >= len(col) {
		return fmt.Errorf("Vertex(%d).SetAttr(%q): %w", v.idx, name, core.ErrIndexOutOfRange)
	}
	col[v.idx] = value
	if name == core.NameAttr {
		v.g.InvalidateNameIndex()
	}

	return nil
}

// Name returns this vertex's registered name, or "" if the vertex is
// unnamed (no name attribute, nil slot, or a non-string value).
func (v Vertex) Name() string {
	raw, err := v.Attr(core.NameAttr)
	if err != nil {
		return ""
	}
	s, _ := raw.(string)

	return s
}

// Degree returns the vertex degree (undirected self-loops count twice).
//
// Errors:
//   - core.ErrIndexOutOfRange if the handle is stale.
func (v Vertex) Degree() (int, error) {
	return v.g.Degree(v.idx)
}

// Edge is a first-class reference to one edge of a bound graph.
type Edge struct {
	g   *core.Graph
	idx int
}

// NewEdge builds a handle for edge idx of g. Validation is lazy, as for
// NewVertex.
func NewEdge(g *core.Graph, idx int) Edge { return Edge{g: g, idx: idx} }

// Graph returns the bound graph.
func (e Edge) Graph() *core.Graph { return e.g }

// Index returns the underlying index in the graph's 0..E-1 numbering.
func (e Edge) Index() int { return e.idx }

// Endpoints returns the (source, target) vertex indices of this edge.
//
// Errors:
//   - core.ErrIndexOutOfRange if the handle is stale (edge deleted).
func (e Edge) Endpoints() (from, to int, err error) {
	return e.g.Edge(e.idx)
}

// Source returns the source vertex index, or -1 for a stale handle.
func (e Edge) Source() int {
	from, _, err := e.g.Edge(e.idx)
	if err != nil {
		return -1
	}

	return from
}

// Target returns the target vertex index, or -1 for a stale handle.
func (e Edge) Target() int {
	_, to, err := e.g.Edge(e.idx)
	if err != nil {
		return -1
	}

	return to
}

// Attr returns this edge's value for the named attribute.
//
// Errors:
//   - core.ErrAttrNotFound if the attribute does not exist.
//   - core.ErrIndexOutOfRange if the handle is stale.
func (e Edge) Attr(name string) (any, error) {
	col, err := e.g.EdgeAttr(name)
	if err != nil {
		return nil, err
	}
	if e.idx < 0 || e.idx >= len(col) {
		return nil, fmt.Errorf("Edge(%d).Attr(%q): %w", e.idx, name, core.ErrIndexOutOfRange)
	}

	return col[e.idx], nil
}

// SetAttr assigns this edge's value for the named attribute, creating the
// attribute column on first write.
//
// Errors:
//   - core.ErrIndexOutOfRange if the handle is stale.
func (e Edge) SetAttr(name string, value any) error {
	col := e.g.EnsureEdgeAttr(name)
	if e.idx < 0 || e.idx >= len(col) {
		return fmt.Errorf("Edge(%d).SetAttr(%q): %w", e.idx, name, core.ErrIndexOutOfRange)
	}
	col[e.idx] = value

	return nil
}
