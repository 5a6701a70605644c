// SPDX-License-Identifier: MIT
// Package: quiver/core
//
// graph.go — Graph type, options, construction, and topology mutation.
//
// Determinism:
//   - Vertices and edges are dense integers; every mutation keeps both
//     numberings compact (0..V-1 / 0..E-1) and every attribute column the
//     exact length of its namespace.
//
// Concurrency:
//   - muTopo guards counts and endpoints; muAttr guards attribute columns
//     and the name index. Lock order is muTopo → muAttr.

package core

import (
	"fmt"
	"sort"
	"sync"
)

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithDirected sets whether edges are interpreted as ordered pairs
// (true = directed, false = undirected). Default is undirected.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the integer-indexed in-memory graph.
//
// Vertices are the integers 0..vcount-1. Edges are positions into the
// endpoints slice, each holding a (from, to) pair. Attribute columns live in
// the vattr/eattr namespaces and are always exactly vcount/len(endpoints)
// long. names is the lazy name→index cache; nil means "stale or never built".
type Graph struct {
	muTopo sync.RWMutex // guards vcount, endpoints, directed is immutable
	muAttr sync.RWMutex // guards vattr, eattr, names

	directed bool

	vcount    int
	endpoints [][2]int

	vattr map[string][]any
	eattr map[string][]any
	names map[string]int
}

// New creates a Graph with n isolated vertices and no edges.
//
// Errors:
//   - ErrNegativeCount if n < 0.
//
// Complexity: O(1) — vertices are a count, not records.
func New(n int, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrNegativeCount)
	}

	g := &Graph{
		vcount: n,
		vattr:  make(map[string][]any),
		eattr:  make(map[string][]any),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Directed reports whether edges are interpreted as ordered pairs.
// The flag is immutable after construction.
func (g *Graph) Directed() bool { return g.directed }

// VCount returns the current number of vertices.
//
// Complexity: O(1).
func (g *Graph) VCount() int {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	return g.vcount
}

// ECount returns the current number of edges.
//
// Complexity: O(1).
func (g *Graph) ECount() int {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	return len(g.endpoints)
}

// Edge returns the endpoints of edge i.
//
// Errors:
//   - ErrIndexOutOfRange if i is outside [0, ECount()).
//
// Complexity: O(1).
func (g *Graph) Edge(i int) (from, to int, err error) {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	if i < 0 || i >= len(g.endpoints) {
		return 0, 0, fmt.Errorf("Edge(%d): %w", i, ErrIndexOutOfRange)
	}

	return g.endpoints[i][0], g.endpoints[i][1], nil
}

// AddVertices appends k new isolated vertices (indices VCount()..VCount()+k-1)
// and extends every vertex attribute column with nil placeholders.
//
// Errors:
//   - ErrNegativeCount if k < 0.
//
// Complexity: O(k · |vertex attributes|).
func (g *Graph) AddVertices(k int) error {
	if k < 0 {
		return fmt.Errorf("AddVertices(%d): %w", k, ErrNegativeCount)
	}
	if k == 0 {
		return nil
	}

	g.muTopo.Lock()
	defer g.muTopo.Unlock()

	g.vcount += k

	// Grow every vertex attribute column to the new length; new slots hold
	// the "absent" sentinel (nil). The name index stays valid: no existing
	// vertex moved and the new vertices are unnamed.
	g.muAttr.Lock()
	defer g.muAttr.Unlock()
	for name, col := range g.vattr {
		g.vattr[name] = append(col, make([]any, k)...)
	}

	return nil
}

// AddEdges appends the given (from, to) pairs as new edges and extends every
// edge attribute column with nil placeholders.
//
// Validation is atomic: every endpoint is checked against the live vertex
// count before any edge is inserted, so a bad pair rejects the whole batch.
//
// Errors:
//   - ErrBadEndpoint if any endpoint is outside [0, VCount()).
//
// Complexity: O(len(pairs) + |edge attributes|).
func (g *Graph) AddEdges(pairs [][2]int) error {
	if len(pairs) == 0 {
		return nil
	}

	g.muTopo.Lock()
	defer g.muTopo.Unlock()

	// Stage 1: validate the whole batch before touching storage.
	for i, p := range pairs {
		if p[0] < 0 || p[0] >= g.vcount || p[1] < 0 || p[1] >= g.vcount {
			return fmt.Errorf("AddEdges: pair %d (%d,%d) with V=%d: %w",
				i, p[0], p[1], g.vcount, ErrBadEndpoint)
		}
	}

	// Stage 2: commit endpoints and grow edge attribute columns.
	g.endpoints = append(g.endpoints, pairs...)

	g.muAttr.Lock()
	defer g.muAttr.Unlock()
	for name, col := range g.eattr {
		g.eattr[name] = append(col, make([]any, len(pairs))...)
	}

	return nil
}

// DeleteVertices removes the given vertices, renumbering the survivors
// compactly and dropping every incident edge. Vertex and edge attribute
// columns are compacted in the same operation, and the name index is
// invalidated (cleared, rebuilt lazily on next lookup).
//
// The idx list may contain duplicates; validation is atomic, so one bad
// index rejects the whole call with no mutation.
//
// Errors:
//   - ErrIndexOutOfRange if any index is outside [0, VCount()).
//
// Complexity: O(V + E · |attributes|).
func (g *Graph) DeleteVertices(idx []int) error {
	if len(idx) == 0 {
		return nil
	}

	g.muTopo.Lock()
	defer g.muTopo.Unlock()

	for i, v := range idx {
		if v < 0 || v >= g.vcount {
			return fmt.Errorf("DeleteVertices: element %d (vertex %d) with V=%d: %w",
				i, v, g.vcount, ErrIndexOutOfRange)
		}
	}

	// Stage 1: old→new vertex mapping (-1 = dropped), survivors keep order.
	remap := make([]int, g.vcount)
	for _, v := range idx {
		remap[v] = -1
	}
	next := 0
	for old := 0; old < g.vcount; old++ {
		if remap[old] == -1 {
			continue
		}
		remap[old] = next
		next++
	}

	// Stage 2: keep edges whose endpoints both survive, renumbered; remember
	// which edge positions survive for attribute compaction.
	keptEdges := make([][2]int, 0, len(g.endpoints))
	keptPos := make([]int, 0, len(g.endpoints))
	for pos, e := range g.endpoints {
		nf, nt := remap[e[0]], remap[e[1]]
		if nf == -1 || nt == -1 {
			continue
		}
		keptEdges = append(keptEdges, [2]int{nf, nt})
		keptPos = append(keptPos, pos)
	}

	oldV := g.vcount
	g.vcount = next
	g.endpoints = keptEdges

	// Stage 3: compact both attribute namespaces and drop the name index.
	g.muAttr.Lock()
	defer g.muAttr.Unlock()

	for name, col := range g.vattr {
		packed := make([]any, 0, next)
		for old := 0; old < oldV; old++ {
			if remap[old] != -1 {
				packed = append(packed, col[old])
			}
		}
		g.vattr[name] = packed
	}
	for name, col := range g.eattr {
		packed := make([]any, 0, len(keptPos))
		for _, pos := range keptPos {
			packed = append(packed, col[pos])
		}
		g.eattr[name] = packed
	}
	g.names = nil

	return nil
}

// DeleteEdges removes the given edges, renumbering the survivors compactly
// and compacting every edge attribute column. Vertices are untouched.
//
// Errors:
//   - ErrIndexOutOfRange if any index is outside [0, ECount()).
//
// Complexity: O(E · |edge attributes|).
func (g *Graph) DeleteEdges(idx []int) error {
	if len(idx) == 0 {
		return nil
	}

	g.muTopo.Lock()
	defer g.muTopo.Unlock()

	drop := make(map[int]struct{}, len(idx))
	for i, e := range idx {
		if e < 0 || e >= len(g.endpoints) {
			return fmt.Errorf("DeleteEdges: element %d (edge %d) with E=%d: %w",
				i, e, len(g.endpoints), ErrIndexOutOfRange)
		}
		drop[e] = struct{}{}
	}

	kept := make([][2]int, 0, len(g.endpoints)-len(drop))
	keptPos := make([]int, 0, len(g.endpoints)-len(drop))
	for pos, e := range g.endpoints {
		if _, gone := drop[pos]; gone {
			continue
		}
		kept = append(kept, e)
		keptPos = append(keptPos, pos)
	}
	g.endpoints = kept

	g.muAttr.Lock()
	defer g.muAttr.Unlock()
	for name, col := range g.eattr {
		packed := make([]any, 0, len(keptPos))
		for _, pos := range keptPos {
			packed = append(packed, col[pos])
		}
		g.eattr[name] = packed
	}

	return nil
}

// Neighbors returns the vertices adjacent to v, sorted ascending.
// For directed graphs this is the union of in- and out-neighbors; a
// self-loop contributes v itself once.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, VCount()).
//
// Complexity: O(E + d log d) where d = degree(v).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	if v < 0 || v >= g.vcount {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrIndexOutOfRange)
	}

	seen := make(map[int]struct{})
	for _, e := range g.endpoints {
		if e[0] == v {
			seen[e[1]] = struct{}{}
		}
		if e[1] == v {
			seen[e[0]] = struct{}{}
		}
	}

	out := make([]int, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the degree of vertex v. Undirected self-loops count twice
// (classic graph-theory convention); in a directed graph the result is
// in-degree plus out-degree, so a directed loop also contributes 2.
//
// Errors:
//   - ErrIndexOutOfRange if v is outside [0, VCount()).
//
// Complexity: O(E).
func (g *Graph) Degree(v int) (int, error) {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	if v < 0 || v >= g.vcount {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrIndexOutOfRange)
	}

	deg := 0
	for _, e := range g.endpoints {
		if e[0] == v {
			deg++
		}
		if e[1] == v {
			deg++
		}
	}

	return deg, nil
}
