// SPDX-License-Identifier: MIT
// Package: quiver/core
//
// attributes.go — the per-graph attribute store: two name-keyed namespaces
// (vertex, edge) of full-length value columns.
//
// Contract:
//   - A column is always exactly as long as its namespace (VCount/ECount);
//     topology mutation keeps this invariant, full-column writes enforce it.
//   - VertexAttr/EdgeAttr return the LIVE backing slice, not a copy. This is
//     the documented no-copy retrieval policy the view layer builds on:
//     mutating a returned slice mutates the stored attribute. Writers that
//     touch the name attribute in place must call InvalidateNameIndex.
//   - The "absent" sentinel for never-assigned slots is nil.
//
// Concurrency:
//   - muTopo (read) then muAttr, consistent with graph.go's lock order.

package core

import (
	"fmt"
	"sort"
)

// NameAttr is the designated vertex attribute backing name-based lookup.
const NameAttr = "name"

// VertexAttrNames returns the vertex attribute names, sorted ascending.
//
// Complexity: O(A log A).
func (g *Graph) VertexAttrNames() []string {
	g.muAttr.RLock()
	defer g.muAttr.RUnlock()

	return sortedKeys(g.vattr)
}

// EdgeAttrNames returns the edge attribute names, sorted ascending.
func (g *Graph) EdgeAttrNames() []string {
	g.muAttr.RLock()
	defer g.muAttr.RUnlock()

	return sortedKeys(g.eattr)
}

func sortedKeys(m map[string][]any) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// HasVertexAttr reports whether the vertex namespace holds name.
func (g *Graph) HasVertexAttr(name string) bool {
	g.muAttr.RLock()
	defer g.muAttr.RUnlock()
	_, ok := g.vattr[name]

	return ok
}

// HasEdgeAttr reports whether the edge namespace holds name.
func (g *Graph) HasEdgeAttr(name string) bool {
	g.muAttr.RLock()
	defer g.muAttr.RUnlock()
	_, ok := g.eattr[name]

	return ok
}

// VertexAttr returns the live backing column for the named vertex attribute.
//
// The slice is NOT a copy: it has exactly VCount() entries and mutating it
// is visible to every holder of the graph. This mirrors the store's no-copy
// retrieval policy; callers needing isolation must copy themselves.
//
// Errors:
//   - ErrAttrNotFound if the attribute does not exist.
func (g *Graph) VertexAttr(name string) ([]any, error) {
	g.muAttr.RLock()
	defer g.muAttr.RUnlock()

	col, ok := g.vattr[name]
	if !ok {
		return nil, fmt.Errorf("VertexAttr(%q): %w", name, ErrAttrNotFound)
	}

	return col, nil
}

// EdgeAttr returns the live backing column for the named edge attribute.
// Same no-copy policy as VertexAttr.
func (g *Graph) EdgeAttr(name string) ([]any, error) {
	g.muAttr.RLock()
	defer g.muAttr.RUnlock()

	col, ok := g.eattr[name]
	if !ok {
		return nil, fmt.Errorf("EdgeAttr(%q): %w", name, ErrAttrNotFound)
	}

	return col, nil
}

// SetVertexAttr replaces the whole column for the named vertex attribute.
// The values are copied into an owned column; the caller's slice is not
// retained. Writing NameAttr invalidates the name index.
//
// Errors:
//   - ErrAttrLength if len(values) != VCount().
func (g *Graph) SetVertexAttr(name string, values []any) error {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	if len(values) != g.vcount {
		return fmt.Errorf("SetVertexAttr(%q): got %d values for V=%d: %w",
			name, len(values), g.vcount, ErrAttrLength)
	}

	owned := make([]any, len(values))
	copy(owned, values)

	g.muAttr.Lock()
	defer g.muAttr.Unlock()
	g.vattr[name] = owned
	if name == NameAttr {
		g.names = nil
	}

	return nil
}

// SetEdgeAttr replaces the whole column for the named edge attribute.
//
// Errors:
//   - ErrAttrLength if len(values) != ECount().
func (g *Graph) SetEdgeAttr(name string, values []any) error {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	if len(values) != len(g.endpoints) {
		return fmt.Errorf("SetEdgeAttr(%q): got %d values for E=%d: %w",
			name, len(values), len(g.endpoints), ErrAttrLength)
	}

	owned := make([]any, len(values))
	copy(owned, values)

	g.muAttr.Lock()
	defer g.muAttr.Unlock()
	g.eattr[name] = owned

	return nil
}

// EnsureVertexAttr returns the live column for the named vertex attribute,
// creating a nil-filled full-length column if the attribute does not exist
// yet. The nil fill is the "absent" sentinel for non-assigned positions.
//
// The returned slice is live (see VertexAttr). A caller that writes NameAttr
// slots through it must call InvalidateNameIndex afterwards.
func (g *Graph) EnsureVertexAttr(name string) []any {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	g.muAttr.Lock()
	defer g.muAttr.Unlock()

	col, ok := g.vattr[name]
	if !ok {
		col = make([]any, g.vcount)
		g.vattr[name] = col
	}

	return col
}

// EnsureEdgeAttr returns the live column for the named edge attribute,
// creating a nil-filled full-length column if absent.
func (g *Graph) EnsureEdgeAttr(name string) []any {
	g.muTopo.RLock()
	defer g.muTopo.RUnlock()

	g.muAttr.Lock()
	defer g.muAttr.Unlock()

	col, ok := g.eattr[name]
	if !ok {
		col = make([]any, len(g.endpoints))
		g.eattr[name] = col
	}

	return col
}

// DeleteVertexAttr removes the named vertex attribute column entirely.
// Deleting NameAttr invalidates the name index.
//
// Errors:
//   - ErrAttrNotFound if the attribute does not exist.
func (g *Graph) DeleteVertexAttr(name string) error {
	g.muAttr.Lock()
	defer g.muAttr.Unlock()

	if _, ok := g.vattr[name]; !ok {
		return fmt.Errorf("DeleteVertexAttr(%q): %w", name, ErrAttrNotFound)
	}
	delete(g.vattr, name)
	if name == NameAttr {
		g.names = nil
	}

	return nil
}

// DeleteEdgeAttr removes the named edge attribute column entirely.
//
// Errors:
//   - ErrAttrNotFound if the attribute does not exist.
func (g *Graph) DeleteEdgeAttr(name string) error {
	g.muAttr.Lock()
	defer g.muAttr.Unlock()

	if _, ok := g.eattr[name]; !ok {
		return fmt.Errorf("DeleteEdgeAttr(%q): %w", name, ErrAttrNotFound)
	}
	delete(g.eattr, name)

	return nil
}
