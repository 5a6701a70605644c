// SPDX-License-Identifier: MIT
// Package: quiver/core
//
// names.go — the lazily rebuilt name→vertex-index lookup table.
//
// Contract:
//   - The cache derives from the NameAttr vertex attribute. Any write that
//     can change a name CLEARS the cache (lazy invalidation); the cache is
//     rebuilt on the next VertexByName call, never eagerly on write.
//   - Only string attribute values participate; a slot holding nil or a
//     non-string is simply unnamed.
//   - Duplicate names resolve to the highest vertex index carrying the name
//     (last write wins during the rebuild scan).

package core

import "fmt"

// InvalidateNameIndex clears the name→index cache so the next VertexByName
// rebuilds it from the current NameAttr column.
//
// Callers that mutate the name column in place through a live slice
// (EnsureVertexAttr / VertexAttr) must call this; full-column writes via
// SetVertexAttr and topology mutations invalidate automatically.
//
// Complexity: O(1) — the cache is dropped, not rebuilt.
func (g *Graph) InvalidateNameIndex() {
	g.muAttr.Lock()
	defer g.muAttr.Unlock()
	g.names = nil
}

// VertexByName resolves a vertex name to its current underlying index,
// rebuilding the cache if a previous write invalidated it.
//
// Errors:
//   - ErrAttrNotFound if the graph has no NameAttr vertex attribute.
//   - ErrNameNotFound if the attribute exists but no vertex carries name.
//
// Complexity: O(1) amortized; O(V) when a rebuild is due.
func (g *Graph) VertexByName(name string) (int, error) {
	g.muAttr.Lock()
	defer g.muAttr.Unlock()

	if g.names == nil {
		col, ok := g.vattr[NameAttr]
		if !ok {
			return 0, fmt.Errorf("VertexByName(%q): %w", name, ErrAttrNotFound)
		}
		idx := make(map[string]int, len(col))
		for v, raw := range col {
			if s, isStr := raw.(string); isStr {
				idx[s] = v
			}
		}
		g.names = idx
	}

	v, ok := g.names[name]
	if !ok {
		return 0, fmt.Errorf("VertexByName(%q): %w", name, ErrNameNotFound)
	}

	return v, nil
}
