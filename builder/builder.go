// SPDX-License-Identifier: MIT
// Package: quiver/builder
//
// builder.go — topology constructors over the integer-indexed core graph.
//
// Contract (all constructors):
//   - Vertices are 0..n-1; edges are emitted in the documented stable order.
//   - Options pass through to core.New unchanged.
//   - Returns only sentinel errors; never panics at runtime.
//
// Determinism:
//   - Emission order is fixed per topology; no randomness anywhere.

package builder

import (
	"errors"
	"fmt"

	"github.com/quivergraph/quiver/core"
)

// ErrTooFewVertices indicates that n is smaller than the allowed minimum
// for the requested topology.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// Per-topology parameter minima.
const (
	minEmptyNodes    = 0
	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Empty returns a graph with n isolated vertices and no edges.
//
// Complexity: O(1).
func Empty(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minEmptyNodes {
		return nil, fmt.Errorf("Empty: n=%d < min=%d: %w", n, minEmptyNodes, ErrTooFewVertices)
	}

	return core.New(n, opts...)
}

// Path returns the path P_n: edges (i-1, i) for i = 1..n-1, in increasing
// order of i, so edge index k connects vertices k and k+1.
//
// Complexity: O(n).
func Path(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	g, err := core.New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}

	pairs := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{i - 1, i})
	}
	if err = g.AddEdges(pairs); err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}

	return g, nil
}

// Cycle returns the cycle C_n: the Path(n) edges followed by the closing
// edge (n-1, 0), which therefore holds edge index n-1.
//
// Complexity: O(n).
func Cycle(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
	}

	g, err := core.New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}

	pairs := make([][2]int, 0, n)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{i - 1, i})
	}
	pairs = append(pairs, [2]int{n - 1, 0})
	if err = g.AddEdges(pairs); err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}

	return g, nil
}

// Star returns the star S_n: hub vertex 0 with spokes (0, i) for
// i = 1..n-1, in increasing leaf order.
//
// Complexity: O(n).
func Star(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
	}

	g, err := core.New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}

	pairs := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{0, i})
	}
	if err = g.AddEdges(pairs); err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}

	return g, nil
}

// Complete returns the complete graph K_n: one edge (i, j) per unordered
// pair i < j, ascending by (i, j).
//
// Complexity: O(n²).
func Complete(n int, opts ...core.Option) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	g, err := core.New(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}

	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	if err = g.AddEdges(pairs); err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}

	return g, nil
}
