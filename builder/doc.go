// Package builder provides deterministic constructors for the classic
// index-graph topologies used throughout quiver's tests and examples.
//
// Every constructor returns a fresh core.Graph whose vertices are 0..n-1
// and whose edges are emitted in a documented, stable order, so assertions
// over edge indices are reproducible:
//
//	Empty(n)    — n isolated vertices, no edges
//	Path(n)     — edges (0,1), (1,2), …, (n-2, n-1)
//	Cycle(n)    — Path(n) edges plus the closing (n-1, 0)
//	Star(n)     — hub 0, spokes (0,1), (0,2), …, (0, n-1)
//	Complete(n) — edges (i, j) for all i < j, ascending by (i, j)
//
// Constructors accept core.Option passthrough (e.g. core.WithDirected(true));
// edge emission order is unaffected by options.
//
// Errors (sentinel):
//
//	– ErrTooFewVertices if n is below the constructor's documented minimum.
package builder
