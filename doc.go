// Package quiver is an in-memory toolkit for index-based graphs and the
// lazy vertex/edge selections built on top of them.
//
// 🚀 What is quiver?
//
//	A small, thread-aware, zero-dependency library organized around one idea:
//	a subset of a graph's vertices (or edges) should not cost memory until it
//	has to. Quiver keeps subsets as compact closed-form selectors and only
//	materializes an index list when an operation genuinely needs one.
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — integer-indexed Graph, attribute store, lazy name index
//	selector/ — the tagged selector variants (All, None, Single, Range, Explicit)
//	seqview/  — VertexSeq/EdgeSeq views: indexing, attributes, Select, Find
//	builder/  — deterministic topology constructors (Path, Cycle, Star, Complete)
//
// ✨ Why choose quiver?
//
//   - Lazy by default – "all vertices" is a tag, not an N-element slice
//   - Closed variant set – every consumer dispatches exhaustively; no silent
//     fallthrough on an unknown selector kind
//   - Predictable failures – sentinel errors per package, matched with errors.Is
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	g, _ := builder.Path(5)                  // 0-1-2-3-4
//	vs, _ := seqview.NewVertexSeq(g, nil)    // all five vertices, unmaterialized
//	even, _ := vs.Select(func(v seqview.Vertex) bool { return v.Index()%2 == 0 })
//	fmt.Println(even.Indices())              // [0 2 4]
//
// See each subpackage's doc.go for contracts, complexity notes and examples.
package quiver
