package seqview_test

import (
	"testing"

	"github.com/quivergraph/quiver/builder"
	"github.com/quivergraph/quiver/seqview"
)

// BenchmarkSelectPredicate measures one full predicate pass over a large
// All view, the only hot path that materializes the selection.
func BenchmarkSelectPredicate(b *testing.B) {
	g, err := builder.Empty(10_000)
	if err != nil {
		b.Fatal(err)
	}
	vs, err := seqview.NewVertexSeq(g, nil)
	if err != nil {
		b.Fatal(err)
	}
	even := func(v seqview.Vertex) bool { return v.Index()%2 == 0 }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vs.Select(even); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLenAllView pins the closed-form guarantee: sizing an All view
// must stay O(1) regardless of graph size.
func BenchmarkLenAllView(b *testing.B) {
	g, err := builder.Empty(1_000_000)
	if err != nil {
		b.Fatal(err)
	}
	vs, err := seqview.NewVertexSeq(g, nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if vs.Len() != 1_000_000 {
			b.Fatal("unexpected length")
		}
	}
}

// BenchmarkValuesSubset measures selection-ordered attribute retrieval
// through an explicit subset.
func BenchmarkValuesSubset(b *testing.B) {
	g, err := builder.Empty(10_000)
	if err != nil {
		b.Fatal(err)
	}
	all, err := seqview.NewVertexSeq(g, nil)
	if err != nil {
		b.Fatal(err)
	}
	if err := all.SetValues("weight", 1.0); err != nil {
		b.Fatal(err)
	}

	idxs := make([]int, 0, 5_000)
	for i := 0; i < 10_000; i += 2 {
		idxs = append(idxs, i)
	}
	sub, err := seqview.NewVertexSeq(g, idxs)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sub.Values("weight"); err != nil {
			b.Fatal(err)
		}
	}
}
