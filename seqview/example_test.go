package seqview_test

import (
	"fmt"

	"github.com/quivergraph/quiver/builder"
	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/seqview"
)

// ExampleVertexSeq_Select narrows a full vertex view twice: first to the
// even-indexed vertices with a predicate, then to the first two survivors
// with a span.
func ExampleVertexSeq_Select() {
	g, _ := builder.Empty(6)
	vs, _ := seqview.NewVertexSeq(g, nil)

	even, _ := vs.Select(func(v seqview.Vertex) bool { return v.Index()%2 == 0 })
	head, _ := even.Select(seqview.Span{Start: 0, End: 2})

	fmt.Println(even.Indices())
	fmt.Println(head.Indices())
	// Output:
	// [0 2 4]
	// [0 2]
}

// ExampleVertexSeq_SetValues shows the broadcast and cycling rules: a scalar
// fills the whole selection, a short sequence wraps around.
func ExampleVertexSeq_SetValues() {
	g, _ := builder.Empty(5)
	vs, _ := seqview.NewVertexSeq(g, nil)

	_ = vs.SetValues("color", []string{"red", "blue"})
	colors, _ := vs.Values("color")
	fmt.Println(colors)

	sub, _ := seqview.NewVertexSeq(g, []int{1, 3})
	_ = sub.SetValues("mark", true)
	marks, _ := vs.Values("mark")
	fmt.Println(marks)
	// Output:
	// [red blue red blue red]
	// [<nil> true <nil> true <nil>]
}

// ExampleVertexSeq_Find resolves one vertex three ways: by registered name,
// by view-relative position, and by predicate.
func ExampleVertexSeq_Find() {
	g, _ := builder.Star(4)
	vs, _ := seqview.NewVertexSeq(g, nil)
	_ = vs.SetValues(core.NameAttr, []string{"hub", "a", "b", "c"})

	byName, _ := vs.Find("b")
	byPos, _ := vs.Find(-1)
	byPred, _ := vs.Find(func(v seqview.Vertex) bool {
		d, _ := v.Degree()

		return d == 3
	})

	fmt.Println(byName.Index(), byPos.Index(), byPred.Name())
	// Output:
	// 2 3 hub
}
