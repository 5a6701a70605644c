package seqview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quivergraph/quiver/builder"
	"github.com/quivergraph/quiver/core"
	"github.com/quivergraph/quiver/seqview"
)

// TestSetValuesCycles verifies the tiling rule: two values over a 5-vertex
// All view wrap around to fill the column.
func TestSetValuesCycles(t *testing.T) {
	g, err := builder.Empty(5)
	require.NoError(t, err)
	vs := allVertices(t, g)

	require.NoError(t, vs.SetValues("color", []string{"red", "blue"}))

	col, err := g.VertexAttr("color")
	require.NoError(t, err)
	require.Equal(t, []any{"red", "blue", "red", "blue", "red"}, col)
}

// TestSetValuesSubsetNilFills covers attribute creation through a strict
// subset: non-selected positions stay at the absent sentinel.
func TestSetValuesSubsetNilFills(t *testing.T) {
	g, err := builder.Empty(5)
	require.NoError(t, err)

	sub, err := seqview.NewVertexSeq(g, []int{1, 3})
	require.NoError(t, err)

	require.NoError(t, sub.SetValues("weight", []float64{1.0}))

	col, err := g.VertexAttr("weight")
	require.NoError(t, err)
	require.Equal(t, []any{nil, 1.0, nil, 1.0, nil}, col)
}

// TestSetValuesScalarBroadcast verifies the broadcast law: a scalar over a
// selection of size k reads back as k copies.
func TestSetValuesScalarBroadcast(t *testing.T) {
	g, err := builder.Empty(4)
	require.NoError(t, err)

	sub, err := seqview.NewVertexSeq(g, []int{0, 2, 3})
	require.NoError(t, err)
	require.NoError(t, sub.SetValues("flag", true))

	vals, err := sub.Values("flag")
	require.NoError(t, err)
	require.Equal(t, []any{true, true, true}, vals)

	full, err := g.VertexAttr("flag")
	require.NoError(t, err)
	require.Nil(t, full[1])
}

// TestSetGetRoundTrip verifies the exact-length round trip on an All view.
func TestSetGetRoundTrip(t *testing.T) {
	g, err := builder.Empty(3)
	require.NoError(t, err)
	vs := allVertices(t, g)

	want := []any{"a", "b", "c"}
	require.NoError(t, vs.SetValues("tag", want))

	got, err := vs.Values("tag")
	require.NoError(t, err)
	require.Equal(t, want, got)
}

// TestSetValuesOverwritesInPlace verifies assignment over an existing
// attribute through a subset touches only designated slots.
func TestSetValuesOverwritesInPlace(t *testing.T) {
	g, err := builder.Empty(4)
	require.NoError(t, err)
	vs := allVertices(t, g)
	require.NoError(t, vs.SetValues("tag", []string{"w", "x", "y", "z"}))

	sub, err := seqview.NewVertexSeq(g, []int{3, 0})
	require.NoError(t, err)
	require.NoError(t, sub.SetValues("tag", []string{"A", "B"}))

	col, err := g.VertexAttr("tag")
	require.NoError(t, err)
	require.Equal(t, []any{"B", "x", "y", "A"}, col)
}

// TestSetValuesEmptySequence verifies the empty-sequence failure and the
// empty-on-empty no-op.
func TestSetValuesEmptySequence(t *testing.T) {
	g, err := builder.Empty(3)
	require.NoError(t, err)

	vs := allVertices(t, g)
	require.ErrorIs(t, vs.SetValues("tag", []any{}), seqview.ErrEmptyValues)
	require.False(t, g.HasVertexAttr("tag"), "failed assignment must not create the column")

	empty, err := vs.Select(nil)
	require.NoError(t, err)
	require.NoError(t, empty.SetValues("tag", []any{}), "empty values over empty selection is a no-op")
	require.False(t, g.HasVertexAttr("tag"))
}

// TestValuesAllIsLiveColumn pins the documented no-copy quirk: an All view
// returns the backing column itself.
func TestValuesAllIsLiveColumn(t *testing.T) {
	g, err := builder.Empty(3)
	require.NoError(t, err)
	vs := allVertices(t, g)
	require.NoError(t, vs.SetValues("tag", []string{"a", "b", "c"}))

	vals, err := vs.Values("tag")
	require.NoError(t, err)
	vals[0] = "mutated"

	col, err := g.VertexAttr("tag")
	require.NoError(t, err)
	require.Equal(t, "mutated", col[0])
}

// TestValuesSubsetIsFreshAndOrdered verifies subset retrieval preserves the
// selector's order, including scrambles and duplicates, in a fresh list.
func TestValuesSubsetIsFreshAndOrdered(t *testing.T) {
	g, err := builder.Empty(4)
	require.NoError(t, err)
	vs := allVertices(t, g)
	require.NoError(t, vs.SetValues("tag", []string{"a", "b", "c", "d"}))

	sub, err := seqview.NewVertexSeq(g, []int{3, 1, 3})
	require.NoError(t, err)

	vals, err := sub.Values("tag")
	require.NoError(t, err)
	require.Equal(t, []any{"d", "b", "d"}, vals)

	vals[0] = "mutated"
	col, err := g.VertexAttr("tag")
	require.NoError(t, err)
	require.Equal(t, "d", col[3], "subset retrieval must not alias the store")
}

// TestValuesMissingAttr verifies the missing-attribute failure.
func TestValuesMissingAttr(t *testing.T) {
	g, err := builder.Empty(3)
	require.NoError(t, err)
	vs := allVertices(t, g)

	_, err = vs.Values("ghost")
	require.ErrorIs(t, err, core.ErrAttrNotFound)
}

// TestDeleteAttrPolicy verifies whole-graph-only deletion.
func TestDeleteAttrPolicy(t *testing.T) {
	g, err := builder.Empty(3)
	require.NoError(t, err)
	vs := allVertices(t, g)
	require.NoError(t, vs.SetValues("tag", "x"))

	sub, err := seqview.NewVertexSeq(g, []int{1})
	require.NoError(t, err)
	require.ErrorIs(t, sub.DeleteAttr("tag"), seqview.ErrSubsetDelete)
	require.True(t, g.HasVertexAttr("tag"))

	require.NoError(t, vs.DeleteAttr("tag"))
	require.False(t, g.HasVertexAttr("tag"))
	require.ErrorIs(t, vs.DeleteAttr("tag"), core.ErrAttrNotFound)
}

// TestSetValuesNameInvalidatesIndex verifies the renaming side effect: a
// subset write to the name attribute refreshes name-based lookup.
func TestSetValuesNameInvalidatesIndex(t *testing.T) {
	g, err := builder.Empty(3)
	require.NoError(t, err)
	vs := allVertices(t, g)
	require.NoError(t, vs.SetValues(core.NameAttr, []string{"a", "b", "c"}))

	// Prime the cache.
	idx, err := g.VertexByName("b")
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	sub, err := seqview.NewVertexSeq(g, 1)
	require.NoError(t, err)
	require.NoError(t, sub.SetValues(core.NameAttr, "renamed"))

	idx, err = g.VertexByName("renamed")
	require.NoError(t, err)
	require.Equal(t, 1, idx)

	_, err = g.VertexByName("b")
	require.ErrorIs(t, err, core.ErrNameNotFound)
}

// TestNamesShorthand verifies the Names convenience over mixed columns.
func TestNamesShorthand(t *testing.T) {
	g, err := builder.Empty(3)
	require.NoError(t, err)
	require.NoError(t, g.SetVertexAttr(core.NameAttr, []any{"a", nil, "c"}))

	vs := allVertices(t, g)
	names, err := vs.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"a", "", "c"}, names)
}
