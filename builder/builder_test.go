package builder_test

import (
	"errors"
	"testing"

	"github.com/quivergraph/quiver/builder"
	"github.com/quivergraph/quiver/core"
)

// edgeList materializes the graph's edges in index order for comparison.
func edgeList(t *testing.T, g *core.Graph) [][2]int {
	t.Helper()
	out := make([][2]int, g.ECount())
	for i := range out {
		from, to, err := g.Edge(i)
		if err != nil {
			t.Fatalf("Edge(%d): %v", i, err)
		}
		out[i] = [2]int{from, to}
	}

	return out
}

func sameEdges(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestTopologies(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*core.Graph, error)
		wantV int
		wantE [][2]int
	}{
		{
			name:  "Empty/0",
			build: func() (*core.Graph, error) { return builder.Empty(0) },
			wantV: 0,
			wantE: [][2]int{},
		},
		{
			name:  "Empty/4",
			build: func() (*core.Graph, error) { return builder.Empty(4) },
			wantV: 4,
			wantE: [][2]int{},
		},
		{
			name:  "Path/4",
			build: func() (*core.Graph, error) { return builder.Path(4) },
			wantV: 4,
			wantE: [][2]int{{0, 1}, {1, 2}, {2, 3}},
		},
		{
			name:  "Cycle/3",
			build: func() (*core.Graph, error) { return builder.Cycle(3) },
			wantV: 3,
			wantE: [][2]int{{0, 1}, {1, 2}, {2, 0}},
		},
		{
			name:  "Star/4",
			build: func() (*core.Graph, error) { return builder.Star(4) },
			wantV: 4,
			wantE: [][2]int{{0, 1}, {0, 2}, {0, 3}},
		},
		{
			name:  "Complete/1",
			build: func() (*core.Graph, error) { return builder.Complete(1) },
			wantV: 1,
			wantE: [][2]int{},
		},
		{
			name:  "Complete/4",
			build: func() (*core.Graph, error) { return builder.Complete(4) },
			wantV: 4,
			wantE: [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			if got := g.VCount(); got != tc.wantV {
				t.Fatalf("VCount = %d, want %d", got, tc.wantV)
			}
			if got := edgeList(t, g); !sameEdges(got, tc.wantE) {
				t.Fatalf("edges = %v, want %v", got, tc.wantE)
			}
		})
	}
}

func TestTooFewVertices(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*core.Graph, error)
	}{
		{"Empty/-1", func() (*core.Graph, error) { return builder.Empty(-1) }},
		{"Path/1", func() (*core.Graph, error) { return builder.Path(1) }},
		{"Cycle/2", func() (*core.Graph, error) { return builder.Cycle(2) }},
		{"Star/1", func() (*core.Graph, error) { return builder.Star(1) }},
		{"Complete/0", func() (*core.Graph, error) { return builder.Complete(0) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.build(); !errors.Is(err, builder.ErrTooFewVertices) {
				t.Fatalf("err = %v, want ErrTooFewVertices", err)
			}
		})
	}
}

func TestOptionsPassThrough(t *testing.T) {
	g, err := builder.Path(3, core.WithDirected(true))
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if !g.Directed() {
		t.Fatal("Directed() = false, want true")
	}
}

func TestStarDegrees(t *testing.T) {
	g, err := builder.Star(5)
	if err != nil {
		t.Fatalf("Star: %v", err)
	}

	hub, err := g.Degree(0)
	if err != nil {
		t.Fatalf("Degree(0): %v", err)
	}
	if hub != 4 {
		t.Fatalf("hub degree = %d, want 4", hub)
	}
	for v := 1; v < 5; v++ {
		d, dErr := g.Degree(v)
		if dErr != nil {
			t.Fatalf("Degree(%d): %v", v, dErr)
		}
		if d != 1 {
			t.Fatalf("leaf %d degree = %d, want 1", v, d)
		}
	}
}
