// Package aco_test validates the edge iteration and cost utilities:
// tour/path edge counts, closure, exact sums and the degenerate-entry policy.
package aco_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/matrix"
)

type pair struct{ from, to int }

func collectEdges(path []int, closed bool) []pair {
	var out []pair
	for u, v := range aco.Edges(path, closed) {
		out = append(out, pair{u, v})
	}
	return out
}

func TestEdges_OpenPath(t *testing.T) {
	got := collectEdges([]int{2, 0, 3, 1}, false)
	want := []pair{{2, 0}, {0, 3}, {3, 1}}

	if len(got) != len(want) {
		t.Fatalf("got %d edges, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("edge %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEdges_TourClosesCycle(t *testing.T) {
	path := []int{2, 0, 3, 1}
	got := collectEdges(path, true)

	if len(got) != len(path) {
		t.Fatalf("tour of %d nodes yielded %d edges, want %d", len(path), len(got), len(path))
	}
	last := got[len(got)-1]
	if last.from != 1 || last.to != 2 {
		t.Fatalf("closing edge %v, want {1 2}", last)
	}
}

func TestEdges_Restartable(t *testing.T) {
	// The sequence is re-derivable: ranging twice yields identical pairs.
	path := []int{0, 1, 2}
	a := collectEdges(path, true)
	b := collectEdges(path, true)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("second pass differs at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestPathCost_OpenAndTour(t *testing.T) {
	dist, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 4},
		{2, 0, 6},
		{3, 5, 0},
	})
	if err != nil {
		t.Fatalf("NewDenseFromRows failed: %v", err)
	}
	path := []int{0, 1, 2}

	open, err := aco.PathCost(dist, path, false)
	if err != nil {
		t.Fatalf("PathCost(open) failed: %v", err)
	}
	if open != 7 { // 0→1 (1) + 1→2 (6)
		t.Fatalf("open cost %v, want 7", open)
	}

	tour, err := aco.PathCost(dist, path, true)
	if err != nil {
		t.Fatalf("PathCost(tour) failed: %v", err)
	}
	if tour != 10 { // + 2→0 (3)
		t.Fatalf("tour cost %v, want 10", tour)
	}
}

// genericMatrix wraps a Dense behind the plain interface to force the
// generic (non-Dense) accumulation path.
type genericMatrix struct{ d *matrix.Dense }

func (g genericMatrix) Rows() int                      { return g.d.Rows() }
func (g genericMatrix) Cols() int                      { return g.d.Cols() }
func (g genericMatrix) At(i, j int) (float64, error)   { return g.d.At(i, j) }
func (g genericMatrix) Set(i, j int, v float64) error  { return g.d.Set(i, j, v) }
func (g genericMatrix) Clone() matrix.Matrix           { return g.d.Clone() }

func TestPathCost_GenericMatchesDense(t *testing.T) {
	dist, err := matrix.NewDenseFromRows([][]float64{
		{0, 2, 9, 1},
		{4, 0, 3, 2},
		{8, 6, 0, 5},
		{1, 7, 2, 0},
	})
	if err != nil {
		t.Fatalf("NewDenseFromRows failed: %v", err)
	}
	path := []int{3, 0, 2, 1}

	fast, err := aco.PathCost(dist, path, true)
	if err != nil {
		t.Fatalf("PathCost(dense) failed: %v", err)
	}
	slow, err := aco.PathCost(genericMatrix{d: dist}, path, true)
	if err != nil {
		t.Fatalf("PathCost(generic) failed: %v", err)
	}
	if fast != slow {
		t.Fatalf("dense %v != generic %v", fast, slow)
	}
}

func TestPathCost_Rejections(t *testing.T) {
	dist, err := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{0, 0}, // zero 1→0 entry: degenerate when traversed
	})
	if err != nil {
		t.Fatalf("NewDenseFromRows failed: %v", err)
	}

	if _, err = aco.PathCost(dist, []int{0, 1}, true); !errors.Is(err, aco.ErrDegenerateDistance) {
		t.Fatalf("zero edge: want ErrDegenerateDistance, got %v", err)
	}
	if _, err = aco.PathCost(dist, []int{0}, false); !errors.Is(err, aco.ErrDimensionMismatch) {
		t.Fatalf("short path: want ErrDimensionMismatch, got %v", err)
	}
	if _, err = aco.PathCost(dist, []int{0, 5}, false); !errors.Is(err, aco.ErrNodeOutOfRange) {
		t.Fatalf("bad index: want ErrNodeOutOfRange, got %v", err)
	}
	if _, err = aco.PathCost(nil, []int{0, 1}, false); !errors.Is(err, aco.ErrNilMatrix) {
		t.Fatalf("nil matrix: want ErrNilMatrix, got %v", err)
	}
}

func TestValidatePermutation(t *testing.T) {
	if err := aco.ValidatePermutation([]int{2, 0, 1}, 3); err != nil {
		t.Fatalf("valid permutation rejected: %v", err)
	}
	if err := aco.ValidatePermutation([]int{0, 1, 1}, 3); !errors.Is(err, aco.ErrDimensionMismatch) {
		t.Fatalf("duplicate: want ErrDimensionMismatch, got %v", err)
	}
	if err := aco.ValidatePermutation([]int{0, 1, 5}, 3); !errors.Is(err, aco.ErrNodeOutOfRange) {
		t.Fatalf("out of range: want ErrNodeOutOfRange, got %v", err)
	}
	if err := aco.ValidatePermutation([]int{0, 1}, 3); !errors.Is(err, aco.ErrDimensionMismatch) {
		t.Fatalf("short: want ErrDimensionMismatch, got %v", err)
	}
}
