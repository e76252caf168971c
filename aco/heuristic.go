// Package aco - static heuristic desirability, derived once per run.
package aco

import (
	"math"

	"github.com/katalvlaran/antsys/matrix"
)

// desirability builds the heuristic matrix η from a validated distance matrix:
//
//	η[i][j] = (median_k≠j dist[k][j] / dist[i][j])^beta, η[j][j] = 0.
//
// The ratio reads "how much better than a typical approach into j is the
// edge i→j"; beta sharpens (beta > 1) or flattens (beta < 1) the contrast,
// and beta == 0 erases it (all off-diagonal desirability equals 1).
// The diagonal carries no desirability — an ant never travels to the node
// it already stands on.
//
// Pre-condition: dist passed validateDistMatrix (square, n ≥ 2, positive
// finite off-diagonal). η is immutable for the whole run.
//
// Complexity: O(n² log n) time (column medians dominate), O(n²) space.
func desirability(dist matrix.Matrix, beta float64) (*matrix.Dense, error) {
	medians, err := matrix.ColumnMedians(dist, true)
	if err != nil {
		return nil, ErrDimensionMismatch
	}
	var n = len(medians)

	eta, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, ErrDimensionMismatch
	}

	var (
		i, j int       // loop indices
		row  []float64 // η row under construction
		src  []float64 // distance row (Dense fast path)
		d    float64   // distance entry dist[i][j]
		fast = asDense(dist)
	)
	for i = 0; i < n; i++ {
		row, _ = eta.RowView(i) // i is in range by construction
		if fast != nil {
			src, _ = fast.RowView(i)
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue // η diagonal stays zero
			}
			if fast != nil {
				d = src[j]
			} else {
				d, err = dist.At(i, j)
				if err != nil {
					return nil, ErrDimensionMismatch
				}
			}
			row[j] = math.Pow(medians[j]/d, beta)
		}
	}

	return eta, nil
}
