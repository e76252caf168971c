package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antsys/matrix"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestHadamard_ElementwiseProduct(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{5, 6}, {7, 8}})

	out, err := matrix.Hadamard(a, b)
	require.NoError(t, err)

	want := [][]float64{{5, 12}, {21, 32}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, aerr := out.At(i, j)
			require.NoError(t, aerr)
			require.Equal(t, want[i][j], v)
		}
	}
}

func TestHadamard_ShapeMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	b := mustDense(t, [][]float64{{1, 2, 3}})

	_, err := matrix.Hadamard(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Hadamard(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestHadamardInto_ReusesBuffer(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 3}, {4, 5}})
	b := mustDense(t, [][]float64{{1, 1}, {2, 2}})
	dst, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.HadamardInto(dst, a, b))
	v, err := dst.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 8.0, v)

	// Wrong destination shape is rejected.
	bad, err := matrix.NewDense(1, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.HadamardInto(bad, a, b), matrix.ErrDimensionMismatch)
}

func TestFill_SetsEveryElement(t *testing.T) {
	m, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.Fill(m, 2.5))
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			v, aerr := m.At(i, j)
			require.NoError(t, aerr)
			require.Equal(t, 2.5, v)
		}
	}

	require.ErrorIs(t, matrix.Fill(m, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.Fill(m, math.Inf(1)), matrix.ErrNaNInf)
}

func TestScaleClampInPlace_DecaysAndBounds(t *testing.T) {
	m := mustDense(t, [][]float64{{10, 4}, {0.5, 2}})

	// factor 0.5, bounds [1, 4]: {5,2,0.25,1} → {4,2,1,1}.
	require.NoError(t, matrix.ScaleClampInPlace(m, 0.5, 1, 4))

	want := [][]float64{{4, 2}, {1, 1}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v)
		}
	}

	require.ErrorIs(t, matrix.ScaleClampInPlace(m, 0.5, 3, 1), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ScaleClampInPlace(m, math.NaN(), 0, 1), matrix.ErrNaNInf)
}

func TestColumnMedians_OddAndEvenCounts(t *testing.T) {
	// 3×3 with diagonal excluded: two entries per column → mean of the pair.
	m := mustDense(t, [][]float64{
		{0, 2, 9},
		{4, 0, 3},
		{8, 6, 0},
	})

	med, err := matrix.ColumnMedians(m, true)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 4, 6}, med)

	// Diagonal included: three entries per column → middle element.
	med, err = matrix.ColumnMedians(m, false)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 2, 3}, med)
}

func TestColumnMedians_Rejections(t *testing.T) {
	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err := matrix.ColumnMedians(rect, false)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	one := mustDense(t, [][]float64{{1}})
	_, err = matrix.ColumnMedians(one, true)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.ColumnMedians(nil, true)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
