package corr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testColumns() [][]float64 {
	n := 50
	x := make([]float64, n)
	double := make([]float64, n)
	cubed := make([]float64, n)
	negated := make([]float64, n)
	wave := make([]float64, n)
	for i := 0; i < n; i++ {
		v := float64(i + 1)
		x[i] = v
		double[i] = 2 * v
		cubed[i] = v * v * v
		negated[i] = -v
		wave[i] = math.Sin(2.5 * v)
	}
	return [][]float64{x, double, cubed, negated, wave}
}

func TestMatrix(t *testing.T) {

	type test struct {
		method Method
		// expectations on specific entries, keyed by [i,j]
		exact map[[2]int]float64
	}

	tests := map[string]test{
		"pearson": {
			method: Pearson,
			exact: map[[2]int]float64{
				{0, 1}: 1.0,
				{0, 3}: -1.0,
			},
		},
		"spearman": {
			method: Spearman,
			exact: map[[2]int]float64{
				{0, 1}: 1.0,
				// monotone transforms preserve ranks
				{0, 2}: 1.0,
				{0, 3}: -1.0,
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Matrix(testColumns(), tt.method)
			assert.NoError(t, err)

			d := m.Symmetric()
			assert.Equal(t, 5, d)
			for i := 0; i < d; i++ {
				assert.InDelta(t, 1.0, m.At(i, i), 1e-9)
				for j := 0; j < d; j++ {
					assert.InDelta(t, m.At(i, j), m.At(j, i), 1e-12)
				}
			}

			for ij, want := range tt.exact {
				assert.InDelta(t, want, m.At(ij[0], ij[1]), 1e-9)
			}
		})
	}

}

func TestMatrix_PearsonUnderestimatesMonotone(t *testing.T) {

	m, err := Matrix(testColumns(), Pearson)
	assert.NoError(t, err)

	// x vs x^3 is monotone but not linear
	assert.Less(t, m.At(0, 2), 1.0)
	assert.Greater(t, m.At(0, 2), 0.8)

}

func TestMatrix_Errors(t *testing.T) {

	_, err := Matrix(nil, Pearson)
	assert.Error(t, err)

	_, err = Matrix([][]float64{{1}}, Pearson)
	assert.Error(t, err)

	_, err = Matrix([][]float64{{1, 2, 3}, {1, 2}}, Pearson)
	assert.Error(t, err)

}

func TestRank(t *testing.T) {

	type test struct {
		values []float64
		ranks  []float64
	}

	tests := map[string]test{
		"ordered": {
			values: []float64{10, 20, 30},
			ranks:  []float64{1, 2, 3},
		},
		"reversed": {
			values: []float64{30, 20, 10},
			ranks:  []float64{3, 2, 1},
		},
		"ties": {
			values: []float64{1, 2, 2, 3},
			ranks:  []float64{1, 2.5, 2.5, 4},
		},
		"all-equal": {
			values: []float64{7, 7, 7},
			ranks:  []float64{2, 2, 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.ranks, rank(tt.values))
		})
	}

}

func TestHighlyCorrelated(t *testing.T) {

	m, err := Matrix(testColumns(), Pearson)
	assert.NoError(t, err)

	flags := HighlyCorrelated(m, 0.8)

	// diagonal entries are never flagged
	for i := range flags {
		assert.False(t, flags[i][i])
	}
	// a perfect positive correlation is excluded ...
	assert.False(t, flags[0][1])
	// ... while a perfect negative one is flagged
	assert.True(t, flags[0][3])
	assert.True(t, flags[3][0])
	// the wave column correlates with nothing
	for j := 0; j < 4; j++ {
		assert.False(t, flags[4][j])
	}

}

func TestRestrict(t *testing.T) {

	names := []string{"a", "b", "c", "d"}
	flags := [][]bool{
		{false, true, false, false},
		{true, false, false, false},
		{false, false, false, false},
		{false, false, false, false},
	}

	subNames, subFlags := Restrict(names, flags)

	assert.Equal(t, []string{"a", "b"}, subNames)
	assert.Equal(t, [][]bool{
		{false, true},
		{true, false},
	}, subFlags)

}

func TestRestrict_Empty(t *testing.T) {

	names := []string{"a", "b"}
	flags := [][]bool{
		{false, false},
		{false, false},
	}

	subNames, subFlags := Restrict(names, flags)

	assert.Empty(t, subNames)
	assert.Empty(t, subFlags)

}
