package corr

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Method selects the pairwise correlation estimator.
type Method int

const (
	// Spearman is the rank-based correlation coefficient.
	Spearman Method = iota
	// Pearson is the linear correlation coefficient.
	Pearson
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case Spearman:
		return "spearman"
	case Pearson:
		return "pearson"
	}
	return "unknown"
}

// ParseMethod resolves a method by name.
func ParseMethod(name string) (Method, error) {
	switch name {
	case "spearman":
		return Spearman, nil
	case "pearson":
		return Pearson, nil
	}
	return Spearman, fmt.Errorf("unknown correlation method '%s'", name)
}

// Matrix computes the pairwise correlation matrix of the given columns.
// All columns must have the same length. The result is symmetric with a
// unit diagonal. Spearman correlation is Pearson correlation over the
// fractionally ranked columns.
func Matrix(columns [][]float64, method Method) (*mat.SymDense, error) {
	d := len(columns)
	if d == 0 {
		return nil, fmt.Errorf("no columns given")
	}
	n := len(columns[0])
	if n < 2 {
		return nil, fmt.Errorf("need at least 2 observations, got %d", n)
	}
	for i, c := range columns {
		if len(c) != n {
			return nil, fmt.Errorf("column %d has %d observations, expected %d", i, len(c), n)
		}
	}

	if method == Spearman {
		ranked := make([][]float64, d)
		for i, c := range columns {
			ranked[i] = rank(c)
		}
		columns = ranked
	}

	x := mat.NewDense(n, d, nil)
	for j, c := range columns {
		for i, v := range c {
			x.Set(i, j, v)
		}
	}

	dst := mat.NewSymDense(d, nil)
	stat.CorrelationMatrix(dst, x, nil)
	return dst, nil
}

// rank returns the fractional ranks of the values,
// averaging the ranks of ties.
func rank(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return values[idx[a]] < values[idx[b]]
	})

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		// ranks are 1-based, ties share the average rank of their run
		r := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = r
		}
		i = j + 1
	}
	return ranks
}

// HighlyCorrelated flags the entries with absolute correlation above the
// threshold, excluding the unit entries. Note the asymmetry: a perfect
// negative correlation of -1.0 is flagged while +1.0 is not.
func HighlyCorrelated(m *mat.SymDense, threshold float64) [][]bool {
	d := m.Symmetric()
	flags := make([][]bool, d)
	for i := 0; i < d; i++ {
		flags[i] = make([]bool, d)
		for j := 0; j < d; j++ {
			r := m.At(i, j)
			flags[i][j] = abs(r) > threshold && r < 1.0
		}
	}
	return flags
}

// Restrict reduces the flag matrix to the variables that are highly
// correlated with at least one other variable, returning the retained
// names and the restricted matrix.
func Restrict(names []string, flags [][]bool) ([]string, [][]bool) {
	keep := make([]int, 0, len(names))
	for i := range flags {
		for j := range flags[i] {
			if flags[i][j] {
				keep = append(keep, i)
				break
			}
		}
	}

	subNames := make([]string, len(keep))
	subFlags := make([][]bool, len(keep))
	for a, i := range keep {
		subNames[a] = names[i]
		subFlags[a] = make([]bool, len(keep))
		for b, j := range keep {
			subFlags[a][b] = flags[i][j]
		}
	}
	return subNames, subFlags
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
