package buffer

import (
	"fmt"
	"math"
)

// Stats is a set of statistical properties of a set of numbers.
// Mean and variance are tracked incrementally, so a Stats never needs
// to hold on to the values pushed into it.
type Stats struct {
	count          int
	nonZero        int
	sum            float64
	min, max       float64
	mean, dSquared float64
}

// NewStats creates a new Stats.
func NewStats() *Stats {
	return &Stats{
		min: math.MaxFloat64,
		max: -math.MaxFloat64,
	}
}

// Push adds another element to the set.
func (s *Stats) Push(v float64) {
	s.count++
	s.sum += v
	diff := (v - s.mean) / float64(s.count)
	mean := s.mean + diff
	squaredDiff := (v - mean) * (v - s.mean)
	s.dSquared += squaredDiff
	s.mean = mean

	if v != 0 {
		s.nonZero++
	}

	if s.min > v {
		s.min = v
	}

	if s.max < v {
		s.max = v
	}
}

// Mean returns the average value of the set.
func (s Stats) Mean() float64 {
	return s.mean
}

// Sum returns the sum of all elements.
func (s Stats) Sum() float64 {
	return s.sum
}

// Count returns the number of elements.
func (s Stats) Count() int {
	return s.count
}

// NonZero returns the number of non-zero elements.
func (s Stats) NonZero() int {
	return s.nonZero
}

// Min returns the smallest element of the set.
// It is only meaningful once at least one element has been pushed.
func (s Stats) Min() float64 {
	return s.min
}

// Max returns the largest element of the set.
func (s Stats) Max() float64 {
	return s.max
}

// Variance is the mathematical variance of the set.
func (s Stats) Variance() float64 {
	if s.count == 0 {
		return 0
	}
	return s.dSquared / float64(s.count)
}

// StDev is the standard deviation of the set.
func (s Stats) StDev() float64 {
	return math.Sqrt(s.Variance())
}

// SampleVariance is the sample variance of the set.
func (s Stats) SampleVariance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.dSquared / float64(s.count-1)
}

// SampleStDev is the sample standard deviation of the set.
func (s Stats) SampleStDev() float64 {
	return math.Sqrt(s.SampleVariance())
}

// StatsCollector is a collection of Stats variables.
// This enables multi-dimensional tracking, one Stats per column.
type StatsCollector struct {
	dim   int
	stats []*Stats
}

// NewStatsCollector creates a new Stats collector of the given dimension.
func NewStatsCollector(dim int) *StatsCollector {
	stats := make([]*Stats, dim)
	for i := 0; i < dim; i++ {
		stats[i] = NewStats()
	}
	return &StatsCollector{
		dim:   dim,
		stats: stats,
	}
}

// Push pushes each value to the corresponding dimension.
func (sc *StatsCollector) Push(v ...float64) {
	if len(v) != sc.dim {
		panic(fmt.Sprintf("inconsistent dimensions %d vs %d", len(v), sc.dim))
	}
	for i := 0; i < len(sc.stats); i++ {
		sc.stats[i].Push(v[i])
	}
}

// Dim returns the number of tracked dimensions.
func (sc StatsCollector) Dim() int {
	return sc.dim
}

// Stats returns the per-dimension statistics.
func (sc StatsCollector) Stats() []*Stats {
	return sc.stats
}

// At returns the statistics for the given dimension.
func (sc StatsCollector) At(i int) *Stats {
	return sc.stats[i]
}

// Size returns the number of elements pushed so far.
func (sc *StatsCollector) Size() int {
	// we expect all dimensions to have the same size
	return sc.stats[0].count
}
