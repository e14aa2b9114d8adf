package buffer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_Push(t *testing.T) {

	type test struct {
		values   []float64
		mean     float64
		variance float64
		min      float64
		max      float64
		nonZero  int
	}

	tests := map[string]test{
		"single": {
			values:   []float64{5},
			mean:     5,
			variance: 0,
			min:      5,
			max:      5,
			nonZero:  1,
		},
		"constant": {
			values:   []float64{2, 2, 2, 2},
			mean:     2,
			variance: 0,
			min:      2,
			max:      2,
			nonZero:  4,
		},
		"zeros": {
			values:   []float64{0, 0, 4},
			mean:     4.0 / 3.0,
			variance: 32.0 / 9.0,
			min:      0,
			max:      4,
			nonZero:  1,
		},
		"negative": {
			values:   []float64{-1, 1},
			mean:     0,
			variance: 1,
			min:      -1,
			max:      1,
			nonZero:  2,
		},
		"spread": {
			values:   []float64{1, 2, 3, 4, 5},
			mean:     3,
			variance: 2,
			min:      1,
			max:      5,
			nonZero:  5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stats := NewStats()
			for _, v := range tt.values {
				stats.Push(v)
			}
			assert.Equal(t, len(tt.values), stats.Count())
			assert.Equal(t, tt.nonZero, stats.NonZero())
			assert.InDelta(t, tt.mean, stats.Mean(), 1e-9)
			assert.InDelta(t, tt.variance, stats.Variance(), 1e-9)
			assert.Equal(t, tt.min, stats.Min())
			assert.Equal(t, tt.max, stats.Max())
		})
	}

}

// the standard deviation must always be the non-negative square root of the variance
func TestStats_StDev(t *testing.T) {

	stats := NewStats()

	for i := 0; i < 1000; i++ {
		stats.Push(math.Sin(0.1 * float64(i)))
		assert.True(t, stats.Variance() >= 0)
		assert.InDelta(t, math.Sqrt(stats.Variance()), stats.StDev(), 1e-12)
	}

}

func TestStatsCollector_Push(t *testing.T) {

	collector := NewStatsCollector(3)

	for i := 1; i <= 10; i++ {
		collector.Push(float64(i), float64(2*i), 0)
	}

	assert.Equal(t, 3, collector.Dim())
	assert.Equal(t, 10, collector.Size())
	assert.InDelta(t, 5.5, collector.At(0).Mean(), 1e-9)
	assert.InDelta(t, 11.0, collector.At(1).Mean(), 1e-9)
	assert.Equal(t, 0, collector.At(2).NonZero())
	assert.Equal(t, 10.0, collector.At(0).Max())
	assert.Equal(t, 2.0, collector.At(1).Min())

}

func TestStatsCollector_PushPanicsOnDimensionMismatch(t *testing.T) {

	collector := NewStatsCollector(2)

	assert.Panics(t, func() {
		collector.Push(1.0)
	})

}
