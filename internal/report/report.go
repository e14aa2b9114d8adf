package report

import (
	"sort"
	"time"

	"github.com/manics/kddstats/internal/buffer"
)

// ColumnStats is the typed per-column statistics bundle,
// replacing positional indexing into an opaque summary object.
type ColumnStats struct {
	Name    string  `json:"name"`
	Mean    float64 `json:"mean"`
	StDev   float64 `json:"stdev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Count   int     `json:"count"`
	NonZero int     `json:"non_zero"`
}

// LabelReport captures the statistics collected for one label.
type LabelReport struct {
	Count   int           `json:"count"`
	Columns []ColumnStats `json:"columns"`
}

// CorrReport captures the restricted high-correlation matrix of a run.
type CorrReport struct {
	Method    string   `json:"method"`
	Threshold float64  `json:"threshold"`
	Names     []string `json:"names"`
	Flags     [][]bool `json:"flags"`
}

// Report is the serializable outcome of an analysis run.
type Report struct {
	ID      string                 `json:"id"`
	Created time.Time              `json:"created"`
	Input   string                 `json:"input"`
	Labels  map[string]LabelReport `json:"labels,omitempty"`
	Corr    *CorrReport            `json:"corr,omitempty"`
}

// NewReport creates an empty report for the given run.
func NewReport(id, input string) *Report {
	return &Report{
		ID:      id,
		Created: time.Now(),
		Input:   input,
		Labels:  make(map[string]LabelReport),
	}
}

// AddLabel records the collector statistics under the given label.
func (r *Report) AddLabel(label string, names []string, collector *buffer.StatsCollector) {
	columns := make([]ColumnStats, len(names))
	for i, name := range names {
		s := collector.At(i)
		columns[i] = ColumnStats{
			Name:    name,
			Mean:    s.Mean(),
			StDev:   s.StDev(),
			Min:     s.Min(),
			Max:     s.Max(),
			Count:   s.Count(),
			NonZero: s.NonZero(),
		}
	}
	r.Labels[label] = LabelReport{
		Count:   collector.Size(),
		Columns: columns,
	}
}

// SortedLabels returns the report labels in lexical order.
func (r *Report) SortedLabels() []string {
	labels := make([]string, 0, len(r.Labels))
	for label := range r.Labels {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}
