package dataset

import (
	"context"
	"fmt"

	"github.com/manics/kddstats/internal/buffer"
	"github.com/manics/kddstats/internal/kdd"
	"github.com/manics/kddstats/internal/metrics"
	"github.com/rs/zerolog/log"
)

// FilterLabel keeps only the vectors carrying exactly the target label
// and drops the label from the result.
func FilterLabel(in []kdd.LabeledVector, label string) []kdd.FeatureVector {
	out := make([]kdd.FeatureVector, 0, len(in))
	for _, lv := range in {
		if lv.Label == label {
			out = append(out, lv.Features)
		}
	}
	return out
}

// Summary computes per-column statistics over every record of the source.
func Summary(ctx context.Context, src Source) (*buffer.StatsCollector, error) {
	collector := buffer.NewStatsCollector(kdd.FeatureDim)
	err := scan(ctx, src, func(lv kdd.LabeledVector) {
		collector.Push(lv.Features...)
	})
	if err != nil {
		return nil, err
	}
	return collector, nil
}

// SummaryByLabel computes per-column statistics over the records
// carrying exactly the target label. Records are parsed with their label
// first and filtered before any value reaches the collector.
func SummaryByLabel(ctx context.Context, src Source, label string) (*buffer.StatsCollector, error) {
	collector := buffer.NewStatsCollector(kdd.FeatureDim)
	err := scan(ctx, src, func(lv kdd.LabeledVector) {
		if lv.Label == label {
			collector.Push(lv.Features...)
		}
	})
	if err != nil {
		return nil, err
	}
	return collector, nil
}

// GroupByLabel computes per-column statistics for every label in a single pass.
// Each record contributes to exactly one label's collector, so the per-label
// counts partition the total record count.
func GroupByLabel(ctx context.Context, src Source) (map[string]*buffer.StatsCollector, error) {
	groups := make(map[string]*buffer.StatsCollector)
	err := scan(ctx, src, func(lv kdd.LabeledVector) {
		collector, ok := groups[lv.Label]
		if !ok {
			collector = buffer.NewStatsCollector(kdd.FeatureDim)
			groups[lv.Label] = collector
		}
		collector.Push(lv.Features...)
	})
	if err != nil {
		return nil, err
	}
	return groups, nil
}

// Columns materializes the feature columns of the whole source,
// one slice per numeric column. This is the input shape the correlation
// computation wants.
func Columns(ctx context.Context, src Source) ([][]float64, error) {
	columns := make([][]float64, kdd.FeatureDim)
	err := scan(ctx, src, func(lv kdd.LabeledVector) {
		for i, v := range lv.Features {
			columns[i] = append(columns[i], v)
		}
	})
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// scan drives a full pass over the source, feeding each parsed record
// to the given collector function. A malformed record or a failing
// source aborts the scan.
func scan(ctx context.Context, src Source, collect func(kdd.LabeledVector)) error {
	count := 0
	err := src.Scan(ctx, func(line string) error {
		lv, err := kdd.ParseLabeled(line)
		if err != nil {
			metrics.Observer.IncrementParseErrors()
			return fmt.Errorf("record %d: %w", count+1, err)
		}
		metrics.Observer.IncrementRecords(lv.Label)
		collect(lv)
		count++
		return nil
	})
	if err != nil {
		return err
	}

	log.Debug().Int("records", count).Msg("scan complete")
	return nil
}
