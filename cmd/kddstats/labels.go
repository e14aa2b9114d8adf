package main

import (
	"os"
	"sort"

	"github.com/manics/kddstats/internal/dataset"
	"github.com/manics/kddstats/internal/kdd"
	"github.com/manics/kddstats/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var labelsColumn string

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Per-label breakdown of one feature column",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("column") {
			labelsColumn = cfg.Column
		}
		col, err := kdd.ColumnIndex(labelsColumn)
		if err != nil {
			return err
		}

		groups, err := dataset.GroupByLabel(cmd.Context(), src)
		if err != nil {
			return err
		}

		labels := make([]string, 0, len(groups))
		for label := range groups {
			if !wanted(label) {
				continue
			}
			labels = append(labels, label)
		}
		sort.Strings(labels)

		total := 0
		rows := make([]report.LabelSummary, 0, len(labels))
		r := report.NewReport(runID, cfg.Input)
		for _, label := range labels {
			collector := groups[label]
			total += collector.Size()
			rows = append(rows, report.LabelSummary{
				Label: label,
				Stats: collector,
			})
			r.AddLabel(label, kdd.ColumnNames, collector)
		}

		log.Info().
			Int("labels", len(labels)).
			Int("records", total).
			Str("column", labelsColumn).
			Msg("breakdown complete")

		report.LabelTable(os.Stdout, labelsColumn, col, rows)

		return persist("labels", r)
	},
}

// wanted checks the label against the configured label selection.
func wanted(label string) bool {
	if len(cfg.Labels) == 0 {
		return true
	}
	for _, l := range cfg.Labels {
		if l == label {
			return true
		}
	}
	return false
}

func init() {
	labelsCmd.Flags().StringVar(&labelsColumn, "column", "", "feature column for the breakdown (default from config, 'duration')")
	rootCmd.AddCommand(labelsCmd)
}
