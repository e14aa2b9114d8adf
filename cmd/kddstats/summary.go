package main

import (
	"os"

	"github.com/manics/kddstats/internal/buffer"
	"github.com/manics/kddstats/internal/dataset"
	"github.com/manics/kddstats/internal/kdd"
	"github.com/manics/kddstats/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var summaryLabel string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Per-column summary statistics, over the whole dataset or one label",
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source()
		if err != nil {
			return err
		}

		ctx := cmd.Context()

		var collector *buffer.StatsCollector
		if summaryLabel == "" {
			collector, err = dataset.Summary(ctx, src)
		} else {
			collector, err = dataset.SummaryByLabel(ctx, src, summaryLabel)
		}
		if err != nil {
			return err
		}

		log.Info().
			Str("label", summaryLabel).
			Int("records", collector.Size()).
			Msg("summary complete")

		report.SummaryBlock(os.Stdout, kdd.ColumnNames, collector)

		r := report.NewReport(runID, cfg.Input)
		label := summaryLabel
		if label == "" {
			label = "*"
		}
		r.AddLabel(label, kdd.ColumnNames, collector)
		return persist("summary", r)
	},
}

func init() {
	summaryCmd.Flags().StringVar(&summaryLabel, "label", "", "restrict statistics to records with exactly this label (e.g. 'normal.')")
	rootCmd.AddCommand(summaryCmd)
}
