package main

import (
	"os"

	"github.com/manics/kddstats/internal/corr"
	"github.com/manics/kddstats/internal/dataset"
	"github.com/manics/kddstats/internal/kdd"
	"github.com/manics/kddstats/internal/report"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	corrMethod    string
	corrThreshold float64
)

var corrCmd = &cobra.Command{
	Use:   "corr",
	Short: "Pairwise correlation report over the numeric columns",
	Long: `corr computes the pairwise correlation matrix over all numeric columns
and reports the variables that are highly correlated with at least one
other variable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := source()
		if err != nil {
			return err
		}

		if !cmd.Flags().Changed("method") {
			corrMethod = cfg.Corr.Method
		}
		if !cmd.Flags().Changed("threshold") {
			corrThreshold = cfg.Corr.Threshold
		}
		method, err := corr.ParseMethod(corrMethod)
		if err != nil {
			return err
		}

		columns, err := dataset.Columns(cmd.Context(), src)
		if err != nil {
			return err
		}

		m, err := corr.Matrix(columns, method)
		if err != nil {
			return err
		}

		flags := corr.HighlyCorrelated(m, corrThreshold)
		names, restricted := corr.Restrict(kdd.ColumnNames, flags)

		log.Info().
			Str("method", method.String()).
			Float64("threshold", corrThreshold).
			Int("variables", len(names)).
			Msg("correlation complete")

		report.CorrTable(os.Stdout, names, restricted)

		r := report.NewReport(runID, cfg.Input)
		r.Corr = &report.CorrReport{
			Method:    method.String(),
			Threshold: corrThreshold,
			Names:     names,
			Flags:     restricted,
		}
		return persist("corr", r)
	},
}

func init() {
	corrCmd.Flags().StringVar(&corrMethod, "method", "", "correlation method: spearman or pearson (default from config, spearman)")
	corrCmd.Flags().Float64Var(&corrThreshold, "threshold", 0, "absolute correlation threshold (default from config, 0.8)")
	rootCmd.AddCommand(corrCmd)
}
