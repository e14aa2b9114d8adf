package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/manics/kddstats/infra/config"
	"github.com/manics/kddstats/internal/dataset"
	"github.com/manics/kddstats/internal/metrics"
	"github.com/manics/kddstats/internal/report"
	"github.com/manics/kddstats/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	inputPath   string
	save        bool
	metricsPort int
	debug       bool

	cfg   *config.Config
	runID string
)

var rootCmd = &cobra.Command{
	Use:   "kddstats",
	Short: "Exploratory statistics over the KDD-Cup-99 network intrusion dataset",
	Long: `kddstats computes per-column summary statistics, per-label breakdowns
and pairwise correlation over KDD-Cup-99 connection records.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if inputPath != "" {
			cfg.Input = inputPath
		}
		if metricsPort != 0 {
			cfg.MetricsPort = metricsPort
		}

		runID = uuid.New().String()
		log.Info().Str("run", runID).Str("input", cfg.Input).Msg("starting analysis")

		metrics.Serve(cfg.MetricsPort)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (json)")
	rootCmd.PersistentFlags().StringVar(&inputPath, "input", "", "dataset path, gzip-compressed or plain text")
	rootCmd.PersistentFlags().BoolVar(&save, "save", false, "save the run report as json")
	rootCmd.PersistentFlags().IntVar(&metricsPort, "metrics-port", 0, "expose prometheus metrics on this port (0 disables)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// source builds the record source for the configured input.
func source() (dataset.Source, error) {
	if cfg.Input == "" {
		return nil, fmt.Errorf("no input dataset given, use --input or a config file")
	}
	return dataset.NewFileSource(cfg.Input), nil
}

// persist saves the report when the run was started with --save.
func persist(kind string, r *report.Report) error {
	if !save {
		return nil
	}
	registry := storage.NewJsonRegistry(cfg.ReportsDir)
	key := storage.Key{Run: runID, Kind: kind}
	err := registry.Put(key, r)
	if err != nil {
		return fmt.Errorf("could not save report: %w", err)
	}
	log.Info().Str("run", runID).Str("kind", kind).Msg("report saved")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
