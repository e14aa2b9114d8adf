package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Config carries the run parameters for the analysis commands.
// Command line flags override any value loaded from file.
type Config struct {
	// Input is the path to the dataset, gzip-compressed or plain text.
	Input string `json:"input"`
	// Labels restricts the per-label breakdown to the given labels.
	// Empty means every label found in the dataset.
	Labels []string `json:"labels"`
	// Column is the feature column for the per-label breakdown table.
	Column string `json:"column"`
	// Corr configures the correlation report.
	Corr CorrConfig `json:"corr"`
	// MetricsPort exposes prometheus metrics when non-zero.
	MetricsPort int `json:"metrics_port"`
	// ReportsDir is where saved reports are written.
	ReportsDir string `json:"reports_dir"`
}

// CorrConfig selects the correlation estimator and the report threshold.
type CorrConfig struct {
	Method    string  `json:"method"`
	Threshold float64 `json:"threshold"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Column: "duration",
		Corr: CorrConfig{
			Method:    "spearman",
			Threshold: 0.8,
		},
	}
}

// Load loads the config from the given file, falling back to defaults
// for missing fields.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load config from %s: %w", path, err)
	}

	err = json.Unmarshal(b, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal the config from %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("loaded config")

	return cfg, nil
}

// MustLoad loads the config from the given file and panics on failure.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err.Error())
	}
	return cfg
}
