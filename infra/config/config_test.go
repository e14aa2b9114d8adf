package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {

	cfg := Default()

	assert.Equal(t, "duration", cfg.Column)
	assert.Equal(t, "spearman", cfg.Corr.Method)
	assert.Equal(t, 0.8, cfg.Corr.Threshold)
	assert.Equal(t, 0, cfg.MetricsPort)

}

func TestLoad(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(path, []byte(`{
		"input": "kddcup.data_10_percent.gz",
		"labels": ["normal.", "guess_passwd."],
		"corr": {"method": "pearson", "threshold": 0.9}
	}`), 0644)
	assert.NoError(t, err)

	cfg, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, "kddcup.data_10_percent.gz", cfg.Input)
	assert.Equal(t, []string{"normal.", "guess_passwd."}, cfg.Labels)
	assert.Equal(t, "pearson", cfg.Corr.Method)
	assert.Equal(t, 0.9, cfg.Corr.Threshold)
	// defaults survive for fields the file does not set
	assert.Equal(t, "duration", cfg.Column)

}

func TestLoad_Empty(t *testing.T) {

	cfg, err := Load("")

	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)

}

func TestLoad_Missing(t *testing.T) {

	_, err := Load("no-such-config.json")

	assert.Error(t, err)

}

func TestMustLoad_Panics(t *testing.T) {

	assert.Panics(t, func() {
		MustLoad("no-such-config.json")
	})

}
