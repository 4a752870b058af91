package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errStr string
	}{
		{"unknown symbology", func(c *Config) { c.Symbology = "code128" }, "unknown symbology"},
		{"unknown format", func(c *Config) { c.Format = "png" }, "unknown output format"},
		{"pixmult low", func(c *Config) { c.PixMult = 0 }, "pixel multiplier"},
		{"pixmult high", func(c *Config) { c.PixMult = 13; c.SepHt = 13 }, "pixel multiplier"},
		{"x undercut", func(c *Config) { c.XUndercut = 1 }, "x undercut"},
		{"y undercut", func(c *Config) { c.YUndercut = 1 }, "y undercut"},
		{"sep height low", func(c *Config) { c.PixMult = 2; c.SepHt = 1 }, "separator height"},
		{"sep height high", func(c *Config) { c.SepHt = 3 }, "separator height"},
		{"long data file", func(c *Config) { c.DataFile = strings.Repeat("x", 121) }, "data file"},
		{"long out file", func(c *Config) { c.OutFile = strings.Repeat("x", 121) }, "out file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errStr)
		})
	}
}

func TestValidateAcceptsFullRanges(t *testing.T) {
	cfg := Default()
	cfg.Symbology = "gs1-128-ccc"
	cfg.Format = "tiff"
	cfg.PixMult = 12
	cfg.XUndercut = 11
	cfg.YUndercut = 11
	cfg.SepHt = 24
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gs1code.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
symbology = "databar-expanded"
pixel_multiplier = 3
x_undercut = 1
y_undercut = 1
separator_height = 4
format = "raw"
data_file = "in.txt"
out_file = "out.raw"
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "databar-expanded", cfg.Symbology)
	assert.Equal(t, 3, cfg.PixMult)
	assert.Equal(t, 4, cfg.SepHt)
	assert.Equal(t, "raw", cfg.Format)
	assert.Equal(t, "in.txt", cfg.DataFile)
	assert.Equal(t, "out.raw", cfg.OutFile)
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gs1code.toml")
	require.NoError(t, os.WriteFile(path, []byte(`symbology = "qr"`+"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "qr", cfg.Symbology)
	assert.Equal(t, 1, cfg.PixMult)
	assert.Equal(t, "bmp", cfg.Format)
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gs1code.toml")
	require.NoError(t, os.WriteFile(path, []byte(`pixel_multiplier = 99`+"\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
