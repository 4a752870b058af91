// Package config is the thin configuration surface handed to the symbol
// renderer: symbology selection, device scaling knobs and input/output
// selection. The core encoder does not consult it; it only validates the
// values the renderer will rely on.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/gs1sw/gs1code/gs1"
)

// Symbologies accepted by the renderer.
var symbologies = map[string]bool{
	"databar-omni":         true,
	"databar-truncated":    true,
	"databar-stacked":      true,
	"databar-stacked-omni": true,
	"databar-limited":      true,
	"databar-expanded":     true,
	"upca":                 true,
	"upce":                 true,
	"ean13":                true,
	"ean8":                 true,
	"gs1-128-cca":          true,
	"gs1-128-ccc":          true,
	"qr":                   true,
	"dm":                   true,
}

// Output formats accepted by the renderer.
var formats = map[string]bool{
	"bmp":  true,
	"tiff": true,
	"raw":  true,
}

// Config selects a symbology and the device parameters for rendering it.
type Config struct {
	// Symbology names the barcode symbol family to render.
	Symbology string `toml:"symbology"`

	// PixMult is the number of device pixels per module, 1 to 12.
	PixMult int `toml:"pixel_multiplier"`

	// XUndercut and YUndercut shave pixels off each module edge to
	// compensate for ink spread; both must stay below PixMult.
	XUndercut int `toml:"x_undercut"`
	YUndercut int `toml:"y_undercut"`

	// SepHt is the height in pixels of the separator pattern between a
	// linear symbol and its 2D composite, PixMult to 2*PixMult.
	SepHt int `toml:"separator_height"`

	// Format selects the output serialisation: bmp, tiff or raw.
	Format string `toml:"format"`

	// DataFile and OutFile select the input and output; "-" means the
	// standard streams.
	DataFile string `toml:"data_file"`
	OutFile  string `toml:"out_file"`
}

// Default returns the renderer defaults: omnidirectional DataBar at one
// pixel per module, BMP output on the standard streams.
func Default() *Config {
	return &Config{
		Symbology: "databar-omni",
		PixMult:   1,
		SepHt:     1,
		Format:    "bmp",
		DataFile:  "-",
		OutFile:   "-",
	}
}

// Load reads a TOML configuration file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to load config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration against the renderer's ranges.
func (c *Config) Validate() error {
	if !symbologies[c.Symbology] {
		return errors.Errorf("unknown symbology '%s'", c.Symbology)
	}
	if !formats[c.Format] {
		return errors.Errorf("unknown output format '%s'", c.Format)
	}
	if c.PixMult < 1 || c.PixMult > 12 {
		return errors.Errorf("pixel multiplier must be 1 to 12, but is %d", c.PixMult)
	}
	if c.XUndercut < 0 || c.XUndercut >= c.PixMult {
		return errors.Errorf("x undercut must be 0 to %d, but is %d", c.PixMult-1, c.XUndercut)
	}
	if c.YUndercut < 0 || c.YUndercut >= c.PixMult {
		return errors.Errorf("y undercut must be 0 to %d, but is %d", c.PixMult-1, c.YUndercut)
	}
	if c.SepHt < c.PixMult || c.SepHt > 2*c.PixMult {
		return errors.Errorf("separator height must be %d to %d, but is %d",
			c.PixMult, 2*c.PixMult, c.SepHt)
	}
	if len(c.DataFile) > gs1.MaxFname {
		return errors.Errorf("data file name exceeds %d characters", gs1.MaxFname)
	}
	if len(c.OutFile) > gs1.MaxFname {
		return errors.Errorf("out file name exceeds %d characters", gs1.MaxFname)
	}
	return nil
}
