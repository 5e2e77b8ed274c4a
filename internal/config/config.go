// Package config loads the optional HCL configuration for the starscribe
// CLI. A missing file yields defaults; a present file is validated.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete CLI configuration.
type Config struct {
	Output *OutputSettings `hcl:"output,block"`
	Clock  *ClockSettings  `hcl:"clock,block"`
}

// OutputSettings controls where and how reports are written.
type OutputSettings struct {
	Dir     string `hcl:"dir,optional"`
	Summary bool   `hcl:"summary,optional"`
}

// ClockSettings pins the house zone the header timestamps render in. The
// second header zone is always a fixed fifteen hours behind house time.
type ClockSettings struct {
	UTCOffsetHours int    `hcl:"utc_offset_hours,optional"`
	Abbrev         string `hcl:"abbrev,optional"`
	OffsetAbbrev   string `hcl:"offset_abbrev,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output: &OutputSettings{
			Dir: "hands",
		},
		Clock: &ClockSettings{
			UTCOffsetHours: 10,
			Abbrev:         "AEST",
			OffsetAbbrev:   "ET",
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults
// when the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}

	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Output == nil {
		cfg.Output = def.Output
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = def.Output.Dir
	}
	if cfg.Clock == nil {
		cfg.Clock = def.Clock
	}
	if cfg.Clock.Abbrev == "" {
		cfg.Clock.Abbrev = def.Clock.Abbrev
	}
	if cfg.Clock.OffsetAbbrev == "" {
		cfg.Clock.OffsetAbbrev = def.Clock.OffsetAbbrev
	}
}

// Validate checks the configuration for values no render could use.
func (c *Config) Validate() error {
	if c.Clock.UTCOffsetHours < -12 || c.Clock.UTCOffsetHours > 14 {
		return fmt.Errorf("config: utc_offset_hours %d out of range", c.Clock.UTCOffsetHours)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("config: output dir must not be empty")
	}
	return nil
}
