package config

import (
	"fmt"
	"os"
)

const (
	EnvGeneralReport = "DDR_GENERAL_REPORT"
	EnvThermalReport = "DDR_THERMAL_REPORT"
	EnvOutputReport  = "DDR_OUTPUT_REPORT"

	DefaultGeneralReport = "sample_general_report.pdf"
	DefaultThermalReport = "sample_thermal_report.pdf"
	DefaultOutputReport  = "Final_Client_Report.md"
)

// FilesConfig names the two input PDFs and the Markdown output, resolved
// relative to the working directory.
type FilesConfig struct {
	General string `toml:"general"`
	Thermal string `toml:"thermal"`
	Output  string `toml:"output"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *FilesConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *FilesConfig) Merge(overlay *FilesConfig) {
	if overlay.General != "" {
		c.General = overlay.General
	}
	if overlay.Thermal != "" {
		c.Thermal = overlay.Thermal
	}
	if overlay.Output != "" {
		c.Output = overlay.Output
	}
}

func (c *FilesConfig) loadDefaults() {
	if c.General == "" {
		c.General = DefaultGeneralReport
	}
	if c.Thermal == "" {
		c.Thermal = DefaultThermalReport
	}
	if c.Output == "" {
		c.Output = DefaultOutputReport
	}
}

func (c *FilesConfig) loadEnv() {
	if v := os.Getenv(EnvGeneralReport); v != "" {
		c.General = v
	}
	if v := os.Getenv(EnvThermalReport); v != "" {
		c.Thermal = v
	}
	if v := os.Getenv(EnvOutputReport); v != "" {
		c.Output = v
	}
}

func (c *FilesConfig) validate() error {
	if c.Output == c.General || c.Output == c.Thermal {
		return fmt.Errorf("output %q would overwrite an input report", c.Output)
	}
	return nil
}
