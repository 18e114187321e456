package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvExtractTemperature   = "DDR_EXTRACT_TEMPERATURE"
	EnvSynthesisTemperature = "DDR_SYNTHESIS_TEMPERATURE"

	DefaultExtractTemperature   = 0.1
	DefaultSynthesisTemperature = 0.2
)

// WorkflowConfig holds oracle generation settings per stage. Pointer fields
// distinguish "not set" from an explicit 0 temperature.
type WorkflowConfig struct {
	ExtractTemperature   *float64 `toml:"extract_temperature"`
	SynthesisTemperature *float64 `toml:"synthesis_temperature"`
}

// Extract returns the extraction temperature.
func (c *WorkflowConfig) Extract() float64 {
	if c.ExtractTemperature == nil {
		return DefaultExtractTemperature
	}
	return *c.ExtractTemperature
}

// Synthesis returns the synthesis temperature.
func (c *WorkflowConfig) Synthesis() float64 {
	if c.SynthesisTemperature == nil {
		return DefaultSynthesisTemperature
	}
	return *c.SynthesisTemperature
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WorkflowConfig) Finalize() error {
	c.loadDefaults()
	if err := c.loadEnv(); err != nil {
		return err
	}
	return c.validate()
}

// Merge overwrites fields set in overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.ExtractTemperature != nil {
		c.ExtractTemperature = overlay.ExtractTemperature
	}
	if overlay.SynthesisTemperature != nil {
		c.SynthesisTemperature = overlay.SynthesisTemperature
	}
}

func (c *WorkflowConfig) loadDefaults() {
	if c.ExtractTemperature == nil {
		t := DefaultExtractTemperature
		c.ExtractTemperature = &t
	}
	if c.SynthesisTemperature == nil {
		t := DefaultSynthesisTemperature
		c.SynthesisTemperature = &t
	}
}

func (c *WorkflowConfig) loadEnv() error {
	parse := func(envVar string, dst **float64) error {
		v := os.Getenv(envVar)
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envVar, err)
		}
		*dst = &f
		return nil
	}

	if err := parse(EnvExtractTemperature, &c.ExtractTemperature); err != nil {
		return err
	}
	return parse(EnvSynthesisTemperature, &c.SynthesisTemperature)
}

func (c *WorkflowConfig) validate() error {
	if t := c.Extract(); t < 0 || t > 1 {
		return fmt.Errorf("extract_temperature %v outside [0,1]", t)
	}
	if t := c.Synthesis(); t < 0 || t > 1 {
		return fmt.Errorf("synthesis_temperature %v outside [0,1]", t)
	}
	return nil
}
