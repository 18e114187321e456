package documents

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/ddr/pkg/formatting"
)

// Config holds page rendering parameters.
type Config struct {
	DPI          int    `toml:"dpi"`
	MaxImageSize string `toml:"max_image_size"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	DPI          string
	MaxImageSize string
}

// MaxImageSizeBytes returns MaxImageSize as a byte count.
func (c *Config) MaxImageSizeBytes() int64 {
	size, _ := formatting.ParseBytes(c.MaxImageSize)
	return size
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.DPI != 0 {
		c.DPI = overlay.DPI
	}
	if overlay.MaxImageSize != "" {
		c.MaxImageSize = overlay.MaxImageSize
	}
}

func (c *Config) loadDefaults() {
	if c.DPI == 0 {
		c.DPI = 150
	}
	if c.MaxImageSize == "" {
		c.MaxImageSize = "20MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.DPI != "" {
		if v := os.Getenv(env.DPI); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.DPI = n
			}
		}
	}
	if env.MaxImageSize != "" {
		if v := os.Getenv(env.MaxImageSize); v != "" {
			c.MaxImageSize = v
		}
	}
}

func (c *Config) validate() error {
	if c.DPI < 36 || c.DPI > 600 {
		return fmt.Errorf("invalid dpi: %d", c.DPI)
	}
	size, err := formatting.ParseBytes(c.MaxImageSize)
	if err != nil {
		return fmt.Errorf("invalid max_image_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_image_size must be positive")
	}
	return nil
}
