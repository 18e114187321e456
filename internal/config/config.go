package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/ddr/internal/documents"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"
	EnvFile              = ".env"

	EnvDDREnv     = "DDR_ENV"
	EnvDDRVersion = "DDR_VERSION"
)

var renderEnv = &documents.Env{
	DPI:          "DDR_RENDER_DPI",
	MaxImageSize: "DDR_RENDER_MAX_IMAGE_SIZE",
}

// Config is the root configuration for a report run. It is constructed once
// at process start and passed explicitly to the components that need it.
type Config struct {
	Agent    gaconfig.AgentConfig `toml:"agent"`
	Files    FilesConfig          `toml:"files"`
	Workflow WorkflowConfig       `toml:"workflow"`
	Render   documents.Config     `toml:"render"`
	Version  string               `toml:"version"`
}

// Env returns the DDR_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvDDREnv); env != "" {
		return env
	}
	return "local"
}

// Load reads the optional .env file into the process environment, then the
// base config (if present), applies any environment overlay, and finalizes
// all values. Without a config.toml, defaults and environment variables
// provide all configuration.
func Load() (*Config, error) {
	if err := LoadEnvFile(EnvFile); err != nil {
		return nil, err
	}

	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables already set take precedence. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Agent.Merge(&overlay.Agent)
	c.Files.Merge(&overlay.Files)
	c.Workflow.Merge(&overlay.Workflow)
	c.Render.Merge(&overlay.Render)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Files.Finalize(); err != nil {
		return fmt.Errorf("files: %w", err)
	}
	if err := c.Workflow.Finalize(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}
	if err := c.Render.Finalize(renderEnv); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvDDRVersion); v != "" {
		c.Version = v
	}
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvDDREnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
