package config

import (
	"fmt"
	"os"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

const (
	EnvAgentProviderName = "DDR_AGENT_PROVIDER_NAME"
	EnvAgentBaseURL      = "DDR_AGENT_BASE_URL"
	EnvAgentModelName    = "DDR_AGENT_MODEL_NAME"

	// EnvAgentToken carries the oracle API credential.
	EnvAgentToken      = "DDR_AGENT_TOKEN"
	EnvAgentDeployment = "DDR_AGENT_DEPLOYMENT"
	EnvAgentAPIVersion = "DDR_AGENT_API_VERSION"
	EnvAgentAuthType   = "DDR_AGENT_AUTH_TYPE"

	DefaultAgentName = "ddr-analyst"
)

// provider option keys populated from the environment
var agentOptionEnv = []struct {
	env string
	key string
}{
	{EnvAgentToken, "token"},
	{EnvAgentDeployment, "deployment"},
	{EnvAgentAPIVersion, "api_version"},
	{EnvAgentAuthType, "auth_type"},
}

// FinalizeAgent applies defaults from go-agents DefaultAgentConfig,
// environment variable overrides, and validation to an AgentConfig.
func FinalizeAgent(c *gaconfig.AgentConfig) error {
	loadAgentDefaults(c)
	loadAgentEnv(c)
	return validateAgent(c)
}

// Credential returns the provider token option, or "" when none is set.
func Credential(c *gaconfig.AgentConfig) string {
	if c.Provider == nil || c.Provider.Options == nil {
		return ""
	}
	token, _ := c.Provider.Options["token"].(string)
	return token
}

func loadAgentDefaults(c *gaconfig.AgentConfig) {
	if c.Name == "" {
		c.Name = DefaultAgentName
	}

	defaults := gaconfig.DefaultAgentConfig()
	defaults.Merge(c)
	*c = defaults
}

func loadAgentEnv(c *gaconfig.AgentConfig) {
	if c.Provider == nil {
		c.Provider = &gaconfig.ProviderConfig{}
	}
	if c.Provider.Options == nil {
		c.Provider.Options = make(map[string]any)
	}
	if c.Model == nil {
		c.Model = &gaconfig.ModelConfig{}
	}

	if v := os.Getenv(EnvAgentProviderName); v != "" {
		c.Provider.Name = v
	}
	if v := os.Getenv(EnvAgentBaseURL); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv(EnvAgentModelName); v != "" {
		c.Model.Name = v
	}

	for _, opt := range agentOptionEnv {
		if v := os.Getenv(opt.env); v != "" {
			c.Provider.Options[opt.key] = v
		}
	}
}

func validateAgent(c *gaconfig.AgentConfig) error {
	if c.Provider == nil || c.Provider.Name == "" {
		return fmt.Errorf("provider name required")
	}
	if c.Model == nil || c.Model.Name == "" {
		return fmt.Errorf("model name required")
	}
	return nil
}
