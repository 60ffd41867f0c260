// Package config loads the application configuration from a YAML file, with
// API keys taken from the environment (optionally seeded via a .env file).
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nithin218/mindmate/pkg/domain"
)

// Provider names accepted in the config file.
const (
	ProviderLocal  = "local"
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
)

// ModelConfig selects a model on an OpenAI-compatible endpoint.
type ModelConfig struct {
	ModelName string `yaml:"model_name"`
	BaseURL   string `yaml:"base_url"`
	// APIKeyEnv names the environment variable holding the key.
	APIKeyEnv string `yaml:"api_key_env"`
}

// LLMConfig holds the per-provider model settings.
type LLMConfig struct {
	Groq   ModelConfig `yaml:"groq"`
	OpenAI ModelConfig `yaml:"openai"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string `yaml:"port"`
}

// RedisConfig holds the optional record-store backend. An empty address
// selects the in-memory store.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config is the root configuration document.
type Config struct {
	Provider   string       `yaml:"provider"`
	LLM        LLMConfig    `yaml:"llm"`
	Server     ServerConfig `yaml:"server"`
	Redis      RedisConfig  `yaml:"redis"`
	MaxRetries *int         `yaml:"max_retries"`
}

// Default returns the built-in configuration: the offline local provider,
// with Groq and OpenAI presets ready to be switched on.
func Default() *Config {
	return &Config{
		Provider: ProviderLocal,
		LLM: LLMConfig{
			Groq: ModelConfig{
				ModelName: "llama-3.3-70b-versatile",
				BaseURL:   "https://api.groq.com/openai/v1",
				APIKeyEnv: "GROQ_API_KEY",
			},
			OpenAI: ModelConfig{
				ModelName: "gpt-4o-mini",
				APIKeyEnv: "OPENAI_API_KEY",
			},
		},
		Server: ServerConfig{Port: "8080"},
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	switch cfg.Provider {
	case ProviderLocal, ProviderGroq, ProviderOpenAI:
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return cfg, nil
}

// Retries resolves the configured retry bound.
func (c *Config) Retries() int {
	if c.MaxRetries != nil && *c.MaxRetries >= 0 {
		return *c.MaxRetries
	}
	return domain.MaxRetries
}

// Model returns the model settings and API key for the active provider.
func (c *Config) Model() (ModelConfig, string, error) {
	var mc ModelConfig
	switch c.Provider {
	case ProviderGroq:
		mc = c.LLM.Groq
	case ProviderOpenAI:
		mc = c.LLM.OpenAI
	default:
		return ModelConfig{}, "", fmt.Errorf("provider %q has no model config", c.Provider)
	}

	key := os.Getenv(mc.APIKeyEnv)
	if key == "" {
		return ModelConfig{}, "", fmt.Errorf("environment variable %s is not set", mc.APIKeyEnv)
	}
	return mc, key, nil
}
