package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nithin218/mindmate/internal/config"
	"github.com/nithin218/mindmate/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.ProviderLocal, cfg.Provider)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, domain.MaxRetries, cfg.Retries())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
provider: groq
llm:
  groq:
    model_name: llama-3.1-8b-instant
server:
  port: "9090"
max_retries: 1
redis:
  addr: localhost:6379
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.ProviderGroq, cfg.Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.LLM.Groq.ModelName)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "GROQ_API_KEY", cfg.LLM.Groq.APIKeyEnv)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 1, cfg.Retries())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoad_RejectsUnknownProvider(t *testing.T) {
	path := writeConfig(t, "provider: huggingface\n")
	_, err := config.Load(path)
	assert.ErrorContains(t, err, "unknown provider")
}

func TestModel_RequiresAPIKey(t *testing.T) {
	path := writeConfig(t, "provider: groq\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	t.Setenv("GROQ_API_KEY", "")
	_, _, err = cfg.Model()
	assert.ErrorContains(t, err, "GROQ_API_KEY")

	t.Setenv("GROQ_API_KEY", "gsk-test")
	mc, key, err := cfg.Model()
	require.NoError(t, err)
	assert.Equal(t, "gsk-test", key)
	assert.Equal(t, "llama-3.3-70b-versatile", mc.ModelName)
}
