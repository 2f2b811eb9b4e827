package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "isobot.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, 60*time.Second, cfg.timeoutDuration())
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
provider = "claude"
model = "claude-sonnet-4-20250514"
api_key = "file-key"
timeout = "30s"
temperature = 0.2
`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "claude", cfg.Provider)
	assert.Equal(t, "claude-sonnet-4-20250514", cfg.Model)
	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, 30*time.Second, cfg.timeoutDuration())
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
}

func TestLoadConfigEnvFallbackPerProvider(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gemini-env-key")

	path := writeConfig(t, `provider = "gemini"`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-env-key", cfg.APIKey)
}

func TestLoadConfigFileKeyWinsOverEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")

	path := writeConfig(t, `
provider = "openai"
api_key = "file-key"
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.APIKey)
}

func TestLoadConfigRejectsUnknownProvider(t *testing.T) {
	path := writeConfig(t, `provider = "watson"`)

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigRejectsBadToml(t *testing.T) {
	path := writeConfig(t, `provider = [broken`)

	_, err := loadConfig(path)
	require.Error(t, err)
}

func TestTimeoutDurationFallback(t *testing.T) {
	cfg := Config{Timeout: "not-a-duration"}
	assert.Equal(t, 60*time.Second, cfg.timeoutDuration())

	cfg = Config{Timeout: "-5s"}
	assert.Equal(t, 60*time.Second, cfg.timeoutDuration())
}
