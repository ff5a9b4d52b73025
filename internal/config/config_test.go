package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nbenliogludev/gp-intake-agent/internal/intake"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
targets:
  - name: "Ark Medical Centre"
    url: "https://arkmedical.ie/"
`

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, BackendBrowserUse, cfg.Backend)
	assert.False(t, cfg.Salvage)
	assert.Equal(t, 5*time.Second, cfg.BrowserUse.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.BrowserUse.Timeout)
	assert.Equal(t, 40, cfg.BrowserUse.MaxSteps)

	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "Ark Medical Centre", cfg.Targets[0].Name)
	assert.Equal(t, "https://arkmedical.ie/", cfg.Targets[0].URL)
}

func TestLoadBindsCredentialsFromEnv(t *testing.T) {
	t.Setenv("BROWSER_USE_API_KEY", "bu-test-key")
	t.Setenv("OPENAI_API_KEY", "oa-test-key")

	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "bu-test-key", cfg.BrowserUse.APIKey)
	assert.Equal(t, "oa-test-key", cfg.OpenAI.APIKey)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
backend: openai
salvage: true
browser_use:
  poll_interval: 2s
  timeout: 3m
  max_steps: 15
openai:
  model: gpt-4o
targets:
  - name: "Ark Medical Centre"
    url: "https://arkmedical.ie/"
`))
	require.NoError(t, err)

	assert.Equal(t, BackendOpenAI, cfg.Backend)
	assert.True(t, cfg.Salvage)
	assert.Equal(t, 2*time.Second, cfg.BrowserUse.PollInterval)
	assert.Equal(t, 3*time.Minute, cfg.BrowserUse.Timeout)
	assert.Equal(t, 15, cfg.BrowserUse.MaxSteps)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateMissingBrowserUseCredential(t *testing.T) {
	cfg := &Config{
		Backend: BackendBrowserUse,
		Targets: []intake.PracticeTarget{{Name: "Ark", URL: "https://arkmedical.ie/"}},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, intake.ErrMissingCredential))
	assert.Contains(t, err.Error(), "BROWSER_USE_API_KEY")
}

func TestValidateMissingOpenAICredential(t *testing.T) {
	cfg := &Config{
		Backend: BackendOpenAI,
		Targets: []intake.PracticeTarget{{Name: "Ark", URL: "https://arkmedical.ie/"}},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, intake.ErrMissingCredential))
}

func TestValidateSalvageNeedsOpenAIKey(t *testing.T) {
	cfg := &Config{
		Backend:    BackendBrowserUse,
		Salvage:    true,
		BrowserUse: BrowserUseConfig{APIKey: "bu-key"},
		Targets:    []intake.PracticeTarget{{Name: "Ark", URL: "https://arkmedical.ie/"}},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, intake.ErrMissingCredential))
}

func TestValidateUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "selenium"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestValidateRequiresTargets(t *testing.T) {
	cfg := &Config{
		Backend:    BackendBrowserUse,
		BrowserUse: BrowserUseConfig{APIKey: "bu-key"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, intake.ErrValidation))
}
