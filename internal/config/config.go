// Package config loads the run configuration: practice targets and tuning
// come from a YAML file, credentials come only from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/nbenliogludev/gp-intake-agent/internal/intake"
)

const (
	BackendBrowserUse = "browser-use"
	BackendOpenAI     = "openai"
)

type Config struct {
	Backend string                  `mapstructure:"backend"`
	Targets []intake.PracticeTarget `mapstructure:"targets"`
	Output  string                  `mapstructure:"output"`
	Salvage bool                    `mapstructure:"salvage"`

	BrowserUse BrowserUseConfig `mapstructure:"browser_use"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
}

type BrowserUseConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MaxSteps     int           `mapstructure:"max_steps"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Load reads cfgFile (optional; defaults apply without one) and overlays
// credentials from the environment.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Credentials are env-only so they never end up in a config file.
	_ = v.BindEnv("browser_use.api_key", "BROWSER_USE_API_KEY")
	_ = v.BindEnv("openai.api_key", "OPENAI_API_KEY")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendBrowserUse)
	v.SetDefault("salvage", false)
	v.SetDefault("browser_use.poll_interval", 5*time.Second)
	v.SetDefault("browser_use.timeout", 10*time.Minute)
	v.SetDefault("browser_use.max_steps", 40)
}

// Validate fails fast, before any network call, when the selected backend
// has no credential or the config is otherwise unusable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendBrowserUse:
		if c.BrowserUse.APIKey == "" {
			return fmt.Errorf("%w: BROWSER_USE_API_KEY is not set", intake.ErrMissingCredential)
		}
	case BackendOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("%w: OPENAI_API_KEY is not set", intake.ErrMissingCredential)
		}
	default:
		return fmt.Errorf("unknown backend %q (expected %q or %q)", c.Backend, BackendBrowserUse, BackendOpenAI)
	}

	if c.Salvage && c.OpenAI.APIKey == "" {
		return fmt.Errorf("%w: salvage requires OPENAI_API_KEY", intake.ErrMissingCredential)
	}
	return intake.ValidateTargets(c.Targets)
}
