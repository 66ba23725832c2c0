package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultURL     = "http://localhost:11434"
	DefaultModel   = "llama3.1"
	DefaultTimeout = 2 * time.Minute

	DefaultClipboardTrigger = "<clip>"
	DefaultSendTrigger      = "~"
)

type Config struct {
	Ollama   OllamaConfig   `mapstructure:"ollama"`
	Triggers TriggersConfig `mapstructure:"triggers"`
}

type OllamaConfig struct {
	URL     string        `mapstructure:"url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type TriggersConfig struct {
	Clipboard string `mapstructure:"clipboard"`
	Send      string `mapstructure:"send"`
}

func Load() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	// an explicit timeout of 0 disables the deadline; the default only fills
	// in when the key is absent
	if cfg.Ollama.Timeout == 0 && !viper.IsSet("ollama.timeout") {
		cfg.Ollama.Timeout = DefaultTimeout
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Ollama.URL == "" {
		c.Ollama.URL = DefaultURL
	}
	if c.Ollama.Model == "" {
		c.Ollama.Model = DefaultModel
	}
	if c.Triggers.Clipboard == "" {
		c.Triggers.Clipboard = DefaultClipboardTrigger
	}
	if c.Triggers.Send == "" {
		c.Triggers.Send = DefaultSendTrigger
	}
}

func (c Config) Validate() error {
	u, err := url.Parse(c.Ollama.URL)
	if err != nil {
		return fmt.Errorf("invalid ollama.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid ollama.url scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("ollama.url has no host: %s", c.Ollama.URL)
	}
	if c.Ollama.Timeout < 0 {
		return fmt.Errorf("ollama.timeout must not be negative")
	}
	return nil
}
