package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultBaseURL = "https://mc.agaii.org/grok/v1"
	DefaultModel   = "grok-3"
)

type Config struct {
	API APIConfig `mapstructure:"api"`
}

type APIConfig struct {
	URL   string `mapstructure:"url"`
	Model string `mapstructure:"model"`
	Key   string `mapstructure:"key"`
	// Timeout bounds non-streaming requests. Zero means no deadline;
	// set it to cut off a stalled endpoint.
	Timeout time.Duration `mapstructure:"timeout"`
}

func Load() (Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.API.URL == "" {
		c.API.URL = DefaultBaseURL
	}
	if c.API.Model == "" {
		c.API.Model = DefaultModel
	}
}
