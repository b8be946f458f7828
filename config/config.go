// Package config provides configuration for the HTTP template provider.
// Values come from code defaults, an optional config file and POKESIM_*
// environment variables, in increasing precedence.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sasakirione/pokesim/simerr"
)

// Deployment environments.
const (
	EnvProduction  = "production"
	EnvStaging     = "staging"
	EnvDevelopment = "development"
)

// Config is the application configuration.
type Config struct {
	Environment string         `mapstructure:"environment"`
	Provider    ProviderConfig `mapstructure:"provider"`
}

// ProviderConfig configures the HTTP template provider.
type ProviderConfig struct {
	ProductionURL  string        `mapstructure:"production_url"`
	StagingURL     string        `mapstructure:"staging_url"`
	DevelopmentURL string        `mapstructure:"development_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Load reads configuration: code defaults first, then an optional
// pokesim.yaml in the working directory, then POKESIM_* environment
// variables.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("provider.production_url", "https://templates.pokesim.example.com")
	v.SetDefault("provider.staging_url", "https://templates.staging.pokesim.example.com")
	v.SetDefault("provider.development_url", "http://localhost:8080")
	v.SetDefault("provider.timeout", 10*time.Second)

	v.SetConfigName("pokesim")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("POKESIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, simerr.Wrap(err, "config: reading config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, simerr.Wrap(err, "config: unmarshaling")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects unknown environments early.
func (c *Config) validate() error {
	switch c.Environment {
	case EnvProduction, EnvStaging, EnvDevelopment:
		return nil
	default:
		return simerr.Newf(simerr.CodeInvalidArgument,
			"config: unknown environment %q", c.Environment)
	}
}

// BaseURL returns the template provider base URL for the configured
// environment.
func (c *Config) BaseURL() string {
	switch c.Environment {
	case EnvProduction:
		return c.Provider.ProductionURL
	case EnvStaging:
		return c.Provider.StagingURL
	default:
		return c.Provider.DevelopmentURL
	}
}
