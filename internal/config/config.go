// Package config provides configuration management for glyphpath using Viper.
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/glyphpath/glyphpath/internal/errors"
)

// AppName is the application name used for config file naming.
const AppName = "glyphpath"

// Config represents the top-level configuration structure.
type Config struct {
	// LogFormat is the default log output format: text or json.
	LogFormat string `mapstructure:"log_format" yaml:"log_format"`

	// TableFormat is the default output format for the table command:
	// yaml or toml.
	TableFormat string `mapstructure:"table_format" yaml:"table_format"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))

	viper.SetEnvPrefix("GLYPHPATH")
	viper.AutomaticEnv()

	viper.SetDefault("log_format", "text")
	viper.SetDefault("table_format", "yaml")
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Missing file is only an error when the user named one.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "log_format %q", c.LogFormat)
	}
	switch c.TableFormat {
	case "", "yaml", "toml":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "table_format %q", c.TableFormat)
	}
	return nil
}
