package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds server settings. Values come from the environment with
// the FREIGHT_ prefix (FREIGHT_PORT, FREIGHT_ORS_API_KEY, ...) or an
// optional config file.
type Config struct {
	Port        string `mapstructure:"port"`
	ORSAPIKey   string `mapstructure:"ors_api_key"`
	DatabaseURL string `mapstructure:"database_url"`
	TablesPath  string `mapstructure:"tables_path"`
	LogLevel    string `mapstructure:"log_level"`
	LogPretty   bool   `mapstructure:"log_pretty"`
}

// Load reads configuration from the environment and, when present, a
// config.yaml in the working directory. Environment values win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("tables_path", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_pretty", false)

	v.SetEnvPrefix("FREIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("load config: read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("load config: unmarshal: %w", err)
	}

	return &cfg, nil
}
