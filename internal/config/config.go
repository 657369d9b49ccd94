// Package config loads conshell configuration from the environment, an
// optional .env file, and an optional config file, with viper handling
// precedence.
package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"conshell/internal/logger"
)

// Config holds the settings of one shell session.
type Config struct {
	Prompt          string `mapstructure:"prompt"`
	LogLevel        string `mapstructure:"log-level"`
	LogFile         string `mapstructure:"log-file"`
	DefaultCommands bool   `mapstructure:"default-commands"`
	TestMode        bool   `mapstructure:"test-mode"`
}

// Load reads configuration with the precedence CLI flags (already bound
// into viper by the entrypoint) > environment > .env file > config file >
// defaults. A missing .env or config file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", "error", err)
	}

	viper.SetDefault("prompt", "con> ")
	viper.SetDefault("log-level", "info")
	viper.SetDefault("log-file", "")
	viper.SetDefault("default-commands", true)
	viper.SetDefault("test-mode", false)

	viper.SetEnvPrefix("CONSHELL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("conshell")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/conshell")
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
