package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tinytelemetry/brewdeck/internal/brewery"
	"github.com/tinytelemetry/brewdeck/internal/model"
)

type appConfig struct {
	BaseURL        string        `mapstructure:"base-url"`
	City           string        `mapstructure:"city"`
	State          string        `mapstructure:"state"`
	PerPage        int           `mapstructure:"per-page"`
	Place          string        `mapstructure:"place"`
	RequestTimeout time.Duration `mapstructure:"request-timeout"`
	Animate        bool          `mapstructure:"animate"`
	LogLevel       string        `mapstructure:"log-level"`
	LogFile        string        `mapstructure:"log-file"`
	ServeAddr      string        `mapstructure:"serve-addr"`
	CacheTTL       time.Duration `mapstructure:"cache-ttl"`
}

func (c appConfig) clientOptions() brewery.Options {
	return brewery.Options{
		BaseURL: c.BaseURL,
		City:    c.City,
		State:   c.State,
		PerPage: c.PerPage,
		Timeout: c.RequestTimeout,
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("BREWDECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("base-url", model.DefaultBaseURL)
	v.SetDefault("city", model.DefaultCity)
	v.SetDefault("state", model.DefaultState)
	v.SetDefault("per-page", model.DefaultPerPage)
	v.SetDefault("place", model.DefaultPlace)
	v.SetDefault("request-timeout", model.DefaultRequestTimeout)
	v.SetDefault("animate", true)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", filepath.Join(home, ".local", "state", "brewdeck", "brewdeck.log"))
	v.SetDefault("serve-addr", model.DefaultServeAddr)
	v.SetDefault("cache-ttl", model.DefaultCacheTTL)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "brewdeck", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
