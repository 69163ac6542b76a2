// Package config loads apicat settings through viper: a YAML file in the
// .apicat folder, APICAT_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FolderName is the per-project settings folder.
	FolderName = ".apicat"
	// FileName is the config file inside FolderName.
	FileName = "config.yaml"
	// EnvPrefix prefixes every environment override, e.g. APICAT_CATALOG.
	EnvPrefix = "APICAT"
)

// Themes accepted for glamour rendering.
var Themes = []string{"auto", "dark", "light", "dracula", "tokyo-night", "pink", "ascii", "notty"}

// LogLevels accepted for log.level.
var LogLevels = []string{"debug", "info", "warn", "error"}

// LogConfig controls where and how much apicat logs.
type LogConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	File       string `mapstructure:"file" yaml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" yaml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// Config is the resolved apicat configuration.
type Config struct {
	// Catalog is a YAML file or directory; empty uses the built-in sample.
	Catalog string `mapstructure:"catalog" yaml:"catalog"`
	// Filters overrides the filter tags offered in the browser.
	Filters []string `mapstructure:"filters" yaml:"filters,omitempty"`
	// DefaultFilter is active at startup.
	DefaultFilter string    `mapstructure:"default_filter" yaml:"default_filter"`
	Theme         string    `mapstructure:"theme" yaml:"theme"`
	Log           LogConfig `mapstructure:"log" yaml:"log"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Catalog:       "",
		DefaultFilter: "all",
		Theme:         "auto",
		Log: LogConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// SetDefaults registers every key with viper so environment overrides and
// Unmarshal see them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("filters", []string{})
	v.SetDefault("default_filter", d.DefaultFilter)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
}

// Configure points v at the config file and environment.
// An empty cfgFile searches ./.apicat/config.yaml.
func Configure(v *viper.Viper, cfgFile string) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(FolderName)
		v.SetConfigName(strings.TrimSuffix(FileName, ".yaml"))
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
}

// ReadFile reads the configured file. A missing file is not an error.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config: %w", err)
}

// Load resolves the configuration from v.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects unknown themes and log levels.
func (c *Config) Validate() error {
	if !contains(Themes, c.Theme) {
		return fmt.Errorf("theme %q is not one of %s", c.Theme, strings.Join(Themes, ", "))
	}
	if !contains(LogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level %q is not one of %s", c.Log.Level, strings.Join(LogLevels, ", "))
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return errors.New("log rotation limits cannot be negative")
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
