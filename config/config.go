package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/strat-chain/strat-go/api"
)

// config keys, shared by the file, STRAT_* env vars and CLI flags
const (
	KeyAPIURL     = "api_url"
	KeyAPIKey     = "api_key"
	KeyTimeout    = "timeout"
	KeyDevLogging = "dev_logging"
)

const (
	EnvPrefix = "STRAT"
	DirName   = ".strat"
	FileName  = "config.yaml"
)

// Settings is the resolved CLI configuration
type Settings struct {
	APIURL     string        `mapstructure:"api_url"`
	APIKey     string        `mapstructure:"api_key"`
	Timeout    time.Duration `mapstructure:"timeout"`
	DevLogging bool          `mapstructure:"dev_logging"`
}

// API returns the client configuration for these settings
func (s Settings) API() api.Config {
	return api.Config{
		APIURL:  s.APIURL,
		APIKey:  s.APIKey,
		Timeout: s.Timeout,
	}
}

// New returns a viper instance with defaults and env binding applied
func New() *viper.Viper {
	defaults := api.DefaultConfig()

	v := viper.New()
	v.SetDefault(KeyAPIURL, defaults.APIURL)
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyTimeout, defaults.Timeout)
	v.SetDefault(KeyDevLogging, false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	return v
}

// DefaultDir returns ~/.strat
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// Load reads settings into v. With an explicit path the file must exist;
// otherwise ~/.strat/config.yaml is used when present.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		if dir, err := DefaultDir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	settings := &Settings{
		APIURL:     v.GetString(KeyAPIURL),
		APIKey:     v.GetString(KeyAPIKey),
		Timeout:    v.GetDuration(KeyTimeout),
		DevLogging: v.GetBool(KeyDevLogging),
	}

	if settings.APIURL == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyAPIURL)
	}
	if settings.Timeout <= 0 {
		return nil, fmt.Errorf("%s must be positive, got %s", KeyTimeout, settings.Timeout)
	}

	return settings, nil
}

// Write stores settings as YAML at path, creating its directory
func Write(path string, settings Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := yaml.Marshal(fileSettings{
		APIURL:     settings.APIURL,
		APIKey:     settings.APIKey,
		Timeout:    settings.Timeout.String(),
		DevLogging: settings.DevLogging,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// fileSettings is the on-disk shape; durations are written as "30s"
type fileSettings struct {
	APIURL     string `yaml:"api_url"`
	APIKey     string `yaml:"api_key,omitempty"`
	Timeout    string `yaml:"timeout"`
	DevLogging bool   `yaml:"dev_logging"`
}
