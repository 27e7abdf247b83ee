// Package config provides configuration management for ghtag
package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/Didstopia/ghtag/internal/auth"
)

const (
	// DefaultConfigFileName is the name of the config file (without extension)
	DefaultConfigFileName = ".ghtag"
	// DefaultConfigFileType is the config file extension
	DefaultConfigFileType = "yaml"
	// EnvPrefix prefixes the environment variable of every config key
	EnvPrefix = "GHTAG"
)

// Config holds all application configuration
type Config struct {
	// Global flags
	Verbose    bool   `yaml:"verbose"`
	DryRun     bool   `yaml:"dry-run"`
	Token      string `yaml:"token"`
	Hostname   string `yaml:"hostname"`
	Repository string `yaml:"repository"`

	// API client
	MaxRetries int  `yaml:"max-retries"`
	HTTPCache  bool `yaml:"http-cache"`

	// Tag commands
	SHA       string `yaml:"sha"`
	FetchAll  bool   `yaml:"fetch-all"`
	Annotated bool   `yaml:"annotated"`
	Prefix    string `yaml:"prefix"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Verbose:    false,
		DryRun:     false,
		Token:      "",
		Hostname:   auth.DefaultHostname,
		Repository: "",
		MaxRetries: 0,
		HTTPCache:  false,
		SHA:        "",
		FetchAll:   false,
		Annotated:  false,
		Prefix:     "v",
	}
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultConfigFileName+"."+DefaultConfigFileType), nil
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist.
// It reports whether a new file was written.
func EnsureConfigFile() (string, bool, error) {
	path, err := GetConfigFilePath()
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, err
	}

	if err := DefaultConfig().SaveTo(path); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// LoadFrom loads configuration from a file
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveTo saves configuration to a file with secure permissions
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// 0600 = owner read/write only
	return os.WriteFile(path, data, 0600)
}

// YAML renders the configuration for display with the token masked
func (c *Config) YAML() ([]byte, error) {
	display := *c
	if display.Token != "" {
		display.Token = auth.MaskToken(display.Token)
	}
	return yaml.Marshal(&display)
}
