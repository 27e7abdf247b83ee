package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Loader manages configuration loading from multiple sources
type Loader struct {
	viper *viper.Viper
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		viper: viper.New(),
	}
}

// Initialize sets up environment lookups and reads the config file if one
// exists. Environment variables work even when there is no config file.
func (l *Loader) Initialize() error {
	l.viper.SetEnvPrefix(EnvPrefix)
	l.viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.viper.AutomaticEnv()

	// GitHub Actions exposes the repository and triggering commit
	if err := l.viper.BindEnv("repository", EnvPrefix+"_REPOSITORY", "GITHUB_REPOSITORY"); err != nil {
		return err
	}
	if err := l.viper.BindEnv("sha", EnvPrefix+"_SHA", "GITHUB_SHA"); err != nil {
		return err
	}

	home, err := homedir.Dir()
	if err != nil {
		return err
	}
	l.viper.AddConfigPath(home)
	l.viper.AddConfigPath(".")

	l.viper.SetConfigName(DefaultConfigFileName)
	l.viper.SetConfigType(DefaultConfigFileType)

	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// ConfigFileUsed returns the path of the loaded config file, if any
func (l *Loader) ConfigFileUsed() string {
	return l.viper.ConfigFileUsed()
}

// BindFlag binds a flag to a viper key
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	return l.viper.BindPFlag(key, flag)
}

// SetDefault sets a default value for a key
func (l *Loader) SetDefault(key string, value interface{}) {
	l.viper.SetDefault(key, value)
}

// GetString returns a string value
func (l *Loader) GetString(key string) string {
	return l.viper.GetString(key)
}

// GetBool returns a bool value
func (l *Loader) GetBool(key string) bool {
	return l.viper.GetBool(key)
}

// GetInt returns an int value
func (l *Loader) GetInt(key string) int {
	return l.viper.GetInt(key)
}

// IsSet checks if a key has been set
func (l *Loader) IsSet(key string) bool {
	return l.viper.IsSet(key)
}

// Config returns the effective configuration
func (l *Loader) Config() *Config {
	cfg := DefaultConfig()

	stringKeys := map[string]*string{
		"token":      &cfg.Token,
		"hostname":   &cfg.Hostname,
		"repository": &cfg.Repository,
		"sha":        &cfg.SHA,
		"prefix":     &cfg.Prefix,
	}
	for key, dst := range stringKeys {
		if l.viper.IsSet(key) {
			*dst = l.viper.GetString(key)
		}
	}

	boolKeys := map[string]*bool{
		"verbose":    &cfg.Verbose,
		"dry-run":    &cfg.DryRun,
		"http-cache": &cfg.HTTPCache,
		"fetch-all":  &cfg.FetchAll,
		"annotated":  &cfg.Annotated,
	}
	for key, dst := range boolKeys {
		if l.viper.IsSet(key) {
			*dst = l.viper.GetBool(key)
		}
	}

	if l.viper.IsSet("max-retries") {
		cfg.MaxRetries = l.viper.GetInt("max-retries")
	}

	return cfg
}

// InjectToCommand injects viper config values into command flags
// that weren't explicitly set via command line. Values the flag rejects
// are reported together.
func (l *Loader) InjectToCommand(cmd *cobra.Command) error {
	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && l.viper.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, l.viper.GetString(f.Name)); err != nil {
				errs = append(errs, fmt.Errorf("invalid config value for %s: %w", f.Name, err))
			}
		}
	})
	return errors.Join(errs...)
}
