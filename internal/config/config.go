// Package config loads application settings for parterm.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings the theme subsystem consumes. All values are
// read-only after Load.
type Config struct {
	// DataDir is the root for user data; themes live in DataDir/themes.
	DataDir string `mapstructure:"data_dir"`

	// Theme is the theme key activated at startup, e.g. "par_dark".
	Theme string `mapstructure:"theme"`

	// ThemeFallbackName is the base name of the theme guaranteed loadable.
	ThemeFallbackName string `mapstructure:"theme_fallback_name"`

	// MaxJSONSizeMB caps the size of any theme file read from disk.
	MaxJSONSizeMB int `mapstructure:"max_json_size_mb"`

	// AllowedJSONExtensions lists acceptable theme file extensions.
	AllowedJSONExtensions []string `mapstructure:"allowed_json_extensions"`

	// ValidateFileContent enables content validation on file reads.
	ValidateFileContent bool `mapstructure:"validate_file_content"`

	// SanitizeFilenames enables filename sanitization on file reads.
	SanitizeFilenames bool `mapstructure:"sanitize_filenames"`

	// WatchThemes reloads themes when files in the theme folder change.
	WatchThemes bool `mapstructure:"watch_themes"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`
}

// ThemesDir returns the theme storage directory.
func (c *Config) ThemesDir() string {
	return filepath.Join(c.DataDir, "themes")
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, "parterm")
	}
	return ".parterm"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("theme", "par_dark")
	v.SetDefault("theme_fallback_name", "par")
	v.SetDefault("max_json_size_mb", 10)
	v.SetDefault("allowed_json_extensions", []string{".json"})
	v.SetDefault("validate_file_content", true)
	v.SetDefault("sanitize_filenames", true)
	v.SetDefault("watch_themes", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

// Load reads configuration from the given file, or from the default
// location when path is empty. A missing config file is not an error;
// defaults and PARTERM_* environment variables still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("parterm")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDataDir())
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named config file must exist and parse. The
		// default location is optional.
		if path != "" {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

// SaveTheme persists the startup theme selection to the config file at
// path, or the default location when path is empty. Other settings in the
// file are preserved.
func SaveTheme(path, themeName string) error {
	target := path
	if target == "" {
		target = filepath.Join(DefaultDataDir(), "config.yaml")
	}

	v := viper.New()
	v.SetConfigFile(target)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config %s: %w", target, err)
	}

	v.Set("theme", themeName)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := v.WriteConfigAs(target); err != nil {
		return fmt.Errorf("write config %s: %w", target, err)
	}
	return nil
}
