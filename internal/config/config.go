package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. TODO_STORAGE_PATH
const EnvPrefix = "TODO"

// configExtensions are tried in order for each config location
var configExtensions = []string{"yaml", "yml", "json", "toml"}

// Config represents the full todo configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage" json:"storage" yaml:"storage"`
	Log     LogConfig     `mapstructure:"log" json:"log" yaml:"log"`
	UI      UIConfig      `mapstructure:"ui" json:"ui" yaml:"ui"`

	// Files lists the config files that were read, global first
	Files []string `mapstructure:"-" json:"-" yaml:"-"`
}

// StorageConfig contains task file settings
type StorageConfig struct {
	Path   string `mapstructure:"path" json:"path" yaml:"path"`
	Backup bool   `mapstructure:"backup" json:"backup" yaml:"backup"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level" yaml:"level"`
	Format string `mapstructure:"format" json:"format" yaml:"format"`
	File   string `mapstructure:"file" json:"file" yaml:"file"`
}

// UIConfig contains interactive console settings
type UIConfig struct {
	ConfirmDelete bool `mapstructure:"confirmDelete" json:"confirmDelete" yaml:"confirmDelete"`
	ToastSeconds  int  `mapstructure:"toastSeconds" json:"toastSeconds" yaml:"toastSeconds"`
}

// ConfigError is returned when a config file exists but cannot be used
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:   "taches.csv",
			Backup: false,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   defaultLogFile(),
		},
		UI: UIConfig{
			ConfirmDelete: true,
			ToastSeconds:  3,
		},
	}
}

// defaultLogFile follows the XDG state directory convention
func defaultLogFile() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "todo", "todo.log")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "todo.log")
	}
	return filepath.Join(home, ".local", "state", "todo", "todo.log")
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

// LoadConfig loads configuration with priority:
// 1. TODO_* environment variables
// 2. .todo.{yaml,yml,json,toml} in projectPath
// 3. ~/.config/todo/config.{yaml,yml,json,toml}
// 4. Defaults
func LoadConfig(projectPath string) (*Config, error) {
	home, _ := os.UserHomeDir()
	return LoadConfigFs(afero.NewOsFs(), projectPath, home)
}

// LoadConfigFs is LoadConfig on an arbitrary filesystem and home directory
func LoadConfigFs(fs afero.Fs, projectPath, homeDir string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var files []string
	for _, path := range []string{
		findConfigFile(fs, filepath.Join(homeDir, ".config", "todo"), "config"),
		findConfigFile(fs, projectPath, ".todo"),
	} {
		if path == "" {
			continue
		}
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return nil, &ConfigError{Path: path, Err: err}
		}
		files = append(files, path)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ConfigError{Path: strings.Join(files, ", "), Err: err}
	}
	cfg.Files = files

	cfg = MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile returns the first existing dir/base.<ext>, or ""
func findConfigFile(fs afero.Fs, dir, base string) string {
	if dir == "" {
		return ""
	}
	for _, ext := range configExtensions {
		path := filepath.Join(dir, base+"."+ext)
		if ok, err := afero.Exists(fs, path); err == nil && ok {
			return path
		}
	}
	return ""
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("storage.path", cfg.Storage.Path)
	v.SetDefault("storage.backup", cfg.Storage.Backup)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("ui.confirmDelete", cfg.UI.ConfirmDelete)
	v.SetDefault("ui.toastSeconds", cfg.UI.ToastSeconds)
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if strings.TrimSpace(cfg.Storage.Path) == "" {
		cfg.Storage.Path = defaults.Storage.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = defaults.Log.Format
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaults.Log.File
	}
	if cfg.UI.ToastSeconds <= 0 {
		cfg.UI.ToastSeconds = defaults.UI.ToastSeconds
	}

	return cfg
}

// Validate rejects values the rest of the program cannot act on
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level %q: want debug, info, warn or error", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log.format %q: want text, json or logfmt", c.Log.Format)
	}

	return nil
}
