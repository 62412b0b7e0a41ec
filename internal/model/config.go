package model

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// IMAPConfig holds the connection settings for the mailbox backing the
// folder tree and message lookups.
type IMAPConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     string `mapstructure:"port" yaml:"port"`
	Username string `mapstructure:"username" yaml:"username"`
	TLS      bool   `mapstructure:"tls" yaml:"tls"`
}

// StoreConfig holds the local database settings.
type StoreConfig struct {
	// Path is the SQLite database file path.
	Path string `mapstructure:"path" yaml:"path"`
}

// AppConfig is the top-level application configuration: the account
// snapshot the engine resolves against plus collaborator settings.
type AppConfig struct {
	Account  Account     `mapstructure:"account" yaml:"account"`
	Settings Settings    `mapstructure:"settings" yaml:"settings"`
	IMAP     IMAPConfig  `mapstructure:"imap" yaml:"imap"`
	Store    StoreConfig `mapstructure:"store" yaml:"store"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/webmail-identity/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "webmail-identity", "config.yaml")
}

// defaultAppConfig returns a sensible default configuration.
func defaultAppConfig() *AppConfig {
	return &AppConfig{
		IMAP: IMAPConfig{
			Port: "993",
			TLS:  true,
		},
		Store: StoreConfig{
			Path: filepath.Join(filepath.Dir(DefaultConfigPath()), "identity.db"),
		},
	}
}

// LoadConfig reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func LoadConfig(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("imap.port", "993")
	v.SetDefault("imap.tls", true)
	v.SetDefault("store.path", defaultAppConfig().Store.Path)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultAppConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultAppConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultAppConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// The alias attribute keeps whatever shape the file used (a single
	// string or a list); the directory normalizes it when consumed.
	if v.IsSet("settings.aliases") {
		cfg.Settings.Aliases = v.Get("settings.aliases")
	}

	if cfg.IMAP.Username == "" {
		cfg.IMAP.Username = cfg.Account.Name
	}

	return cfg, nil
}

// SaveConfig writes the given configuration to a YAML file at path,
// creating parent directories if needed.
func SaveConfig(path string, cfg *AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("account", cfg.Account)
	v.Set("settings", cfg.Settings)
	v.Set("imap", cfg.IMAP)
	v.Set("store", cfg.Store)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
