// Package config loads and saves the worthit TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Date display styles.
const (
	DateFormatLong = "long" // January 9th, 2024
	DateFormatISO  = "iso"  // 2024-01-09
)

// Config holds all worthit configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Defaults   DefaultsConfig   `toml:"defaults"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
}

// GeneralConfig holds display preferences.
type GeneralConfig struct {
	Currency   string `toml:"currency" validate:"max=8"`
	DateFormat string `toml:"date_format" validate:"omitempty,oneof=long iso"`
}

// DefaultsConfig seeds the schedule when the preference store has no value
// for a key yet.
type DefaultsConfig struct {
	SalaryPeriod    string `toml:"salary_period" validate:"oneof=annual monthly"`
	WorkDaysPerWeek int    `toml:"work_days_per_week" validate:"min=1,max=7"`
	WorkHoursPerDay int    `toml:"work_hours_per_day" validate:"min=1,max=16"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds settings for `worthit serve`.
type ServerConfig struct {
	Addr      string `toml:"addr,omitempty"`
	LogLevel  string `toml:"log_level,omitempty" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `toml:"log_format,omitempty" validate:"omitempty,oneof=json text"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:   "$",
			DateFormat: DateFormatLong,
		},
		Defaults: DefaultsConfig{
			SalaryPeriod:    "annual",
			WorkDaysPerWeek: 5,
			WorkHoursPerDay: 8,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:      "127.0.0.1:8787",
			LogLevel:  "info",
			LogFormat: "json",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "worthit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "worthit")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory holding the preference
// database.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "worthit")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "worthit")
}

// PrefsPath returns the default path of the preference database.
func PrefsPath() string {
	return filepath.Join(DataDir(), "prefs.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GetServerAddr returns the listen address from env var or config, in that order.
func GetServerAddr(cfg Config) string {
	if addr := os.Getenv("WORTHIT_ADDR"); addr != "" {
		return addr
	}
	if cfg.Server.Addr != "" {
		return cfg.Server.Addr
	}
	return DefaultConfig().Server.Addr
}

// GetLogLevel returns the server log level from env var or config.
func GetLogLevel(cfg Config) string {
	if lvl := os.Getenv("WORTHIT_LOG_LEVEL"); lvl != "" {
		return lvl
	}
	return cfg.Server.LogLevel
}

// GetTheme returns the theme name from env var or config.
func GetTheme(cfg Config) string {
	if name := os.Getenv("WORTHIT_THEME"); name != "" {
		return name
	}
	return cfg.Appearance.Theme
}
