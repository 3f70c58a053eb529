package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "dayboard.db"
	defaultDirName        = ".dayboard"
)

// Config holds the persistent application settings. File values come from
// config.toml; DAYBOARD_* environment variables override them per process.
type Config struct {
	DBPath string `toml:"db_path"`
	// FutureWindowDays hides tasks due further out; -1 disables the window.
	FutureWindowDays int  `toml:"future_window_days"`
	FocusMode        bool `toml:"focus_mode"`
	// PlainOutput disables color and styling regardless of the terminal.
	PlainOutput bool `toml:"plain_output"`
}

// DefaultDir returns the per-user settings directory, creating it if needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, defaultDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Load resolves the effective configuration: defaults, then the TOML file
// (created on first run), then environment overrides.
func Load() (Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return defaultConfig(""), err
	}
	cfg, err := LoadOrCreate(filepath.Join(dir, DefaultConfigFileName))
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadOrCreate reads the TOML file at path, writing the defaults first when
// it does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig(filepath.Dir(path))
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(filepath.Dir(path), DefaultDBName)
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig(dir string) Config {
	return Config{
		DBPath:           filepath.Join(dir, DefaultDBName),
		FutureWindowDays: -1,
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DAYBOARD_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DAYBOARD_FUTURE_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= -1 {
			cfg.FutureWindowDays = n
		}
	}
	if v := os.Getenv("DAYBOARD_FOCUS_MODE"); v != "" {
		cfg.FocusMode, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("DAYBOARD_PLAIN_OUTPUT"); v != "" {
		cfg.PlainOutput, _ = strconv.ParseBool(v)
	}
}
