package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds the tracker's settings, loaded from ~/.tick/config.yaml when
// present and falling back to defaults otherwise.
type Config struct {
	// DBPath is the SQLite database location; empty means the default
	// under the home directory.
	DBPath string `mapstructure:"db_path"`

	// User scopes timer and activity rows; defaults to the OS username.
	User string `mapstructure:"user"`

	// TickInterval drives the shared display refresh.
	TickInterval time.Duration `mapstructure:"tick_interval"`

	// PushInterval bounds how much running-timer progress a crash loses.
	PushInterval time.Duration `mapstructure:"push_interval"`

	// PollInterval is how often the change feed polls for rows written by
	// other sessions.
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		User:         defaultUser(),
		TickInterval: time.Second,
		PushInterval: 5 * time.Second,
		PollInterval: 2 * time.Second,
	}
}

// Load reads the config file if it exists and merges it over the defaults.
// A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path := Path()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return cfg, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return cfg, err
	}

	if cfg.User == "" {
		cfg.User = defaultUser()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.PushInterval <= 0 {
		cfg.PushInterval = 5 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	return cfg, nil
}

// Path returns the location of the config file.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tick", "config.yaml")
	}
	return filepath.Join(home, ".tick", "config.yaml")
}

func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	return "local"
}
