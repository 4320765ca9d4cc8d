package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config carries every run-wide option. It is constructed once at startup
// from the config file and the command-line flags, then passed explicitly to
// each component and never mutated.
type Config struct {
	IgnorePattern string `yaml:"ignore"`
	Theme         string `yaml:"theme"`
	LogLevel      string `yaml:"log_level"`

	// Flag-only options, never read from the config file.
	TreeOnly bool `yaml:"-"`
	Quiet    bool `yaml:"-"`
	Print    bool `yaml:"-"`
	Debug    bool `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Theme:    "mocha",
		LogLevel: "info",
	}
}

func Load() (Config, error) {
	return LoadFrom(getConfigPath())
}

func LoadFrom(configPath string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}

	if cfg.Theme == "" {
		cfg.Theme = "mocha"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

func getConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "pickpack", "config.yaml")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "pickpack", "config.yaml")
	}

	return filepath.Join(home, ".config", "pickpack", "config.yaml")
}

// StateDir returns the directory for run-time state such as the log file.
func StateDir() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "pickpack")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "state", "pickpack")
	}

	return filepath.Join(home, ".local", "state", "pickpack")
}
