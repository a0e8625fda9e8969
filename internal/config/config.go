// Package config handles loading taskline.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the taskline.toml configuration file.
type Config struct {
	// DataFile is the path to the JSON data file. Relative paths
	// resolve against the working directory.
	DataFile string `toml:"data-file"`

	// NoColor disables ANSI color output.
	NoColor bool `toml:"no-color"`
}

// Load merges the global config (~/.config/taskline/config.toml) with
// a per-directory taskline.toml in dir. Per-directory values win.
// Missing files are not an error; an empty config is returned.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, "taskline.toml"))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, localCfg, localMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "taskline", "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, localMeta toml.MetaData) *Config {
	merged := *globalCfg

	if localMeta.IsDefined("data-file") {
		merged.DataFile = localCfg.DataFile
	}
	if localMeta.IsDefined("no-color") {
		merged.NoColor = localCfg.NoColor
	}

	return &merged
}
