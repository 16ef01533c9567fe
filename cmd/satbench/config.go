package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional --config YAML file's shape. Any field
// left unset in the file falls back to the flag default (or the flag
// value, if the flag was explicitly given on the command line).
type fileConfig struct {
	Dir       string `yaml:"dir"`
	MaxCycles int    `yaml:"max_cycles"`
	Format    string `yaml:"format"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("satbench: reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("satbench: parsing config: %w", err)
	}
	return cfg, nil
}
