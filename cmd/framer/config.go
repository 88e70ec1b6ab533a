package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config holds the tool defaults, loadable from a TOML file. Command-line
// flags override whatever the file supplies.
type config struct {
	Style   string `toml:"style"`
	Format  string `toml:"format"`
	Quality int    `toml:"quality"`
	Out     string `toml:"out"`
	Workers int    `toml:"workers"`
	Assets  string `toml:"assets"`
}

func defaultConfig() config {
	return config{
		Style:   "classic",
		Format:  "jpeg",
		Quality: 95,
		Assets:  "assets",
	}
}

// loadConfig reads a TOML config file over the built-in defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
