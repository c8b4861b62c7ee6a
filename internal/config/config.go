package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

const defaultPrompt = ": "

type Config struct {
	Prompt  string `yaml:"prompt"`
	HomeDir string `yaml:"home_dir"`
	Color   bool   `yaml:"color"`
}

// Load reads the configuration file if it exists; a missing file yields the
// defaults.
func Load(file string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(file)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}

	if cfg.HomeDir == "" {
		cfg.HomeDir, err = os.UserHomeDir()
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
