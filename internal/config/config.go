package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const FileName = ".moveguard.yml"

type IgnoreRule struct {
	Rule    string `yaml:"rule,omitempty"`
	Path    string `yaml:"path,omitempty"`
	Reason  string `yaml:"reason,omitempty"`
	Expires string `yaml:"expires,omitempty"`
}

type Config struct {
	SeverityThreshold string       `yaml:"severityThreshold"`
	Detectors         []string     `yaml:"detectors,omitempty"`
	Experimental      bool         `yaml:"experimental"`
	Ignore            []IgnoreRule `yaml:"ignore,omitempty"`
}

func Default() Config {
	return Config{
		SeverityThreshold: "info",
	}
}

// Load searches upwards from startDir for a .moveguard.yml and parses it.
// Returns the defaults and an empty path when no file is found.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := startDir
	if fi, err := os.Stat(startDir); err == nil && !fi.IsDir() {
		dir = filepath.Dir(startDir)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, fmt.Errorf("read config %s: %w", candidate, err)
			}
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, candidate, fmt.Errorf("parse config %s: %w", candidate, err)
			}
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}

// Write renders cfg to dir/.moveguard.yml.
func Write(dir string, cfg Config) (string, error) {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write config %s: %w", path, err)
	}
	return path, nil
}
