// Package config handles loading and managing Diagnostica configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for Diagnostica.
type Config struct {
	Scoring   ScoringConfig   `yaml:"scoring"`
	Recommend RecommendConfig `yaml:"recommend"`
}

// ScoringConfig controls maturity classification and dominant-axis
// selection.
type ScoringConfig struct {
	NoviceMax       int `yaml:"novice_max"`
	PractitionerMax int `yaml:"practitioner_max"`
	SecondaryWindow int `yaml:"secondary_window"`
}

// RecommendConfig controls recommendation ranking.
type RecommendConfig struct {
	PriorityWeight float64 `yaml:"priority_weight"`
	DomainWeight   float64 `yaml:"domain_weight"`
	InterestWeight float64 `yaml:"interest_weight"`
	TieBoost       float64 `yaml:"tie_boost"`
	MaxResults     int     `yaml:"max_results"`
}

// DefaultConfig returns a Config with the production defaults.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			NoviceMax:       15,
			PractitionerMax: 35,
			SecondaryWindow: 3,
		},
		Recommend: RecommendConfig{
			PriorityWeight: 0.5,
			DomainWeight:   2,
			InterestWeight: 1,
			TieBoost:       0.5,
			MaxResults:     5,
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Scoring.NoviceMax >= c.Scoring.PractitionerMax {
		return fmt.Errorf("novice_max (%d) must be below practitioner_max (%d)",
			c.Scoring.NoviceMax, c.Scoring.PractitionerMax)
	}
	if c.Scoring.SecondaryWindow < 0 {
		return fmt.Errorf("secondary_window must not be negative")
	}
	if c.Recommend.MaxResults < 1 {
		return fmt.Errorf("max_results must be at least 1")
	}
	return nil
}

// FindConfigFile looks for .diagnostica/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".diagnostica", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
