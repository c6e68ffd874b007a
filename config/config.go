// Package config provides configuration loading and management for ontolex.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete ontolex configuration
type Config struct {
	Ontology OntologyConfig `yaml:"ontology"`
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Server   ServerConfig   `yaml:"server"`
}

// OntologyConfig configures where declaration files come from
type OntologyConfig struct {
	// Sources are doublestar glob patterns for declaration files
	Sources []string `yaml:"sources"`
	// Watch enables reloading when source files change
	Watch bool `yaml:"watch"`
}

// LexiconConfig configures lexical entry handling
type LexiconConfig struct {
	// Language is the default language tag for untagged forms
	Language string `yaml:"language"`
}

// ServerConfig configures the HTTP query server
type ServerConfig struct {
	// Listen is the address the server binds to
	Listen string `yaml:"listen"`
	// CORSOrigins lists allowed origins (empty = allow all)
	CORSOrigins []string `yaml:"cors_origins"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Ontology: OntologyConfig{
			Sources: []string{"ontology/**/*.yaml"},
			Watch:   false,
		},
		Lexicon: LexiconConfig{
			Language: "en",
		},
		Server: ServerConfig{
			Listen:      ":8583",
			CORSOrigins: nil, // Allow all
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if len(c.Ontology.Sources) == 0 {
		return fmt.Errorf("ontology.sources is required")
	}
	if c.Lexicon.Language == "" {
		return fmt.Errorf("lexicon.language is required")
	}
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values)
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Ontology
	if len(other.Ontology.Sources) > 0 {
		c.Ontology.Sources = other.Ontology.Sources
	}
	if other.Ontology.Watch {
		c.Ontology.Watch = true
	}

	// Lexicon
	if other.Lexicon.Language != "" {
		c.Lexicon.Language = other.Lexicon.Language
	}

	// Server
	if other.Server.Listen != "" {
		c.Server.Listen = other.Server.Listen
	}
	if len(other.Server.CORSOrigins) > 0 {
		c.Server.CORSOrigins = other.Server.CORSOrigins
	}
}
