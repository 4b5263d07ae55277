// Package config loads the settings shared by every node a program builds:
// payload limits, diagram layout and the observer that receives events.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/linknode/diagram"
	"github.com/tailored-agentic-units/linknode/node"
	"github.com/tailored-agentic-units/linknode/observability"
	"github.com/tailored-agentic-units/linknode/payload"
)

const defaultObserver = "noop"

// Config aggregates the per-package sections.
type Config struct {
	Observer string         `json:"observer,omitempty" yaml:"observer,omitempty"`
	Payload  payload.Config `json:"payload" yaml:"payload"`
	Diagram  diagram.Config `json:"diagram" yaml:"diagram"`
}

// DefaultConfig returns defaults for every section.
func DefaultConfig() Config {
	return Config{
		Observer: defaultObserver,
		Payload:  payload.DefaultConfig(),
		Diagram:  diagram.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	c.Payload.Merge(&source.Payload)
	c.Diagram.Merge(&source.Diagram)
}

// LoadConfig reads a JSON or YAML file (chosen by extension: .yaml and .yml
// are YAML, anything else JSON), merges it over the defaults and returns the
// result.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}

// NodeOptions builds the validator, renderer and observer described by c.
func (c *Config) NodeOptions() ([]node.Option, error) {
	validator, err := payload.NewConstraintValidator(c.Payload)
	if err != nil {
		return nil, fmt.Errorf("payload config: %w", err)
	}

	name := c.Observer
	if name == "" {
		name = defaultObserver
	}
	observer, err := observability.GetObserver(name)
	if err != nil {
		return nil, fmt.Errorf("observer config: %w", err)
	}

	return []node.Option{
		node.WithValidator(validator),
		node.WithRenderer(diagram.New(c.Diagram)),
		node.WithObserver(observer),
	}, nil
}
