// Package config loads the plugin configuration: key length limits, the
// node types treated as frames, and the panel opened by each command.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrUnknownCommand is returned by Panel for a command without configuration.
var ErrUnknownCommand = errors.New("unknown command")

// Commands that must be configured.
var requiredCommands = []string{"extract-text", "extract-text-styles", "extract-colors"}

// Config is the complete plugin configuration.
type Config struct {
	// MaxKeyLength bounds frame prefixes and text suffixes of localization keys.
	MaxKeyLength int `yaml:"max_key_length" validate:"gte=1"`
	// Locale is written to exported ARB files.
	Locale string `yaml:"locale" validate:"required"`
	// LookupCacheSize is the number of resolved node ids kept per document.
	LookupCacheSize int `yaml:"lookup_cache_size" validate:"gte=1"`
	// ContainerTypes lists the node types treated as frame-like containers.
	ContainerTypes []string `yaml:"container_types" validate:"min=1,dive,required"`
	// Viewport is the size of the canvas viewport used to compute zoom.
	Viewport Viewport `yaml:"viewport"`
	// Commands maps a command name to its panel.
	Commands map[string]Panel `yaml:"commands" validate:"required,dive"`
}

// Viewport is the visible canvas area in screen pixels.
type Viewport struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// Panel describes the companion panel opened for a command.
type Panel struct {
	UI           string `yaml:"ui" validate:"required"`
	Width        int    `yaml:"width" validate:"gt=0"`
	Height       int    `yaml:"height" validate:"gt=0"`
	EmptyMessage string `yaml:"empty_message" validate:"required"`
}

// Default returns the embedded default configuration.
func Default() *Config {
	cfg, err := parse(defaultsYAML, &Config{})
	if err != nil {
		panic(fmt.Sprintf("config: invalid embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	return parse(data, cfg)
}

// Parse decodes YAML data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	return parse(data, Default())
}

func parse(data []byte, into *Config) (*Config, error) {
	if err := yaml.Unmarshal(data, into); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := into.Validate(); err != nil {
		return nil, err
	}
	return into, nil
}

// Validate checks field constraints and that every command has a panel.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for _, name := range requiredCommands {
		if _, ok := c.Commands[name]; !ok {
			return fmt.Errorf("invalid config: missing panel for command %q", name)
		}
	}

	return nil
}

// Panel returns the panel configuration of a command.
func (c *Config) Panel(command string) (Panel, error) {
	p, ok := c.Commands[command]
	if !ok {
		return Panel{}, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
	return p, nil
}
