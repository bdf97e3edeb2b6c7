// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package pdateconfig provides configuration parsing and validation for pdate.
//
// Configuration is stored at ~/.config/pdate/config.yaml (or $PDATE_CONFIG_DIR/config.yaml).
package pdateconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bufdev/partialdate/internal/pkg/partialdate"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the configuration file within the config directory.
const ConfigFileName = "config.yaml"

// configTemplate is the default configuration file template with comments.
// yaml.v3 does not preserve comments, so we hardcode the template string.
const configTemplate = `# The configuration file version.
#
# Required. The only current valid version is v1.
version: v1
# The layout used when --layout is not given.
#
# Optional. Either the name of a layout or a layout pattern. Defaults to "default".
#
# The built-in layouts are:
#   default: %Y-%m-%d
#   short:   %d %m %Y
#   medium:  %d %b %Y
#   long:    %d %B %Y
#   number:  %Y%m%d
default_layout: default
# Additional named layouts.
#
# Optional. Patterns may use %Y, %m, %B, %b, %d, and %e. Names may not
# shadow a built-in layout.
# layouts:
#   - name: us
#     pattern: "%m/%d/%Y"
`

// ExternalConfig is the YAML-serializable configuration file structure.
type ExternalConfig struct {
	// Version is the configuration file version (must be "v1").
	Version string `yaml:"version"`
	// DefaultLayout is the layout name or pattern used when none is given.
	DefaultLayout string `yaml:"default_layout"`
	// Layouts is the optional list of named layouts.
	Layouts []ExternalLayoutConfig `yaml:"layouts"`
}

// ExternalLayoutConfig holds a named layout.
type ExternalLayoutConfig struct {
	// Name is the name of the layout.
	Name string `yaml:"name"`
	// Pattern is the layout pattern (e.g., "%m/%d/%Y").
	Pattern string `yaml:"pattern"`
}

// Config is the validated runtime configuration derived from the config file.
type Config struct {
	// DefaultLayout is the resolved layout pattern used when none is given.
	DefaultLayout string
	// Layouts maps names to layout patterns, not including the built-in layouts.
	Layouts map[string]string
}

// NewConfig validates an ExternalConfig and returns a runtime Config.
func NewConfig(externalConfig ExternalConfig) (*Config, error) {
	if externalConfig.Version != "v1" {
		return nil, fmt.Errorf("unsupported config version %q, must be v1", externalConfig.Version)
	}
	// Build layouts map, checking for duplicates and built-in names.
	layouts := make(map[string]string, len(externalConfig.Layouts))
	for _, l := range externalConfig.Layouts {
		if l.Name == "" {
			return nil, errors.New("layout name is required")
		}
		if l.Pattern == "" {
			return nil, fmt.Errorf("layout %q has an empty pattern", l.Name)
		}
		if _, ok := partialdate.LookupLayout(l.Name); ok {
			return nil, fmt.Errorf("layout name %q shadows a built-in layout", l.Name)
		}
		if _, ok := layouts[l.Name]; ok {
			return nil, fmt.Errorf("duplicate layout name %q", l.Name)
		}
		layouts[l.Name] = l.Pattern
	}
	config := &Config{
		DefaultLayout: partialdate.LayoutDefault,
		Layouts:       layouts,
	}
	if externalConfig.DefaultLayout != "" {
		config.DefaultLayout = config.ResolveLayout(externalConfig.DefaultLayout)
	}
	return config, nil
}

// DefaultConfig returns the Config used when no configuration file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultLayout: partialdate.LayoutDefault,
		Layouts:       map[string]string{},
	}
}

// ResolveLayout returns the pattern for a layout name, or nameOrPattern itself
// if it does not name a built-in or configured layout. An empty nameOrPattern
// resolves to the default layout.
func (c *Config) ResolveLayout(nameOrPattern string) string {
	if nameOrPattern == "" {
		return c.DefaultLayout
	}
	if layout, ok := partialdate.LookupLayout(nameOrPattern); ok {
		return layout
	}
	if layout, ok := c.Layouts[nameOrPattern]; ok {
		return layout
	}
	return nameOrPattern
}

// ConfigFilePath returns the path to the configuration file within the given config directory.
func ConfigFilePath(configDirPath string) string {
	return filepath.Join(configDirPath, ConfigFileName)
}

// ReadConfig reads and validates the configuration file from the given config directory.
// Returns a clear error message directing users to run "pdate config init" if the file is missing.
func ReadConfig(configDirPath string) (*Config, error) {
	filePath := ConfigFilePath(configDirPath)
	config, err := ReadConfigFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("configuration file not found at %s, run \"pdate config init\" to create one", filePath)
		}
		return nil, err
	}
	return config, nil
}

// ReadConfigOrDefault reads the configuration file from the given config directory,
// returning DefaultConfig if the file does not exist.
func ReadConfigOrDefault(configDirPath string) (*Config, error) {
	config, err := ReadConfigFile(ConfigFilePath(configDirPath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}
	return config, nil
}

// ReadConfigFile reads and validates the configuration file at the given path.
func ReadConfigFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var externalConfig ExternalConfig
	if err := unmarshalYAMLStrict(data, &externalConfig); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
	}
	return NewConfig(externalConfig)
}

// InitConfig creates a new configuration file with a documented template in the given config directory.
// Returns the path to the created file, or an error if the file already exists.
func InitConfig(configDirPath string) (string, error) {
	filePath := ConfigFilePath(configDirPath)
	if err := InitConfigFile(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}

// InitConfigFile creates a new configuration file with a documented template at the given path.
// Creates the parent directory if it does not exist.
// Returns an error if the file already exists.
func InitConfigFile(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("configuration file already exists: %s", filePath)
	}
	// Create the config directory if it does not exist.
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(filePath, []byte(configTemplate), 0o644)
}

// ValidateConfig reads and validates the configuration file from the given config directory.
func ValidateConfig(configDirPath string) error {
	_, err := ReadConfig(configDirPath)
	return err
}

// ValidateConfigFile reads and validates the configuration file at the given path.
func ValidateConfigFile(filePath string) error {
	_, err := ReadConfigFile(filePath)
	return err
}

// unmarshalYAMLStrict unmarshals the data as YAML with strict field checking.
// If the data length is 0, this is a no-op.
func unmarshalYAMLStrict(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	yamlDecoder := yaml.NewDecoder(bytes.NewReader(data))
	// Reject unknown fields.
	yamlDecoder.KnownFields(true)
	if err := yamlDecoder.Decode(v); err != nil {
		return fmt.Errorf("could not unmarshal as YAML: %w", err)
	}
	return nil
}
