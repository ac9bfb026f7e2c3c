package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/c360/noid/errors"
)

// Processing modes accepted by Config.ProcessingMode.
const (
	ModeJSONLD10 = "json-ld-1.0"
	ModeJSONLD11 = "json-ld-1.1"
)

// Config holds the tunable settings for serializer, parser and processor
// construction. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// BaseIRI resolves relative IRIs during expansion.
	BaseIRI string `yaml:"base_iri"`

	// DefaultNamespace is the namespace registration contexts are
	// created against when the application does not name one.
	DefaultNamespace string `yaml:"default_namespace"`

	// IncludeContext controls whether serialized documents carry an
	// @context and abbreviated keys.
	IncludeContext bool `yaml:"include_context"`

	// Indent, when non-empty, makes the serializer emit JSON text
	// indented with this string instead of a structured value.
	Indent string `yaml:"indent"`

	// ProcessingMode selects the JSON-LD processing mode.
	ProcessingMode string `yaml:"processing_mode"`

	// MetricsEnabled wires Prometheus instrumentation into the
	// registry, serializer and parser.
	MetricsEnabled bool `yaml:"metrics_enabled"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		IncludeContext: true,
		ProcessingMode: ModeJSONLD11,
	}
}

// Validate checks the config for invalid field values.
func (c *Config) Validate() error {
	if c.ProcessingMode != ModeJSONLD10 && c.ProcessingMode != ModeJSONLD11 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: processing_mode must be %q or %q, got %q",
				errors.ErrInvalidConfig, ModeJSONLD10, ModeJSONLD11, c.ProcessingMode),
			"Config", "Validate", "processing mode validation")
	}
	if c.DefaultNamespace != "" {
		last := c.DefaultNamespace[len(c.DefaultNamespace)-1]
		if last != '/' && last != '#' {
			return errors.WrapInvalid(
				fmt.Errorf("%w: default_namespace must end with '/' or '#'", errors.ErrInvalidConfig),
				"Config", "Validate", "namespace validation")
		}
	}
	return nil
}

// Parse decodes YAML configuration, applying defaults for absent fields,
// and validates the result.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Parse", "YAML parsing")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is operator-supplied configuration
	if err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Load", "config file reading")
	}
	return Parse(data)
}
