package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Environment variables that take precedence over the YAML file
const (
	EnvPort   = "ROSTER_PORT"
	EnvDBType = "ROSTER_DB_TYPE"
	EnvDBDSN  = "ROSTER_DB_DSN"
	EnvDBName = "ROSTER_DB_NAME"
)

// DefaultPort is used when neither the file nor the environment sets one
const DefaultPort = "8080"

// RestConfig holds the settings of the REST server
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required,numeric"`
	Database DatabaseSettings `yaml:"database"`
	Logger   LoggerSettings   `yaml:"logger"`
}

// Validate checks the server settings and every nested section
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("invalid port %q: %w", c.Port, err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}

	return nil
}

// InitializeRestConfig reads the YAML file at path, applies environment
// overrides and validates the result.
func InitializeRestConfig(path string) (*RestConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseRestConfig(data)
}

// ParseRestConfig decodes YAML bytes into a RestConfig. Environment overrides
// are applied before validation.
func ParseRestConfig(data []byte) (*RestConfig, error) {
	cfg := &RestConfig{Port: DefaultPort}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *RestConfig) {
	if v := os.Getenv(EnvPort); v != "" {
		cfg.Port = v
	}
	cfg.Database.ApplyEnvOverrides()
}
