package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// PostgresDbType selects the PostgreSQL driver
const PostgresDbType = "postgres"

// SqliteDbType selects the SQLite driver
const SqliteDbType = "sqlite"

// DatabaseSettings holds the connection settings for the roster database
type DatabaseSettings struct {
	Type string `yaml:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `yaml:"dsn" validate:"required"`
	// Name is the database created and selected on PostgreSQL. Ignored by SQLite.
	Name string `yaml:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for %s", PostgresDbType)
	}

	return nil
}

// ApplyEnvOverrides replaces fields with the ROSTER_DB_* variables that are set
func (s *DatabaseSettings) ApplyEnvOverrides() {
	if v := os.Getenv(EnvDBType); v != "" {
		s.Type = v
	}
	if v := os.Getenv(EnvDBDSN); v != "" {
		s.DSN = v
	}
	if v := os.Getenv(EnvDBName); v != "" {
		s.Name = v
	}
}
