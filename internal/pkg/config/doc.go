// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file, optionally overridden from the
// environment, validated and then handed to the server and CLI entry points.
package config
