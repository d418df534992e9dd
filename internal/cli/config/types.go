// Package config provides configuration management for the schemawatch CLI.
//
// Values are layered, lowest precedence first: built-in defaults, the
// schemawatch.yaml file, SCHEMAWATCH_* environment variables, and explicitly
// set command-line flags.
package config

import (
	"github.com/AnasAshrafGit/Sirge-impact-analysis/internal/workspace"
)

// Config holds all CLI configuration options.
type Config struct {
	SchemaPath      string     `koanf:"schema_path"`
	Dialect         string     `koanf:"dialect"`
	Workspace       string     `koanf:"workspace"`
	Include         string     `koanf:"include"`
	Exclude         []string   `koanf:"exclude"`
	OutputFormat    string     `koanf:"output"`
	LogLevel        string     `koanf:"log_level"`
	Verbose         bool       `koanf:"verbose"`
	ReadConcurrency int        `koanf:"read_concurrency"`
	Feed            FeedConfig `koanf:"feed"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// FeedConfig configures the server-sent events feed of the watch command.
type FeedConfig struct {
	// Addr is the listen address; empty disables the feed.
	Addr string `koanf:"addr"`
}

// Default configuration values.
const (
	DefaultDialect  = "postgres"
	DefaultOutput   = "auto" // TTY=text, otherwise json
	DefaultLogLevel = "info"
	DefaultInclude  = workspace.DefaultInclude
)

// configNames are the file names searched for, in order.
var configNames = []string{"schemawatch.yaml", "schemawatch.yml"}
