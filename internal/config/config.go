package config

import (
	"fmt"

	"github.com/quantmind-br/repoclone-go/internal/git"
)

// Config represents the application configuration
type Config struct {
	Clone   CloneConfig   `mapstructure:"clone" yaml:"clone"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// CloneConfig contains clone destination and backend settings
type CloneConfig struct {
	BasePath string `mapstructure:"base_path" yaml:"base_path"`
	Backend  string `mapstructure:"backend" yaml:"backend"`
	Depth    int    `mapstructure:"depth" yaml:"depth"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and applies defaults for unset
// values
func (c *Config) Validate() error {
	switch c.Clone.Backend {
	case "":
		c.Clone.Backend = DefaultBackend
	case git.BackendSystem, git.BackendGoGit:
	default:
		return fmt.Errorf("invalid clone.backend: %q (want %q or %q)",
			c.Clone.Backend, git.BackendSystem, git.BackendGoGit)
	}

	if c.Clone.Depth < 0 {
		return fmt.Errorf("invalid clone.depth: %d", c.Clone.Depth)
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}
