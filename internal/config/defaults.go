package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/quantmind-br/repoclone-go/internal/git"
)

// Default values
const (
	DefaultBackend = git.BackendSystem
	DefaultDepth   = 0 // full clone

	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repoclone"
	}
	return filepath.Join(home, ".repoclone")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration. BasePath stays empty here;
// the caller resolves it to the current working directory.
func Default() *Config {
	return &Config{
		Clone: CloneConfig{
			BasePath: "",
			Backend:  DefaultBackend,
			Depth:    DefaultDepth,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("clone.base_path", "")
	v.SetDefault("clone.backend", DefaultBackend)
	v.SetDefault("clone.depth", DefaultDepth)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
