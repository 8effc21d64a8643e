package termo

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// Config contains all configuration options for the term generator.
type Config struct {
	// TemplatePath is the path of the read-only DOCX template.
	TemplatePath string `toml:"template_path"`
	// OutputDir is where generated documents are written.
	OutputDir string `toml:"output_dir"`
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off).
	LogLevel string `toml:"log_level"`
	// StrictPlaceholders turns placeholder keys that match nowhere in
	// the document into an error instead of a warning.
	StrictPlaceholders bool `toml:"strict_placeholders"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func initGlobalConfig() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		TemplatePath: "TEMPLATE_RECUPERA_EXPRESS.docx",
		OutputDir:    ".",
		LogLevel:     "info",
	}
}

// ConfigFromEnvironment creates a configuration from environment variables.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("TERMO_TEMPLATE"); val != "" {
		config.TemplatePath = val
	}
	if val := os.Getenv("TERMO_OUTPUT_DIR"); val != "" {
		config.OutputDir = val
	}
	if val := os.Getenv("TERMO_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv("TERMO_STRICT"); val != "" {
		config.StrictPlaceholders = parseBool(val)
	}

	return config
}

// LoadConfigFile reads a TOML configuration file on top of the
// environment configuration. Fields absent from the file keep their
// current values.
func LoadConfigFile(path string) (*Config, error) {
	config := ConfigFromEnvironment()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.TemplatePath == "" {
		return errors.New("template path cannot be empty")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return nil
}

// GetGlobalConfig returns a copy of the global configuration.
func GetGlobalConfig() *Config {
	initGlobalConfig()

	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration.
func SetGlobalConfig(config *Config) {
	initGlobalConfig()

	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	UpdateLoggerFromConfig()
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
