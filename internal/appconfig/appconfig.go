// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultFetchTimeout is the default timeout for retrieving the results document.
	defaultFetchTimeout = 30 * time.Second
	// DefaultInput is the results document read when none is configured.
	DefaultInput = "result.json"
	// DefaultHTMLOutput is where the rendered table is written.
	DefaultHTMLOutput = "reports/index.html"
	// DefaultListen is the address the report server binds to.
	DefaultListen = "127.0.0.1:8080"
)

// Config represents the top-level application configuration.
type Config struct {
	Input          string `json:"input,omitempty" mapstructure:"input"`
	HTMLOutput     string `json:"htmlOutput,omitempty" mapstructure:"htmlOutput"`
	AnalysisOutput string `json:"analysisOutput,omitempty" mapstructure:"analysisOutput"`
	AnalysisFormat string `json:"analysisFormat,omitempty" mapstructure:"analysisFormat"`
	MarkdownOutput string `json:"markdownOutput,omitempty" mapstructure:"markdownOutput"`
	Title          string `json:"title,omitempty" mapstructure:"title"`
	Listen         string `json:"listen,omitempty" mapstructure:"listen"`
	TimeoutSeconds int    `json:"timeout,omitempty" mapstructure:"timeout"`
	LogFile        string `json:"logFile,omitempty" mapstructure:"logFile"`
	Debug          bool   `json:"debug" mapstructure:"debug"`
	Strict         bool   `json:"strict" mapstructure:"strict"`
	ConfigPath     string `json:"-" mapstructure:"-"`
}

// FetchTimeout returns the timeout for retrieving the results document, falling back to the default if not specified.
func (c Config) FetchTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultFetchTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// InputLocation returns the results document path or URL.
func (c Config) InputLocation() string {
	if in := strings.TrimSpace(c.Input); in != "" {
		return in
	}
	return DefaultInput
}

// HTMLOutputPath returns the path of the rendered HTML table.
func (c Config) HTMLOutputPath() string {
	if p := strings.TrimSpace(c.HTMLOutput); p != "" {
		return p
	}
	return DefaultHTMLOutput
}

// ListenAddr returns the report server address.
func (c Config) ListenAddr() string {
	if addr := strings.TrimSpace(c.Listen); addr != "" {
		return addr
	}
	return DefaultListen
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "evalgrid.log"
}

// Validate rejects settings no command can act on.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.AnalysisFormat)) {
	case "", "json", "yaml", "yml":
	default:
		return fmt.Errorf("invalid configuration: analysisFormat %q must be json or yaml", c.AnalysisFormat)
	}
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid configuration: timeout must not be negative")
	}
	return nil
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		if err := config.Validate(); err != nil {
			return Config{}, err
		}
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, config.Validate()
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultFetchTimeout.Seconds())
	}

	return config, nil
}
