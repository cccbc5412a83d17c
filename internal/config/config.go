// Package config loads, validates and persists the ciicalc configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/etivemor/ciicalc/internal/cii"
)

// Environment variables recognised by the configuration layer.
const (
	EnvHome         = "CIICALC_HOME"
	EnvLogLevel     = "CIICALC_LOG_LEVEL"
	EnvLogFormat    = "CIICALC_LOG_FORMAT"
	EnvLogFile      = "CIICALC_LOG_FILE"
	EnvOutputFormat = "CIICALC_OUTPUT_FORMAT"
	EnvPrecision    = "CIICALC_PRECISION"
	EnvTargetYear   = "CIICALC_TARGET_YEAR"
)

const (
	configDirName  = ".ciicalc"
	configFileName = "config.yaml"
	logFileName    = "ciicalc.log"

	defaultPrecision = 4
	maxPrecision     = 10

	outputTypeFile = "file"
)

// Config is the root of config.yaml.
type Config struct {
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Calculation CalculationConfig `yaml:"calculation"`

	configPath string
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" env:"CIICALC_OUTPUT_FORMAT"`
	Precision     int    `yaml:"precision"      env:"CIICALC_PRECISION"`
}

// LoggingConfig controls the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          env:"CIICALC_LOG_LEVEL"`
	Format string `yaml:"format"         env:"CIICALC_LOG_FORMAT"`
	File   string `yaml:"file,omitempty" env:"CIICALC_LOG_FILE"`
}

// CalculationConfig holds defaults for the rate command.
type CalculationConfig struct {
	// DefaultTargetYear is used when --target-year is not given. 0 means unset.
	DefaultTargetYear int `yaml:"default_target_year" env:"CIICALC_TARGET_YEAR"`
}

// validFormats mirrors the formats accepted by the report package.
//
//nolint:gochecknoglobals // Immutable lookup table.
var validFormats = map[string]bool{
	"table":  true,
	"json":   true,
	"ndjson": true,
	"xlsx":   true,
	"pdf":    true,
}

//nolint:gochecknoglobals // Immutable lookup table.
var validLogFormats = map[string]bool{
	"console": true,
	"json":    true,
}

// Default returns a Config populated with defaults and no file backing.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: "table",
			Precision:     defaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		configPath: filepath.Join(HomeDir(), configFileName),
	}
}

// New returns the default configuration overlaid with config.yaml (when it
// exists) and the environment. Parse errors in the file or the environment
// are ignored here and surface through Load and ApplyEnv.
func New() *Config {
	cfg := Default()
	if loaded, err := Load(cfg.configPath); err == nil {
		cfg = loaded
	}
	_ = cfg.ApplyEnv()
	return cfg
}

// Load reads the configuration at path on top of the defaults. A missing
// file is an error; callers that tolerate absence should check with
// errors.Is(err, os.ErrNotExist).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.configPath = path
	return cfg, nil
}

// ApplyEnv applies the CIICALC_* environment overrides named in the env
// struct tags. Unset variables leave the current values alone. A variable
// that does not parse stops the overlay and is returned as an error.
func (c *Config) ApplyEnv() error {
	return ParseEnv(c)
}

// ParseEnv loads env-tagged fields of target from the environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ConfigPath returns the file the configuration is read from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config path is not set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// Validate checks every section and joins all problems into one error.
func (c *Config) Validate() error {
	var errs []error

	if !validFormats[strings.ToLower(c.Output.DefaultFormat)] {
		errs = append(errs, fmt.Errorf("output.default_format %q is not one of table, json, ndjson, xlsx, pdf",
			c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		errs = append(errs, fmt.Errorf("output.precision must be between 0 and %d, got %d",
			maxPrecision, c.Output.Precision))
	}

	if c.Logging.Level != "" {
		if _, err := parseLevel(c.Logging.Level); err != nil {
			errs = append(errs, fmt.Errorf("logging.level: %w", err))
		}
	}
	if c.Logging.Format != "" && !validLogFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format))
	}

	if y := c.Calculation.DefaultTargetYear; y != 0 && (y < cii.FirstYear || y > cii.LastYear) {
		errs = append(errs, fmt.Errorf("calculation.default_target_year %d is outside %d-%d",
			y, cii.FirstYear, cii.LastYear))
	}

	return errors.Join(errs...)
}

// HomeDir returns $CIICALC_HOME, or ~/.ciicalc when unset. If the user home
// cannot be resolved the working directory is used.
func HomeDir() string {
	if v := os.Getenv(EnvHome); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultLogPath is the log file used when file logging is enabled without a path.
func DefaultLogPath() string {
	return filepath.Join(HomeDir(), "logs", logFileName)
}

//nolint:gochecknoglobals // Process-wide configuration, guarded by globalMu.
var (
	globalMu     sync.RWMutex
	globalConfig *Config
)

// GetGlobalConfig returns the process configuration, loading it on first use.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	cfg := globalConfig
	globalMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// SetGlobalConfig replaces the process configuration.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalConfig drops the cached configuration so the next
// GetGlobalConfig call reloads it. Used by tests.
func ResetGlobalConfig() {
	SetGlobalConfig(nil)
}
