package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration. Relative paths
// resolve against BaseDir, which itself defaults to the executable's
// directory.
type PathsConfig struct {
	BaseDir      string `yaml:"base_dir" envconfig:"BASE_DIR"`
	InputDir     string `yaml:"input_dir" envconfig:"INPUT_DIR"`
	ProcessedDir string `yaml:"processed_dir" envconfig:"PROCESSED_DIR"`
	OutputDir    string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LogsDir      string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// configFileName is looked up inside the base directory.
const configFileName = "config.yaml"

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/smmerge.log",
		},
		Paths: PathsConfig{
			InputDir:     "files",
			ProcessedDir: "processed_files",
			OutputDir:    ".",
			LogsDir:      "logs",
		},
	}
}

// Load builds the configuration in increasing precedence: built-in defaults,
// then config.yaml in the base directory, then SMM_* environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if base := os.Getenv("SMM_PATHS_BASE_DIR"); base != "" {
		cfg.Paths.BaseDir = base
	}
	if cfg.Paths.BaseDir == "" {
		base, err := executableDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve base directory: %w", err)
		}
		cfg.Paths.BaseDir = base
	}

	configFile := filepath.Join(cfg.Paths.BaseDir, configFileName)
	if _, err := os.Stat(configFile); err == nil {
		if err := cfg.applyFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	// Environment variables win over file and defaults; envconfig only
	// touches fields whose variable is actually set.
	if err := envconfig.Process("SMM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	cfg.resolvePaths()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// applyFile overlays every non-empty value from a YAML file.
func (c *Config) applyFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return err
	}

	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&c.Logging.Level, fileCfg.Logging.Level)
	merge(&c.Logging.Format, fileCfg.Logging.Format)
	merge(&c.Logging.Output, fileCfg.Logging.Output)
	merge(&c.Logging.FilePath, fileCfg.Logging.FilePath)
	merge(&c.Paths.InputDir, fileCfg.Paths.InputDir)
	merge(&c.Paths.ProcessedDir, fileCfg.Paths.ProcessedDir)
	merge(&c.Paths.OutputDir, fileCfg.Paths.OutputDir)
	merge(&c.Paths.LogsDir, fileCfg.Paths.LogsDir)
	return nil
}

func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging level: %s", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	switch c.Logging.Output {
	case "console", "file", "both":
	default:
		return fmt.Errorf("invalid logging output: %s", c.Logging.Output)
	}
	return nil
}
