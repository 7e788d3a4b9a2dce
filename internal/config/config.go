package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
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
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stderr"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/salesreport.log"`
}

// PathsConfig contains file system path configuration
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"outputs"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// configFileName is checked in the working directory when no explicit file
// is given.
const configFileName = "salesreport.yaml"

// Load loads configuration from, in increasing precedence: built-in
// defaults, an optional YAML file in the working directory, a .env file and
// environment variables (prefix SALES).
func Load() (*Config, error) {
	// Missing .env is fine; it only seeds the environment when present.
	_ = godotenv.Load()

	var fileCfg *Config
	if _, err := os.Stat(configFileName); err == nil {
		fileCfg, err = loadFromFile(configFileName)
		if err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("SALES", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if fileCfg != nil {
		cfg = merge(*fileCfg, cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// merge overlays env config on top of file config. Values explicitly set in
// the environment win; envconfig defaults fill whatever neither source set.
func merge(fileCfg, envCfg Config) Config {
	if isEnvDefault("SALES_LOGGING_LEVEL") && fileCfg.Logging.Level != "" {
		envCfg.Logging.Level = fileCfg.Logging.Level
	}
	if isEnvDefault("SALES_LOGGING_OUTPUT") && fileCfg.Logging.Output != "" {
		envCfg.Logging.Output = fileCfg.Logging.Output
	}
	if isEnvDefault("SALES_LOGGING_FILE_PATH") && fileCfg.Logging.FilePath != "" {
		envCfg.Logging.FilePath = fileCfg.Logging.FilePath
	}
	if isEnvDefault("SALES_PATHS_DATA_DIR") && fileCfg.Paths.DataDir != "" {
		envCfg.Paths.DataDir = fileCfg.Paths.DataDir
	}
	if isEnvDefault("SALES_PATHS_REPORTS_DIR") && fileCfg.Paths.ReportsDir != "" {
		envCfg.Paths.ReportsDir = fileCfg.Paths.ReportsDir
	}
	if isEnvDefault("SALES_PATHS_LOGS_DIR") && fileCfg.Paths.LogsDir != "" {
		envCfg.Paths.LogsDir = fileCfg.Paths.LogsDir
	}
	return envCfg
}

func isEnvDefault(key string) bool {
	_, set := os.LookupEnv(key)
	return !set
}

// validate checks configuration values
func (c *Config) validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	switch c.Logging.Output {
	case "stderr", "file", "both":
	default:
		return fmt.Errorf("invalid log output: %s", c.Logging.Output)
	}

	if c.Paths.ReportsDir == "" {
		return fmt.Errorf("reports directory must not be empty")
	}

	return nil
}
