package config

import (
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/scanforge/scanforge/pkg/shared/files"
)

// Config holds the application configuration loaded from a YAML file.
type Config struct {
	Logger    Logger    `yaml:"logger"`
	Rules     Rules     `yaml:"rules"`
	GitClient GitClient `yaml:"git_client"`
}

// Logger holds logging configuration.
type Logger struct {
	Level string `yaml:"level"`
}

// Rules holds rule synthesis configuration.
type Rules struct {
	// IDPrefix is the scanner prefix of every generated rule id.
	IDPrefix string `yaml:"id_prefix"`
}

// GitClient holds configuration for fetching pattern corpora.
type GitClient struct {
	Depth       int  `yaml:"depth"`
	InsecureTLS bool `yaml:"insecure_tls"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() *Config {
	return &Config{
		Logger: Logger{Level: "INFO"},
		Rules:  Rules{IDPrefix: "scanforge"},
	}
}

// ValidateConfigPath checks that the given path points to a regular file.
func ValidateConfigPath(path string) error {
	return files.ValidatePath(path)
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	if err := d.Decode(data); err != nil {
		return err
	}

	return nil
}

// NewConfig loads the configuration from configPath. A missing file is not an
// error: the defaults are returned so the binary works without any config.
func NewConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadYAML(configPath, config); err != nil {
		return nil, err
	}

	if config.Rules.IDPrefix == "" {
		config.Rules.IDPrefix = "scanforge"
	}

	return config, nil
}
