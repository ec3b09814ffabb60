package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazri/internal/week"
)

// Config is the on-disk configuration. The core engines never read this
// directly; Settings() projects it into the value struct they take.
type Config struct {
	DatabasePath      string `yaml:"DatabasePath"`
	StandardInTime    string `yaml:"StandardInTime"`
	MaxOutTime        string `yaml:"MaxOutTime"`
	EnableMaxTime     *bool  `yaml:"EnableMaxTime"`
	LateBufferMinutes *int   `yaml:"LateBufferMinutes"`
}

func Load() (*Config, error) {
	configPath := getConfigPath()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	if cfg.StandardInTime == "" {
		cfg.StandardInTime = "10:30"
	}
	if cfg.MaxOutTime == "" {
		cfg.MaxOutTime = "20:31"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = defaultDatabasePath()
	}

	// Expand ~ in database path
	if strings.HasPrefix(cfg.DatabasePath, "~/") {
		home, _ := os.UserHomeDir()
		cfg.DatabasePath = filepath.Join(home, cfg.DatabasePath[2:])
	}

	return &cfg, nil
}

func Save(cfg *Config) error {
	configPath := getConfigPath()
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

func getConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".hazri.yaml")
}

func defaultDatabasePath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".hazri", "data.db")
}

func getDefaultConfig() *Config {
	return &Config{
		DatabasePath:   defaultDatabasePath(),
		StandardInTime: "10:30",
		MaxOutTime:     "20:31",
	}
}

// Settings projects the config into the value struct the engines consume.
// Unset pointer fields take their defaults here: the cap is on and the grace
// window is 30 minutes, but an explicit zero buffer stays zero.
func (c *Config) Settings() week.Settings {
	enable := true
	if c.EnableMaxTime != nil {
		enable = *c.EnableMaxTime
	}
	lateBuffer := 30
	if c.LateBufferMinutes != nil {
		lateBuffer = *c.LateBufferMinutes
	}
	return week.Settings{
		StandardInTime:    c.StandardInTime,
		MaxOutTime:        c.MaxOutTime,
		EnableMaxTime:     enable,
		LateBufferMinutes: lateBuffer,
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s - %s", e.Field, e.Message)
}

var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}$`)

// Validate checks the configuration for common issues
func (c *Config) Validate() error {
	if !clockPattern.MatchString(c.StandardInTime) {
		return &ValidationError{Field: "StandardInTime", Message: "must be a HH:MM clock time"}
	}
	if !clockPattern.MatchString(c.MaxOutTime) {
		return &ValidationError{Field: "MaxOutTime", Message: "must be a HH:MM clock time"}
	}
	if c.LateBufferMinutes != nil && *c.LateBufferMinutes < 0 {
		return &ValidationError{Field: "LateBufferMinutes", Message: "must not be negative"}
	}
	if c.DatabasePath == "" {
		return &ValidationError{Field: "DatabasePath", Message: "Database path is required"}
	}
	return nil
}
