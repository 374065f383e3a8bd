// Package config provides YAML-based configuration loading for hwrel.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/zulandar/hwrel/internal/milhdbk217f"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file used when --config is not given.
const DefaultPath = "hwrel.yaml"

// Config is the top-level hwrel configuration, loaded from hwrel.yaml.
type Config struct {
	Project      string              `yaml:"project"`
	HRMultiplier float64             `yaml:"hr_multiplier"`
	Database     DatabaseConfig      `yaml:"database"`
	Logging      LoggingConfig       `yaml:"logging"`
	Server       ServerConfig        `yaml:"server"`
	Schedule     ScheduleConfig      `yaml:"schedule"`
	Report       ReportConfig        `yaml:"report"`
	StressLimits []StressLimitConfig `yaml:"stress_limits"`
}

// DatabaseConfig selects and locates the BoM database.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite or mysql
	Path   string `yaml:"path"`
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Name   string `yaml:"name"`
}

// LoggingConfig holds zap logger settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ServerConfig holds API server settings.
type ServerConfig struct {
	Port    int `yaml:"port"`
	Workers int `yaml:"workers"`
}

// ScheduleConfig drives periodic recalculation. An empty Recalculate
// disables it.
type ScheduleConfig struct {
	Recalculate string `yaml:"recalculate"`
	RootID      uint   `yaml:"root_id"`
}

// ReportConfig holds Excel export settings.
type ReportConfig struct {
	Dir string `yaml:"dir"`
}

// StressLimitConfig overrides one derating limit. Zero subcategory or
// quality match any.
type StressLimitConfig struct {
	Category    int     `yaml:"category"`
	Subcategory int     `yaml:"subcategory"`
	Quality     int     `yaml:"quality"`
	Kind        string  `yaml:"kind"`
	Harsh       float64 `yaml:"harsh"`
	Mild        float64 `yaml:"mild"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.HRMultiplier == 0 {
		c.HRMultiplier = 1.0e6
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "hwrel.db"
	}
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	if c.Database.Port == 0 {
		c.Database.Port = 3306
	}
	if c.Database.Name == "" && c.Project != "" {
		c.Database.Name = "hwrel_" + c.Project
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Workers == 0 {
		c.Server.Workers = 1
	}
	if c.Report.Dir == "" {
		c.Report.Dir = "reports"
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	if c.Project == "" {
		errs = append(errs, "project is required")
	}
	if c.HRMultiplier < 0 {
		errs = append(errs, "hr_multiplier must be positive")
	}
	switch c.Database.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("database.driver %q must be sqlite or mysql", c.Database.Driver))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level %q must be debug, info, warn or error", c.Logging.Level))
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Sprintf("logging.format %q must be json or console", c.Logging.Format))
	}
	if c.Server.Workers < 1 {
		errs = append(errs, "server.workers must be at least 1")
	}
	if c.Schedule.Recalculate != "" {
		parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
		if _, err := parser.Parse(c.Schedule.Recalculate); err != nil {
			errs = append(errs, fmt.Sprintf("schedule.recalculate: %v", err))
		}
		if c.Schedule.RootID == 0 {
			errs = append(errs, "schedule.root_id is required when schedule.recalculate is set")
		}
	}
	for i, s := range c.StressLimits {
		if s.Category < milhdbk217f.CategoryIntegratedCircuit || s.Category > milhdbk217f.CategoryMiscellaneous {
			errs = append(errs, fmt.Sprintf("stress_limits[%d].category %d is out of range", i, s.Category))
		}
		if _, err := milhdbk217f.ParseStressKind(s.Kind); err != nil {
			errs = append(errs, fmt.Sprintf("stress_limits[%d].kind %q is unknown", i, s.Kind))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// StressLimitEntries converts the configured overrides for the
// milhdbk217f stress limit table.
func (c *Config) StressLimitEntries() []milhdbk217f.StressLimit {
	out := make([]milhdbk217f.StressLimit, 0, len(c.StressLimits))
	for _, s := range c.StressLimits {
		kind, err := milhdbk217f.ParseStressKind(s.Kind)
		if err != nil {
			continue
		}
		out = append(out, milhdbk217f.StressLimit{
			Category:    s.Category,
			Subcategory: s.Subcategory,
			Quality:     s.Quality,
			Kind:        kind,
			Limit:       milhdbk217f.Limit{Harsh: s.Harsh, Mild: s.Mild},
		})
	}
	return out
}

// StressLimitTable returns the built-in derating limits with the configured
// overrides applied.
func (c *Config) StressLimitTable() milhdbk217f.StressLimitTable {
	return milhdbk217f.DefaultStressLimits().Override(c.StressLimitEntries())
}
