// Package config holds settings for the sensorgeom tool.
package config

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds all tool settings.
type Config struct {
	Input   string        `yaml:"input"`  // observation file
	Output  string        `yaml:"output"` // report file, stdout when empty
	Body    BodyConfig    `yaml:"body"`
	Workers int           `yaml:"workers"`
	Logging LoggingConfig `yaml:"logging"`
}

// BodyConfig selects the target body used to derive missing surface normals.
// Radii, when all set, override the named built-in body.
type BodyConfig struct {
	Name  string     `yaml:"name"`
	Radii [3]float64 `yaml:"radii"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Body: BodyConfig{
			Name: "earth",
		},
		Workers: runtime.GOMAXPROCS(0),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Flags are the command-line overrides. Unset flags keep the file values.
type Flags struct {
	fs       *flag.FlagSet
	config   *string
	input    *string
	output   *string
	body     *string
	workers  *int
	logLevel *string
	logFile  *string
	Help     *bool
}

// DefineFlags registers the tool flags on fs.
func DefineFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:       fs,
		config:   fs.String("config", "", "YAML config file"),
		input:    fs.String("in", "", "Observation YAML file"),
		output:   fs.String("out", "", "Report file (default stdout)"),
		body:     fs.String("body", "", "Target body for derived surface normals (earth, mars, moon)"),
		workers:  fs.Int("workers", 0, "Number of concurrent evaluations (default GOMAXPROCS)"),
		logLevel: fs.String("log-level", "", "Log level: debug, info, warn, error"),
		logFile:  fs.String("log-file", "", "Rotating log file path"),
		Help:     fs.Bool("h", false, "Show this help message"),
	}
}

// Load builds the configuration with priority defaults < file < flags.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	if *f.config != "" {
		if err := loadFromFile(cfg, *f.config); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", *f.config, err)
		}
	}

	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("no observation file given (use -in or input:)")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}

func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "in":
			cfg.Input = *f.input
		case "out":
			cfg.Output = *f.output
		case "body":
			cfg.Body.Name = *f.body
			cfg.Body.Radii = [3]float64{}
		case "workers":
			cfg.Workers = *f.workers
		case "log-level":
			cfg.Logging.Level = *f.logLevel
		case "log-file":
			cfg.Logging.LogFile = *f.logFile
		}
	})
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
