package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// configEnvVar names the config file when --config is not given.
const configEnvVar = "ATTRCOLS_CONFIG"

// Supported output formats.
const (
	formatXLSX = "xlsx"
	formatCSV  = "csv"
	formatJSON = "json"
)

// Config holds CLI settings read from a YAML file and flags.
type Config struct {
	Sheet      string `yaml:"sheet"`
	Format     string `yaml:"format"`
	TrimQuotes bool   `yaml:"trim_quotes"`
	Pretty     bool   `yaml:"pretty"`
	Verbose    bool   `yaml:"verbose"`
}

// defaultConfig returns the settings used when neither file nor flags set them.
func defaultConfig() Config {
	return Config{
		Sheet:  "Orders",
		Format: formatXLSX,
	}
}

// loadConfig reads a YAML config file over the defaults.
// An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	err = cfg.validate()
	return cfg, err
}

// applyFlags overrides cfg with every flag set on the command line.
func (c *Config) applyFlags(flags *pflag.FlagSet) error {
	var err error
	flags.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "sheet":
			c.Sheet = f.Value.String()
		case "format":
			c.Format = f.Value.String()
		case "trim-quotes":
			c.TrimQuotes, err = flags.GetBool(f.Name)
		case "pretty":
			c.Pretty, err = flags.GetBool(f.Name)
		case "verbose":
			c.Verbose, err = flags.GetBool(f.Name)
		}
	})
	if err != nil {
		return err
	}
	return c.validate()
}

func (c *Config) validate() error {
	c.Format = strings.ToLower(strings.TrimPrefix(c.Format, "."))
	switch c.Format {
	case formatXLSX, formatCSV, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be xlsx, csv, or json)", c.Format)
	}
}
