// Package config loads fixturegen settings.
//
// Values are resolved in order, later sources winning:
//  1. built-in defaults
//  2. the YAML file, when one is given
//  3. the .env file and process environment (FIXTUREGEN_*)
//
// Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	EnvOutDir   = "FIXTUREGEN_OUT"
	EnvLogLevel = "FIXTUREGEN_LOG_LEVEL"
	EnvLint     = "FIXTUREGEN_LINT"
)

type Config struct {
	OutDir      string   `yaml:"out_dir"`
	LogLevel    string   `yaml:"log_level"`
	Title       string   `yaml:"title"`
	Version     string   `yaml:"version"`
	Lint        bool     `yaml:"lint"`
	IgnoreRules []string `yaml:"ignore_rules"`
}

func Default() Config {
	return Config{
		OutDir:   "schemas",
		LogLevel: "info",
		Title:    "Fixture Schemas",
		Version:  "1.0.0",
	}
}

// Load resolves the configuration. Either path may be empty; a missing
// .env file is not an error.
func Load(configPath string, envPath string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", configPath, err)
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvOutDir); v != "" {
		c.OutDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLint); v != "" {
		lint, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLint, err)
		}
		c.Lint = lint
	}

	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.OutDir) == "" {
		return errors.New("out_dir is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log_level: %w", err)
	}

	return lvl, nil
}
