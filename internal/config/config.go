package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"sudoku_engine_go/internal/engine"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Config holds the CLI run configuration. Values come from defaults,
// then an optional YAML file, then SUDOKU_* environment variables, in
// that precedence order.
type Config struct {
	Difficulty string `yaml:"difficulty"`
	Seed       int64  `yaml:"seed"`
	Count      int    `yaml:"count"`
	Format     string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Difficulty: "easy",
		Seed:       0,
		Count:      1,
		Format:     "text",
	}
}

// Load builds a Config from the optional YAML file at path and the
// environment. A .env file in the working directory is honored the
// same way as real environment variables.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("SUDOKU_DIFFICULTY"); v != "" {
		cfg.Difficulty = v
	}
	if v := os.Getenv("SUDOKU_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SUDOKU_SEED %q: %w", v, err)
		}
		cfg.Seed = n
	}
	if v := os.Getenv("SUDOKU_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SUDOKU_COUNT %q: %w", v, err)
		}
		cfg.Count = n
	}
	if v := os.Getenv("SUDOKU_FORMAT"); v != "" {
		cfg.Format = v
	}
	return nil
}

// Validate rejects configurations the engine or CLI cannot honor.
func (c *Config) Validate() error {
	if !slice.Contain(engine.Difficulties(), c.Difficulty) {
		return fmt.Errorf("invalid difficulty %q: must be one of %s",
			c.Difficulty, strings.Join(engine.Difficulties(), ", "))
	}
	if !slice.Contain(ValidFormats, c.Format) {
		return fmt.Errorf("invalid format %q: must be one of %s",
			c.Format, strings.Join(ValidFormats, ", "))
	}
	if c.Count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", c.Count)
	}
	return nil
}
