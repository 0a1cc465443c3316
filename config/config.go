package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/revelaction/gibset/render"
)

// Config holds the dataset generation settings.
type Config struct {
	// Seed of the gibberish random source, 0 picks a random one.
	Seed     uint64 `yaml:"seed"`
	Format   string `yaml:"format"`
	DB       string `yaml:"db"`
	Progress bool   `yaml:"progress"`
}

func defaults() Config {
	return Config{
		Format: render.Defaultformat,
	}
}

// Load loads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults +
// env overrides.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("GIBSET_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid GIBSET_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("GIBSET_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("GIBSET_DB"); v != "" {
		cfg.DB = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	for _, f := range render.SupportedFormats() {
		if c.Format == f {
			return nil
		}
	}

	return fmt.Errorf("config: unknown format %q, allowed values are %s", c.Format, strings.Join(render.SupportedFormats(), ", "))
}
