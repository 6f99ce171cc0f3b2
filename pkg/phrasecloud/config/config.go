package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/phrasecloud/pkg/phrasecloud/internalerr"
)

// Config is the run configuration. Flags override whatever a config file
// set; both layers land here before Validate.
type Config struct {
	Input       string `yaml:"input"`
	Out         string `yaml:"out"`
	MinLen      int    `yaml:"min_len"`
	Top         int    `yaml:"top"`
	Stopwords   string `yaml:"stopwords"`
	Lowercase   bool   `yaml:"lowercase"`
	KeepNumbers bool   `yaml:"keep_numbers"`
	NGrams      []int  `yaml:"ngrams"`
	Workers     int    `yaml:"workers"`
	Verbose     bool   `yaml:"verbose"`
	DB          string `yaml:"db"`
	Watch       bool   `yaml:"watch"`
}

// Default returns the configuration defaults: minimum length 2, unbounded
// output, lowercasing on, numeric tokens dropped, unigrams only.
func Default() Config {
	return Config{
		Out:       "word_counts.csv",
		MinLen:    2,
		Lowercase: true,
		Workers:   1,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks required fields and normalizes the rest.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is required", internalerr.ErrInvalidConfig)
	}
	if c.Out == "" {
		c.Out = "word_counts.csv"
	}
	if c.MinLen < 0 {
		return fmt.Errorf("%w: min_len must be >= 0", internalerr.ErrInvalidConfig)
	}
	if c.Top < 0 {
		return fmt.Errorf("%w: top must be >= 0", internalerr.ErrInvalidConfig)
	}
	for _, n := range c.NGrams {
		if n < 1 {
			return fmt.Errorf("%w: ngram order %d", internalerr.ErrInvalidConfig, n)
		}
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	return nil
}
