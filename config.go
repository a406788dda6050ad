package lexcloud

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds run configuration for the term-cloud tools.
type Config struct {
	ServiceURL    string   `yaml:"service_url"`
	APIKey        string   `yaml:"api_key"`
	Language      string   `yaml:"language"`
	TopN          int      `yaml:"top_n"`
	POSTags       []string `yaml:"pos_tags"`
	SizeMin       float64  `yaml:"size_min"`
	SizeMax       float64  `yaml:"size_max"`
	StopwordsFile string   `yaml:"stopwords_file"`
}

// Defaults returns a Config with all default values set.
func Defaults() Config {
	return Config{
		ServiceURL: DefaultServiceURL,
		SizeMin:    DefaultSizeRange.Min,
		SizeMax:    DefaultSizeRange.Max,
	}
}

// LoadConfig reads a YAML config file and returns a validated Config. The
// environment variable ANNOTATE_API_KEY overrides api_key from the file.
func LoadConfig(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	if key := os.Getenv("ANNOTATE_API_KEY"); key != "" {
		cfg.APIKey = key
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that values are internally consistent. The API key is not
// required here: legend-only and precomputed-distribution runs never touch
// the annotation service.
func (c *Config) Validate() error {
	if c.SizeMin >= c.SizeMax {
		return fmt.Errorf("size_min (%g) must be below size_max (%g)", c.SizeMin, c.SizeMax)
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n must be non-negative, got %d", c.TopN)
	}
	for _, tag := range c.POSTags {
		if _, ok := ParsePartOfSpeech(tag); !ok {
			return fmt.Errorf("unknown pos tag %q in pos_tags", tag)
		}
	}
	return nil
}

// AllowedTags converts the configured tag names to PartOfSpeech values.
// Call Validate first; unknown tags fold into POSOther here.
func (c *Config) AllowedTags() []PartOfSpeech {
	tags := make([]PartOfSpeech, 0, len(c.POSTags))
	for _, tag := range c.POSTags {
		pos, _ := ParsePartOfSpeech(tag)
		tags = append(tags, pos)
	}
	return tags
}

// SizeRange returns the configured display range.
func (c *Config) SizeRange() SizeRange {
	return SizeRange{Min: c.SizeMin, Max: c.SizeMax}
}
