// Package config loads the optional defaults file for the CLI. Flags override
// anything set here.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Merge struct {
		// MaxGap is the merge silence tolerance in seconds.
		MaxGap float64 `yaml:"max_gap"`
		// MaxDuration is the merged cue span cap in seconds.
		MaxDuration float64 `yaml:"max_duration"`
	} `yaml:"merge"`
	Subtitles struct {
		// SpeakerTags emits "[speaker]" prefixes in generated subtitles.
		SpeakerTags bool `yaml:"speaker_tags"`
	} `yaml:"subtitles"`
}

// Default returns the built-in defaults used when no file is given.
func Default() Config {
	var c Config
	c.Merge.MaxGap = 1.0
	c.Merge.MaxDuration = 30.0
	c.Subtitles.SpeakerTags = true
	return c
}

// Load reads the YAML defaults file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of the built-in defaults
// and validates the result. Unknown keys are rejected so typos surface early.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that cfg contains a coherent set of values. It returns a
// joined error listing all failures found.
func Validate(cfg *Config) error {
	var errs []error
	if cfg.Merge.MaxGap < 0 {
		errs = append(errs, fmt.Errorf("merge.max_gap %.3f is negative", cfg.Merge.MaxGap))
	}
	if cfg.Merge.MaxDuration <= 0 {
		errs = append(errs, fmt.Errorf("merge.max_duration %.3f must be positive", cfg.Merge.MaxDuration))
	}
	return errors.Join(errs...)
}
