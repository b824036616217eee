// Package config loads the boggle CLI configuration from a YAML file.
//
// Example file:
//
//	dictionary: /usr/share/dict/words
//	adjacency: 8
//	fold: true
//	min_length: 3
//	max_length: 0
//	workers: 4
//	timeout: 2s
//
// Unknown keys are rejected. Fields missing from the file keep their defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/boggle/wordgrid"
	"github.com/katalvlaran/boggle/wordlist"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the settings of a solve run.
type Config struct {
	// Dictionary is the word list path.
	Dictionary string `yaml:"dictionary"`
	// Adjacency is 4 (orthogonal) or 8 (with diagonals).
	Adjacency int `yaml:"adjacency"`
	// Fold case-folds the dictionary and the board before searching.
	Fold bool `yaml:"fold"`
	// MinLength is the shortest word reported.
	MinLength int `yaml:"min_length"`
	// MaxLength caps path length; 0 means no cap.
	MaxLength int `yaml:"max_length"`
	// Workers is the number of concurrent start-cell searches; 0 means one per cell.
	Workers int `yaml:"workers"`
	// Timeout bounds the search; 0 means no limit.
	Timeout time.Duration `yaml:"timeout"`
}

// Default returns Boggle defaults: system dictionary, 8-way adjacency,
// no folding, words of 3+ letters, sequential search, no timeout.
func Default() Config {
	return Config{
		Dictionary: wordlist.DefaultPath,
		Adjacency:  8,
		MinLength:  3,
		Workers:    1,
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Dictionary == "":
		return fmt.Errorf("%w: dictionary path is empty", ErrInvalidConfig)
	case c.Adjacency != 4 && c.Adjacency != 8:
		return fmt.Errorf("%w: adjacency must be 4 or 8, got %d", ErrInvalidConfig, c.Adjacency)
	case c.MinLength < 0, c.MaxLength < 0:
		return fmt.Errorf("%w: negative word length limit", ErrInvalidConfig)
	case c.MaxLength > 0 && c.MinLength > c.MaxLength:
		return fmt.Errorf("%w: min_length %d exceeds max_length %d", ErrInvalidConfig, c.MinLength, c.MaxLength)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalidConfig, c.Timeout)
	}

	return nil
}

// Connectivity maps Adjacency to the wordgrid mode.
func (c Config) Connectivity() wordgrid.Connectivity {
	if c.Adjacency == 4 {
		return wordgrid.Conn4
	}

	return wordgrid.Conn8
}

// SearchOptions translates the search settings into wordgrid options.
// Timeout is applied by the caller through the context.
func (c Config) SearchOptions() []wordgrid.Option {
	return []wordgrid.Option{
		wordgrid.WithMinLength(c.MinLength),
		wordgrid.WithMaxLength(c.MaxLength),
		wordgrid.WithWorkers(c.Workers),
	}
}
