package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/CTAG07/frankentext/pkg/markov"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v2"
)

// CorpusConfig says where the source text comes from. Exactly one of Path
// and Database must be set.
type CorpusConfig struct {
	Path     string `json:"path" yaml:"path"`
	Database string `json:"database" yaml:"database"`
	Query    string `json:"query" yaml:"query"`
	Sanitize bool   `json:"sanitize" yaml:"sanitize"`
}

// ChainConfig holds tokenization and generation settings.
type ChainConfig struct {
	Delimiters    string   `json:"delimiters" yaml:"delimiters"`
	Terminators   string   `json:"terminators" yaml:"terminators"`
	MaxVocabulary int      `json:"max_vocabulary" yaml:"max_vocabulary"`
	SentenceBytes int      `json:"sentence_bytes" yaml:"sentence_bytes"`
	Endings       []string `json:"endings" yaml:"endings"`
	MaxAttempts   int      `json:"max_attempts" yaml:"max_attempts"`
	Seed          uint64   `json:"seed" yaml:"seed"`
}

// Config is the top-level configuration struct that aggregates all other configs.
type Config struct {
	LogLevel   string        `json:"log_level" yaml:"log_level"`
	OutputPath string        `json:"output_path" yaml:"output_path"`
	Corpus     *CorpusConfig `json:"corpus_config" yaml:"corpus_config"`
	Chain      *ChainConfig  `json:"chain_config" yaml:"chain_config"`
}

// DefaultConfig creates a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Corpus: &CorpusConfig{
			Path:     "./data/corpus.txt",
			Sanitize: true,
		},
		Chain: &ChainConfig{
			Delimiters:    markov.DefaultDelimiters,
			Terminators:   markov.DefaultTerminators,
			SentenceBytes: 1000,
			Endings:       []string{"?", "!"},
			MaxAttempts:   100_000,
		},
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// LoadConfig reads the configuration from a JSON or YAML file at the given
// path, chosen by extension. If the file doesn't exist, it creates one with
// default values.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			if isYAML(path) {
				data, err = yaml.Marshal(config)
			} else {
				data, err = json.MarshalIndent(config, "", "  ")
			}
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Warn instead of failing, the defaults are still usable.
				fmt.Fprintf(os.Stderr, "warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if isYAML(path) {
		err = yaml.Unmarshal(file, config)
	} else {
		err = json.Unmarshal(file, config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

// Validate reports the first setting that would make a run impossible.
func (c *Config) Validate() error {
	if c.Corpus == nil || c.Chain == nil {
		return fmt.Errorf("corpus_config and chain_config are required")
	}
	if (c.Corpus.Path == "") == (c.Corpus.Database == "") {
		return fmt.Errorf("exactly one of corpus path and corpus database must be set")
	}
	if c.Chain.SentenceBytes < 2 {
		return fmt.Errorf("sentence_bytes must be at least 2, got %d", c.Chain.SentenceBytes)
	}
	if c.Chain.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be positive, got %d", c.Chain.MaxAttempts)
	}
	if c.Chain.MaxVocabulary < 0 {
		return fmt.Errorf("max_vocabulary must not be negative, got %d", c.Chain.MaxVocabulary)
	}
	for _, ending := range c.Chain.Endings {
		if utf8.RuneCountInString(ending) != 1 {
			return fmt.Errorf("ending %q must be a single character", ending)
		}
	}
	return nil
}
