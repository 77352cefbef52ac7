// Package config provides configuration structures for the search engine.
// Settings are loadable from a YAML file and fall back to defaults that
// reproduce the engine's stock behavior.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPunctuation is the fixed set of ASCII punctuation characters that
// normalization strips from tokens. Characters outside this set (letters,
// digits, etc.) are always kept.
const DefaultPunctuation = "!\"#$%&'()*+,;./:<=>?@[\\]^_`{|}~-"

const (
	// DefaultTopPerTerm is how many top-scoring documents each matching
	// term contributes to the candidate list.
	DefaultTopPerTerm = 9

	// DefaultMaxResults caps the final ranked result list.
	DefaultMaxResults = 100
)

// LoggingSettings controls structured logging level and output format.
type LoggingSettings struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "text" or "json"
}

// Settings contains all configuration options for one engine run.
type Settings struct {
	CorpusDir   string          `yaml:"corpus_dir"`   // Directory tree holding the plain-text corpus
	Punctuation string          `yaml:"punctuation"`  // Characters stripped during normalization
	TopPerTerm  int             `yaml:"top_per_term"` // Candidates taken per matching term
	MaxResults  int             `yaml:"max_results"`  // Cap on the final result list
	Logging     LoggingSettings `yaml:"logging"`
}

// Load reads a YAML settings file (if path is non-empty) and applies
// defaults for any missing values. It returns an error if the file cannot
// be read or parsed, or if the resulting settings are invalid.
func Load(path string) (*Settings, error) {
	settings := &Settings{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	settings.ApplyDefaults()
	if conflicts := settings.Validate(); len(conflicts) > 0 {
		return nil, fmt.Errorf("invalid settings: %s", strings.Join(conflicts, "; "))
	}
	return settings, nil
}

// ApplyDefaults applies default values to any unset settings fields.
func (settings *Settings) ApplyDefaults() {
	if settings.Punctuation == "" {
		settings.Punctuation = DefaultPunctuation
	}
	if settings.TopPerTerm == 0 {
		settings.TopPerTerm = DefaultTopPerTerm
	}
	if settings.MaxResults == 0 {
		settings.MaxResults = DefaultMaxResults
	}
	if settings.Logging.Level == "" {
		settings.Logging.Level = "info"
	}
	if settings.Logging.Format == "" {
		settings.Logging.Format = "text"
	}
}

// Validate checks the settings for basic consistency and returns a list of
// human-readable problems. An empty list means the settings are usable.
func (settings *Settings) Validate() []string {
	var conflicts []string

	if settings.TopPerTerm < 1 {
		conflicts = append(conflicts, "top_per_term must be at least 1")
	}
	if settings.MaxResults < 1 {
		conflicts = append(conflicts, "max_results must be at least 1")
	}
	if settings.Punctuation == "" {
		conflicts = append(conflicts, "punctuation set cannot be empty")
	}

	switch settings.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		conflicts = append(conflicts, "logging level must be one of: debug, info, warn, error")
	}
	switch settings.Logging.Format {
	case "text", "json":
	default:
		conflicts = append(conflicts, "logging format must be 'text' or 'json'")
	}

	return conflicts
}
