package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	settings := &Settings{}
	settings.ApplyDefaults()

	if settings.Punctuation != DefaultPunctuation {
		t.Errorf("Punctuation = %q, want default set", settings.Punctuation)
	}
	if settings.TopPerTerm != 9 {
		t.Errorf("TopPerTerm = %d, want 9", settings.TopPerTerm)
	}
	if settings.MaxResults != 100 {
		t.Errorf("MaxResults = %d, want 100", settings.MaxResults)
	}
	if settings.Logging.Level != "info" || settings.Logging.Format != "text" {
		t.Errorf("Logging defaults = %+v, want info/text", settings.Logging)
	}
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	settings := &Settings{TopPerTerm: 3, MaxResults: 10, Punctuation: ".,"}
	settings.ApplyDefaults()

	if settings.TopPerTerm != 3 || settings.MaxResults != 10 || settings.Punctuation != ".," {
		t.Errorf("ApplyDefaults overwrote explicit values: %+v", settings)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Settings)
		wantConflicts int
	}{
		{"defaults are valid", func(*Settings) {}, 0},
		{"negative top per term", func(s *Settings) { s.TopPerTerm = -1 }, 1},
		{"zero max results", func(s *Settings) { s.MaxResults = -5 }, 1},
		{"bad logging level", func(s *Settings) { s.Logging.Level = "verbose" }, 1},
		{"bad logging format", func(s *Settings) { s.Logging.Format = "xml" }, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := &Settings{}
			settings.ApplyDefaults()
			tt.mutate(settings)
			if got := settings.Validate(); len(got) != tt.wantConflicts {
				t.Errorf("Validate() returned %d conflicts (%v), want %d", len(got), got, tt.wantConflicts)
			}
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	settings, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if settings.TopPerTerm != DefaultTopPerTerm {
		t.Errorf("Load(\"\") TopPerTerm = %d, want default", settings.TopPerTerm)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := []byte("corpus_dir: /data/mail\ntop_per_term: 5\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if settings.CorpusDir != "/data/mail" {
		t.Errorf("CorpusDir = %q, want /data/mail", settings.CorpusDir)
	}
	if settings.TopPerTerm != 5 {
		t.Errorf("TopPerTerm = %d, want 5", settings.TopPerTerm)
	}
	if settings.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", settings.Logging.Level)
	}
	// Unset fields still get defaults.
	if settings.MaxResults != DefaultMaxResults {
		t.Errorf("MaxResults = %d, want default", settings.MaxResults)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing file did not return an error")
	}
}

func TestLoadInvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("top_per_term: -2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load of invalid settings did not return an error")
	}
}
