// Package testing provides utilities and helpers for testing the search engine.
package testing

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/docfind/go-prefix-search/config"
	"github.com/docfind/go-prefix-search/index"
	"github.com/docfind/go-prefix-search/internal/indexing"
	"github.com/docfind/go-prefix-search/internal/search"
	"github.com/docfind/go-prefix-search/internal/tokenizer"
	"github.com/docfind/go-prefix-search/store"
)

// SilentLogger returns a logrus entry that discards all output, keeping
// test logs clean.
func SilentLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

// TestSettings returns default settings for tests.
func TestSettings() *config.Settings {
	settings := &config.Settings{}
	settings.ApplyDefaults()
	return settings
}

// BuildTestEngine indexes an in-memory corpus with default settings and
// returns a ready-to-query search service together with the document
// store backing it.
func BuildTestEngine(t *testing.T, corpus map[string]string) (*search.Service, *store.DocumentStore) {
	t.Helper()
	return BuildTestEngineWithSettings(t, corpus, TestSettings())
}

// BuildTestEngineWithSettings is BuildTestEngine with caller-provided
// settings, for tests that exercise non-default caps.
func BuildTestEngineWithSettings(t *testing.T, corpus map[string]string, settings *config.Settings) (*search.Service, *store.DocumentStore) {
	t.Helper()

	log := SilentLogger()
	tok := tokenizer.New(tokenizer.NewPunctuation(settings.Punctuation))
	invertedIndex := index.NewInvertedIndex(settings)
	documentStore := store.NewDocumentStore()

	indexer, err := indexing.NewService(invertedIndex, documentStore, tok, log)
	require.NoError(t, err)
	require.NoError(t, indexer.BuildIndex(corpus))

	searcher, err := search.NewService(invertedIndex, documentStore, tok, log)
	require.NoError(t, err)

	return searcher, documentStore
}
