// Package indexing builds the inverted index from a decoded corpus. The
// pipeline is strictly staged and fully materialized: term counts, then
// corpus-wide IDF, then per-document normalized TF-IDF vectors, then the
// inversion into per-term ranked lists inside the trie.
package indexing

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/docfind/go-prefix-search/index"
	"github.com/docfind/go-prefix-search/internal/scoring"
	"github.com/docfind/go-prefix-search/internal/tokenizer"
	"github.com/docfind/go-prefix-search/model"
	"github.com/docfind/go-prefix-search/store"
)

// Service implements the index build for a single corpus.
// It fulfills the services.Indexer interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	tokenizer     *tokenizer.Tokenizer
	log           *logrus.Entry
}

// NewService creates a new indexing Service. The inverted index must carry
// its settings and the tokenizer must share the punctuation set used for
// query normalization.
func NewService(invertedIndex *index.InvertedIndex, documentStore *store.DocumentStore, tok *tokenizer.Tokenizer, log *logrus.Entry) (*Service, error) {
	if invertedIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if invertedIndex.Settings == nil {
		return nil, fmt.Errorf("inverted index settings cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if tok == nil {
		return nil, fmt.Errorf("tokenizer cannot be nil")
	}
	return &Service{
		invertedIndex: invertedIndex,
		documentStore: documentStore,
		tokenizer:     tok,
		log:           log,
	}, nil
}

// BuildIndex runs the full pipeline over a corpus of decoded texts keyed
// by document path. Documents that tokenize to zero terms are excluded
// with a warning: term frequencies are undefined for them. An empty corpus
// builds an empty index; any later query simply finds no matches.
//
// This satisfies the services.Indexer interface.
func (s *Service) BuildIndex(corpus map[string]string) error {
	startTime := time.Now()

	docTermCounts := make(map[uint32]map[string]uint64, len(corpus))
	for path, text := range corpus {
		counts := s.tokenizer.CountTerms(text)
		doc := model.Document{Path: path, TermCounts: counts}
		if doc.Empty() {
			s.log.WithField("document", path).Warn("Skipping document with no tokens")
			continue
		}
		docID := s.documentStore.Add(doc)
		docTermCounts[docID] = counts
	}

	documentFrequencies := scoring.DocumentFrequencies(docTermCounts)
	inverseDocumentFrequencies := scoring.InverseDocumentFrequencies(documentFrequencies, len(docTermCounts))

	s.invertedIndex.Mu.Lock()
	defer s.invertedIndex.Mu.Unlock()

	for docID, counts := range docTermCounts {
		if err := s.indexDocumentUnsafe(docID, counts, inverseDocumentFrequencies); err != nil {
			return fmt.Errorf("failed to index document %s: %w", s.documentStore.Path(docID), err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"docs":  len(docTermCounts),
		"terms": s.invertedIndex.Terms.Len(),
		"took":  time.Since(startTime).Milliseconds(),
	}).Info("Index built")

	return nil
}

// indexDocumentUnsafe scores one document and inserts its (term, score)
// pairs into the shared trie. The caller must hold the index lock.
func (s *Service) indexDocumentUnsafe(docID uint32, counts map[string]uint64, idf map[string]float64) error {
	termFrequencies, err := scoring.TermFrequencies(counts)
	if err != nil {
		return err
	}

	vector := scoring.TFIDFVector(termFrequencies, idf)
	normalized, err := scoring.NormalizeVector(vector)
	if err != nil {
		return err
	}

	for term, value := range normalized {
		score, err := index.NewScore(value)
		if err != nil {
			// Score conversion is exact for every finite double; a
			// non-finite value here is a pipeline contract violation.
			return fmt.Errorf("converting score for term %q: %w", term, err)
		}
		s.invertedIndex.AddUnsafe(term, docID, score)
	}
	return nil
}
