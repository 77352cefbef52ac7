// Package search answers single-term prefix queries against a built
// inverted index and ranks the results.
package search

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/docfind/go-prefix-search/index"
	"github.com/docfind/go-prefix-search/internal/tokenizer"
	"github.com/docfind/go-prefix-search/services"
	"github.com/docfind/go-prefix-search/store"
)

// Service implements the prefix search and ranking logic for one index.
// It fulfills the services.Searcher interface.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	tokenizer     *tokenizer.Tokenizer
	log           *logrus.Entry
}

// NewService creates a new search Service. The tokenizer must be the same
// one used at index-build time so query normalization matches term
// normalization exactly.
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

// candidate is one (term, document, score) triple pulled from a matching
// term's ranked list before the final composite sort.
type candidate struct {
	term  string
	docID uint32
	score index.Score
}

// Search normalizes the raw query, gathers the top-scoring documents of
// every indexed term sharing the normalized query as a prefix, and ranks
// them. An empty match set is a normal terminal state, not an error.
//
// Ranking is a composite rule: candidates are sorted by (exact-match
// primacy, then score ascending) and the whole list is then reversed. The
// net ordering is the exact-match group first, each group internally in
// descending score order. The literal sort-then-reverse is kept because
// the two keys' effective directions are coupled through the reversal.
func (s *Service) Search(query string) (services.SearchResult, error) {
	startTime := time.Now()
	queryID := uuid.New().String()
	normalized := s.tokenizer.Normalize(query)

	topPerTerm := s.invertedIndex.Settings.TopPerTerm
	maxResults := s.invertedIndex.Settings.MaxResults

	var candidates []candidate
	s.invertedIndex.Mu.RLock()
	s.invertedIndex.Terms.WalkPrefix(normalized, func(term string, list *index.ScoreList) {
		for _, entry := range list.TopN(topPerTerm) {
			candidates = append(candidates, candidate{term: term, docID: entry.DocID, score: entry.Score})
		}
	})
	s.invertedIndex.Mu.RUnlock()

	sort.SliceStable(candidates, func(i, j int) bool {
		return compareCandidates(candidates[i], candidates[j], normalized) < 0
	})
	for i, j := 0, len(candidates)-1; i < j; i, j = i+1, j-1 {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	hits := make([]services.Hit, 0, len(candidates))
	for _, c := range candidates {
		hits = append(hits, services.Hit{
			Document: s.documentStore.Path(c.docID),
			Term:     c.term,
			Score:    c.score,
		})
	}

	took := time.Since(startTime).Milliseconds()
	s.log.WithFields(logrus.Fields{
		"query_id": queryID,
		"query":    normalized,
		"matches":  len(hits),
		"took":     took,
	}).Info("Search completed")

	return services.SearchResult{
		Hits:    hits,
		Took:    took,
		QueryID: queryID,
	}, nil
}

// compareCandidates orders two candidates before the list-wide reversal:
// a term exactly equal to the normalized query compares greater than any
// other term; otherwise candidates compare by exact score.
func compareCandidates(a, b candidate, normalizedQuery string) int {
	aExact := a.term == normalizedQuery
	bExact := b.term == normalizedQuery
	if aExact && !bExact {
		return 1
	}
	if !aExact && bExact {
		return -1
	}
	return a.score.Cmp(b.score)
}
