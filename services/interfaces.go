// Package services defines the interfaces between the engine's layers.
package services

import (
	"github.com/docfind/go-prefix-search/index"
)

// Hit is a single ranked result: a document, the indexed term that matched
// the query prefix, and the document's exact normalized TF-IDF score for
// that term.
type Hit struct {
	Document string      `json:"document"` // Source path of the matched document
	Term     string      `json:"term"`     // The indexed term that matched
	Score    index.Score `json:"score"`
}

// SearchResult is the ordered outcome of one prefix query.
type SearchResult struct {
	Hits    []Hit  `json:"hits"`
	Took    int64  `json:"took"`     // milliseconds
	QueryID string `json:"query_id"` // unique UUID for this search query
}

// NoMatches reports the empty-result terminal state. It is a normal
// outcome, not an error.
func (r SearchResult) NoMatches() bool {
	return len(r.Hits) == 0
}

// Indexer builds the inverted index from a fully-materialized corpus of
// decoded document texts keyed by path.
type Indexer interface {
	BuildIndex(corpus map[string]string) error
}

// Searcher answers a single-term prefix query against a built index.
type Searcher interface {
	Search(query string) (SearchResult, error)
}
