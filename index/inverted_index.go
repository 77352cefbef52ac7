package index

import (
	"sync"

	"github.com/docfind/go-prefix-search/config"
)

// InvertedIndex maps each term to its ranked list of documents and keeps
// the vocabulary in a prefix-searchable trie. It is built once per run and
// read-only afterwards; the mutex exists so the built index could be
// shared across concurrent readers without a redesign.
type InvertedIndex struct {
	Mu       sync.RWMutex
	Terms    *Trie
	Settings *config.Settings // Reference to settings for this index
}

// NewInvertedIndex creates an empty index bound to the given settings.
func NewInvertedIndex(settings *config.Settings) *InvertedIndex {
	return &InvertedIndex{
		Terms:    NewTrie(),
		Settings: settings,
	}
}

// AddUnsafe inserts one (term, document, score) triple. Entries for the
// same term from different documents share a single ScoreList; an exact
// score collision under one term overwrites the earlier document (see
// ScoreList.Insert). The caller must hold the index lock.
func (ii *InvertedIndex) AddUnsafe(term string, docID uint32, score Score) {
	list, ok := ii.Terms.Get(term)
	if !ok {
		list = &ScoreList{}
		ii.Terms.Insert(term, list)
	}
	list.Insert(score, docID)
}
