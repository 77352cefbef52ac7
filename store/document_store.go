// Package store holds the documents known to the engine and the mapping
// between their external path identifiers and dense internal numeric IDs.
package store

import (
	"sync"

	"github.com/docfind/go-prefix-search/model"
)

// DocumentStore assigns each document a dense uint32 internal ID. Internal
// IDs keep index postings compact and are what the per-term document
// frequency bitmaps are built from.
type DocumentStore struct {
	Mu           sync.RWMutex
	Docs         map[uint32]model.Document // Internal ID to document
	PathToID     map[string]uint32         // Source path to internal ID
	NextInternal uint32
}

// NewDocumentStore creates an empty DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		Docs:     make(map[uint32]model.Document),
		PathToID: make(map[string]uint32),
	}
}

// Add stores a document and returns its internal ID. Adding a path that is
// already present replaces the stored document and keeps its ID.
func (ds *DocumentStore) Add(doc model.Document) uint32 {
	ds.Mu.Lock()
	defer ds.Mu.Unlock()

	if id, ok := ds.PathToID[doc.Path]; ok {
		ds.Docs[id] = doc
		return id
	}
	id := ds.NextInternal
	ds.NextInternal++
	ds.Docs[id] = doc
	ds.PathToID[doc.Path] = id
	return id
}

// Get returns the document stored under an internal ID.
func (ds *DocumentStore) Get(id uint32) (model.Document, bool) {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	doc, ok := ds.Docs[id]
	return doc, ok
}

// Path returns the source path for an internal ID, or "" if unknown.
func (ds *DocumentStore) Path(id uint32) string {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	return ds.Docs[id].Path
}

// Len returns the number of stored documents.
func (ds *DocumentStore) Len() int {
	ds.Mu.RLock()
	defer ds.Mu.RUnlock()

	return len(ds.Docs)
}
