package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docfind/go-prefix-search/model"
)

func TestAddAssignsDenseIDs(t *testing.T) {
	ds := NewDocumentStore()

	first := ds.Add(model.Document{Path: "a.txt", TermCounts: map[string]uint64{"a": 1}})
	second := ds.Add(model.Document{Path: "b.txt", TermCounts: map[string]uint64{"b": 1}})

	assert.Equal(t, uint32(0), first)
	assert.Equal(t, uint32(1), second)
	assert.Equal(t, 2, ds.Len())
}

func TestAddSamePathKeepsID(t *testing.T) {
	ds := NewDocumentStore()

	original := ds.Add(model.Document{Path: "a.txt", TermCounts: map[string]uint64{"old": 1}})
	replaced := ds.Add(model.Document{Path: "a.txt", TermCounts: map[string]uint64{"new": 2}})

	assert.Equal(t, original, replaced)
	assert.Equal(t, 1, ds.Len())

	doc, ok := ds.Get(original)
	assert.True(t, ok)
	assert.Equal(t, uint64(2), doc.TermCounts["new"])
}

func TestPathLookup(t *testing.T) {
	ds := NewDocumentStore()
	id := ds.Add(model.Document{Path: "mail/inbox/1.txt", TermCounts: map[string]uint64{"x": 1}})

	assert.Equal(t, "mail/inbox/1.txt", ds.Path(id))
	assert.Equal(t, "", ds.Path(999))
}

func TestDocumentTotalTerms(t *testing.T) {
	doc := model.Document{Path: "a", TermCounts: map[string]uint64{"x": 2, "y": 3}}
	assert.Equal(t, uint64(5), doc.TotalTerms())
	assert.False(t, doc.Empty())
	assert.True(t, model.Document{Path: "b"}.Empty())
}
