package index

import (
	"sort"
)

// ScoreEntry pairs an exact score with the internal numeric ID of the
// document that produced it.
type ScoreEntry struct {
	Score Score
	DocID uint32
}

// ScoreList is an ordered mapping from Score to document, kept sorted by
// ascending score. It is the per-term ranked posting structure: inserting
// an entry whose score exactly equals an existing key replaces that entry
// (last insert wins the key). Distinct scores always coexist, so one term
// holds entries from many documents in a single shared list.
type ScoreList struct {
	entries []ScoreEntry
}

// Insert adds an entry in score order. An exact score collision overwrites
// the previous document for that key; this degeneracy is a documented part
// of the index contract, not a bijection guarantee.
func (l *ScoreList) Insert(score Score, docID uint32) {
	i := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].Score.Cmp(score) >= 0
	})
	if i < len(l.entries) && l.entries[i].Score.Cmp(score) == 0 {
		l.entries[i].DocID = docID
		return
	}
	l.entries = append(l.entries, ScoreEntry{})
	copy(l.entries[i+1:], l.entries[i:])
	l.entries[i] = ScoreEntry{Score: score, DocID: docID}
}

// Len returns the number of entries in the list.
func (l *ScoreList) Len() int {
	return len(l.entries)
}

// TopN returns up to n entries from the maximum end of the list, highest
// score first. The read is non-destructive: the list is shared, read-only
// index state once the build finishes.
func (l *ScoreList) TopN(n int) []ScoreEntry {
	if n > len(l.entries) {
		n = len(l.entries)
	}
	top := make([]ScoreEntry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		top = append(top, l.entries[i])
	}
	return top
}
