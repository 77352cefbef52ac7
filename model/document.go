// Package model defines the core data types shared across the engine.
package model

// Document is one corpus document identified by its source path. The term
// counts are the raw tokenization output; derived vectors (TF, TF-IDF) are
// computed from them stage by stage and the document is immutable once the
// index build finishes.
type Document struct {
	Path       string            // Stable identifier: the document's source path
	TermCounts map[string]uint64 // Normalized term -> occurrence count
}

// TotalTerms returns the total number of tokens counted in the document.
func (d Document) TotalTerms() uint64 {
	var total uint64
	for _, count := range d.TermCounts {
		total += count
	}
	return total
}

// Empty reports whether the document produced zero tokens. Empty documents
// are excluded from indexing because term frequencies are undefined for
// them.
func (d Document) Empty() bool {
	return len(d.TermCounts) == 0
}
