// Package scoring implements the statistical weighting pipeline: term
// frequency, smoothed inverse document frequency, TF-IDF vectors, and L2
// normalization.
package scoring

import (
	enginerrors "github.com/docfind/go-prefix-search/internal/errors"
)

// TermFrequencies converts one document's raw term counts into term
// frequencies: count divided by the document's total token count. Every
// returned frequency is in (0, 1].
//
// Documents with zero tokens have no defined term frequencies; the corpus
// loader excludes them before scoring, so receiving one here is a caller
// bug and reported as ErrEmptyDocument.
func TermFrequencies(counts map[string]uint64) (map[string]float64, error) {
	var total uint64
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		return nil, enginerrors.ErrEmptyDocument
	}

	frequencies := make(map[string]float64, len(counts))
	for term, count := range counts {
		frequencies[term] = float64(count) / float64(total)
	}
	return frequencies, nil
}
