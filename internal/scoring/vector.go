package scoring

import (
	"math"

	enginerrors "github.com/docfind/go-prefix-search/internal/errors"
)

// TFIDFVector multiplies a document's term frequencies by the corpus IDF
// weights. A term missing from the IDF table contributes a zero weight;
// unknown terms are never an error.
func TFIDFVector(tf map[string]float64, idf map[string]float64) map[string]float64 {
	vector := make(map[string]float64, len(tf))
	for term, frequency := range tf {
		vector[term] = frequency * idf[term]
	}
	return vector
}

// NormalizeVector L2-normalizes a score vector: every component is divided
// by the Euclidean norm (square root of the sum of squares). The result
// has unit length over its nonzero entries.
//
// An empty vector has zero norm and no defined normalization; empty
// documents are excluded upstream, so an empty input here is reported as
// ErrEmptyVector rather than producing NaN components.
func NormalizeVector(vector map[string]float64) (map[string]float64, error) {
	if len(vector) == 0 {
		return nil, enginerrors.ErrEmptyVector
	}

	var sumOfSquares float64
	for _, value := range vector {
		sumOfSquares += value * value
	}
	norm := math.Sqrt(sumOfSquares)

	normalized := make(map[string]float64, len(vector))
	for term, value := range vector {
		normalized[term] = value / norm
	}
	return normalized, nil
}
