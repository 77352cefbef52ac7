package scoring

import (
	"math"

	"github.com/RoaringBitmap/roaring"
)

// DocumentFrequencies builds, for every distinct term in the corpus, the
// set of documents containing it at least once. Count values beyond
// presence are ignored. The sets are roaring bitmaps over internal
// document IDs, so document frequency is bitmap cardinality.
func DocumentFrequencies(docs map[uint32]map[string]uint64) map[string]*roaring.Bitmap {
	frequencies := make(map[string]*roaring.Bitmap)
	for docID, counts := range docs {
		for term := range counts {
			bitmap, ok := frequencies[term]
			if !ok {
				bitmap = roaring.NewBitmap()
				frequencies[term] = bitmap
			}
			bitmap.Add(docID)
		}
	}
	return frequencies
}

// InverseDocumentFrequencies computes the smoothed IDF weight per term:
//
//	idf(t) = ln((N + 1) / (df(t) + 1)) + 1
//
// with N the total document count. Both "+1" smoothings and the outer "+1"
// are part of the contract: no term ever receives a zero or undefined
// weight, and a term present in every document still weighs exactly 1.
func InverseDocumentFrequencies(frequencies map[string]*roaring.Bitmap, totalDocs int) map[string]float64 {
	weights := make(map[string]float64, len(frequencies))
	for term, bitmap := range frequencies {
		df := float64(bitmap.GetCardinality())
		weights[term] = math.Log((float64(totalDocs)+1)/(df+1)) + 1
	}
	return weights
}
