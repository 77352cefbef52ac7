package index

import (
	"math"
	"math/big"

	enginerrors "github.com/docfind/go-prefix-search/internal/errors"
)

// Score is an exact, totally-ordered decimal sort key derived from a
// float64. The conversion is lossless: big.Float at 53 bits of precision
// represents every finite IEEE double exactly, so comparing Scores never
// suffers the ordering instability of comparing re-rounded decimals. Two
// Scores compare equal only when the source float64 values were identical.
type Score struct {
	value *big.Float
}

// NewScore converts a float64 into an exact Score. NaN and infinities are
// rejected with ErrNonFiniteScore: scores in this engine come from
// normalized TF-IDF vectors and a non-finite value means an upstream
// contract was violated.
func NewScore(f float64) (Score, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Score{}, enginerrors.ErrNonFiniteScore
	}
	return Score{value: new(big.Float).SetFloat64(f)}, nil
}

// Cmp compares s and other, returning -1 if s < other, 0 if equal, and
// +1 if s > other.
func (s Score) Cmp(other Score) int {
	return s.value.Cmp(other.value)
}

// Float64 returns the score as a float64. The conversion is exact because
// the stored value originated from a float64.
func (s Score) Float64() float64 {
	f, _ := s.value.Float64()
	return f
}

// String renders the score as the shortest decimal string that uniquely
// identifies the underlying binary value. Ordering always uses the exact
// stored value, never this rendering.
func (s Score) String() string {
	if s.value == nil {
		return "0"
	}
	return s.value.Text('f', -1)
}
