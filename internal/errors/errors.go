// Package errors defines sentinel errors shared across the engine.
package errors

import (
	"errors"
)

// Sentinel errors for common error conditions
var (
	// ErrEmptyDocument is returned when a document contains zero tokens.
	// Empty documents are excluded from the corpus before scoring, so
	// seeing this error inside the pipeline indicates a caller bug.
	ErrEmptyDocument = errors.New("document contains no tokens")

	// ErrEmptyVector is returned when L2 normalization is asked to
	// normalize a vector with no components.
	ErrEmptyVector = errors.New("cannot normalize an empty vector")

	// ErrNonFiniteScore is returned when a NaN or infinite value reaches
	// score conversion. Score conversion is exact for every finite IEEE
	// double, so this is a fatal programming defect, not a recoverable
	// condition.
	ErrNonFiniteScore = errors.New("score is not a finite number")
)

// Is reports whether any error in err's chain matches target.
// It delegates to the standard library and exists so callers can depend on
// this package alone.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
