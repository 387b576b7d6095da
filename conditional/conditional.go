// Package conditional composes predicates into boolean combinators.
package conditional

import (
	"github.com/effectus/simplerules-go"
)

// WhenAll is true when every child predicate is true. An empty WhenAll
// is vacuously true. Evaluation short-circuits on the first false
// child or the first error.
type WhenAll struct {
	predicates []simplerules.Predicate
}

// NewWhenAll creates a conjunction of predicates.
func NewWhenAll(predicates ...simplerules.Predicate) *WhenAll {
	ps := make([]simplerules.Predicate, len(predicates))
	copy(ps, predicates)
	return &WhenAll{predicates: ps}
}

// Evaluate implements simplerules.Predicate.
func (w *WhenAll) Evaluate(f simplerules.Facts) (bool, error) {
	for _, p := range w.predicates {
		ok, err := p.Evaluate(f)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// WhenAny is true when at least one child predicate is true. An empty
// WhenAny is false. Evaluation short-circuits on the first true child
// or the first error.
type WhenAny struct {
	predicates []simplerules.Predicate
}

// NewWhenAny creates a disjunction of predicates.
func NewWhenAny(predicates ...simplerules.Predicate) *WhenAny {
	ps := make([]simplerules.Predicate, len(predicates))
	copy(ps, predicates)
	return &WhenAny{predicates: ps}
}

// Evaluate implements simplerules.Predicate.
func (w *WhenAny) Evaluate(f simplerules.Facts) (bool, error) {
	for _, p := range w.predicates {
		ok, err := p.Evaluate(f)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
