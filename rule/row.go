// Package rule assembles conditionals into scoring and decision rules.
//
// Rows within a set are ordered: the first row whose condition holds
// decides the set. Score rules then sum their weighted sets, while
// decision rules return the first decisive set's outcome.
package rule

import (
	"github.com/effectus/simplerules-go"
)

// ScoreRow pairs a condition with the score it contributes when the
// condition holds.
type ScoreRow struct {
	when  simplerules.Predicate
	score float64
}

// NewScoreRow creates a score row.
func NewScoreRow(when simplerules.Predicate, score float64) *ScoreRow {
	return &ScoreRow{when: when, score: score}
}

// Evaluate returns the row's score and whether the condition held.
func (r *ScoreRow) Evaluate(f simplerules.Facts) (float64, bool, error) {
	ok, err := r.when.Evaluate(f)
	if err != nil || !ok {
		return 0, false, err
	}
	return r.score, true, nil
}

// DecisionRow pairs a condition with the outcome it yields when the
// condition holds.
type DecisionRow struct {
	when    simplerules.Predicate
	outcome interface{}
}

// NewDecisionRow creates a decision row.
func NewDecisionRow(when simplerules.Predicate, outcome interface{}) *DecisionRow {
	return &DecisionRow{when: when, outcome: outcome}
}

// Evaluate returns the row's outcome and whether the condition held.
func (r *DecisionRow) Evaluate(f simplerules.Facts) (interface{}, bool, error) {
	ok, err := r.when.Evaluate(f)
	if err != nil || !ok {
		return nil, false, err
	}
	return r.outcome, true, nil
}
