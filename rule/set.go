package rule

import (
	"github.com/effectus/simplerules-go"
)

// ScoreSet evaluates rows in order and weights the first match.
type ScoreSet struct {
	weight float64
	rows   []*ScoreRow
}

// NewScoreSet creates a score set with the given weight. Rows are
// evaluated in the order given, so broader conditions belong last.
func NewScoreSet(weight float64, rows ...*ScoreRow) *ScoreSet {
	rs := make([]*ScoreRow, len(rows))
	copy(rs, rows)
	return &ScoreSet{weight: weight, rows: rs}
}

// Weight returns the set's weight.
func (s *ScoreSet) Weight() float64 {
	return s.weight
}

// Evaluate returns the first matching row's score multiplied by the
// set weight. A set with no matching row contributes zero.
func (s *ScoreSet) Evaluate(f simplerules.Facts) (float64, error) {
	for _, row := range s.rows {
		score, ok, err := row.Evaluate(f)
		if err != nil {
			return 0, err
		}
		if ok {
			return score * s.weight, nil
		}
	}
	return 0, nil
}

// DecisionSet evaluates rows in order and returns the first match's
// outcome.
type DecisionSet struct {
	rows []*DecisionRow
}

// NewDecisionSet creates a decision set.
func NewDecisionSet(rows ...*DecisionRow) *DecisionSet {
	rs := make([]*DecisionRow, len(rows))
	copy(rs, rows)
	return &DecisionSet{rows: rs}
}

// Evaluate returns the first matching row's outcome. The boolean
// reports whether any row matched.
func (s *DecisionSet) Evaluate(f simplerules.Facts) (interface{}, bool, error) {
	for _, row := range s.rows {
		outcome, ok, err := row.Evaluate(f)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return outcome, true, nil
		}
	}
	return nil, false, nil
}
