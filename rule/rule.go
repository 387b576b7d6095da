package rule

import (
	"github.com/effectus/simplerules-go"
)

// Score sums the weighted scores of its sets.
type Score struct {
	sets []*ScoreSet
}

// NewScore creates a score rule.
func NewScore(sets ...*ScoreSet) *Score {
	ss := make([]*ScoreSet, len(sets))
	copy(ss, sets)
	return &Score{sets: ss}
}

// Evaluate returns the sum of all set scores. Sets with no matching
// row contribute zero rather than failing the rule.
func (s *Score) Evaluate(f simplerules.Facts) (float64, error) {
	total := 0.0
	for _, set := range s.sets {
		score, err := set.Evaluate(f)
		if err != nil {
			return 0, err
		}
		total += score
	}
	return total, nil
}

// Decision evaluates sets in order and returns the first decisive
// set's outcome.
type Decision struct {
	sets []*DecisionSet
}

// NewDecision creates a decision rule.
func NewDecision(sets ...*DecisionSet) *Decision {
	ss := make([]*DecisionSet, len(sets))
	copy(ss, sets)
	return &Decision{sets: ss}
}

// Evaluate returns the first decisive set's outcome. The boolean
// reports whether any set was decisive.
func (d *Decision) Evaluate(f simplerules.Facts) (interface{}, bool, error) {
	for _, set := range d.sets {
		outcome, ok, err := set.Evaluate(f)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return outcome, true, nil
		}
	}
	return nil, false, nil
}
