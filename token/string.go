package token

import (
	"fmt"

	"github.com/effectus/simplerules-go"
	"github.com/effectus/simplerules-go/operator"
)

// StringOp evaluates a string candidate, scalar or collection.
type StringOp interface {
	Evaluate(candidate operator.Candidate[string]) bool
}

// String binds a string fact to an operator. A scalar fact becomes a
// scalar candidate; a list fact becomes a collection candidate, so an
// In operator switches from membership to set equality.
type String struct {
	path string
	op   StringOp
}

// NewString creates a string token for the fact at path.
func NewString(path string, op StringOp) *String {
	return &String{path: path, op: op}
}

// Path returns the fact path the token reads.
func (s *String) Path() string {
	return s.path
}

// Evaluate reads the fact, shapes it into a candidate, and applies the
// operator.
func (s *String) Evaluate(f simplerules.Facts) (bool, error) {
	value, ok := f.Get(s.path)
	if !ok {
		return false, fmt.Errorf("fact not found: %s", s.path)
	}

	candidate, err := toStringCandidate(s.path, value)
	if err != nil {
		return false, err
	}

	return s.op.Evaluate(candidate), nil
}

// toStringCandidate shapes a fact value into a string candidate.
// Lists loaded from JSON or YAML arrive as []interface{}; every
// element must be a string.
func toStringCandidate(path string, value interface{}) (operator.Candidate[string], error) {
	switch v := value.(type) {
	case string:
		return operator.Scalar(v), nil
	case []string:
		return operator.Collection(v...), nil
	case []interface{}:
		values := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return operator.Candidate[string]{}, fmt.Errorf("fact %s element %d is not a string: %T", path, i, item)
			}
			values[i] = s
		}
		return operator.Collection(values...), nil
	default:
		return operator.Candidate[string]{}, fmt.Errorf("fact %s is not a string or string list: %T", path, value)
	}
}
