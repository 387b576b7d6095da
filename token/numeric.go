package token

import (
	"fmt"

	"github.com/effectus/simplerules-go"
)

// Numeric binds a numeric fact to an operator.
type Numeric struct {
	path string
	op   NumericOp
}

// NewNumeric creates a numeric token for the fact at path.
func NewNumeric(path string, op NumericOp) *Numeric {
	return &Numeric{path: path, op: op}
}

// Path returns the fact path the token reads.
func (n *Numeric) Path() string {
	return n.path
}

// Evaluate reads the fact, coerces it to float64, and applies the
// operator. A missing or non-numeric fact is an error, not a false
// result.
func (n *Numeric) Evaluate(f simplerules.Facts) (bool, error) {
	value, ok := f.Get(n.path)
	if !ok {
		return false, fmt.Errorf("fact not found: %s", n.path)
	}

	number, ok := toFloat64(value)
	if !ok {
		return false, fmt.Errorf("fact %s is not numeric: %T", n.path, value)
	}

	return n.op.Evaluate(number), nil
}
