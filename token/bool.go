package token

import (
	"fmt"

	"github.com/effectus/simplerules-go"
)

// Bool binds a boolean fact to an operator. No truthiness coercion is
// applied; the fact must be a bool.
type Bool struct {
	path string
	op   BoolOp
}

// NewBool creates a boolean token for the fact at path.
func NewBool(path string, op BoolOp) *Bool {
	return &Bool{path: path, op: op}
}

// Path returns the fact path the token reads.
func (b *Bool) Path() string {
	return b.path
}

// Evaluate reads the fact and applies the operator.
func (b *Bool) Evaluate(f simplerules.Facts) (bool, error) {
	value, ok := f.Get(b.path)
	if !ok {
		return false, fmt.Errorf("fact not found: %s", b.path)
	}

	flag, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("fact %s is not a boolean: %T", b.path, value)
	}

	return b.op.Evaluate(flag), nil
}
