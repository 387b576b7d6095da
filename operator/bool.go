package operator

// Bool checks a boolean candidate for strict equality with the base value.
// There is no truthiness coercion: true only matches true, false only false.
type Bool struct {
	base bool
}

// NewBool creates a boolean equality operator.
func NewBool(base bool) *Bool {
	return &Bool{base: base}
}

// Evaluate reports whether candidate == base.
func (b *Bool) Evaluate(candidate bool) bool {
	return candidate == b.base
}
