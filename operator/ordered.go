package operator

import "cmp"

// Between checks that a candidate lies within an inclusive range. The range
// is assumed well formed (floor <= ceiling) and is not validated.
type Between[T cmp.Ordered] struct {
	floor   T
	ceiling T
}

// NewBetween creates a range operator spanning floor to ceiling, inclusive
// on both ends.
func NewBetween[T cmp.Ordered](floor, ceiling T) *Between[T] {
	return &Between[T]{floor: floor, ceiling: ceiling}
}

// Evaluate reports whether floor <= candidate <= ceiling.
func (b *Between[T]) Evaluate(candidate T) bool {
	return b.floor <= candidate && candidate <= b.ceiling
}

// Gte checks that a candidate is greater than or equal to the base value.
type Gte[T cmp.Ordered] struct {
	base T
}

// NewGte creates a greater-than-or-equal operator.
func NewGte[T cmp.Ordered](base T) *Gte[T] {
	return &Gte[T]{base: base}
}

// Evaluate reports whether candidate >= base.
func (g *Gte[T]) Evaluate(candidate T) bool {
	return candidate >= g.base
}

// Gt checks that a candidate is strictly greater than the base value.
type Gt[T cmp.Ordered] struct {
	base T
}

// NewGt creates a greater-than operator.
func NewGt[T cmp.Ordered](base T) *Gt[T] {
	return &Gt[T]{base: base}
}

// Evaluate reports whether candidate > base.
func (g *Gt[T]) Evaluate(candidate T) bool {
	return candidate > g.base
}

// Lt checks that a candidate is strictly less than the base value.
type Lt[T cmp.Ordered] struct {
	base T
}

// NewLt creates a less-than operator.
func NewLt[T cmp.Ordered](base T) *Lt[T] {
	return &Lt[T]{base: base}
}

// Evaluate reports whether candidate < base.
func (l *Lt[T]) Evaluate(candidate T) bool {
	return candidate < l.base
}

// Lte checks that a candidate is less than or equal to the base value.
type Lte[T cmp.Ordered] struct {
	base T
}

// NewLte creates a less-than-or-equal operator.
func NewLte[T cmp.Ordered](base T) *Lte[T] {
	return &Lte[T]{base: base}
}

// Evaluate reports whether candidate <= base.
func (l *Lte[T]) Evaluate(candidate T) bool {
	return candidate <= l.base
}

// Eq checks that a candidate equals the base value.
type Eq[T comparable] struct {
	base T
}

// NewEq creates an equality operator.
func NewEq[T comparable](base T) *Eq[T] {
	return &Eq[T]{base: base}
}

// Evaluate reports whether candidate == base.
func (e *Eq[T]) Evaluate(candidate T) bool {
	return candidate == e.base
}
