// Package operator provides the comparison predicates rules are built from.
//
// Every operator captures its base value(s) at construction and exposes a
// single Evaluate method that compares a candidate value against them.
// Operators are immutable once constructed and hold no other state, so
// evaluation is pure: the same candidate always yields the same result, and
// a single instance is safe for concurrent use.
//
// The ordered operators (Between, Gt, Gte, Lt, Lte) accept any ordered type;
// Eq accepts any comparable type. Candidate/base type mismatches are
// compile-time errors, not runtime conditions.
package operator

// Candidate is the input to the membership operators In and NotIn: either a
// single scalar or a collection of values. The explicit tag selects between
// the two evaluation modes, so the operators never inspect runtime types.
type Candidate[T comparable] struct {
	scalar     T
	values     []T
	collection bool
}

// Scalar wraps a single value as a candidate.
func Scalar[T comparable](value T) Candidate[T] {
	return Candidate[T]{scalar: value}
}

// Collection wraps a sequence of values as a candidate. The sequence is
// copied; order and repetition are irrelevant to the membership operators.
func Collection[T comparable](values ...T) Candidate[T] {
	vs := make([]T, len(values))
	copy(vs, values)
	return Candidate[T]{values: vs, collection: true}
}
