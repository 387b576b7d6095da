package operator

// In checks candidates against a fixed collection of base values.
//
// A scalar candidate matches when it equals one of the base values. A
// collection candidate matches when its distinct elements are exactly the
// distinct base values, regardless of order or repetition on either side.
// The symmetric set check lets one operator express both "value is one of
// these" and "list matches this set exactly".
type In[T comparable] struct {
	base []T
}

// NewIn creates a membership operator over the given base values.
func NewIn[T comparable](base ...T) *In[T] {
	vs := make([]T, len(base))
	copy(vs, base)
	return &In[T]{base: vs}
}

// Evaluate reports whether the candidate matches the base values: set
// equality for collection candidates, membership for scalar candidates.
func (in *In[T]) Evaluate(candidate Candidate[T]) bool {
	if candidate.collection {
		return setEqual(in.base, candidate.values)
	}
	for _, v := range in.base {
		if v == candidate.scalar {
			return true
		}
	}
	return false
}

// NotIn is the pointwise negation of In: scalar candidates must not appear
// among the base values, collection candidates must differ from them as a
// set.
type NotIn[T comparable] struct {
	in In[T]
}

// NewNotIn creates a negated membership operator over the given base values.
func NewNotIn[T comparable](base ...T) *NotIn[T] {
	vs := make([]T, len(base))
	copy(vs, base)
	return &NotIn[T]{in: In[T]{base: vs}}
}

// Evaluate reports the negation of the corresponding In evaluation.
func (n *NotIn[T]) Evaluate(candidate Candidate[T]) bool {
	return !n.in.Evaluate(candidate)
}

// setEqual reports whether two slices contain the same distinct elements.
func setEqual[T comparable](a, b []T) bool {
	as := make(map[T]struct{}, len(a))
	for _, v := range a {
		as[v] = struct{}{}
	}
	bs := make(map[T]struct{}, len(b))
	for _, v := range b {
		bs[v] = struct{}{}
	}
	if len(as) != len(bs) {
		return false
	}
	for v := range as {
		if _, ok := bs[v]; !ok {
			return false
		}
	}
	return true
}
