// Package simplerules provides a small declarative rule engine. Typed
// comparison operators are bound to named facts by tokens, tokens are
// combined by conditionals, and conditionals drive weighted score rules or
// decision rules. Rules are plain Go values constructed programmatically;
// facts are supplied by the caller at evaluation time.
package simplerules

// Facts represents the structured input data rules are evaluated against.
type Facts interface {
	// Get returns the value at the given path, or false if not found.
	Get(path string) (interface{}, bool)
}

// Predicate is a condition evaluated against facts. Tokens and conditionals
// implement it; anything else that does may participate in a rule.
type Predicate interface {
	// Evaluate reports whether the condition holds for the given facts.
	Evaluate(f Facts) (bool, error)
}

// PredicateFunc adapts a function to the Predicate interface.
type PredicateFunc func(f Facts) (bool, error)

// Evaluate implements Predicate.
func (fn PredicateFunc) Evaluate(f Facts) (bool, error) {
	return fn(f)
}
