// Package token binds fact paths to operators.
//
// A token reads one fact, coerces it to the operator's candidate type,
// and applies the operator. Tokens are the leaf predicates of a rule:
// conditionals compose them and rules compose conditionals.
package token

// NumericOp evaluates a numeric candidate. Operators must be
// instantiated at float64, since fact values of any numeric type are
// coerced to float64 before evaluation.
type NumericOp interface {
	Evaluate(candidate float64) bool
}

// BoolOp evaluates a boolean candidate.
type BoolOp interface {
	Evaluate(candidate bool) bool
}

// toFloat64 coerces any numeric fact value to float64. JSON sources
// produce float64 or int64, YAML produces int, and struct loading
// keeps whatever numeric type the field had.
func toFloat64(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
