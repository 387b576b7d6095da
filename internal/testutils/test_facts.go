// Package testutils provides in-memory fact fixtures for tests.
package testutils

// TestFacts is a flat in-memory implementation of the Facts interface.
// Paths are matched as literal keys with no nested resolution, which
// keeps fixtures close to the tables they verify.
type TestFacts struct {
	data map[string]interface{}
}

// NewTestFacts creates new test facts with the given data.
func NewTestFacts(data map[string]interface{}) *TestFacts {
	return &TestFacts{data: data}
}

// Get implements the Facts interface.
func (f *TestFacts) Get(path string) (interface{}, bool) {
	val, ok := f.data[path]
	return val, ok
}

// CreditApplication returns a typical application fact set used across
// the integration tests.
func CreditApplication() *TestFacts {
	return NewTestFacts(map[string]interface{}{
		"cibil_score":               700,
		"age":                       35,
		"applicant_ownership":       "owned",
		"business_ownership":        "family-owned",
		"no_of_running_bl_pl":       2,
		"last_loan_drawn_in_months": 6,
		"pets":                      []interface{}{"dog", "cat"},
	})
}
