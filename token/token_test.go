package token

import (
	"strings"
	"testing"

	"github.com/effectus/simplerules-go/facts"
	"github.com/effectus/simplerules-go/operator"
)

func TestNumericToken(t *testing.T) {
	provider := facts.NewMap(map[string]interface{}{
		"cibil_score":    700,
		"age":            35.5,
		"total_balance":  int64(1200000),
		"accounts_count": uint8(3),
	})

	tests := []struct {
		name     string
		token    *Numeric
		expected bool
	}{
		{name: "int fact above base", token: NewNumeric("cibil_score", operator.NewGte(650.0)), expected: true},
		{name: "int fact below base", token: NewNumeric("cibil_score", operator.NewGte(750.0)), expected: false},
		{name: "float fact in range", token: NewNumeric("age", operator.NewBetween(21.0, 60.0)), expected: true},
		{name: "int64 fact", token: NewNumeric("total_balance", operator.NewGt(1000000.0)), expected: true},
		{name: "unsigned fact", token: NewNumeric("accounts_count", operator.NewLte(5.0)), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.token.Evaluate(provider)
			if err != nil {
				t.Fatalf("Evaluate(%s) returned error: %v", tt.token.Path(), err)
			}
			if got != tt.expected {
				t.Errorf("Evaluate(%s) = %v, want %v", tt.token.Path(), got, tt.expected)
			}
		})
	}
}

func TestNumericTokenErrors(t *testing.T) {
	provider := facts.NewMap(map[string]interface{}{"pet": "dog"})

	_, err := NewNumeric("salary", operator.NewGte(1.0)).Evaluate(provider)
	if err == nil {
		t.Fatal("Expected error for missing fact")
	}
	if !strings.Contains(err.Error(), "salary") {
		t.Errorf("Expected error to name the path, got: %v", err)
	}

	_, err = NewNumeric("pet", operator.NewGte(1.0)).Evaluate(provider)
	if err == nil {
		t.Fatal("Expected error for non-numeric fact")
	}
}

func TestStringToken(t *testing.T) {
	provider := facts.NewMap(map[string]interface{}{
		"pet":        "dog",
		"pets":       []interface{}{"cat", "dog"},
		"typed_pets": []string{"cat", "dog"},
	})

	tests := []struct {
		name     string
		token    *String
		expected bool
	}{
		{name: "scalar membership hit", token: NewString("pet", operator.NewIn("dog", "cat")), expected: true},
		{name: "scalar membership miss", token: NewString("pet", operator.NewIn("fish", "bird")), expected: false},
		{name: "list set equality", token: NewString("pets", operator.NewIn("dog", "cat")), expected: true},
		{name: "list set inequality", token: NewString("pets", operator.NewIn("dog")), expected: false},
		{name: "typed list set equality", token: NewString("typed_pets", operator.NewIn("dog", "cat")), expected: true},
		{name: "scalar exclusion", token: NewString("pet", operator.NewNotIn("fish", "bird")), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.token.Evaluate(provider)
			if err != nil {
				t.Fatalf("Evaluate(%s) returned error: %v", tt.token.Path(), err)
			}
			if got != tt.expected {
				t.Errorf("Evaluate(%s) = %v, want %v", tt.token.Path(), got, tt.expected)
			}
		})
	}
}

func TestStringTokenErrors(t *testing.T) {
	provider := facts.NewMap(map[string]interface{}{
		"mixed": []interface{}{"dog", 42},
		"age":   35,
	})

	op := operator.NewIn("dog", "cat")

	if _, err := NewString("missing", op).Evaluate(provider); err == nil {
		t.Error("Expected error for missing fact")
	}
	if _, err := NewString("mixed", op).Evaluate(provider); err == nil {
		t.Error("Expected error for list with non-string element")
	}
	if _, err := NewString("age", op).Evaluate(provider); err == nil {
		t.Error("Expected error for non-string fact")
	}
}

func TestBoolToken(t *testing.T) {
	provider := facts.NewMap(map[string]interface{}{
		"ownership": true,
		"defaulted": false,
	})

	tests := []struct {
		name     string
		token    *Bool
		expected bool
	}{
		{name: "true matches true", token: NewBool("ownership", operator.NewBool(true)), expected: true},
		{name: "false rejects true base", token: NewBool("defaulted", operator.NewBool(true)), expected: false},
		{name: "false matches false", token: NewBool("defaulted", operator.NewBool(false)), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.token.Evaluate(provider)
			if err != nil {
				t.Fatalf("Evaluate(%s) returned error: %v", tt.token.Path(), err)
			}
			if got != tt.expected {
				t.Errorf("Evaluate(%s) = %v, want %v", tt.token.Path(), got, tt.expected)
			}
		})
	}
}

func TestBoolTokenErrors(t *testing.T) {
	provider := facts.NewMap(map[string]interface{}{"pet": "dog"})

	if _, err := NewBool("missing", operator.NewBool(true)).Evaluate(provider); err == nil {
		t.Error("Expected error for missing fact")
	}
	if _, err := NewBool("pet", operator.NewBool(true)).Evaluate(provider); err == nil {
		t.Error("Expected error for non-boolean fact")
	}
}
