package facts

import (
	"testing"
)

func TestMapProvider(t *testing.T) {
	data := map[string]interface{}{
		"applicant": map[string]interface{}{
			"name": "Jane Smith",
			"age":  35,
			"address": map[string]interface{}{
				"city": "Mumbai",
			},
			"accounts": []interface{}{
				map[string]interface{}{"type": "savings", "balance": 220000.50},
				map[string]interface{}{"type": "current", "balance": 341.20},
			},
			"pets": []interface{}{"dog", "cat"},
		},
		"ownership": true,
	}

	provider := NewMap(data)

	tests := []struct {
		name     string
		path     string
		expected interface{}
		exists   bool
	}{
		{name: "simple path", path: "applicant.name", expected: "Jane Smith", exists: true},
		{name: "numeric value", path: "applicant.age", expected: 35, exists: true},
		{name: "nested path", path: "applicant.address.city", expected: "Mumbai", exists: true},
		{name: "array index", path: "applicant.accounts[0].type", expected: "savings", exists: true},
		{name: "array of scalars", path: "applicant.pets[1]", expected: "cat", exists: true},
		{name: "top-level value", path: "ownership", expected: true, exists: true},
		{name: "non-existent field", path: "applicant.salary", expected: nil, exists: false},
		{name: "non-existent namespace", path: "guarantor.name", expected: nil, exists: false},
		{name: "out of bounds index", path: "applicant.accounts[5].type", expected: nil, exists: false},
		{name: "navigation past leaf", path: "applicant.name.first", expected: nil, exists: false},
		{name: "empty path", path: "", expected: nil, exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, exists := provider.Get(tt.path)

			if exists != tt.exists {
				t.Errorf("Expected exists=%v, got %v for path %s", tt.exists, exists, tt.path)
				return
			}

			if !exists {
				return
			}

			if value != tt.expected {
				t.Errorf("Expected %v (%T), got %v (%T) for path %s",
					tt.expected, tt.expected, value, value, tt.path)
			}
		})
	}
}

func TestMapFlatKeys(t *testing.T) {
	// Flat maps keyed by dotted strings resolve without nesting.
	provider := NewMap(map[string]interface{}{
		"source1.cibil.score": 700,
		"applicant.age":       35,
	})

	value, exists := provider.Get("source1.cibil.score")
	if !exists {
		t.Fatal("Expected flat key to resolve: source1.cibil.score")
	}
	if value != 700 {
		t.Errorf("Expected 700, got %v", value)
	}

	if _, exists := provider.Get("source1.cibil"); exists {
		t.Error("Expected partial flat key to be absent: source1.cibil")
	}
}

func TestMapFlatKeyPrecedence(t *testing.T) {
	// A literal key wins over nested resolution of the same path.
	provider := NewMap(map[string]interface{}{
		"applicant.age": 35,
		"applicant": map[string]interface{}{
			"age": 99,
		},
	})

	value, exists := provider.Get("applicant.age")
	if !exists {
		t.Fatal("Expected path to exist: applicant.age")
	}
	if value != 35 {
		t.Errorf("Expected flat key value 35, got %v", value)
	}
}

func TestMapImmutability(t *testing.T) {
	data := map[string]interface{}{
		"applicant": map[string]interface{}{
			"age": 35,
		},
		"pets": []interface{}{"dog"},
	}

	provider := NewMap(data)

	// Mutate the source data after construction.
	data["applicant"].(map[string]interface{})["age"] = 99
	data["pets"].([]interface{})[0] = "fish"

	value, exists := provider.Get("applicant.age")
	if !exists {
		t.Fatal("Expected path to exist: applicant.age")
	}
	if value != 35 {
		t.Errorf("Expected recorded age 35, got %v", value)
	}

	value, exists = provider.Get("pets[0]")
	if !exists {
		t.Fatal("Expected path to exist: pets[0]")
	}
	if value != "dog" {
		t.Errorf("Expected recorded pet 'dog', got %v", value)
	}
}

func TestMapWithData(t *testing.T) {
	provider := NewMap(map[string]interface{}{"score": 650})
	updated := provider.WithData(map[string]interface{}{"score": 700})

	value, _ := provider.Get("score")
	if value != 650 {
		t.Errorf("Expected original provider to keep 650, got %v", value)
	}

	value, _ = updated.Get("score")
	if value != 700 {
		t.Errorf("Expected updated provider to hold 700, got %v", value)
	}
}
