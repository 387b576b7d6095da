// Package facts provides path-addressable fact providers for rule
// evaluation.
//
// A fact provider maps dotted paths such as "applicant.age" or
// "accounts[0].balance" to values. Providers are immutable once built;
// deriving a provider with different data returns a new instance.
package facts

import (
	"strconv"
	"strings"
)

// Map is a fact provider backed by an in-memory map.
//
// Lookups try the path as a literal key first, so flat maps keyed by
// dotted strings work unchanged. Otherwise the path is resolved segment
// by segment through nested maps and slices.
type Map struct {
	data map[string]interface{}
}

// NewMap creates a map-backed provider. The data is deep-copied so that
// later mutation of the source map cannot change recorded facts.
func NewMap(data map[string]interface{}) *Map {
	return &Map{data: deepCopyMap(data)}
}

// Get retrieves the value at path.
func (m *Map) Get(path string) (interface{}, bool) {
	if m == nil || m.data == nil || path == "" {
		return nil, false
	}

	if value, ok := m.data[path]; ok {
		return value, true
	}

	return resolvePath(m.data, path)
}

// WithData creates a new provider with replacement data.
func (m *Map) WithData(data map[string]interface{}) *Map {
	return NewMap(data)
}

// resolvePath walks a dotted path through nested maps and slices.
// Array access such as "accounts[0].balance" is normalized to dot
// segments before walking, so a numeric segment indexes into a slice.
func resolvePath(data map[string]interface{}, path string) (interface{}, bool) {
	normalized := strings.ReplaceAll(path, "[", ".")
	normalized = strings.ReplaceAll(normalized, "]", "")

	var current interface{} = data
	for _, segment := range strings.Split(normalized, ".") {
		if segment == "" {
			return nil, false
		}

		switch node := current.(type) {
		case map[string]interface{}:
			value, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = value
		case []interface{}:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}

	return current, true
}

// deepCopyMap copies a map so the provider owns its data.
func deepCopyMap(original map[string]interface{}) map[string]interface{} {
	if original == nil {
		return nil
	}

	copied := make(map[string]interface{}, len(original))
	for key, value := range original {
		copied[key] = deepCopyValue(value)
	}

	return copied
}

func deepCopyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return deepCopyMap(v)
	case []interface{}:
		copied := make([]interface{}, len(v))
		for i, item := range v {
			copied[i] = deepCopyValue(item)
		}
		return copied
	default:
		return v
	}
}
