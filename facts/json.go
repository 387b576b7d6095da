package facts

import (
	"strings"

	"github.com/tidwall/gjson"
)

// JSON is a fact provider backed by raw JSON, resolved lazily with
// gjson. The document is never decoded as a whole; each lookup reads
// only the value it needs.
type JSON struct {
	raw string
}

// NewJSON creates a provider over raw JSON data.
func NewJSON(data []byte) *JSON {
	return &JSON{raw: string(data)}
}

// NewJSONString creates a provider over a raw JSON string.
func NewJSONString(data string) *JSON {
	return &JSON{raw: data}
}

// Get retrieves the value at path. Array access such as
// "accounts[0].balance" is rewritten to gjson's "accounts.0.balance"
// form before the lookup.
func (j *JSON) Get(path string) (interface{}, bool) {
	if j == nil || path == "" {
		return nil, false
	}

	normalized := strings.ReplaceAll(path, "[", ".")
	normalized = strings.ReplaceAll(normalized, "]", "")

	result := gjson.Get(j.raw, normalized)
	if !result.Exists() {
		return nil, false
	}

	return resultToValue(result), true
}

// WithData creates a new provider over replacement JSON data.
func (j *JSON) WithData(data []byte) *JSON {
	return NewJSON(data)
}

// resultToValue converts a gjson result to plain Go values. Whole
// numbers come back as int64, everything else numeric as float64.
func resultToValue(result gjson.Result) interface{} {
	switch result.Type {
	case gjson.Null:
		return nil
	case gjson.False:
		return false
	case gjson.True:
		return true
	case gjson.Number:
		if result.Float() == float64(result.Int()) {
			return result.Int()
		}
		return result.Float()
	case gjson.String:
		return result.String()
	case gjson.JSON:
		if result.IsArray() {
			items := result.Array()
			values := make([]interface{}, len(items))
			for i, item := range items {
				values[i] = resultToValue(item)
			}
			return values
		}
		entries := result.Map()
		values := make(map[string]interface{}, len(entries))
		for key, entry := range entries {
			values[key] = resultToValue(entry)
		}
		return values
	default:
		return nil
	}
}
