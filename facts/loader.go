package facts

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"
)

// From builds a map-backed provider from any supported source: raw JSON
// bytes, a proto message, a nested map, or a plain struct.
func From(source interface{}) (*Map, error) {
	data, err := sourceToMap(source)
	if err != nil {
		return nil, err
	}
	return NewMap(data), nil
}

// FromJSON builds a map-backed provider from JSON data.
func FromJSON(data []byte) (*Map, error) {
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("parsing JSON data: %w", err)
	}
	return NewMap(decoded), nil
}

// FromYAML builds a map-backed provider from YAML data.
func FromYAML(data []byte) (*Map, error) {
	var decoded map[string]interface{}
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("parsing YAML data: %w", err)
	}
	return NewMap(decoded), nil
}

// FromProto builds a map-backed provider from a Protocol Buffer
// message. Field names follow the proto definition rather than the
// JSON camelCase mapping.
func FromProto(message proto.Message) (*Map, error) {
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: false,
	}

	data, err := marshaler.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("marshaling proto message: %w", err)
	}

	return FromJSON(data)
}

// FromStruct builds a map-backed provider from a Go struct, honoring
// json tags for field names.
func FromStruct(data interface{}) (*Map, error) {
	converted, err := structToMap(data)
	if err != nil {
		return nil, fmt.Errorf("converting struct to map: %w", err)
	}
	return NewMap(converted), nil
}

func sourceToMap(source interface{}) (map[string]interface{}, error) {
	switch s := source.(type) {
	case []byte:
		var decoded map[string]interface{}
		if err := json.Unmarshal(s, &decoded); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return decoded, nil
	case proto.Message:
		marshaler := protojson.MarshalOptions{
			UseProtoNames:   true,
			EmitUnpopulated: false,
		}
		data, err := marshaler.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("marshaling proto message: %w", err)
		}
		var decoded map[string]interface{}
		if err := json.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
		return decoded, nil
	case map[string]interface{}:
		return s, nil
	default:
		return structToMap(s)
	}
}

// structToMap converts a struct to a nested map using reflection.
func structToMap(data interface{}) (map[string]interface{}, error) {
	converted, err := toNestedValue(data)
	if err != nil {
		return nil, err
	}
	if converted == nil {
		return map[string]interface{}{}, nil
	}
	result, ok := converted.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("expected struct or map, got %T", data)
	}
	return result, nil
}

// toNestedValue deep-converts structs, slices, and maps into plain maps
// and slices. time.Time values pass through untouched.
func toNestedValue(data interface{}) (interface{}, error) {
	if data == nil {
		return nil, nil
	}

	val := reflect.ValueOf(data)
	typ := val.Type()

	if typ.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, nil
		}
		return toNestedValue(val.Elem().Interface())
	}

	switch typ.Kind() {
	case reflect.Struct:
		if _, ok := data.(time.Time); ok {
			return data, nil
		}

		result := make(map[string]interface{})
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if field.PkgPath != "" {
				continue
			}

			name := field.Name
			tag, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}

			converted, err := toNestedValue(val.Field(i).Interface())
			if err != nil {
				return nil, err
			}
			result[name] = converted
		}
		return result, nil

	case reflect.Slice, reflect.Array:
		result := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			converted, err := toNestedValue(val.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil

	case reflect.Map:
		result := make(map[string]interface{})
		iter := val.MapRange()
		for iter.Next() {
			if iter.Key().Kind() != reflect.String {
				continue
			}
			converted, err := toNestedValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			result[iter.Key().String()] = converted
		}
		return result, nil

	default:
		return data, nil
	}
}
