package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/0xalexb/edat/table"

	"github.com/goccy/go-yaml"
)

// ToMap converts t into a map. Nested tables become nested maps.
func ToMap(t *table.Table) map[string]any {
	out := make(map[string]any, t.Len())

	for _, name := range t.Names() {
		v, _ := t.Value(name)
		out[name] = plain(v, func(sub *table.Table) any { return ToMap(sub) })
	}

	return out
}

// MapSlice converts t into an ordered YAML mapping.
func MapSlice(t *table.Table) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, t.Len())

	for _, name := range t.Names() {
		v, _ := t.Value(name)
		out = append(out, yaml.MapItem{
			Key:   name,
			Value: plain(v, func(sub *table.Table) any { return MapSlice(sub) }),
		})
	}

	return out
}

// YAML encodes t as a YAML document.
func YAML(t *table.Table) ([]byte, error) {
	data, err := yaml.Marshal(MapSlice(t))
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}

	return data, nil
}

// JSON encodes t as a JSON object with members in field order.
func JSON(t *table.Table) ([]byte, error) {
	var buf bytes.Buffer

	err := writeJSON(&buf, t)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, t *table.Table) error {
	buf.WriteByte('{')

	for i, name := range t.Names() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("marshal key %q: %w", name, err)
		}

		buf.Write(key)
		buf.WriteByte(':')

		v, _ := t.Value(name)

		err = writeJSONValue(buf, v)
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
	}

	buf.WriteByte('}')

	return nil
}

func writeJSONValue(buf *bytes.Buffer, v any) error {
	if sub, ok := v.(*table.Table); ok {
		return writeJSON(buf, sub)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem() == reflect.TypeFor[*table.Table]() {
		buf.WriteByte('[')

		for i := range rv.Len() {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := writeJSONValue(buf, rv.Index(i).Interface())
			if err != nil {
				return err
			}
		}

		buf.WriteByte(']')

		return nil
	}

	data, err := json.Marshal(plain(v, nil))
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	buf.Write(data)

	return nil
}

// plain converts a stored value into something YAML and JSON encoders
// understand. nested handles *table.Table values; it may be nil when the
// caller deals with tables itself.
func plain(v any, nested func(*table.Table) any) any {
	switch x := v.(type) {
	case *table.Table:
		if nested == nil {
			return x
		}

		return nested(x)
	case time.Duration:
		return x.String()
	case []time.Duration:
		out := make([]string, len(x))
		for i, d := range x {
			out[i] = d.String()
		}

		return out
	case []*table.Table:
		out := make([]any, len(x))
		for i, sub := range x {
			out[i] = plain(sub, nested)
		}

		return out
	default:
		return v
	}
}
