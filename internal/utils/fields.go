package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// DecodeObject reads a single JSON object, keeping numbers as json.Number
func DecodeObject(r io.Reader) (map[string]interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode JSON object: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("JSON body is not an object")
	}
	return m, nil
}

// LookupField returns the value stored under the first matching key. Keys
// are tried in the given order first, then every key of m is compared
// case-insensitively against each name. Keys are scanned in sorted order so
// conflicting spellings always resolve the same way.
func LookupField(m map[string]interface{}, names ...string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	for _, name := range names {
		if v, ok := m[name]; ok && v != nil {
			return v, true
		}
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, name := range names {
		for _, key := range keys {
			if v := m[key]; v != nil && strings.EqualFold(key, name) {
				return v, true
			}
		}
	}
	return nil, false
}

// StringField is LookupField coerced to a trimmed string. Numbers are printed
// without exponent so a phone number sent as a JSON number survives.
func StringField(m map[string]interface{}, names ...string) string {
	v, ok := LookupField(m, names...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(stringify(v))
}

// ObjectField is LookupField for a nested JSON object
func ObjectField(m map[string]interface{}, names ...string) map[string]interface{} {
	v, ok := LookupField(m, names...)
	if !ok {
		return nil
	}
	obj, _ := v.(map[string]interface{})
	return obj
}

// FloatField parses a number or a numeric string. ok is false when the
// field is absent or not numeric.
func FloatField(m map[string]interface{}, names ...string) (value float64, present bool, ok bool) {
	v, found := LookupField(m, names...)
	if !found {
		return 0, false, false
	}
	switch n := v.(type) {
	case float64:
		return n, true, true
	case json.Number:
		f, err := n.Float64()
		return f, true, err == nil
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, true, err == nil
	default:
		return 0, true, false
	}
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
