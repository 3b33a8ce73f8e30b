package manifest

import (
	"bytes"
	"encoding/json"
)

// fields is a decoded JSON object with its values left raw.
type fields map[string]json.RawMessage

// objectFields decodes data as a JSON object. The second result is false
// when data holds any other JSON value.
func objectFields(data []byte) (fields, bool) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, false
	}
	var f fields
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, false
	}
	return f, true
}

// str returns the string value at key, or "" when absent or not a string.
func (f fields) str(key string) string {
	s, _ := asString(f[key])
	return s
}

// truthy reports whether the value at key is present and truthy.
func (f fields) truthy(key string) bool {
	return truthy(f[key])
}

// strings returns the string elements of the array at key. Non-string
// elements are skipped; a non-array value yields nil.
func (f fields) strings(key string) []string {
	var elems []json.RawMessage
	if err := json.Unmarshal(f[key], &elems); err != nil {
		return nil
	}
	var out []string
	for _, e := range elems {
		if s, ok := asString(e); ok {
			out = append(out, s)
		}
	}
	return out
}

// asString decodes raw as a JSON string.
func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// truthy applies JavaScript truthiness to a raw JSON value.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// jsonKind classifies a raw JSON value by its first significant byte.
type jsonKind int

const (
	kindAbsent jsonKind = iota
	kindString
	kindObject
	kindArray
	kindOther
)

func classify(raw json.RawMessage) jsonKind {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return kindAbsent
	}
	switch trimmed[0] {
	case '"':
		return kindString
	case '{':
		return kindObject
	case '[':
		return kindArray
	default:
		return kindOther
	}
}
