package ident

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Normalize converts an identifier into the key used for lookups: its string
// form, trimmed and lowercased. So 42, "42" and " 42 " all produce "42".
//
// The boolean is false when the id cannot be resolved at all (nil, blank
// or an unsupported type). Callers must treat that as a lookup miss.
func Normalize(id any) (string, bool) {
	var s string
	switch v := id.(type) {
	case nil:
		return "", false
	case string:
		s = v
	case *string:
		if v == nil {
			return "", false
		}
		s = *v
	case FlexID:
		s = string(v)
	case json.Number:
		s = v.String()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		s = fmt.Sprint(v)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		s = v.String()
	default:
		return "", false
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	return s, true
}

// FlexID is an identifier that may arrive as a JSON string, a JSON number
// or a Mongo extended-JSON object ({"$oid": "..."}).
type FlexID string

func (f FlexID) String() string {
	return string(f)
}

// IsZero reports whether the id is absent.
func (f FlexID) IsZero() bool {
	return strings.TrimSpace(string(f)) == ""
}

func (f *FlexID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		*f = ""
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexID(s)

	case '{':
		var oid struct {
			OID string `json:"$oid"`
		}
		if err := json.Unmarshal(data, &oid); err != nil {
			return err
		}
		*f = FlexID(oid.OID)

	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("ident: unsupported id value %s", raw)
		}
		*f = FlexID(n.String())
	}
	return nil
}
