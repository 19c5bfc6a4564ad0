package models

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the variant held by a ConfigValue.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBoolean
	KindStructured
)

// ConfigValue is an AppConfig value decoded according to its type tag.
type ConfigValue struct {
	Kind       ValueKind
	String     string
	Number     float64
	Boolean    bool
	Structured interface{}
}

// DecodeConfigValue decodes raw according to valueType. json and number values
// that fail to decode fall back to the raw text. Booleans are true only for
// "true", "1" and "yes", in any case.
func DecodeConfigValue(raw, valueType string) ConfigValue {
	switch valueType {
	case ConfigTypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return ConfigValue{Kind: KindString, String: raw}
		}
		return ConfigValue{Kind: KindStructured, Structured: v}
	case ConfigTypeNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		// NaN and Inf have no JSON encoding.
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return ConfigValue{Kind: KindString, String: raw}
		}
		return ConfigValue{Kind: KindNumber, Number: f}
	case ConfigTypeBoolean:
		switch strings.ToLower(raw) {
		case "true", "1", "yes":
			return ConfigValue{Kind: KindBoolean, Boolean: true}
		}
		return ConfigValue{Kind: KindBoolean, Boolean: false}
	default:
		return ConfigValue{Kind: KindString, String: raw}
	}
}

// Interface returns the decoded value as a plain Go value.
func (v ConfigValue) Interface() interface{} {
	switch v.Kind {
	case KindNumber:
		return v.Number
	case KindBoolean:
		return v.Boolean
	case KindStructured:
		return v.Structured
	default:
		return v.String
	}
}

// MarshalJSON encodes the underlying value.
func (v ConfigValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}
