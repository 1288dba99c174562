package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

var nullLiteral = []byte("null")

// Number is a numeric value decoded from loosely typed input. Values that are
// missing, null or fail to parse are left invalid rather than becoming zero.
type Number struct {
	Value float64
	Valid bool
}

// NumberOf returns a valid Number holding v.
func NumberOf(v float64) Number {
	return Number{Value: v, Valid: true}
}

// ParseNumber parses a data attribute or query value. Empty, non-numeric and
// non-finite input yields an invalid Number.
func ParseNumber(s string) Number {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return Number{}
	}
	return NumberOf(v)
}

// Or returns n when it is valid and fallback otherwise.
func (n Number) Or(fallback Number) Number {
	if n.Valid {
		return n
	}
	return fallback
}

// UnmarshalJSON accepts JSON numbers and numeric strings. Any other value
// decodes to an invalid Number without failing the surrounding document.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, nullLiteral) {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		*n = ParseNumber(s)
		return nil
	}
	*n = ParseNumber(string(b))
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return nullLiteral, nil
	}
	return []byte(strconv.FormatFloat(n.Value, 'f', -1, 64)), nil
}

// Numbers converts a slice element-wise, dropping nothing. Invalid entries
// become zero, which mirrors how icon size arrays are coerced.
func Numbers(ns []Number) []float64 {
	if ns == nil {
		return nil
	}
	out := make([]float64, len(ns))
	for i, n := range ns {
		out[i] = n.Value
	}
	return out
}

// Flag is a boolean that remembers whether it was set at all.
type Flag struct {
	Value bool
	Valid bool
}

// FlagOf returns a set Flag.
func FlagOf(v bool) Flag {
	return Flag{Value: v, Valid: true}
}

// IsFalse reports whether the flag was explicitly set to false.
func (f Flag) IsFalse() bool {
	return f.Valid && !f.Value
}

// UnmarshalJSON accepts true/false and their string forms.
func (f *Flag) UnmarshalJSON(b []byte) error {
	*f = Flag{}
	switch strings.Trim(string(bytes.TrimSpace(b)), `"`) {
	case "true":
		*f = FlagOf(true)
	case "false":
		*f = FlagOf(false)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return nullLiteral, nil
	}
	return []byte(strconv.FormatBool(f.Value)), nil
}

// FlexString is a text value that also accepts JSON numbers and booleans.
// Numbers are written in their shortest decimal form, so 42.0 and 4.2e1 both
// read as "42". Identifiers such as marker ids are commonly written as numbers.
type FlexString string

func (s *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, nullLiteral):
		*s = ""
	case b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			*s = ""
			return nil
		}
		*s = FlexString(v)
	case b[0] == '{' || b[0] == '[':
		*s = ""
	case b[0] == 't' || b[0] == 'f':
		*s = FlexString(b)
	default:
		v, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			*s = FlexString(b)
			return nil
		}
		*s = FlexString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return nil
}

func (s FlexString) String() string {
	return string(s)
}
