package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// ValidationResult is the outcome of validating a value against a schema
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// CanonicalJSON re-encodes a JSON document compactly with object keys sorted.
// Numbers are rewritten by value, so 1e3, 1000 and 1000.0 encode identically.
func CanonicalJSON(raw json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	out, err := json.Marshal(canonicalNumbers(v))
	if err != nil {
		return nil, err
	}
	return out, nil
}

func canonicalNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, item := range t {
			t[k] = canonicalNumbers(item)
		}
	case []interface{}:
		for i, item := range t {
			t[i] = canonicalNumbers(item)
		}
	case json.Number:
		return json.Number(canonicalNumber(string(t)))
	}
	return v
}

// canonicalNumber formats a JSON number from its decimal digits and exponent.
// Magnitudes from 1e-6 up to 1e21 are written without an exponent.
func canonicalNumber(original string) string {
	neg := strings.HasPrefix(original, "-")
	num := strings.TrimPrefix(original, "-")

	mantissa, exp := num, 0
	if i := strings.IndexAny(num, "eE"); i >= 0 {
		e, err := strconv.Atoi(strings.TrimPrefix(num[i+1:], "+"))
		if err != nil {
			// exponent beyond int range
			return original
		}
		mantissa, exp = num[:i], e
	}

	intPart, frac, _ := strings.Cut(mantissa, ".")
	digits := intPart + frac
	// value = 0.<digits> x 10^point
	point := len(intPart) + exp

	trimmed := strings.TrimLeft(digits, "0")
	point -= len(digits) - len(trimmed)
	digits = strings.TrimRight(trimmed, "0")
	if digits == "" {
		return "0"
	}

	var out string
	switch {
	case point > 0 && point <= 21:
		if len(digits) <= point {
			out = digits + strings.Repeat("0", point-len(digits))
		} else {
			out = digits[:point] + "." + digits[point:]
		}
	case point <= 0 && point > -6:
		out = "0." + strings.Repeat("0", -point) + digits
	default:
		out = digits[:1]
		if len(digits) > 1 {
			out += "." + digits[1:]
		}
		out += "e" + strconv.Itoa(point-1)
	}

	if neg {
		return "-" + out
	}
	return out
}
