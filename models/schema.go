package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SchemaType is the declared shape of a setting value
type SchemaType string

const (
	SchemaTypeString  SchemaType = "string"
	SchemaTypeNumber  SchemaType = "number"
	SchemaTypeBoolean SchemaType = "boolean"
	SchemaTypeArray   SchemaType = "array"
	SchemaTypeObject  SchemaType = "object"
)

// Valid reports whether the type is one of the known schema types
func (t SchemaType) Valid() bool {
	switch t {
	case SchemaTypeString, SchemaTypeNumber, SchemaTypeBoolean, SchemaTypeArray, SchemaTypeObject:
		return true
	}
	return false
}

// ValidationSchema describes the expected shape of a setting value.
// Object properties are checked one level deep only.
type ValidationSchema struct {
	Type       SchemaType                   `json:"type,omitempty"`
	Required   bool                         `json:"required,omitempty"`
	Enum       []string                     `json:"enum,omitempty"`
	Pattern    string                       `json:"pattern,omitempty"`
	Minimum    *float64                     `json:"minimum,omitempty"`
	Maximum    *float64                     `json:"maximum,omitempty"`
	Properties map[string]*ValidationSchema `json:"properties,omitempty"`
}

// UnmarshalJSON decodes a schema leniently: fields with an unexpected type are dropped
// instead of failing the whole document.
func (s *ValidationSchema) UnmarshalJSON(data []byte) error {
	*s = ValidationSchema{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	var typ string
	if json.Unmarshal(fields["type"], &typ) == nil {
		s.Type = SchemaType(strings.ToLower(typ))
	}

	var required bool
	if json.Unmarshal(fields["required"], &required) == nil {
		s.Required = required
	}

	var enum []interface{}
	if json.Unmarshal(fields["enum"], &enum) == nil {
		for _, v := range enum {
			if str, ok := v.(string); ok {
				s.Enum = append(s.Enum, str)
			}
		}
	}

	var pattern string
	if json.Unmarshal(fields["pattern"], &pattern) == nil {
		s.Pattern = pattern
	}

	var minimum *float64
	if json.Unmarshal(fields["minimum"], &minimum) == nil {
		s.Minimum = minimum
	}

	var maximum *float64
	if json.Unmarshal(fields["maximum"], &maximum) == nil {
		s.Maximum = maximum
	}

	var properties map[string]json.RawMessage
	if json.Unmarshal(fields["properties"], &properties) == nil && len(properties) > 0 {
		s.Properties = make(map[string]*ValidationSchema, len(properties))
		for name, raw := range properties {
			prop := &ValidationSchema{}
			_ = prop.UnmarshalJSON(raw)
			s.Properties[name] = prop
		}
	}

	return nil
}

// ValueKind tags the decoded form of a setting value
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindNull
	KindString
	KindNumber
	KindBoolean
	KindArray
	KindObject
	KindInvalid
)

// SettingValue is a setting value decoded at the validation boundary.
// Only the field matching Kind is meaningful.
type SettingValue struct {
	Kind   ValueKind
	String string
	Number float64
	Bool   bool
	Object map[string]json.RawMessage
}

// DecodeValue classifies a raw JSON value
func DecodeValue(raw json.RawMessage) SettingValue {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return SettingValue{Kind: KindAbsent}
	}
	if !json.Valid(trimmed) {
		return SettingValue{Kind: KindInvalid}
	}

	switch trimmed[0] {
	case 'n':
		return SettingValue{Kind: KindNull}
	case 't', 'f':
		var b bool
		_ = json.Unmarshal(trimmed, &b)
		return SettingValue{Kind: KindBoolean, Bool: b}
	case '"':
		var str string
		_ = json.Unmarshal(trimmed, &str)
		return SettingValue{Kind: KindString, String: str}
	case '[':
		return SettingValue{Kind: KindArray}
	case '{':
		var obj map[string]json.RawMessage
		_ = json.Unmarshal(trimmed, &obj)
		return SettingValue{Kind: KindObject, Object: obj}
	default:
		// Out-of-range numbers become ±Inf and fail any declared bound
		n, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return SettingValue{Kind: KindInvalid}
		}
		return SettingValue{Kind: KindNumber, Number: n}
	}
}

// isEmpty reports whether the value counts as missing for the required check
func (v SettingValue) isEmpty() bool {
	switch v.Kind {
	case KindAbsent, KindNull:
		return true
	case KindString:
		return v.String == ""
	}
	return false
}

// ValidateValue validates a raw value against a schema. A nil schema accepts anything.
func ValidateValue(raw json.RawMessage, schema *ValidationSchema) ValidationResult {
	if schema == nil {
		return ValidationResult{Valid: true, Errors: []string{}}
	}

	errs := schema.validateField("value", DecodeValue(raw), true)
	if !errs.HasErrors() {
		return ValidationResult{Valid: true, Errors: []string{}}
	}
	return ValidationResult{Valid: false, Errors: errs.GetMessages()}
}

// Validate validates a raw value against the schema and returns field-level errors
func (s *ValidationSchema) Validate(raw json.RawMessage) ValidationErrors {
	if s == nil {
		return nil
	}
	return s.validateField("value", DecodeValue(raw), true)
}

func (s *ValidationSchema) validateField(field string, v SettingValue, withProperties bool) ValidationErrors {
	if v.isEmpty() {
		if s.Required {
			return ValidationErrors{{Field: field, Message: field + " is required"}}
		}
		return nil
	}

	if v.Kind == KindInvalid {
		return ValidationErrors{{Field: field, Message: field + " is not valid JSON"}}
	}

	var errs ValidationErrors
	fail := func(format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: field + " " + fmt.Sprintf(format, args...)})
	}

	switch s.Type {
	case SchemaTypeString:
		if v.Kind != KindString {
			fail("must be a string")
			return errs
		}
		if s.Pattern != "" {
			// An uncompilable pattern is ignored
			if re, err := regexp.Compile(s.Pattern); err == nil && !re.MatchString(v.String) {
				fail("does not match pattern %s", s.Pattern)
			}
		}
		if len(s.Enum) > 0 && !containsString(s.Enum, v.String) {
			fail("must be one of: %s", strings.Join(s.Enum, ", "))
		}

	case SchemaTypeNumber:
		if v.Kind != KindNumber {
			fail("must be a number")
			return errs
		}
		if s.Minimum != nil && v.Number < *s.Minimum {
			fail("must be at least %s", formatBound(*s.Minimum))
		}
		if s.Maximum != nil && v.Number > *s.Maximum {
			fail("must be at most %s", formatBound(*s.Maximum))
		}

	case SchemaTypeBoolean:
		if v.Kind != KindBoolean {
			fail("must be a boolean (true or false)")
		}

	case SchemaTypeArray:
		if v.Kind != KindArray {
			fail("must be an array")
		}

	case SchemaTypeObject:
		if v.Kind != KindObject {
			fail("must be an object")
			return errs
		}
		if withProperties {
			errs = append(errs, s.validateProperties(v.Object)...)
		}
	}

	return errs
}

// validateProperties checks declared top-level fields by name; nested properties are not followed
func (s *ValidationSchema) validateProperties(obj map[string]json.RawMessage) ValidationErrors {
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs ValidationErrors
	for _, name := range names {
		prop := s.Properties[name]
		if prop == nil {
			continue
		}
		errs = append(errs, prop.validateField(name, DecodeValue(obj[name]), false)...)
	}
	return errs
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
