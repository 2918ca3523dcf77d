package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	uuidType = reflect.TypeFor[uuid.UUID]()
	timeType = reflect.TypeFor[time.Time]()
)

// bindToStruct binds string values to a struct using reflection.
// tagName selects the struct tag to match parameter names against
// (e.g. "query", "form", "path"); bindErr is the sentinel wrapped into
// binding failures.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		fieldType := rt.Field(i)

		if !field.CanSet() {
			continue
		}

		paramName, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		fieldValues, exists := values[paramName]
		if !exists || len(fieldValues) == 0 {
			continue // No value provided, leave as zero value
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, fieldType.Name, err)
		}
	}

	return nil
}

// parseFieldTag extracts the parameter name from struct tags and reports
// whether the field should be skipped. Untagged fields default to the
// lowercase field name.
func parseFieldTag(field reflect.StructField, tagName string) (paramName string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	tagParts := strings.Split(tag, ",")
	return tagParts[0], false
}

// isScalarType reports whether t binds from a single request value rather
// than field by field. Pointers are considered through their element type.
func isScalarType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t {
	case uuidType, timeType:
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.Slice:
		return isScalarType(t.Elem())
	default:
		return false
	}
}

// setFieldValue sets a value from its string representation, dereferencing
// pointers and expanding slices as needed.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)
	}

	if fieldType.Kind() == reflect.Slice {
		return setSliceValue(field, fieldType, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch fieldType {
	case uuidType:
		id, err := uuid.Parse(value)
		if err != nil {
			return fmt.Errorf("invalid uuid value %q", value)
		}
		field.Set(reflect.ValueOf(id))
		return nil

	case timeType:
		ts, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return fmt.Errorf("invalid time value %q", value)
		}
		field.Set(reflect.ValueOf(ts))
		return nil
	}

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(sanitizeStringValue(value))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Accept common form representations of booleans
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType.Kind())
	}

	return nil
}

// setSliceValue sets slice values, accepting both repeated parameters and
// comma-separated values in a single parameter.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	elemType := fieldType.Elem()

	var allValues []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			allValues = append(allValues, strings.Split(v, ",")...)
		} else {
			allValues = append(allValues, v)
		}
	}

	slice := reflect.MakeSlice(fieldType, len(allValues), len(allValues))

	for i, value := range allValues {
		elem := slice.Index(i)
		if err := setFieldValue(elem, elemType, []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

// sanitizeStringValue strips characters usable for CRLF injection and null
// byte attacks, and filters invalid Unicode sequences.
func sanitizeStringValue(value string) string {
	value = strings.ReplaceAll(value, "\x00", "")
	value = strings.ReplaceAll(value, "\r\n", "")
	value = strings.ReplaceAll(value, "\r", "")
	value = strings.ReplaceAll(value, "\n", "")

	var builder strings.Builder
	builder.Grow(len(value))

	for _, r := range value {
		if r == '\t' || r >= ' ' || unicode.IsGraphic(r) {
			if utf8.ValidRune(r) {
				builder.WriteRune(r)
			}
		}
	}

	return builder.String()
}

// sanitizeReflectValue recursively sanitizes every settable string reachable
// from rv. Types with their own wire formats (uuid.UUID, time.Time) are left
// untouched.
func sanitizeReflectValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(sanitizeStringValue(rv.String()))
		}

	case reflect.Struct:
		if rv.Type() == timeType || rv.Type() == uuidType {
			return
		}
		for i := range rv.NumField() {
			field := rv.Field(i)
			if field.CanSet() {
				sanitizeReflectValue(field)
			}
		}

	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			sanitizeReflectValue(rv.Index(i))
		}

	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			sanitizeReflectValue(rv.Elem())
		}
	}
}

// validateBoundary rejects multipart boundaries that would break parsing.
func validateBoundary(boundary string) bool {
	if boundary == "" {
		return false
	}

	for _, r := range boundary {
		if r == '\x00' || r == '\r' || r == '\n' {
			return false
		}
	}

	return len(boundary) <= 100
}
