package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// bindStruct populates the exported fields of the struct pointed to by v
// from the given string values, using tagName to resolve parameter names.
// Fields without a matching parameter keep their zero value. bindErr is
// the sentinel wrapped into every failure.
func bindStruct(v any, tagName string, values map[string][]string, bindErr error) error {
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
		if !field.CanSet() {
			continue
		}

		name, skip := paramName(rt.Field(i), tagName)
		if skip {
			continue
		}

		fieldValues, ok := values[name]
		if !ok || len(fieldValues) == 0 {
			continue
		}

		if err := setField(field, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, rt.Field(i).Name, err)
		}
	}

	return nil
}

// paramName resolves the request parameter name for a struct field.
// A missing tag falls back to the lowercased field name; "-" skips it.
func paramName(field reflect.StructField, tagName string) (string, bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return "", true
	}
	return name, false
}

func setField(field reflect.Value, values []string) error {
	// Allocate through nil pointers so optional fields bind transparently.
	if field.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(field.Type().Elem()))
		}
		return setField(field.Elem(), values)
	}

	if field.Kind() == reflect.Slice {
		return setSlice(field, values)
	}

	if len(values) == 0 {
		return nil
	}
	value := values[0]

	switch field.Kind() {
	case reflect.String:
		field.SetString(cleanString(value))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}

	return nil
}

func setSlice(field reflect.Value, values []string) error {
	// Accept both repeated parameters (?tag=a&tag=b) and a single
	// comma-separated parameter (?tag=a,b).
	var all []string
	for _, v := range values {
		if strings.Contains(v, ",") {
			all = append(all, strings.Split(v, ",")...)
		} else {
			all = append(all, v)
		}
	}

	slice := reflect.MakeSlice(field.Type(), len(all), len(all))
	for i, value := range all {
		if err := setField(slice.Index(i), []string{strings.TrimSpace(value)}); err != nil {
			return err
		}
	}

	field.Set(slice)
	return nil
}

func parseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	// HTML checkboxes and toggles send on/off and yes/no.
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}

// cleanString strips NUL bytes, CR/LF, and non-printable control
// characters from bound input to block header injection and null-byte
// attacks before the value reaches application code.
func cleanString(value string) string {
	if !strings.ContainsFunc(value, func(r rune) bool {
		return r < ' ' && r != '\t'
	}) {
		return value
	}

	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r == '\t' || r >= ' ' || unicode.IsGraphic(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cleanStrings walks a bound value and cleans every settable string in
// place. Used after JSON decoding, where values bypass setField.
func cleanStrings(v any) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return
	}
	cleanValue(rv.Elem())
}

func cleanValue(rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		if rv.CanSet() {
			rv.SetString(cleanString(rv.String()))
		}
	case reflect.Struct:
		for i := range rv.NumField() {
			if rv.Field(i).CanSet() {
				cleanValue(rv.Field(i))
			}
		}
	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			cleanValue(rv.Index(i))
		}
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			cleanValue(rv.Elem())
		}
	}
}
