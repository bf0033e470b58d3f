package sanitizer

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":       Trim,
		"lower":      Lower,
		"upper":      Upper,
		"trim_lower": func(s string) string { return Lower(Trim(s)) },
		"collapse":   CollapseWhitespace,
		"one_line":   SingleLine,
		"escape":     EscapeHTML,
		"no_control": StripControl,
		"email":      NormalizeEmail,
		"url":        NormalizeURL,
	}
)

// RegisterSanitizer adds a custom transform to the registry, replacing
// any transform already registered under the same name.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// Apply runs the transforms named in `sanitize` struct tags over the
// string fields of the struct pointed to by v, in tag order, mutating
// the fields in place. Transforms are separated by semicolons:
//
//	type SignupRequest struct {
//		Email string `json:"email" sanitize:"trim;email"`
//		Name  string `json:"name" sanitize:"trim;collapse"`
//	}
//
// Nested structs, slices, and non-nil pointers are walked recursively.
// Unknown transform names are ignored. Sanitization runs between
// binding and validation, so rules see the normalized value.
func Apply(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("sanitizer: expected non-nil pointer, got %s", rv.Kind())
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("sanitizer: expected pointer to struct, got %s", rv.Kind())
	}

	applyStruct(rv)
	return nil
}

func applyStruct(rv reflect.Value) {
	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		applyField(field, rt.Field(i).Tag.Get("sanitize"))
	}
}

func applyField(field reflect.Value, tag string) {
	switch field.Kind() {
	case reflect.String:
		if tag == "" {
			return
		}
		field.SetString(transform(field.String(), tag))

	case reflect.Struct:
		applyStruct(field)

	case reflect.Slice, reflect.Array:
		for i := range field.Len() {
			applyField(field.Index(i), tag)
		}

	case reflect.Pointer:
		if !field.IsNil() {
			applyField(field.Elem(), tag)
		}
	}
}

func transform(s, tag string) string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range strings.Split(tag, ";") {
		name = strings.TrimSpace(name)
		if fn, ok := registry[name]; ok {
			s = fn(s)
		}
	}
	return s
}
